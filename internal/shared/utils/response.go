package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garrison/internal/shared/constants"
	"garrison/internal/shared/errors"
)

// ErrorBody is the error payload returned by every endpoint:
// {"message": "...", "errors": [...]} with the errors list optional.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrorResponse sends an error response with the given status and message.
func ErrorResponse(c *gin.Context, statusCode int, message string, fieldErrors ...string) {
	c.JSON(statusCode, ErrorBody{Message: message, Errors: fieldErrors})
}

// ErrorResponseWithError translates an error into an HTTP response. AppErrors
// carry their own status code and user-facing message; anything else becomes
// a generic 500 so internals never leak to the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		body := ErrorBody{Message: appErr.Message}
		if appErr.Type == errors.ErrorTypeValidation && appErr.Details != "" {
			body.Errors = []string{appErr.Details}
		}
		c.JSON(appErr.Code, body)
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: constants.ErrMsgInternalServerError})
}

// ListResponse sends a paginated collection under the given key, e.g.
// {"assets": [...], "total": 42, "page": 1, "totalPages": 5}.
func ListResponse(c *gin.Context, key string, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		key:          items,
		"total":      total,
		"page":       page,
		"totalPages": TotalPages(total, limit),
	})
}
