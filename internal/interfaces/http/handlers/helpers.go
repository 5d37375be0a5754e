package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/interfaces/http/middleware"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/constants"
	"garrison/internal/shared/errors"
	"garrison/internal/shared/utils"
)

// identityOrAbort pulls the authenticated identity from the request context.
// Routes behind RequireAuth always have one; a missing identity means the
// route was wired without the middleware, so fail closed.
func identityOrAbort(c *gin.Context) (authorization.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAuthRequired)
		return authorization.Identity{}, false
	}
	return identity, true
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

func queryUint(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("Invalid " + key + " parameter")
	}
	v := uint(n)
	return &v, nil
}

// queryDate parses an optional date query parameter, accepting both ISO-8601
// timestamps and bare dates.
func queryDate(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errors.NewValidationError("Invalid " + key + " format, expected ISO-8601")
}
