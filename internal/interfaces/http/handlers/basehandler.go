package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/base/usecases"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type BaseHandler struct {
	listUC usecases.ListBasesExecutor
	logger logger.Interface
}

func NewBaseHandler(listUC usecases.ListBasesExecutor, logger logger.Interface) *BaseHandler {
	return &BaseHandler{listUC: listUC, logger: logger}
}

// List handles GET /bases.
func (h *BaseHandler) List(c *gin.Context) {
	if _, ok := identityOrAbort(c); !ok {
		return
	}

	bases, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bases": bases})
}
