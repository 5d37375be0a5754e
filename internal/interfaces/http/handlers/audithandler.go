package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/audit/usecases"
	"garrison/internal/domain/audit"
	"garrison/internal/shared/constants"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type AuditHandler struct {
	listUC usecases.ListLogsExecutor
	logger logger.Interface
}

func NewAuditHandler(listUC usecases.ListLogsExecutor, logger logger.Interface) *AuditHandler {
	return &AuditHandler{listUC: listUC, logger: logger}
}

// AuditLogResponse is the wire shape of one audit entry.
type AuditLogResponse struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"user_id"`
	Action    string        `json:"action"`
	Details   audit.Details `json:"details"`
	Timestamp time.Time     `json:"timestamp"`
	IPAddress string        `json:"ip_address,omitempty"`
	User      *audit.Actor  `json:"user,omitempty"`
}

// List handles GET /audit/logs, admin only.
func (h *AuditHandler) List(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	userID, err := queryUint(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	startDate, err := queryDate(c, "startDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	endDate, err := queryDate(c, "endDate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	pg := utils.ParsePaginationWithDefault(c, constants.AuditLogPageSize)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListLogsQuery{
		Identity:  identity,
		UserID:    userID,
		Action:    c.Query("action"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      pg.Page,
		Limit:     pg.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	logs := make([]AuditLogResponse, 0, len(result.Logs))
	for _, entry := range result.Logs {
		logs = append(logs, AuditLogResponse{
			ID:        entry.ID,
			UserID:    entry.UserID,
			Action:    entry.Action,
			Details:   entry.Details,
			Timestamp: entry.Timestamp,
			IPAddress: entry.IPAddress,
			User:      entry.User,
		})
	}

	utils.ListResponse(c, "logs", logs, result.Total, result.Page, pg.Limit)
}
