package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/dashboard/usecases"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type DashboardHandler struct {
	metricsUC     usecases.GetMetricsExecutor
	netMovementUC usecases.NetMovementExecutor
	logger        logger.Interface
}

func NewDashboardHandler(
	metricsUC usecases.GetMetricsExecutor,
	netMovementUC usecases.NetMovementExecutor,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		metricsUC:     metricsUC,
		netMovementUC: netMovementUC,
		logger:        logger,
	}
}

// Metrics handles GET /dashboard/metrics.
func (h *DashboardHandler) Metrics(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	baseID, err := queryUint(c, "base_id")
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

	metrics, err := h.metricsUC.Execute(c.Request.Context(), usecases.GetMetricsQuery{
		Identity:      identity,
		BaseID:        baseID,
		EquipmentType: c.Query("equipment_type"),
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// NetMovement handles GET /dashboard/net-movement. It expands the headline
// figure into the purchase and transfer rows behind it.
func (h *DashboardHandler) NetMovement(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	baseID, err := queryUint(c, "base_id")
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

	result, err := h.netMovementUC.Execute(c.Request.Context(), usecases.NetMovementQuery{
		Identity:  identity,
		BaseID:    baseID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"purchases":    result.Purchases,
		"transfersIn":  result.TransfersIn,
		"transfersOut": result.TransfersOut,
	})
}
