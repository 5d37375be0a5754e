package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/purchase/usecases"
	"garrison/internal/domain/purchase"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type PurchaseHandler struct {
	createUC usecases.CreatePurchaseExecutor
	getUC    usecases.GetPurchaseExecutor
	updateUC usecases.UpdatePurchaseExecutor
	deleteUC usecases.DeletePurchaseExecutor
	listUC   usecases.ListPurchasesExecutor
	logger   logger.Interface
}

func NewPurchaseHandler(
	createUC usecases.CreatePurchaseExecutor,
	getUC usecases.GetPurchaseExecutor,
	updateUC usecases.UpdatePurchaseExecutor,
	deleteUC usecases.DeletePurchaseExecutor,
	listUC usecases.ListPurchasesExecutor,
	logger logger.Interface,
) *PurchaseHandler {
	return &PurchaseHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreatePurchaseRequest struct {
	AssetType   string     `json:"asset_type" binding:"required"`
	Quantity    int        `json:"quantity" binding:"required,min=1"`
	BaseID      uint       `json:"base_id" binding:"required"`
	Date        *time.Time `json:"date"`
	Status      string     `json:"status"`
	ApprovedBy  string     `json:"approved_by"`
	RequestedBy string     `json:"requested_by"`
}

// Create handles POST /purchases. Each unit of the ordered quantity is
// materialized as its own asset row inside the same transaction.
func (h *PurchaseHandler) Create(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePurchaseCommand{
		Identity:    identity,
		AssetType:   req.AssetType,
		Quantity:    req.Quantity,
		BaseID:      req.BaseID,
		Date:        req.Date,
		Status:      req.Status,
		ApprovedBy:  req.ApprovedBy,
		RequestedBy: req.RequestedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Purchase recorded successfully",
		"purchase":      result.Purchase,
		"assetsCreated": result.AssetsCreated,
	})
}

// Get handles GET /purchases/:id.
func (h *PurchaseHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	purchaseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUC.Execute(c.Request.Context(), usecases.GetPurchaseQuery{Identity: identity, PurchaseID: purchaseID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchase": found})
}

type UpdatePurchaseRequest struct {
	AssetType   *string    `json:"asset_type"`
	Quantity    *int       `json:"quantity" binding:"omitempty,min=1"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status"`
	ApprovedBy  *string    `json:"approved_by"`
	RequestedBy *string    `json:"requested_by"`
}

// Update handles PUT /purchases/:id.
func (h *PurchaseHandler) Update(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	purchaseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePurchaseCommand{
		Identity:   identity,
		PurchaseID: purchaseID,
		Update: purchase.Update{
			AssetType:   req.AssetType,
			Quantity:    req.Quantity,
			Date:        req.Date,
			Status:      req.Status,
			ApprovedBy:  req.ApprovedBy,
			RequestedBy: req.RequestedBy,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Purchase updated successfully",
		"purchase": updated,
	})
}

// Delete handles DELETE /purchases/:id.
func (h *PurchaseHandler) Delete(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	purchaseID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeletePurchaseCommand{Identity: identity, PurchaseID: purchaseID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}

// List handles GET /purchases.
func (h *PurchaseHandler) List(c *gin.Context) {
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
	pg := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPurchasesQuery{
		Identity:  identity,
		AssetType: c.Query("asset_type"),
		BaseID:    baseID,
		StartDate: startDate,
		EndDate:   endDate,
		Page:      pg.Page,
		Limit:     pg.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "purchases", result.Purchases, result.Total, result.Page, pg.Limit)
}
