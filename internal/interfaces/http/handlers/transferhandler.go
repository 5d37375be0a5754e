package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/transfer/usecases"
	"garrison/internal/domain/transfer"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type TransferHandler struct {
	createUC  usecases.CreateTransferExecutor
	getUC     usecases.GetTransferExecutor
	updateUC  usecases.UpdateTransferExecutor
	deleteUC  usecases.DeleteTransferExecutor
	listUC    usecases.ListTransfersExecutor
	historyUC usecases.AssetTransferHistoryExecutor
	logger    logger.Interface
}

func NewTransferHandler(
	createUC usecases.CreateTransferExecutor,
	getUC usecases.GetTransferExecutor,
	updateUC usecases.UpdateTransferExecutor,
	deleteUC usecases.DeleteTransferExecutor,
	listUC usecases.ListTransfersExecutor,
	historyUC usecases.AssetTransferHistoryExecutor,
	logger logger.Interface,
) *TransferHandler {
	return &TransferHandler{
		createUC:  createUC,
		getUC:     getUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		historyUC: historyUC,
		logger:    logger,
	}
}

type CreateTransferRequest struct {
	AssetID       uint       `json:"asset_id" binding:"required"`
	FromBaseID    uint       `json:"from_base_id" binding:"required"`
	ToBaseID      uint       `json:"to_base_id" binding:"required"`
	Quantity      int        `json:"quantity"`
	Date          *time.Time `json:"date"`
	Status        string     `json:"status"`
	TransferredBy string     `json:"transferred_by"`
	Reason        string     `json:"reason"`
}

// Create handles POST /transfers. The asset moves to the destination base as
// part of the same transaction.
func (h *TransferHandler) Create(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTransferCommand{
		Identity:      identity,
		AssetID:       req.AssetID,
		FromBaseID:    req.FromBaseID,
		ToBaseID:      req.ToBaseID,
		Quantity:      req.Quantity,
		Date:          req.Date,
		Status:        req.Status,
		TransferredBy: req.TransferredBy,
		Reason:        req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Transfer created successfully",
		"transfer": created,
	})
}

// Get handles GET /transfers/:id.
func (h *TransferHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	transferID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUC.Execute(c.Request.Context(), usecases.GetTransferQuery{Identity: identity, TransferID: transferID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transfer": found})
}

type UpdateTransferRequest struct {
	Quantity      *int       `json:"quantity" binding:"omitempty,min=1"`
	Date          *time.Time `json:"date"`
	Status        *string    `json:"status"`
	TransferredBy *string    `json:"transferred_by"`
	Reason        *string    `json:"reason"`
}

// Update handles PUT /transfers/:id. Only the paperwork fields are editable;
// re-routing a shipment means a new transfer.
func (h *TransferHandler) Update(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	transferID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTransferCommand{
		Identity:   identity,
		TransferID: transferID,
		Update: transfer.Update{
			Quantity:      req.Quantity,
			Date:          req.Date,
			Status:        req.Status,
			TransferredBy: req.TransferredBy,
			Reason:        req.Reason,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Transfer updated successfully",
		"transfer": updated,
	})
}

// Delete handles DELETE /transfers/:id.
func (h *TransferHandler) Delete(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	transferID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTransferCommand{Identity: identity, TransferID: transferID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transfer deleted successfully"})
}

// List handles GET /transfers.
func (h *TransferHandler) List(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	assetID, err := queryUint(c, "asset_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	fromBaseID, err := queryUint(c, "from_base_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	toBaseID, err := queryUint(c, "to_base_id")
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

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTransfersQuery{
		Identity:   identity,
		AssetID:    assetID,
		FromBaseID: fromBaseID,
		ToBaseID:   toBaseID,
		StartDate:  startDate,
		EndDate:    endDate,
		Page:       pg.Page,
		Limit:      pg.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "transfers", result.Transfers, result.Total, result.Page, pg.Limit)
}

// AssetHistory handles GET /transfers/asset/:asset_id/history.
func (h *TransferHandler) AssetHistory(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	transfers, err := h.historyUC.Execute(c.Request.Context(), usecases.AssetTransferHistoryQuery{Identity: identity, AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transfers": transfers})
}
