package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/asset/usecases"
	"garrison/internal/domain/asset"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type AssetHandler struct {
	createUC usecases.CreateAssetExecutor
	getUC    usecases.GetAssetExecutor
	updateUC usecases.UpdateAssetExecutor
	deleteUC usecases.DeleteAssetExecutor
	listUC   usecases.ListAssetsExecutor
	logger   logger.Interface
}

func NewAssetHandler(
	createUC usecases.CreateAssetExecutor,
	getUC usecases.GetAssetExecutor,
	updateUC usecases.UpdateAssetExecutor,
	deleteUC usecases.DeleteAssetExecutor,
	listUC usecases.ListAssetsExecutor,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreateAssetRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required"`
	Description  string `json:"description"`
	SerialNumber string `json:"serial_number"`
	BaseID       *uint  `json:"base_id"`
	Status       string `json:"status"`
	Value        *int   `json:"value"`
}

// Create handles POST /assets.
func (h *AssetHandler) Create(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), usecases.CreateAssetCommand{
		Identity:     identity,
		Name:         req.Name,
		Type:         req.Type,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
		BaseID:       req.BaseID,
		Status:       req.Status,
		Value:        req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Asset created successfully",
		"asset":   created,
	})
}

// Get handles GET /assets/:id.
func (h *AssetHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUC.Execute(c.Request.Context(), usecases.GetAssetQuery{Identity: identity, AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": found})
}

type UpdateAssetRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Description  *string `json:"description"`
	SerialNumber *string `json:"serial_number"`
	BaseID       *uint   `json:"base_id"`
	Status       *string `json:"status"`
	Value        *int    `json:"value"`
}

// Update handles PUT /assets/:id.
func (h *AssetHandler) Update(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAssetCommand{
		Identity: identity,
		AssetID:  assetID,
		Update: asset.Update{
			Name:         req.Name,
			Type:         req.Type,
			Description:  req.Description,
			SerialNumber: req.SerialNumber,
			BaseID:       req.BaseID,
			Status:       req.Status,
			Value:        req.Value,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asset updated successfully",
		"asset":   updated,
	})
}

// Delete handles DELETE /assets/:id.
func (h *AssetHandler) Delete(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAssetCommand{Identity: identity, AssetID: assetID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

// List handles GET /assets.
func (h *AssetHandler) List(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	baseID, err := queryUint(c, "base_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	pg := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAssetsQuery{
		Identity: identity,
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		BaseID:   baseID,
		Search:   c.Query("search"),
		Page:     pg.Page,
		Limit:    pg.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "assets", result.Assets, result.Total, result.Page, pg.Limit)
}
