package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"garrison/internal/application/assignment/usecases"
	"garrison/internal/domain/assignment"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type AssignmentHandler struct {
	assignUC           usecases.AssignAssetExecutor
	expendUC           usecases.ExpendAssetExecutor
	getUC              usecases.GetAssignmentExecutor
	updateUC           usecases.UpdateAssignmentExecutor
	deleteUC           usecases.DeleteAssignmentExecutor
	listUC             usecases.ListAssignmentsExecutor
	assetHistoryUC     usecases.AssetAssignmentsExecutor
	personnelHistoryUC usecases.PersonnelAssignmentsExecutor
	logger             logger.Interface
}

func NewAssignmentHandler(
	assignUC usecases.AssignAssetExecutor,
	expendUC usecases.ExpendAssetExecutor,
	getUC usecases.GetAssignmentExecutor,
	updateUC usecases.UpdateAssignmentExecutor,
	deleteUC usecases.DeleteAssignmentExecutor,
	listUC usecases.ListAssignmentsExecutor,
	assetHistoryUC usecases.AssetAssignmentsExecutor,
	personnelHistoryUC usecases.PersonnelAssignmentsExecutor,
	logger logger.Interface,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignUC:           assignUC,
		expendUC:           expendUC,
		getUC:              getUC,
		updateUC:           updateUC,
		deleteUC:           deleteUC,
		listUC:             listUC,
		assetHistoryUC:     assetHistoryUC,
		personnelHistoryUC: personnelHistoryUC,
		logger:             logger,
	}
}

type AssignAssetRequest struct {
	AssetID     uint       `json:"asset_id" binding:"required"`
	PersonnelID uint       `json:"personnel_id" binding:"required"`
	AssignedAt  *time.Time `json:"assigned_at"`
	AssignedBy  string     `json:"assigned_by"`
}

// Assign handles POST /assignments.
func (h *AssignmentHandler) Assign(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignAssetCommand{
		Identity:    identity,
		AssetID:     req.AssetID,
		PersonnelID: req.PersonnelID,
		AssignedAt:  req.AssignedAt,
		AssignedBy:  req.AssignedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Asset assigned successfully",
		"assignment": created,
	})
}

type ExpendAssetRequest struct {
	AssignmentID uint       `json:"assignment_id" binding:"required"`
	ExpendedDate *time.Time `json:"expended_date"`
}

// Expend handles POST /assignments/expend. The assignment closes and the
// asset returns to the available pool.
func (h *AssignmentHandler) Expend(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req ExpendAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	expended, err := h.expendUC.Execute(c.Request.Context(), usecases.ExpendAssetCommand{
		Identity:     identity,
		AssignmentID: req.AssignmentID,
		ExpendedDate: req.ExpendedDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Asset marked as expended successfully",
		"assignment": expended,
	})
}

// Get handles GET /assignments/:id.
func (h *AssignmentHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.getUC.Execute(c.Request.Context(), usecases.GetAssignmentQuery{Identity: identity, AssignmentID: assignmentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": found})
}

type UpdateAssignmentRequest struct {
	AssetID      *uint      `json:"asset_id"`
	PersonnelID  *uint      `json:"personnel_id"`
	AssignedAt   *time.Time `json:"assigned_at"`
	ExpendedDate *time.Time `json:"expended_date"`
	AssignedBy   *string    `json:"assigned_by"`
}

// Update handles PUT /assignments/:id.
func (h *AssignmentHandler) Update(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAssignmentCommand{
		Identity:     identity,
		AssignmentID: assignmentID,
		Update: assignment.Update{
			AssetID:      req.AssetID,
			PersonnelID:  req.PersonnelID,
			AssignedAt:   req.AssignedAt,
			ExpendedDate: req.ExpendedDate,
			AssignedBy:   req.AssignedBy,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Assignment updated successfully",
		"assignment": updated,
	})
}

// Delete handles DELETE /assignments/:id.
func (h *AssignmentHandler) Delete(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAssignmentCommand{Identity: identity, AssignmentID: assignmentID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}

// List handles GET /assignments.
func (h *AssignmentHandler) List(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	assetID, err := queryUint(c, "asset_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	personnelID, err := queryUint(c, "personnel_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
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

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAssignmentsQuery{
		Identity:    identity,
		AssetID:     assetID,
		PersonnelID: personnelID,
		Status:      c.Query("status"),
		BaseID:      baseID,
		StartDate:   startDate,
		EndDate:     endDate,
		Page:        pg.Page,
		Limit:       pg.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListResponse(c, "assignments", result.Assignments, result.Total, result.Page, pg.Limit)
}

// AssetHistory handles GET /assignments/asset/:asset_id.
func (h *AssignmentHandler) AssetHistory(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	assetID, err := parseIDParam(c, "asset_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignments, err := h.assetHistoryUC.Execute(c.Request.Context(), usecases.AssetAssignmentsQuery{Identity: identity, AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

// PersonnelHistory handles GET /assignments/personnel/:personnel_id.
func (h *AssignmentHandler) PersonnelHistory(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	personnelID, err := parseIDParam(c, "personnel_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignments, err := h.personnelHistoryUC.Execute(c.Request.Context(), usecases.PersonnelAssignmentsQuery{Identity: identity, PersonnelID: personnelID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
