package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/app/services"
	"github.com/okandemir/campusgate/internal/middleware"
)

// OperationController handles the audit trail views and the revert action
type OperationController struct {
	operationService services.OperationService
}

// NewOperationController creates a new OperationController
func NewOperationController(operationService services.OperationService) *OperationController {
	return &OperationController{
		operationService: operationService,
	}
}

// ListOperations returns the audit trail, newest first
// @Summary List operations
// @Description Retrieves the append-only audit trail with HAL metadata stripped from each entry
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]map[string]interface{}} "Operations retrieved successfully"
// @Router /operations [get]
func (c *OperationController) ListOperations(ctx *gin.Context) {
	operations, err := c.operationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(operations))
}

// RevertOperation undoes a previously logged operation
// @Summary Revert an operation
// @Description Undoes the operation; REVERT entries themselves are rejected before reaching the backend
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Operation reverted successfully"
// @Failure 400 {object} dto.ErrorResponse "Operation is itself a revert"
// @Failure 404 {object} dto.ErrorResponse "Operation not found"
// @Router /operations/{id}/revert [post]
func (c *OperationController) RevertOperation(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.operationService.Revert(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Operation reverted successfully"}))
}
