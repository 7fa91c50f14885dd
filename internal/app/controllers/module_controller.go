package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/app/services"
	"github.com/okandemir/campusgate/internal/middleware"
)

// ModuleController handles the module collection views
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
	}
}

// ListModules returns the module collection with derived averages
// @Summary List modules
// @Tags modules
// @Produce json
// @Param q query string false "Case-insensitive search over code, name and id"
// @Param sort query string false "Sort key: code, code_desc, name, name_desc, id, score, score_desc"
// @Success 200 {object} dto.APIResponse{data=[]dto.ModuleView} "Modules retrieved successfully"
// @Router /modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters"),
		))
		return
	}

	modules, err := c.moduleService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(modules))
}

// CreateModule handles module creation
// @Summary Create a new module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Module true "Module information, id ignored"
// @Success 201 {object} dto.APIResponse{data=models.Module} "Module created successfully"
// @Router /modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var module models.Module
	if err := ctx.ShouldBindJSON(&module); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module data").WithDetails(err.Error()),
		))
		return
	}

	created, err := c.moduleService.Create(ctx.Request.Context(), module)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateModule handles a full module update
// @Summary Update a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Param request body models.Module true "Full module record"
// @Success 200 {object} dto.APIResponse{data=models.Module} "Module updated successfully"
// @Router /modules/{id} [put]
func (c *ModuleController) UpdateModule(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var module models.Module
	if err := ctx.ShouldBindJSON(&module); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid module data").WithDetails(err.Error()),
		))
		return
	}

	updated, err := c.moduleService.Update(ctx.Request.Context(), id, module)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteModule removes a module
// @Summary Delete a module
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Module deleted successfully"
// @Router /modules/{id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.moduleService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Module deleted successfully"}))
}
