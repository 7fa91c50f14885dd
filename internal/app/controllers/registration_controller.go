package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/app/services"
	"github.com/okandemir/campusgate/internal/middleware"
)

// RegistrationController handles the enrollment collection views
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// ListRegistrations returns the enrollment collection
// @Summary List registrations
// @Tags registrations
// @Produce json
// @Param q query string false "Case-insensitive search over student, module and id"
// @Param sort query string false "Sort key: name, name_desc, code, code_desc, id"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations retrieved successfully"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters"),
		))
		return
	}

	registrations, err := c.registrationService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(registrations))
}

// CreateRegistration enrolls a student on a module
// @Summary Create a registration
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Registration true "Registration with student and module references"
// @Success 201 {object} dto.APIResponse{data=models.Registration} "Registration created successfully"
// @Router /registrations [post]
func (c *RegistrationController) CreateRegistration(ctx *gin.Context) {
	var registration models.Registration
	if err := ctx.ShouldBindJSON(&registration); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data").WithDetails(err.Error()),
		))
		return
	}

	// Both references must be selected before the backend is contacted
	if registration.Student == nil || registration.Student.ID == 0 ||
		registration.Module == nil || registration.Module.ID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student and module must be selected").
				WithRecovery("Pick a student and a module before submitting"),
		))
		return
	}

	created, err := c.registrationService.Create(ctx.Request.Context(), registration)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateRegistration handles a full registration update
// @Summary Update a registration
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body models.Registration true "Full registration record"
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Registration updated successfully"
// @Router /registrations/{id} [put]
func (c *RegistrationController) UpdateRegistration(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var registration models.Registration
	if err := ctx.ShouldBindJSON(&registration); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data").WithDetails(err.Error()),
		))
		return
	}

	updated, err := c.registrationService.Update(ctx.Request.Context(), id, registration)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteRegistration removes a registration
// @Summary Delete a registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration deleted successfully"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.registrationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Registration deleted successfully"}))
}
