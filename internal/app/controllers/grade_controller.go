package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/app/services"
	"github.com/okandemir/campusgate/internal/middleware"
)

// GradeController handles the grade collection and the pair upsert
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// ListGrades returns the grade collection
// @Summary List grades
// @Tags grades
// @Produce json
// @Param q query string false "Case-insensitive search over student, module and id"
// @Param sort query string false "Sort key: score, score_desc, name, name_desc, id"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved successfully"
// @Router /grades [get]
func (c *GradeController) ListGrades(ctx *gin.Context) {
	var query dto.ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters"),
		))
		return
	}

	grades, err := c.gradeService.List(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// UpsertGrade creates or updates the grade for a (student, module) pair
// @Summary Upsert a grade
// @Description Creates the grade for the pair or updates the existing one; the backend resolves which
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertGradeRequest true "Grade triple"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade stored successfully"
// @Failure 400 {object} dto.ErrorResponse "Student or module not selected"
// @Failure 422 {object} dto.ErrorResponse "Score rejected by the records backend"
// @Router /grades/upsert [post]
func (c *GradeController) UpsertGrade(ctx *gin.Context) {
	var req dto.UpsertGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Missing selection is caught here, before any backend round-trip
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student and module must be selected").
				WithRecovery("Pick a student and a module before submitting a score"),
		))
		return
	}

	grade, err := c.gradeService.Upsert(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grade deleted successfully"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.gradeService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Grade deleted successfully"}))
}
