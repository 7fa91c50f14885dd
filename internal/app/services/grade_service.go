package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/apperrors"
	"github.com/okandemir/campusgate/internal/pkg/derive"
	"github.com/okandemir/campusgate/internal/pkg/hal"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// gradeService implements GradeService on top of the backend client
type gradeService struct {
	api    *upstream.Client
	logger zerolog.Logger
}

// NewGradeService creates a new grade service instance
func NewGradeService(api *upstream.Client, logger zerolog.Logger) GradeService {
	return &gradeService{
		api:    api,
		logger: logger,
	}
}

// List fetches the grade collection and applies the view's filter and sort
func (s *gradeService) List(ctx context.Context, query dto.ListQuery) ([]models.Grade, error) {
	raw, err := s.api.Get(ctx, "/grades")
	if err != nil {
		return nil, err
	}
	grades := hal.Collection[models.Grade](raw, "grades")

	grades = derive.Filter(grades, query.Query, func(g models.Grade) []string {
		fields := []string{strconv.FormatInt(g.ID, 10)}
		if g.Student != nil {
			fields = append(fields, g.Student.FullName(), g.Student.UserName)
		}
		if g.Module != nil {
			fields = append(fields, g.Module.Code, g.Module.Name)
		}
		return fields
	})
	return derive.SortBy(grades, gradeComparator(query.Sort)), nil
}

// gradeComparator maps a sort key to the grade comparator. Grades with a
// null score compare as zero. Unknown keys fall back to id ascending.
func gradeComparator(key string) func(a, b models.Grade) bool {
	switch key {
	case "score":
		return func(a, b models.Grade) bool { return averageOrZero(a.Score) < averageOrZero(b.Score) }
	case "score_desc":
		return func(a, b models.Grade) bool { return averageOrZero(a.Score) > averageOrZero(b.Score) }
	case "name":
		return func(a, b models.Grade) bool {
			return strings.ToLower(gradeStudentName(a)) < strings.ToLower(gradeStudentName(b))
		}
	case "name_desc":
		return func(a, b models.Grade) bool {
			return strings.ToLower(gradeStudentName(a)) > strings.ToLower(gradeStudentName(b))
		}
	default:
		return func(a, b models.Grade) bool { return a.ID < b.ID }
	}
}

func gradeStudentName(g models.Grade) string {
	if g.Student == nil {
		return ""
	}
	return g.Student.FullName()
}

// Upsert creates or updates the grade for a (student, module) pair. The
// selection is validated locally; an incomplete pair never reaches the
// backend. Create-or-update resolution itself is the backend's job.
func (s *gradeService) Upsert(ctx context.Context, req dto.UpsertGradeRequest) (models.Grade, error) {
	if req.StudentID <= 0 || req.ModuleID <= 0 {
		return models.Grade{}, apperrors.ErrMissingGradeSelection
	}

	raw, err := s.api.Post(ctx, "/grades/upsert", req)
	if err != nil {
		return models.Grade{}, err
	}

	score := req.Score
	fallback := models.Grade{
		Score:   &score,
		Student: &models.Student{ID: req.StudentID},
		Module:  &models.Module{ID: req.ModuleID},
	}
	return decodeEntity(raw, fallback), nil
}

// Delete removes the grade
func (s *gradeService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/grades/%d", id))
}
