package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/derive"
	"github.com/okandemir/campusgate/internal/pkg/hal"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// studentService implements StudentService on top of the backend client
type studentService struct {
	api    *upstream.Client
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(api *upstream.Client, logger zerolog.Logger) StudentService {
	return &studentService{
		api:    api,
		logger: logger,
	}
}

// List fetches students and grades concurrently, merges the derived average
// into each row and applies the view's filter and sort. Either fetch
// failing aborts the whole page load; partial data is never returned.
func (s *studentService) List(ctx context.Context, query dto.ListQuery) ([]dto.StudentView, error) {
	var students []models.Student
	var grades []models.Grade

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := s.api.Get(gctx, "/students")
		if err != nil {
			return err
		}
		students = hal.Collection[models.Student](raw, "students")
		return nil
	})
	g.Go(func() error {
		raw, err := s.api.Get(gctx, "/grades")
		if err != nil {
			return err
		}
		grades = hal.Collection[models.Grade](raw, "grades")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// One scan over the grade list serves every average lookup below
	stats := derive.ComputeGradeStats(grades)

	views := make([]dto.StudentView, 0, len(students))
	for _, st := range students {
		avg, ok := stats.StudentAverage(st.ID)
		view := dto.StudentView{
			Student:        st,
			AverageDisplay: derive.FormatAverage(avg, ok),
		}
		if ok {
			value := avg
			view.Average = &value
		}
		views = append(views, view)
	}

	views = derive.Filter(views, query.Query, func(v dto.StudentView) []string {
		return []string{v.FullName(), v.UserName, strconv.FormatInt(v.ID, 10)}
	})
	return derive.SortBy(views, studentComparator(query.Sort)), nil
}

// studentComparator maps a sort key to the student view comparator.
// Unknown keys fall back to name ascending.
func studentComparator(key string) func(a, b dto.StudentView) bool {
	switch key {
	case "name_desc":
		return func(a, b dto.StudentView) bool {
			return strings.ToLower(a.FullName()) > strings.ToLower(b.FullName())
		}
	case "id":
		return func(a, b dto.StudentView) bool { return a.ID < b.ID }
	case "score":
		return func(a, b dto.StudentView) bool { return averageOrZero(a.Average) < averageOrZero(b.Average) }
	case "score_desc":
		return func(a, b dto.StudentView) bool { return averageOrZero(a.Average) > averageOrZero(b.Average) }
	default:
		return func(a, b dto.StudentView) bool {
			return strings.ToLower(a.FullName()) < strings.ToLower(b.FullName())
		}
	}
}

// averageOrZero degrades a missing average to zero for comparison only
func averageOrZero(avg *float64) float64 {
	if avg == nil {
		return 0
	}
	return *avg
}

// Create submits a new student; the id field stays unset so the backend
// assigns one
func (s *studentService) Create(ctx context.Context, student models.Student) (models.Student, error) {
	student.ID = 0
	raw, err := s.api.Post(ctx, "/students", student)
	if err != nil {
		return models.Student{}, err
	}
	return decodeEntity(raw, student), nil
}

// Update submits a full update for the student
func (s *studentService) Update(ctx context.Context, id int64, student models.Student) (models.Student, error) {
	student.ID = id
	raw, err := s.api.Put(ctx, fmt.Sprintf("/students/%d", id), student)
	if err != nil {
		return models.Student{}, err
	}
	return decodeEntity(raw, student), nil
}

// Delete removes the student
func (s *studentService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/students/%d", id))
}

// decodeEntity decodes the backend's echo of a written entity, falling back
// to the submitted value when the response body is empty or malformed
func decodeEntity[T any](raw json.RawMessage, fallback T) T {
	if len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}
