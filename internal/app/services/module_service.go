package services

import (
	"context"
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

// moduleService implements ModuleService on top of the backend client
type moduleService struct {
	api    *upstream.Client
	logger zerolog.Logger
}

// NewModuleService creates a new module service instance
func NewModuleService(api *upstream.Client, logger zerolog.Logger) ModuleService {
	return &moduleService{
		api:    api,
		logger: logger,
	}
}

// List fetches modules and grades concurrently and merges the per-module
// average into each row before filtering and sorting
func (s *moduleService) List(ctx context.Context, query dto.ListQuery) ([]dto.ModuleView, error) {
	var modules []models.Module
	var grades []models.Grade

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := s.api.Get(gctx, "/modules")
		if err != nil {
			return err
		}
		modules = hal.Collection[models.Module](raw, "modules")
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

	stats := derive.ComputeGradeStats(grades)

	views := make([]dto.ModuleView, 0, len(modules))
	for _, m := range modules {
		avg, ok := stats.ModuleAverage(m.ID)
		view := dto.ModuleView{
			Module:         m,
			AverageDisplay: derive.FormatAverage(avg, ok),
		}
		if ok {
			value := avg
			view.Average = &value
		}
		views = append(views, view)
	}

	views = derive.Filter(views, query.Query, func(v dto.ModuleView) []string {
		return []string{v.Code, v.Name, strconv.FormatInt(v.ID, 10)}
	})
	return derive.SortBy(views, moduleComparator(query.Sort)), nil
}

// moduleComparator maps a sort key to the module view comparator.
// Unknown keys fall back to code ascending.
func moduleComparator(key string) func(a, b dto.ModuleView) bool {
	switch key {
	case "code_desc":
		return func(a, b dto.ModuleView) bool {
			return strings.ToLower(a.Code) > strings.ToLower(b.Code)
		}
	case "name":
		return func(a, b dto.ModuleView) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case "name_desc":
		return func(a, b dto.ModuleView) bool {
			return strings.ToLower(a.Name) > strings.ToLower(b.Name)
		}
	case "id":
		return func(a, b dto.ModuleView) bool { return a.ID < b.ID }
	case "score":
		return func(a, b dto.ModuleView) bool { return averageOrZero(a.Average) < averageOrZero(b.Average) }
	case "score_desc":
		return func(a, b dto.ModuleView) bool { return averageOrZero(a.Average) > averageOrZero(b.Average) }
	default:
		return func(a, b dto.ModuleView) bool {
			return strings.ToLower(a.Code) < strings.ToLower(b.Code)
		}
	}
}

// Create submits a new module
func (s *moduleService) Create(ctx context.Context, module models.Module) (models.Module, error) {
	module.ID = 0
	raw, err := s.api.Post(ctx, "/modules", module)
	if err != nil {
		return models.Module{}, err
	}
	return decodeEntity(raw, module), nil
}

// Update submits a full update for the module
func (s *moduleService) Update(ctx context.Context, id int64, module models.Module) (models.Module, error) {
	module.ID = id
	raw, err := s.api.Put(ctx, fmt.Sprintf("/modules/%d", id), module)
	if err != nil {
		return models.Module{}, err
	}
	return decodeEntity(raw, module), nil
}

// Delete removes the module
func (s *moduleService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/modules/%d", id))
}
