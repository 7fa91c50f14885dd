package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/derive"
	"github.com/okandemir/campusgate/internal/pkg/hal"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// registrationService implements RegistrationService on top of the backend client
type registrationService struct {
	api    *upstream.Client
	logger zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(api *upstream.Client, logger zerolog.Logger) RegistrationService {
	return &registrationService{
		api:    api,
		logger: logger,
	}
}

// List fetches the enrollment collection. The embedded student and module
// snapshots carried by each registration are searched directly; no second
// fetch is issued.
func (s *registrationService) List(ctx context.Context, query dto.ListQuery) ([]models.Registration, error) {
	raw, err := s.api.Get(ctx, "/registrations")
	if err != nil {
		return nil, err
	}
	registrations := hal.Collection[models.Registration](raw, "registrations")

	registrations = derive.Filter(registrations, query.Query, func(r models.Registration) []string {
		fields := []string{strconv.FormatInt(r.ID, 10)}
		if r.Student != nil {
			fields = append(fields, r.Student.FullName(), r.Student.UserName)
		}
		if r.Module != nil {
			fields = append(fields, r.Module.Code, r.Module.Name)
		}
		return fields
	})
	return derive.SortBy(registrations, registrationComparator(query.Sort)), nil
}

// registrationComparator maps a sort key to the registration comparator.
// Unknown keys fall back to id ascending.
func registrationComparator(key string) func(a, b models.Registration) bool {
	switch key {
	case "name":
		return func(a, b models.Registration) bool {
			return strings.ToLower(registrationStudentName(a)) < strings.ToLower(registrationStudentName(b))
		}
	case "name_desc":
		return func(a, b models.Registration) bool {
			return strings.ToLower(registrationStudentName(a)) > strings.ToLower(registrationStudentName(b))
		}
	case "code":
		return func(a, b models.Registration) bool {
			return strings.ToLower(registrationModuleCode(a)) < strings.ToLower(registrationModuleCode(b))
		}
	case "code_desc":
		return func(a, b models.Registration) bool {
			return strings.ToLower(registrationModuleCode(a)) > strings.ToLower(registrationModuleCode(b))
		}
	default:
		return func(a, b models.Registration) bool { return a.ID < b.ID }
	}
}

func registrationStudentName(r models.Registration) string {
	if r.Student == nil {
		return ""
	}
	return r.Student.FullName()
}

func registrationModuleCode(r models.Registration) string {
	if r.Module == nil {
		return ""
	}
	return r.Module.Code
}

// Create submits a new registration
func (s *registrationService) Create(ctx context.Context, registration models.Registration) (models.Registration, error) {
	registration.ID = 0
	raw, err := s.api.Post(ctx, "/registrations", registration)
	if err != nil {
		return models.Registration{}, err
	}
	return decodeEntity(raw, registration), nil
}

// Update submits a full update for the registration
func (s *registrationService) Update(ctx context.Context, id int64, registration models.Registration) (models.Registration, error) {
	registration.ID = id
	raw, err := s.api.Put(ctx, fmt.Sprintf("/registrations/%d", id), registration)
	if err != nil {
		return models.Registration{}, err
	}
	return decodeEntity(raw, registration), nil
}

// Delete removes the registration
func (s *registrationService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/registrations/%d", id))
}
