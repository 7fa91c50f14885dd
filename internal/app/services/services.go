// Package services implements the gateway's page-level operations: each
// service fetches the collections a view needs from the records backend,
// normalizes them, derives the rendered list and proxies writes through.
// Fetched data is a per-request snapshot; nothing is cached across requests.
package services

import (
	"context"
	"encoding/json"

	"github.com/okandemir/campusgate/internal/app/models"
	"github.com/okandemir/campusgate/internal/app/models/dto"
)

// StudentService exposes the student collection with derived averages
type StudentService interface {
	List(ctx context.Context, query dto.ListQuery) ([]dto.StudentView, error)
	Create(ctx context.Context, student models.Student) (models.Student, error)
	Update(ctx context.Context, id int64, student models.Student) (models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// ModuleService exposes the module collection with derived averages
type ModuleService interface {
	List(ctx context.Context, query dto.ListQuery) ([]dto.ModuleView, error)
	Create(ctx context.Context, module models.Module) (models.Module, error)
	Update(ctx context.Context, id int64, module models.Module) (models.Module, error)
	Delete(ctx context.Context, id int64) error
}

// RegistrationService exposes the enrollment collection
type RegistrationService interface {
	List(ctx context.Context, query dto.ListQuery) ([]models.Registration, error)
	Create(ctx context.Context, registration models.Registration) (models.Registration, error)
	Update(ctx context.Context, id int64, registration models.Registration) (models.Registration, error)
	Delete(ctx context.Context, id int64) error
}

// GradeService exposes the grade collection and the pair upsert
type GradeService interface {
	List(ctx context.Context, query dto.ListQuery) ([]models.Grade, error)
	Upsert(ctx context.Context, req dto.UpsertGradeRequest) (models.Grade, error)
	Delete(ctx context.Context, id int64) error
}

// OperationService exposes the audit trail and the revert action
type OperationService interface {
	List(ctx context.Context) ([]map[string]interface{}, error)
	Revert(ctx context.Context, id int64) error
}

// AuthService proxies authentication against the backend's /auth endpoints
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (json.RawMessage, error)
	Register(ctx context.Context, req dto.RegisterRequest) (json.RawMessage, error)
	Me(ctx context.Context) (json.RawMessage, error)
}
