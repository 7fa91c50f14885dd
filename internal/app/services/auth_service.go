package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/okandemir/campusgate/internal/app/models/dto"
	"github.com/okandemir/campusgate/internal/pkg/upstream"
)

// authService proxies authentication to the backend's /auth endpoints.
// The backend mints the bearer tokens; the gateway only relays them and
// validates signatures locally in the auth middleware.
type authService struct {
	api    *upstream.Client
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(api *upstream.Client, logger zerolog.Logger) AuthService {
	return &authService{
		api:    api,
		logger: logger,
	}
}

// Login exchanges credentials for a bearer token
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (json.RawMessage, error) {
	return s.api.Post(ctx, "/auth/login", req)
}

// Register creates a new account upstream
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (json.RawMessage, error) {
	return s.api.Post(ctx, "/auth/register", req)
}

// Me returns the profile behind the request's bearer token
func (s *authService) Me(ctx context.Context) (json.RawMessage, error) {
	return s.api.Get(ctx, "/auth/me")
}
