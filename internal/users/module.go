// Package users provides the account bounded context module: registration
// and login with token issuance.
package users

import (
	apphttp "gig_venues_backend/internal/http"
	"gig_venues_backend/internal/users/handler"
	"gig_venues_backend/internal/users/repository"
	"gig_venues_backend/internal/users/service"
	"gig_venues_backend/platform/config"
	"gig_venues_backend/platform/logger"
	"gig_venues_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the users bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the users module with all its dependencies.
func NewModule(pool *pgxpool.Pool, cfg *config.Config, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val, log)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "users"
}

// RegisterRoutes mounts the credential routes with the stricter rate limit.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	userGroup := ctx.Engine.Group("/user")
	userGroup.Use(ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterRoutes(userGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
