// Package venues provides the venue bounded context module: the public
// listing, per-owner management, and picture-backed creation.
package venues

import (
	apphttp "gig_venues_backend/internal/http"
	"gig_venues_backend/internal/media"
	"gig_venues_backend/internal/venues/handler"
	"gig_venues_backend/internal/venues/repository"
	"gig_venues_backend/internal/venues/service"
	"gig_venues_backend/platform/config"
	"gig_venues_backend/platform/logger"
	"gig_venues_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the venues bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the venues module. The pipeline is
// built by the composition root because it carries the object store client.
func NewModule(pool *pgxpool.Pool, cfg *config.Config, val *validator.Validator, log *logger.Logger, pipeline *media.Pipeline) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, pipeline, val, cfg, log)

	return &Module{handler: h}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "venues"
}

// RegisterRoutes mounts the listing routes publicly and the management
// routes behind the token check.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.Engine.Group("/venues")
	m.handler.RegisterPublicRoutes(public)

	protected := ctx.Engine.Group("/venues")
	protected.Use(ctx.AuthMiddleware)
	m.handler.RegisterProtectedRoutes(protected)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
