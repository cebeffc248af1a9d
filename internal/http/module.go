// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"gig_venues_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router context.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
// This avoids passing many parameters to each module's RegisterRoutes method.
type RouterContext struct {
	// Engine is the root Gin engine; modules mount their groups on it.
	Engine *gin.Engine
	// AuthMiddleware validates bearer tokens and attaches the caller identity.
	AuthMiddleware gin.HandlerFunc
	// AuthRateLimiter is the stricter rate limiter for credential routes.
	AuthRateLimiter *httpkit.AuthRateLimiter
}
