// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles the /healthz endpoint for service health checks.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a HealthHandler. store may be nil, in which case
// only process liveness is reported.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health responds according to the HTTP method and prevents caching.
func (h *HealthHandler) Health(c *gin.Context) {
	// Explicitly prevent caching.
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		if h.store != nil {
			if err := h.store.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(503, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ok"})
	}
}
