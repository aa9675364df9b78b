package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HealthController reports service and store liveness
type HealthController struct {
	store     Pinger
	storeName string
}

// NewHealthController creates a new health controller
func NewHealthController(store Pinger, storeName string) *HealthController {
	return &HealthController{store: store, storeName: storeName}
}

// Index handles GET /health
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	body := map[string]string{
		"status":  "healthy",
		"service": "enterprise-api",
		"store":   c.storeName,
	}

	if err := c.store.Ping(ctx); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("store ping failed")
		body["status"] = "unhealthy"
		writeJSON(w, r, http.StatusServiceUnavailable, body)
		return
	}

	writeJSON(w, r, http.StatusOK, body)
}
