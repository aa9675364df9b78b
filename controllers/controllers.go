package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/blogem/enterprise-api/services"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controllers holds all controller instances
type Controllers struct {
	Enterprise *EnterpriseController
	Health     *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, store Pinger, storeName string) *Controllers {
	return &Controllers{
		Enterprise: NewEnterpriseController(services),
		Health:     NewHealthController(store, storeName),
	}
}

// errorResponse is the body of every non-2xx JSON response
type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON encodes data as the response body with the given status code
func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to encode response")
	}
}

// writeError writes {"detail": detail} with the given status code
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, detail string) {
	writeJSON(w, r, statusCode, errorResponse{Detail: detail})
}
