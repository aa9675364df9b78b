package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/blogem/enterprise-api/models"
	"github.com/blogem/enterprise-api/services"
)

const (
	msgNotFound   = "Enterprise not found"
	msgNotUpdated = "Enterprise not updated"
	msgDeleted    = "Enterprise deleted successfully"
)

// EnterpriseController handles enterprise CRUD requests
type EnterpriseController struct {
	services *services.Services
}

// NewEnterpriseController creates a new enterprise controller
func NewEnterpriseController(services *services.Services) *EnterpriseController {
	return &EnterpriseController{
		services: services,
	}
}

// Create handles POST /enterprise/
func (c *EnterpriseController) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := models.DecodeEnterprise(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	logUnknownFields(r, fields)

	created, err := c.services.Enterprise.Create(r.Context(), fields)
	if err != nil {
		c.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// Get handles GET /enterprise/{siret}
func (c *EnterpriseController) Get(w http.ResponseWriter, r *http.Request) {
	siret, ok := parseSiret(w, r)
	if !ok {
		return
	}

	enterprise, err := c.services.Enterprise.GetBySiret(r.Context(), siret)
	if err != nil {
		c.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, enterprise)
}

// Update handles PUT /enterprise/{siret}
func (c *EnterpriseController) Update(w http.ResponseWriter, r *http.Request) {
	siret, ok := parseSiret(w, r)
	if !ok {
		return
	}

	fields, err := models.DecodeEnterprise(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	logUnknownFields(r, fields)

	updated, err := c.services.Enterprise.UpdateBySiret(r.Context(), siret, fields)
	if err != nil {
		c.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /enterprise/{siret}
func (c *EnterpriseController) Delete(w http.ResponseWriter, r *http.Request) {
	siret, ok := parseSiret(w, r)
	if !ok {
		return
	}

	if err := c.services.Enterprise.DeleteBySiret(r.Context(), siret); err != nil {
		c.handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": msgDeleted})
}

// handleError maps service errors onto HTTP responses
func (c *EnterpriseController) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrEnterpriseNotFound):
		writeError(w, r, http.StatusNotFound, msgNotFound)
	case errors.Is(err, services.ErrEnterpriseNotUpdated):
		writeError(w, r, http.StatusBadRequest, msgNotUpdated)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("enterprise store operation failed")
		writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func logUnknownFields(r *http.Request, fields models.Enterprise) {
	if unknown := fields.UnknownFields(); len(unknown) > 0 {
		zerolog.Ctx(r.Context()).Debug().Strs("fields", unknown).Msg("request carries fields outside the registry schema")
	}
}

// parseSiret reads the {siret} path parameter. It writes a 422 response and
// returns false when the value is not an integer.
func parseSiret(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "siret")
	siret, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "siret must be an integer, got "+strconv.Quote(raw))
		return 0, false
	}
	return siret, true
}
