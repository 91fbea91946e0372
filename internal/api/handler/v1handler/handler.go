// Package v1handler implements the v1 HTTP API: requesting exports, listing
// and fetching packages, and downloading finished artifacts.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"metashare/internal/export"
	"metashare/pkg/logger"
	"metashare/pkg/serrors"

	"go.uber.org/zap"
)

// Deps carries the collaborators the handler needs.
type Deps struct {
	// Service manages export runs.
	Service export.Service
}

// Handler serves the v1 API routes.
type Handler struct {
	service export.Service
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{service: deps.Service}
}

// Register mounts all v1 routes on the given mux. Paths are relative; the
// server mounts the mux under its version prefix.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /packages", h.requestExport)
	mux.HandleFunc("GET /packages", h.listPackages)
	mux.HandleFunc("GET /packages/{id}", h.getPackage)
	mux.HandleFunc("GET /packages/{id}/artifact", h.getArtifact)
	mux.HandleFunc("DELETE /packages/{id}", h.deletePackage)
}

// writeJSON renders v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the uniform error payload of the v1 API.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps semantic error kinds to HTTP status codes. Unclassified
// errors are logged and reported as a generic 500 without leaking details.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "internal error serving request", zap.Error(err))
		writeJSON(w, status, errorResponse{Error: "internal error"})

		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
