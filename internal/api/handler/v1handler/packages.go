package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"metashare/internal/export"
	"metashare/pkg/domain"
	"metashare/pkg/serrors"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// exportRequestBody is the payload for requesting a new export.
type exportRequestBody struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	GroupUUID   *uuid.UUID    `json:"groupUuid,omitempty"`
	Items       []domain.Item `json:"items"`
	Persist     *bool         `json:"persist,omitempty"`
}

// packageList is the paginated response of the list endpoint.
type packageList struct {
	Packages   []domain.Package `json:"packages"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

func (h *Handler) requestExport(w http.ResponseWriter, r *http.Request) {
	var body exportRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	req := export.ExportRequest{
		Name:        body.Name,
		Description: body.Description,
		Items:       body.Items,
		// artifacts are persisted unless the caller opts out
		Persist: body.Persist == nil || *body.Persist,
	}
	if body.GroupUUID != nil {
		req.GroupUUID = *body.GroupUUID
	}

	pkg, err := h.service.Request(r.Context(), req)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, pkg)
}

func (h *Handler) listPackages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := uint(defaultPageSize)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 || parsed > maxPageSize {
			writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	pkgs, next, err := h.service.List(r.Context(),
		domain.ExportStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, packageList{Packages: pkgs, NextCursor: next})
}

func (h *Handler) getPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := packageIDFromPath(w, r)
	if !ok {
		return
	}

	pkg, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pkg)
}

func (h *Handler) getArtifact(w http.ResponseWriter, r *http.Request) {
	id, ok := packageIDFromPath(w, r)
	if !ok {
		return
	}

	pkg, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if pkg.Status != domain.ExportStatusCompleted || pkg.Serialized == nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "package has no artifact"))

		return
	}

	writeJSON(w, http.StatusOK, pkg.Serialized)
}

func (h *Handler) deletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := packageIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// packageIDFromPath parses the {id} path segment. It writes a bad-request
// response and returns false when the segment is not a UUID.
func packageIDFromPath(w http.ResponseWriter, r *http.Request) (domain.PackageID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid package id"))

		return domain.PackageID{}, false
	}

	return domain.PackageID(id), true
}
