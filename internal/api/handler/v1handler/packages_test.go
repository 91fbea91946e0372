package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"metashare/internal/export"
	"metashare/pkg/domain"
	"metashare/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequestExport_Accepted(t *testing.T) {
	service, mux := newTestHandler(t)

	item := domain.Item{Type: "Concept", UUID: uuid.New()}
	pkg := samplePackage(domain.ExportStatusPending)

	service.EXPECT().
		Request(gomock.Any(), export.ExportRequest{
			Name:        "Reference Concepts",
			Description: "concept dictionary snapshot",
			Items:       []domain.Item{item},
			// persist defaults to true when the field is absent
			Persist: true,
		}).
		Return(&pkg, nil)

	body := `{
		"name": "Reference Concepts",
		"description": "concept dictionary snapshot",
		"items": [{"type": "Concept", "uuid": "` + item.UUID.String() + `"}]
	}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var got domain.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, pkg.ID, got.ID)
	require.Equal(t, domain.ExportStatusPending, got.Status)
}

func TestRequestExport_PersistOptOut(t *testing.T) {
	service, mux := newTestHandler(t)

	group := uuid.New()
	pkg := samplePackage(domain.ExportStatusPending)

	service.EXPECT().
		Request(gomock.Any(), export.ExportRequest{
			Name:        "n",
			Description: "d",
			GroupUUID:   group,
			Persist:     false,
		}).
		Return(&pkg, nil)

	body := `{"name": "n", "description": "d", "groupUuid": "` + group.String() + `", "persist": false}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRequestExport_MalformedBody(t *testing.T) {
	_, mux := newTestHandler(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader("{not json")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestExport_ConflictFromService(t *testing.T) {
	service, mux := newTestHandler(t)

	service.EXPECT().
		Request(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "group already has an export in flight"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/packages",
		strings.NewReader(`{"name": "n", "description": "d"}`)))

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "group already has an export in flight", decodeError(t, rec))
}

func TestListPackages_Defaults(t *testing.T) {
	service, mux := newTestHandler(t)

	pkgs := []domain.Package{
		samplePackage(domain.ExportStatusCompleted),
		samplePackage(domain.ExportStatusPending),
	}
	service.EXPECT().
		List(gomock.Any(), domain.ExportStatus(""), "", uint(20)).
		Return(pkgs, "2026-02-10T12:00:00Z", nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Packages   []domain.Package `json:"packages"`
		NextCursor string           `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Packages, 2)
	require.Equal(t, "2026-02-10T12:00:00Z", got.NextCursor)
}

func TestListPackages_FiltersPassedThrough(t *testing.T) {
	service, mux := newTestHandler(t)

	service.EXPECT().
		List(gomock.Any(), domain.ExportStatusFailed, "c0", uint(5)).
		Return([]domain.Package{}, "", nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages?status=FAILED&cursor=c0&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListPackages_InvalidLimit(t *testing.T) {
	for _, raw := range []string{"0", "101", "abc", "-1"} {
		t.Run(raw, func(t *testing.T) {
			_, mux := newTestHandler(t)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages?limit="+raw, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "invalid limit", decodeError(t, rec))
		})
	}
}

func TestGetPackage_OK(t *testing.T) {
	service, mux := newTestHandler(t)

	pkg := samplePackage(domain.ExportStatusCompleted)
	service.EXPECT().
		Get(gomock.Any(), pkg.ID).
		Return(&pkg, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/"+pkg.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, pkg.ID, got.ID)
	require.Equal(t, pkg.Name, got.Name)
}

func TestGetPackage_InvalidID(t *testing.T) {
	_, mux := newTestHandler(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/not-a-uuid", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetArtifact_OK(t *testing.T) {
	service, mux := newTestHandler(t)

	pkg := samplePackage(domain.ExportStatusCompleted)
	pkg.Serialized = &domain.SerializedPackage{
		Header: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<package/>",
		Chunks: []string{"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<metadata/>"},
	}
	service.EXPECT().
		Get(gomock.Any(), pkg.ID).
		Return(&pkg, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/"+pkg.ID.String()+"/artifact", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.SerializedPackage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, pkg.Serialized.Header, got.Header)
	require.Equal(t, pkg.Serialized.Chunks, got.Chunks)
}

func TestGetArtifact_NotCompleted(t *testing.T) {
	service, mux := newTestHandler(t)

	pkg := samplePackage(domain.ExportStatusPending)
	service.EXPECT().
		Get(gomock.Any(), pkg.ID).
		Return(&pkg, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/"+pkg.ID.String()+"/artifact", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "package has no artifact", decodeError(t, rec))
}

func TestGetArtifact_CompletedButDiscarded(t *testing.T) {
	service, mux := newTestHandler(t)

	// completed without a stored artifact, e.g. requested with persist=false
	pkg := samplePackage(domain.ExportStatusCompleted)
	service.EXPECT().
		Get(gomock.Any(), pkg.ID).
		Return(&pkg, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/"+pkg.ID.String()+"/artifact", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePackage_NoContent(t *testing.T) {
	service, mux := newTestHandler(t)

	id := domain.PackageID(uuid.New())
	service.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/packages/"+id.String(), nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestDeletePackage_NotFound(t *testing.T) {
	service, mux := newTestHandler(t)

	id := domain.PackageID(uuid.New())
	service.EXPECT().
		Delete(gomock.Any(), id).
		Return(serrors.With(serrors.ErrNotFound, "no package with id %s", id))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/packages/"+id.String(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
