package v1handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metashare/internal/api/handler/v1handler"
	"metashare/internal/export"
	mockexport "metashare/internal/export/mock"
	"metashare/pkg/domain"
	"metashare/pkg/logger"
	"metashare/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// newTestHandler mounts a fresh handler on a mux backed by a mock service.
func newTestHandler(t *testing.T) (*mockexport.MockService, *http.ServeMux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mockexport.NewMockService(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Service: service}).Register(mux)

	return service, mux
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestErrorMapping_PlainErrorIsGenericInternal(t *testing.T) {
	service, mux := newTestHandler(t)

	id := uuid.New()
	service.EXPECT().
		Get(gomock.Any(), domain.PackageID(id)).
		Return(nil, errors.New("pg down"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/"+id.String(), nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// internals must not leak to the client
	require.Equal(t, "internal error", decodeError(t, rec))
}

func TestErrorMapping_SemanticKinds(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", serrors.With(serrors.ErrNotFound, "no such package"), http.StatusNotFound, "no such package"},
		{"bad request", serrors.With(serrors.ErrBadRequest, "invalid cursor"), http.StatusBadRequest, "invalid cursor"},
		{"conflict", serrors.KindOnly(serrors.ErrConflict), http.StatusConflict, "CONFLICT"},
		{"internal kind", serrors.With(serrors.ErrInternal, "export failed"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, mux := newTestHandler(t)

			id := uuid.New()
			service.EXPECT().
				Get(gomock.Any(), domain.PackageID(id)).
				Return(nil, tc.err)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages/"+id.String(), nil))

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.body, decodeError(t, rec))
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

// samplePackage constructs a minimal domain.Package for tests.
func samplePackage(status domain.ExportStatus) domain.Package {
	return domain.Package{
		ID:          domain.PackageID(uuid.New()),
		GroupUUID:   uuid.New(),
		Name:        "Reference Concepts",
		Description: "concept dictionary snapshot",
		Version:     1,
		Items: []domain.Item{
			{Type: "Concept", UUID: uuid.New()},
		},
		Status: status,
	}
}

var _ export.Service = (*mockexport.MockService)(nil)
