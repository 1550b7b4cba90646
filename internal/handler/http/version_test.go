package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/service"
	"github.com/MKhiriev/go-manifest-sync/models"
)

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfoView {
	return models.BuildInfoView{Version: m.version, Date: "2026-10-01", Commit: "abc123"}
}

func newHandlerWithAppInfo(t *testing.T, svc service.AppInfoService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AppInfoService: svc}, logger.Nop())
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{version: "1.2.3"})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_EmptyVersion(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetBuildInfo(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{version: "1.2.3"})

	rec := httptest.NewRecorder()
	h.getBuildInfo(rec, httptest.NewRequest(http.MethodGet, "/api/version/build", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.BuildInfoView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.BuildInfoView{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}, got)
}
