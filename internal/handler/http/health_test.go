package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/freightpay/investigator/internal/service"
	"github.com/freightpay/investigator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_OK(t *testing.T) {
	svcs := &service.Services{
		SearchService:   &stubSearchService{},
		ShipmentService: &stubShipmentService{},
		HealthService:   &stubHealthService{resp: models.HealthResponse{Status: "ok", OTMHTTPStatus: 200}},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 200, resp.OTMHTTPStatus)
}

func TestHealth_ErrorStillAnswers200(t *testing.T) {
	svcs := &service.Services{
		SearchService:   &stubSearchService{},
		ShipmentService: &stubShipmentService{},
		HealthService:   &stubHealthService{resp: models.HealthResponse{Status: "error", Detail: "connection refused"}},
	}
	h := newTestHandler(t, svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Detail, "connection refused")
}

func TestVersion_ReturnsConfiguredVersion(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/version")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp versionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "test-version", resp.Version)
}
