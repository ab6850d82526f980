package otm

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freightpay/investigator/internal/config"
	"github.com/freightpay/investigator/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOTMConfig(baseURL string) config.OTM {
	return config.OTM{
		BaseURL:        baseURL,
		Username:       "fp_user",
		Password:       "fp_pass",
		Domain:         "KRAFT",
		Subdomain:      "KFNA",
		RequestTimeout: 5 * time.Second,
	}
}

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli, err := NewHTTPClient(testOTMConfig(srv.URL), logger.Nop())
	require.NoError(t, err)

	return cli, srv
}

// ── NewHTTPClient / normalizeBaseURL ─────────────────────────────────────────

func TestNewHTTPClient_EmptyBaseURL_ReturnsError(t *testing.T) {
	_, err := NewHTTPClient(testOTMConfig("   "), logger.Nop())

	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "https kept", in: "https://otm.example.com", want: "https://otm.example.com"},
		{name: "trailing slash trimmed", in: "https://otm.example.com/", want: "https://otm.example.com"},
		{name: "scheme defaulted to https", in: "otm.example.com", want: "https://otm.example.com"},
		{name: "empty", in: "", wantErr: true},
		{name: "scheme only", in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ExecuteSavedQuery ────────────────────────────────────────────────────────

const savedQueryPayload = `{
	"count": 2,
	"hasMore": false,
	"items": [
		{"shipmentXid": "SHP-001", "shipmentName": "CHI TO NYC"},
		{"shipmentXid": "SHP-002", "shipmentName": "CHI TO BOS"}
	]
}`

func TestExecuteSavedQuery_Success(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("parameterValue")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(savedQueryPayload))
	}))

	result, err := cli.ExecuteSavedQuery(context.Background(), "KFNA.FP_SHP_NAME_DIRECT", "CHI TO NYC")

	require.NoError(t, err)
	assert.Equal(t, "/logisticsRestApi/resources-int/v2/custom-actions/savedQueries/shipments/KRAFT/KFNA.FP_SHP_NAME_DIRECT", gotPath)
	assert.Equal(t, "CHI TO NYC", gotQuery)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("fp_user:fp_pass"))
	assert.Equal(t, wantAuth, gotAuth)

	assert.Equal(t, "KFNA.FP_SHP_NAME_DIRECT", result.Query)
	assert.Equal(t, 2, result.Count)
	assert.False(t, result.HasMore)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "SHP-001", result.Items[0].ShipmentXid)
	assert.Equal(t, "SHP-002", result.Items[1].ShipmentXid)
}

func TestExecuteSavedQuery_CountFallsBackToItemCount(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{"shipmentXid": "SHP-001"}]}`))
	}))

	result, err := cli.ExecuteSavedQuery(context.Background(), "KFNA.FP_ORD_DIRECT", "PO-9")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestExecuteSavedQuery_ServerError(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "ORA-00942 table or view does not exist", http.StatusInternalServerError)
	}))

	_, err := cli.ExecuteSavedQuery(context.Background(), "KFNA.FP_ORD_DIRECT", "PO-9")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
	assert.Contains(t, err.Error(), "ORA-00942")
}

func TestExecuteSavedQuery_Unauthorized(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := cli.ExecuteSavedQuery(context.Background(), "KFNA.FP_ORD_DIRECT", "PO-9")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecuteSavedQuery_MalformedPayload(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))

	_, err := cli.ExecuteSavedQuery(context.Background(), "KFNA.FP_ORD_DIRECT", "PO-9")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode saved query")
}

func TestExecuteSavedQuery_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := cli.ExecuteSavedQuery(ctx, "KFNA.FP_ORD_DIRECT", "PO-9")

	require.Error(t, err)
}

// ── GetShipment ──────────────────────────────────────────────────────────────

func TestGetShipment_Success(t *testing.T) {
	var gotPath string
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"shipmentXid": "SHP-001", "shipmentName": "CHI TO NYC", "shipmentAsWork": true}`))
	}))

	shipment, err := cli.GetShipment(context.Background(), "SHP-001")

	require.NoError(t, err)
	assert.Equal(t, "/logisticsRestApi/resources-int/v2/shipments/KRAFT/KFNA.SHP-001", gotPath)
	assert.Equal(t, "SHP-001", shipment.ShipmentXid)
	assert.True(t, shipment.IsFreightPay)
}

func TestGetShipment_NotFound(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := cli.GetShipment(context.Background(), "SHP-404")

	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing_ReturnsStatusCode(t *testing.T) {
	var gotLimit string
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))

	status, err := cli.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1", gotLimit)
}

func TestPing_NonOKStatusIsNotAnError(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	status, err := cli.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestPing_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // dead endpoint

	cli, err := NewHTTPClient(testOTMConfig(srv.URL), logger.Nop())
	require.NoError(t, err)

	_, err = cli.Ping(context.Background())

	require.Error(t, err)
}
