package api

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"argus/analytics"
	"argus/config"
	"argus/core"
	"argus/storage"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dataset.Path = "testdata.json"
	cfg.API.Port = 8000
	cfg.API.AllowedOrigins = []string{"*"}
	cfg.API.DefaultPageSize = 100
	cfg.API.MaxPageSize = 1000
	cfg.API.CacheSize = 16
	cfg.API.RateLimit.RequestsPerSecond = 1000
	cfg.API.RateLimit.Burst = 1000
	cfg.Log.Level = "info"
	return cfg
}

// newTestAPI builds an API over the given alerts with test defaults.
func newTestAPI(t *testing.T, cfg *config.Config, alerts ...*core.Alert) *API {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	for i, alert := range alerts {
		if alert.Identity() == "" {
			alert.ID = fmt.Sprintf("alert-%d", i+1)
		}
	}

	logger := zap.NewNop().Sugar()
	store, err := storage.NewStore(alerts, logger)
	require.NoError(t, err)

	api := NewAPI(store, analytics.NewEngine(store, logger), cfg, logger)
	t.Cleanup(func() { close(api.stopCh) })
	return api
}

// doRequest runs a request through the full router and middleware chain.
func doRequest(api *API, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "10.1.2.3:55555"
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func sampleAlerts() []*core.Alert {
	return []*core.Alert{
		{
			ID:        "a1",
			Severity:  "critical",
			Status:    "open",
			Source:    "firewall",
			Type:      "intrusion_attempt",
			Message:   "Blocked inbound scan",
			Timestamp: "2025-08-30T10:00:00Z",
		},
		{
			ID:        "a2",
			Severity:  "low",
			Status:    "resolved",
			Source:    "ids",
			Type:      "port_scan",
			Message:   "Scan from known host",
			Timestamp: "2025-08-30T11:00:00Z",
		},
		{
			ID:        "a3",
			Severity:  "critical",
			Status:    "open",
			Source:    "ids",
			Type:      "malware_detection",
			Message:   "Malware signature match",
			Timestamp: "2025-08-31T09:00:00Z",
		},
	}
}
