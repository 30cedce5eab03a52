package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus/storage"
)

func TestGetAlertsDefaults(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/alerts")
	require.Equal(t, http.StatusOK, rec.Code)

	var result storage.QueryResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 100, result.Limit)
	assert.Equal(t, 0, result.Offset)
	assert.Len(t, result.Items, 3)
}

func TestGetAlertsFiltered(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/alerts?severity=critical&source=ids")
	require.Equal(t, http.StatusOK, rec.Code)

	var result storage.QueryResult
	decodeBody(t, rec, &result)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "a3", result.Items[0].ID)
}

func TestGetAlertsSearch(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/alerts?search=scan")
	require.Equal(t, http.StatusOK, rec.Code)

	var result storage.QueryResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 2, result.Total)
}

func TestGetAlertsPaged(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/alerts?limit=2&offset=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var result storage.QueryResult
	decodeBody(t, rec, &result)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Limit)
	assert.Equal(t, 2, result.Offset)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a3", result.Items[0].ID)
}

func TestGetAlertByID(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/alerts/a2")
	require.Equal(t, http.StatusOK, rec.Code)

	var alert map[string]interface{}
	decodeBody(t, rec, &alert)
	assert.Equal(t, "a2", alert["id"])
}

func TestGetAlertNotFound(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/alerts/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Alert not found", resp.Error)
}

func TestGetStats(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalAlerts int            `json:"total_alerts"`
		BySeverity  map[string]int `json:"by_severity"`
	}
	decodeBody(t, rec, &stats)
	assert.Equal(t, 3, stats.TotalAlerts)
	assert.Equal(t, map[string]int{"critical": 2, "low": 1}, stats.BySeverity)
}

func TestGetAdvancedAnalytics(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/api/analytics/advanced")
	require.Equal(t, http.StatusOK, rec.Code)

	var report map[string]interface{}
	decodeBody(t, rec, &report)
	for _, facet := range []string{
		"threat_intelligence", "risk_analysis", "geographic",
		"compliance", "cost_impact", "correlation", "time_patterns",
	} {
		assert.Contains(t, report, facet)
	}
}

func TestGetPredictiveAnalytics(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)
	api.now = func() time.Time {
		return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	}

	rec := doRequest(api, "GET", "/api/analytics/predictive")
	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		TrendAnalysis struct {
			Direction string `json:"direction"`
		} `json:"trend_analysis"`
		DailyMetrics struct {
			Alerts map[string]int `json:"alerts"`
		} `json:"daily_metrics"`
	}
	decodeBody(t, rec, &report)
	assert.Equal(t, "stable", report.TrendAnalysis.Direction)
	assert.Equal(t, map[string]int{"2025-08-30": 2, "2025-08-31": 1}, report.DailyMetrics.Alerts)
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	decodeBody(t, rec, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 3, health.Alerts)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t, nil, sampleAlerts()...)

	rec := doRequest(api, "GET", "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
