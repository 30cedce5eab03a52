package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"argus/storage"

	"github.com/gorilla/mux"
)

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Alerts int    `json:"alerts"`
}

// getAlerts handles GET /api/alerts with filtering and pagination. Encoded
// pages are memoized in the response cache keyed by the normalized query.
func (a *API) getAlerts(w http.ResponseWriter, r *http.Request) {
	key := cacheKey(r.URL.Query())
	if body, ok := a.cache.Get(key); ok {
		a.respondRaw(w, body, http.StatusOK)
		return
	}

	filters := ParseAlertFilters(r)
	pagination := ParsePaginationParams(r, a.config.API.DefaultPageSize, a.config.API.MaxPageSize)

	result := a.store.Query(&filters, pagination.Offset, pagination.Limit)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode alerts", err, a.logger)
		return
	}
	body := buf.Bytes()
	a.cache.Add(key, body)
	a.respondRaw(w, body, http.StatusOK)
}

// getAlert handles GET /api/alerts/{id}
func (a *API) getAlert(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	alert, err := a.store.Get(id)
	if err != nil {
		if errors.Is(err, storage.ErrAlertNotFound) {
			writeError(w, http.StatusNotFound, "Alert not found", err, a.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch alert", err, a.logger)
		return
	}

	a.respondJSON(w, alert, http.StatusOK)
}

// getStats handles GET /api/stats
func (a *API) getStats(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.engine.BasicStats(), http.StatusOK)
}

// getAdvancedAnalytics handles GET /api/analytics/advanced
func (a *API) getAdvancedAnalytics(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.engine.Advanced(), http.StatusOK)
}

// getPredictiveAnalytics handles GET /api/analytics/predictive. The trend
// window ends at request time.
func (a *API) getPredictiveAnalytics(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, a.engine.Trend(a.now()), http.StatusOK)
}

// healthCheck handles GET /health
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, HealthResponse{
		Status: "ok",
		Alerts: a.store.Len(),
	}, http.StatusOK)
}
