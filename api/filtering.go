package api

import (
	"net/http"
	"strings"

	"argus/core"
)

// ParseAlertFilters extracts alert filtering parameters from HTTP request.
// Unrecognized query parameters are ignored; empty values mean no filter.
func ParseAlertFilters(r *http.Request) core.AlertFilters {
	var filters core.AlertFilters

	// Normalize severity and status to lowercase to match dataset values
	if severity := r.URL.Query().Get("severity"); severity != "" {
		filters.Severity = strings.ToLower(strings.TrimSpace(severity))
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = strings.ToLower(strings.TrimSpace(status))
	}

	// Source matched verbatim
	if source := r.URL.Query().Get("source"); source != "" {
		filters.Source = strings.TrimSpace(source)
	}

	if search := r.URL.Query().Get("search"); search != "" {
		filters.Search = strings.TrimSpace(search)
	}

	return filters
}
