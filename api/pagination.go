package api

import (
	"net/http"
	"strconv"
)

// PaginationParams holds pagination query parameters
type PaginationParams struct {
	Offset int `json:"offset"` // 0-based item offset
	Limit  int `json:"limit"`  // Items per page
}

// ParsePaginationParams extracts pagination parameters from HTTP request.
// Missing, malformed, or negative values fall back to defaults; limit is
// capped at maxLimit.
func ParsePaginationParams(r *http.Request, defaultLimit int, maxLimit int) PaginationParams {
	offset := 0
	limit := defaultLimit

	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
			if limit > maxLimit {
				limit = maxLimit
			}
		}
	}

	return PaginationParams{
		Offset: offset,
		Limit:  limit,
	}
}
