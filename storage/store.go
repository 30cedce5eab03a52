package storage

import (
	"go.uber.org/zap"

	"argus/core"
)

// Store is the immutable in-memory alert collection. It is built once at
// startup and never mutated afterwards, so concurrent readers need no
// locking. The store owns its alerts; query results reference the backing
// slice and callers must treat them as read-only.
type Store struct {
	alerts []*core.Alert
	byID   map[string]*core.Alert
	logger *zap.SugaredLogger
}

// QueryResult is the paged response shape for filtered alert queries. Total
// counts the full filtered sequence, not just the returned page.
type QueryResult struct {
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Items  []*core.Alert `json:"items"`
}

// NewStore builds a store from loaded records, indexing by identity in one
// pass. Records without any identity stay in All() but are left out of the
// index, and the first record wins when ids collide; both gaps are logged,
// not fatal. Returns ErrEmptyDataset for empty input.
func NewStore(alerts []*core.Alert, logger *zap.SugaredLogger) (*Store, error) {
	if len(alerts) == 0 {
		return nil, ErrEmptyDataset
	}

	byID := make(map[string]*core.Alert, len(alerts))
	unindexed := 0
	duplicates := 0
	for _, a := range alerts {
		id := a.Identity()
		if id == "" {
			unindexed++
			continue
		}
		// First record wins so Get stays deterministic across loads.
		if _, ok := byID[id]; ok {
			duplicates++
			continue
		}
		byID[id] = a
	}

	if unindexed > 0 {
		logger.Warnf("%d alerts have no id/alert_id/uuid and are excluded from the id index", unindexed)
	}
	if duplicates > 0 {
		logger.Warnf("%d alerts share an already indexed id and were skipped from the id index", duplicates)
	}
	logger.Infof("Store loaded: %d alerts, %d indexed", len(alerts), len(byID))

	return &Store{alerts: alerts, byID: byID, logger: logger}, nil
}

// Get returns the alert with the given identity, or ErrAlertNotFound.
func (s *Store) Get(id string) (*core.Alert, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, ErrAlertNotFound
	}
	return a, nil
}

// All returns the full alert sequence in load order. The slice is the
// store's backing array: read-only by contract.
func (s *Store) All() []*core.Alert {
	return s.alerts
}

// Len returns the number of alerts in the store.
func (s *Store) Len() int {
	return len(s.alerts)
}

// Query filters the store with the given predicates and slices the result.
// Filtering is a single pass preserving load order. Offset and limit are
// assumed normalized by the caller (non-negative, limit > 0); an offset past
// the end of the filtered sequence yields empty items with Total intact.
func (s *Store) Query(filters *core.AlertFilters, offset, limit int) *QueryResult {
	var filtered []*core.Alert
	if filters == nil || filters.IsZero() {
		filtered = s.alerts
	} else {
		filtered = make([]*core.Alert, 0, 64)
		for _, a := range s.alerts {
			if filters.Matches(a) {
				filtered = append(filtered, a)
			}
		}
	}

	total := len(filtered)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &QueryResult{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  filtered[start:end],
	}
}
