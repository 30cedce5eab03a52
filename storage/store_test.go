package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"argus/core"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func makeAlerts(n int) []*core.Alert {
	alerts := make([]*core.Alert, 0, n)
	severities := []string{core.SeverityLow, core.SeverityMedium, core.SeverityHigh, core.SeverityCritical}
	statuses := []string{core.StatusOpen, core.StatusInProgress, core.StatusClosed, core.StatusResolved}
	for i := 0; i < n; i++ {
		alerts = append(alerts, &core.Alert{
			ID:       fmt.Sprintf("alert-%04d", i),
			Severity: severities[i%len(severities)],
			Status:   statuses[i%len(statuses)],
			Source:   fmt.Sprintf("source-%d", i%3),
			Type:     "UnauthorizedAccessAttempt",
			Message:  fmt.Sprintf("event number %d", i),
		})
	}
	return alerts
}

func TestNewStoreEmptyDataset(t *testing.T) {
	_, err := NewStore(nil, testLogger())
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = NewStore([]*core.Alert{}, testLogger())
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestStoreGet(t *testing.T) {
	store, err := NewStore(makeAlerts(10), testLogger())
	require.NoError(t, err)

	a, err := store.Get("alert-0003")
	require.NoError(t, err)
	assert.Equal(t, "alert-0003", a.ID)

	_, err = store.Get("no-such-id")
	assert.True(t, errors.Is(err, ErrAlertNotFound))
}

// TestStoreIdentityFallbackIndex verifies that alert_id/uuid records are
// indexed and identity-less records stay queryable through All().
func TestStoreIdentityFallbackIndex(t *testing.T) {
	alerts := []*core.Alert{
		{AlertID: "fallback-1"},
		{UUID: "fallback-2"},
		{Severity: core.SeverityLow}, // no identity at all
	}
	store, err := NewStore(alerts, testLogger())
	require.NoError(t, err)

	_, err = store.Get("fallback-1")
	assert.NoError(t, err)
	_, err = store.Get("fallback-2")
	assert.NoError(t, err)

	// The unindexed record is still part of the collection.
	assert.Equal(t, 3, store.Len())
	assert.Len(t, store.All(), 3)
}

// TestStoreDuplicateIDFirstWins verifies that the first record with a given
// id owns the index entry and later duplicates are skipped.
func TestStoreDuplicateIDFirstWins(t *testing.T) {
	alerts := []*core.Alert{
		{ID: "dup", Severity: core.SeverityLow},
		{ID: "dup", Severity: core.SeverityCritical},
		{ID: "other", Severity: core.SeverityMedium},
	}
	store, err := NewStore(alerts, testLogger())
	require.NoError(t, err)

	a, err := store.Get("dup")
	require.NoError(t, err)
	assert.Equal(t, core.SeverityLow, a.Severity)
	assert.Same(t, alerts[0], a)

	// The duplicate record still counts in the collection itself.
	assert.Equal(t, 3, store.Len())
}

func TestQueryNoFilters(t *testing.T) {
	store, err := NewStore(makeAlerts(25), testLogger())
	require.NoError(t, err)

	res := store.Query(nil, 0, 100)
	assert.Equal(t, 25, res.Total)
	assert.Len(t, res.Items, 25)

	// Load order is preserved.
	assert.Equal(t, "alert-0000", res.Items[0].ID)
	assert.Equal(t, "alert-0024", res.Items[24].ID)
}

func TestQueryPagination(t *testing.T) {
	store, err := NewStore(makeAlerts(25), testLogger())
	require.NoError(t, err)

	res := store.Query(nil, 10, 10)
	assert.Equal(t, 25, res.Total)
	assert.Len(t, res.Items, 10)
	assert.Equal(t, "alert-0010", res.Items[0].ID)

	// Final short page.
	res = store.Query(nil, 20, 10)
	assert.Len(t, res.Items, 5)

	// Offset past the end: empty items, total unaffected.
	res = store.Query(nil, 500, 10)
	assert.Equal(t, 25, res.Total)
	assert.Empty(t, res.Items)
}

// TestQueryTotalAcrossPages walks all pages with a fixed limit and checks
// that the union of pages equals the reported total.
func TestQueryTotalAcrossPages(t *testing.T) {
	store, err := NewStore(makeAlerts(97), testLogger())
	require.NoError(t, err)

	filters := &core.AlertFilters{Severity: core.SeverityHigh}
	const limit = 7

	seen := 0
	var total int
	for offset := 0; ; offset += limit {
		res := store.Query(filters, offset, limit)
		total = res.Total
		if len(res.Items) == 0 {
			break
		}
		for _, a := range res.Items {
			assert.Equal(t, core.SeverityHigh, a.Severity)
		}
		seen += len(res.Items)
	}
	assert.Equal(t, total, seen)
}

func TestQueryFilterConjunction(t *testing.T) {
	store, err := NewStore(makeAlerts(40), testLogger())
	require.NoError(t, err)

	res := store.Query(&core.AlertFilters{
		Severity: core.SeverityLow,
		Status:   core.StatusOpen,
		Source:   "source-0",
	}, 0, 100)

	for _, a := range res.Items {
		assert.Equal(t, core.SeverityLow, a.Severity)
		assert.Equal(t, core.StatusOpen, a.Status)
		assert.Equal(t, "source-0", a.Source)
	}

	// Intersection of independent single-predicate queries has the same size.
	bySev := store.Query(&core.AlertFilters{Severity: core.SeverityLow}, 0, 1000)
	matching := 0
	for _, a := range bySev.Items {
		if a.Status == core.StatusOpen && a.Source == "source-0" {
			matching++
		}
	}
	assert.Equal(t, matching, res.Total)
}

func TestQuerySearch(t *testing.T) {
	alerts := makeAlerts(5)
	alerts[2].Message = "Potential DATA exfiltration detected"
	alerts[4].Resource = &core.Resource{Name: "rds_database_data_prod"}
	store, err := NewStore(alerts, testLogger())
	require.NoError(t, err)

	res := store.Query(&core.AlertFilters{Search: "data"}, 0, 100)
	require.Equal(t, 2, res.Total)
	assert.Equal(t, "alert-0002", res.Items[0].ID)
	assert.Equal(t, "alert-0004", res.Items[1].ID)
}
