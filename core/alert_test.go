package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentityFallback verifies the id -> alert_id -> uuid fallback chain.
func TestIdentityFallback(t *testing.T) {
	tests := []struct {
		name     string
		alert    Alert
		expected string
	}{
		{
			name:     "primary id wins",
			alert:    Alert{ID: "a-1", AlertID: "a-2", UUID: "a-3"},
			expected: "a-1",
		},
		{
			name:     "alert_id when id missing",
			alert:    Alert{AlertID: "a-2", UUID: "a-3"},
			expected: "a-2",
		},
		{
			name:     "uuid as last resort",
			alert:    Alert{UUID: "a-3"},
			expected: "a-3",
		},
		{
			name:     "no identity at all",
			alert:    Alert{Severity: SeverityLow},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.alert.Identity())
		})
	}
}

// TestEventTimeParsing verifies the accepted timestamp formats and the
// timestamp -> time fallback.
func TestEventTimeParsing(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		mirror    string
		ok        bool
		expected  time.Time
	}{
		{
			name:      "RFC3339 with Z suffix",
			timestamp: "2025-11-17T14:23:00Z",
			ok:        true,
			expected:  time.Date(2025, 11, 17, 14, 23, 0, 0, time.UTC),
		},
		{
			name:      "RFC3339 with offset normalized to UTC",
			timestamp: "2025-11-17T14:23:00+02:00",
			ok:        true,
			expected:  time.Date(2025, 11, 17, 12, 23, 0, 0, time.UTC),
		},
		{
			name:      "zone-less ISO-8601 assumed UTC",
			timestamp: "2025-11-17T14:23:00",
			ok:        true,
			expected:  time.Date(2025, 11, 17, 14, 23, 0, 0, time.UTC),
		},
		{
			name:      "fractional seconds",
			timestamp: "2025-11-17T14:23:00.123456Z",
			ok:        true,
			expected:  time.Date(2025, 11, 17, 14, 23, 0, 123456000, time.UTC),
		},
		{
			name:     "fallback to mirrored time field",
			mirror:   "2025-01-02T03:04:05Z",
			ok:       true,
			expected: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:      "garbage timestamp",
			timestamp: "not-a-time",
			ok:        false,
		},
		{
			// Only the first non-empty field is parsed; a valid mirror
			// does not rescue a broken timestamp.
			name:      "garbage timestamp with valid mirror",
			timestamp: "not-a-time",
			mirror:    "2025-01-02T03:04:05Z",
			ok:        false,
		},
		{
			name: "both fields empty",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Alert{Timestamp: tt.timestamp, Time: tt.mirror}
			parsed, ok := a.EventTime()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, parsed.Equal(tt.expected), "got %s want %s", parsed, tt.expected)
			}
		})
	}
}

// TestCorrelationID verifies nullable correlation id handling.
func TestCorrelationID(t *testing.T) {
	corrID := "incident-7"
	empty := ""

	a := Alert{Metadata: &Metadata{CorrelationID: &corrID}}
	id, ok := a.CorrelationID()
	require.True(t, ok)
	assert.Equal(t, "incident-7", id)

	for _, a := range []Alert{
		{},
		{Metadata: &Metadata{}},
		{Metadata: &Metadata{CorrelationID: &empty}},
	} {
		_, ok := a.CorrelationID()
		assert.False(t, ok)
	}
}

// TestResourceName verifies the absent-facet fallback.
func TestResourceName(t *testing.T) {
	assert.Equal(t, "", (&Alert{}).ResourceName())
	assert.Equal(t, "bucket_42", (&Alert{Resource: &Resource{Name: "bucket_42"}}).ResourceName())
}
