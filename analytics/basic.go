package analytics

import (
	"argus/storage"
)

// BasicStats is the dashboard overview report: total and frequency counts by
// severity, status, source and calendar day. Missing categorical values
// count under the "unknown" sentinel; alerts whose timestamp fails to parse
// are excluded from by_day only.
type BasicStats struct {
	TotalAlerts int            `json:"total_alerts"`
	BySeverity  map[string]int `json:"by_severity"`
	ByStatus    map[string]int `json:"by_status"`
	BySource    map[string]int `json:"by_source"`
	ByDay       map[string]int `json:"by_day"`
}

// dayKey is the calendar-date bucket format for by_day and daily metrics.
const dayKey = "2006-01-02"

func computeBasicStats(store *storage.Store) *BasicStats {
	bySeverity := NewCounter()
	byStatus := NewCounter()
	bySource := NewCounter()
	byDay := NewCounter()

	for _, a := range store.All() {
		bySeverity.Add(a.Severity)
		byStatus.Add(a.Status)
		bySource.Add(a.Source)

		if ts, ok := a.EventTime(); ok {
			byDay.Add(ts.Format(dayKey))
		}
	}

	return &BasicStats{
		TotalAlerts: store.Len(),
		BySeverity:  bySeverity.Counts(),
		ByStatus:    byStatus.Counts(),
		BySource:    bySource.Counts(),
		ByDay:       byDay.Counts(),
	}
}
