package core

import "strings"

// AlertFilters defines the filtering options for alert queries. All
// predicates are combined with logical AND; the zero value matches every
// alert. Severity, status and source are exact matches against the raw field
// value; Search is a case-insensitive substring match across message, type
// and resource.name, with absent fields treated as empty strings.
type AlertFilters struct {
	Severity string `json:"severity"`
	Status   string `json:"status"`
	Source   string `json:"source"`
	Search   string `json:"search"`
}

// IsZero reports whether no predicate is set.
func (f *AlertFilters) IsZero() bool {
	return f.Severity == "" && f.Status == "" && f.Source == "" && f.Search == ""
}

// Matches reports whether the alert satisfies every set predicate.
func (f *AlertFilters) Matches(a *Alert) bool {
	if f.Severity != "" && a.Severity != f.Severity {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Source != "" && a.Source != f.Source {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Message), needle) &&
			!strings.Contains(strings.ToLower(a.Type), needle) &&
			!strings.Contains(strings.ToLower(a.ResourceName()), needle) {
			return false
		}
	}
	return true
}
