package core

// Severity levels, lowest to highest.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert lifecycle statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
	StatusResolved   = "resolved"
)

// UnknownKey is the counter bucket used for records whose categorical value
// is absent or empty. Every frequency map in the analytics layer uses this
// same sentinel so that dashboards render a single "unknown" slice.
const UnknownKey = "unknown"

// Risk score bucket thresholds (score is 0-100).
const (
	RiskCriticalMin = 80.0
	RiskHighMin     = 60.0
	RiskMediumMin   = 40.0
)

// Confidence bands for the correlation facet. The bands overlap nothing and
// cover nothing between them: an alert with confidence in [80,90) is counted
// in neither.
const (
	HighConfidenceMin = 90
	LowConfidenceMax  = 80
)

// HeatmapMaxPoints caps the geographic heatmap point list. The cap is a
// response-size guard, not a sampling strategy: the first N points in store
// order win.
const HeatmapMaxPoints = 10000

// TrendWindowDays is the lookback window for trend analysis.
const TrendWindowDays = 30

// TopNLimit is the size of ranked lists (top threat actors, top correlations).
const TopNLimit = 10

// KillChainStages lists attack stages in kill-chain order, used to render the
// attack chain sequence with a stable, meaningful ordering.
var KillChainStages = []string{
	"Reconnaissance",
	"Weaponization",
	"Delivery",
	"Exploitation",
	"Installation",
	"CommandControl",
	"ActionsOnObjectives",
}

// Severities lists the severity vocabulary in ascending order.
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Statuses lists the status vocabulary.
var Statuses = []string{StatusOpen, StatusInProgress, StatusClosed, StatusResolved}
