package core

import (
	"time"
)

// Alert represents one ingested security event. The id, alert_id and uuid
// fields mirror each other in well-formed datasets; Identity resolves the
// fallback chain. All facet pointers may be nil.
type Alert struct {
	ID        string `json:"id,omitempty"`
	AlertID   string `json:"alert_id,omitempty"`
	UUID      string `json:"uuid,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Status    string `json:"status,omitempty"`
	Source    string `json:"source,omitempty"`
	Type      string `json:"type,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Time      string `json:"time,omitempty"`

	Resource           *Resource           `json:"resource,omitempty"`
	Network            *Network            `json:"network,omitempty"`
	ThreatIntelligence *ThreatIntelligence `json:"threat_intelligence,omitempty"`
	RiskAnalysis       *RiskAnalysis       `json:"risk_analysis,omitempty"`
	Compliance         *Compliance         `json:"compliance,omitempty"`
	CostImpact         *CostImpact         `json:"cost_impact,omitempty"`
	UserContext        *UserContext        `json:"user_context,omitempty"`
	Metadata           *Metadata           `json:"metadata,omitempty"`
}

// Resource identifies the cloud resource an alert fired on. Latitude and
// longitude are pointers so that "no location" is distinguishable from the
// (valid) zero coordinate.
type Resource struct {
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	ID        string   `json:"id,omitempty"`
	Region    string   `json:"region,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Network carries connection-level fields for network-originated alerts.
type Network struct {
	SourceIP      string `json:"source_ip,omitempty"`
	DestinationIP string `json:"destination_ip,omitempty"`
	Protocol      string `json:"protocol,omitempty"`
	Port          int    `json:"port,omitempty"`
}

// ThreatIntelligence holds attribution and indicator data.
type ThreatIntelligence struct {
	ThreatActor        string `json:"threat_actor,omitempty"`
	ThreatActorCountry string `json:"threat_actor_country,omitempty"`
	ThreatActorRisk    string `json:"threat_actor_risk,omitempty"`
	AttackStage        string `json:"attack_stage,omitempty"`
	IOCType            string `json:"ioc_type,omitempty"`
	IOCValue           string `json:"ioc_value,omitempty"`
}

// RiskAnalysis holds the scoring output attached by upstream detection.
// Confidence is a pointer so a record without the key stays distinct from
// an explicit zero and is excluded from confidence aggregates.
type RiskAnalysis struct {
	RiskScore        float64 `json:"risk_score"`
	Confidence       *int    `json:"confidence,omitempty"`
	ThreatLevel      string  `json:"threat_level,omitempty"`
	AttackComplexity string  `json:"attack_complexity,omitempty"`
	Exploitability   string  `json:"exploitability,omitempty"`
}

// Compliance lists the frameworks an alert violates. An empty Frameworks
// slice means the alert is compliant.
type Compliance struct {
	Frameworks         []string `json:"frameworks"`
	ViolationSeverity  string   `json:"violation_severity,omitempty"`
	DataClassification string   `json:"data_classification,omitempty"`
}

// CostImpact estimates the financial blast radius of an alert.
type CostImpact struct {
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
	DowntimeMinutes  int     `json:"downtime_minutes"`
	DataLossMB       int     `json:"data_loss_mb"`
}

// UserContext identifies the principal involved in the alert.
type UserContext struct {
	UserID       string `json:"user_id,omitempty"`
	AccountID    string `json:"account_id,omitempty"`
	UserRole     string `json:"user_role,omitempty"`
	IsPrivileged bool   `json:"is_privileged,omitempty"`
}

// Metadata holds detection provenance. CorrelationID is nullable: a nil
// pointer means the alert is not part of any correlated incident.
type Metadata struct {
	DetectionRule     string  `json:"detection_rule,omitempty"`
	RuleCategory      string  `json:"rule_category,omitempty"`
	AffectedAccounts  int     `json:"affected_accounts,omitempty"`
	AffectedResources int     `json:"affected_resources,omitempty"`
	CorrelationID     *string `json:"correlation_id"`
}

// Identity returns the alert's primary identifier: the first non-empty of
// id, alert_id and uuid. Empty when the record carries none of the three,
// in which case the store keeps the record but leaves it out of the index.
func (a *Alert) Identity() string {
	if a.ID != "" {
		return a.ID
	}
	if a.AlertID != "" {
		return a.AlertID
	}
	return a.UUID
}

// CorrelationID returns the correlation id and whether one is set.
func (a *Alert) CorrelationID() (string, bool) {
	if a.Metadata == nil || a.Metadata.CorrelationID == nil || *a.Metadata.CorrelationID == "" {
		return "", false
	}
	return *a.Metadata.CorrelationID, true
}

// ResourceName returns resource.name, or "" when the facet is absent.
func (a *Alert) ResourceName() string {
	if a.Resource == nil {
		return ""
	}
	return a.Resource.Name
}

// timestampLayouts are tried in order when parsing event times. The dataset
// normally carries RFC3339 with a Z suffix; zone-less ISO-8601 strings are
// assumed UTC, matching the loader contract.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// EventTime parses the alert timestamp. Only the first non-empty of the
// timestamp and time fields is considered; an unparseable value there is not
// rescued by the mirror. The boolean is false when nothing parses; callers
// exclude such records from time-bucketed aggregates only, never from the
// whole pass.
func (a *Alert) EventTime() (time.Time, bool) {
	raw := a.Timestamp
	if raw == "" {
		raw = a.Time
	}
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
