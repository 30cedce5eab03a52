package analytics

import (
	"math"
	"strconv"

	"argus/core"
	"argus/storage"
)

// AdvancedReport combines the seven analytics facets. Facets are independent
// of one another, so the whole report is produced in a single pass.
type AdvancedReport struct {
	ThreatIntelligence ThreatIntelligenceReport `json:"threat_intelligence"`
	RiskAnalysis       RiskReport               `json:"risk_analysis"`
	Geographic         GeographicReport         `json:"geographic"`
	Compliance         ComplianceReport         `json:"compliance"`
	CostImpact         CostReport               `json:"cost_impact"`
	Correlation        CorrelationReport        `json:"correlation"`
	TimePatterns       TimePatternsReport       `json:"time_patterns"`
}

// ThreatIntelligenceReport aggregates attribution data over alerts carrying
// the threat_intelligence facet.
type ThreatIntelligenceReport struct {
	TopThreatActors      OrderedCounts  `json:"top_threat_actors"`
	ThreatActorCountries map[string]int `json:"threat_actor_countries"`
	AttackStages         map[string]int `json:"attack_stages"`
	IOCTypes             map[string]int `json:"ioc_types"`
	ActorRiskLevels      map[string]int `json:"actor_risk_levels"`
	// AttackChainSequence repeats the stage counts in kill-chain order so the
	// dashboard can render the chain left to right; stages outside the known
	// chain follow in first-seen order.
	AttackChainSequence OrderedCounts `json:"attack_chain_sequence"`
}

// RiskDistribution buckets present risk scores with fixed thresholds:
// critical >=80, high [60,80), medium [40,60), low <40. The four buckets
// partition the alerts that carry a risk score.
type RiskDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// RiskReport aggregates the risk_analysis facet.
type RiskReport struct {
	AverageRiskScore        float64            `json:"average_risk_score"`
	RiskDistribution        RiskDistribution   `json:"risk_distribution"`
	RiskBySeverity          map[string]float64 `json:"risk_by_severity"`
	AverageConfidence       float64            `json:"average_confidence"`
	ExploitabilityBreakdown map[string]int     `json:"exploitability_breakdown"`
	AttackComplexity        map[string]int     `json:"attack_complexity"`
}

// HeatmapPoint is one geographic sample for heatmap rendering.
type HeatmapPoint struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Severity string  `json:"severity"`
}

// GeographicReport aggregates the resource facet's location fields. The
// heatmap holds at most core.HeatmapMaxPoints points, first encountered in
// store order.
type GeographicReport struct {
	Countries map[string]int `json:"countries"`
	Regions   map[string]int `json:"regions"`
	Heatmap   []HeatmapPoint `json:"heatmap"`
}

// ComplianceReport aggregates the compliance facet. The score is
// (1 - violating/total) * 100 over the whole store, 0 when the store is
// empty.
type ComplianceReport struct {
	FrameworkViolations map[string]int `json:"framework_violations"`
	ViolationSeverities map[string]int `json:"violation_severities"`
	DataClassifications map[string]int `json:"data_classifications"`
	ComplianceScore     float64        `json:"compliance_score"`
}

// CostReport sums the cost_impact facet overall and by severity.
type CostReport struct {
	TotalCostUSD         float64            `json:"total_cost_usd"`
	CostBySeverity       map[string]float64 `json:"cost_by_severity"`
	TotalDowntimeMinutes int                `json:"total_downtime_minutes"`
	DowntimeBySeverity   map[string]int     `json:"downtime_by_severity"`
	TotalDataLossMB      int                `json:"total_data_loss_mb"`
	DataLossBySeverity   map[string]int     `json:"data_loss_by_severity"`
}

// CorrelationReport groups alerts by correlation id and bands confidence.
// The high and low bands are independent counts, not a partition: alerts
// with confidence in [80,90) appear in neither.
type CorrelationReport struct {
	CorrelatedAlerts int            `json:"correlated_alerts"`
	TopCorrelations  OrderedCounts  `json:"top_correlations"`
	HighConfidence   int            `json:"high_confidence"`
	LowConfidence    int            `json:"low_confidence"`
}

// TimePatternsReport buckets alerts by hour of day and weekday name.
type TimePatternsReport struct {
	ByHour    map[string]int `json:"by_hour"`
	ByWeekday map[string]int `json:"by_weekday"`
}

func computeAdvanced(store *storage.Store) *AdvancedReport {
	var (
		threatActors   = NewCounter()
		actorCountries = NewCounter()
		attackStages   = NewCounter()
		iocTypes       = NewCounter()
		actorRisks     = NewCounter()

		riskScores     []float64
		riskDist       RiskDistribution
		riskBySev      = map[string][]float64{}
		riskSevOrder   []string
		confidences    []float64
		exploitability = NewCounter()
		complexity     = NewCounter()

		countries = NewCounter()
		regions   = NewCounter()
		heatmap   = make([]HeatmapPoint, 0, 1024)

		frameworks      = NewCounter()
		violationSevs   = NewCounter()
		classifications = NewCounter()
		violating       int

		totalCost     float64
		costBySev     = map[string]float64{}
		totalDowntime int
		downtimeBySev = map[string]int{}
		totalDataLoss int
		dataLossBySev = map[string]int{}

		correlations = NewCounter()
		highConf     int
		lowConf      int

		byHour    = NewCounter()
		byWeekday = NewCounter()
	)

	for _, a := range store.All() {
		sevKey := a.Severity
		if sevKey == "" {
			sevKey = core.UnknownKey
		}

		if ti := a.ThreatIntelligence; ti != nil {
			threatActors.Add(ti.ThreatActor)
			actorCountries.Add(ti.ThreatActorCountry)
			attackStages.Add(ti.AttackStage)
			iocTypes.Add(ti.IOCType)
			actorRisks.Add(ti.ThreatActorRisk)
		}

		if ra := a.RiskAnalysis; ra != nil {
			if isFinite(ra.RiskScore) {
				riskScores = append(riskScores, ra.RiskScore)
				switch {
				case ra.RiskScore >= core.RiskCriticalMin:
					riskDist.Critical++
				case ra.RiskScore >= core.RiskHighMin:
					riskDist.High++
				case ra.RiskScore >= core.RiskMediumMin:
					riskDist.Medium++
				default:
					riskDist.Low++
				}
				if _, seen := riskBySev[sevKey]; !seen {
					riskSevOrder = append(riskSevOrder, sevKey)
				}
				riskBySev[sevKey] = append(riskBySev[sevKey], ra.RiskScore)
			}
			if ra.Confidence != nil {
				conf := *ra.Confidence
				confidences = append(confidences, float64(conf))
				if conf >= core.HighConfidenceMin {
					highConf++
				}
				if conf < core.LowConfidenceMax {
					lowConf++
				}
			}
			exploitability.Add(ra.Exploitability)
			complexity.Add(ra.AttackComplexity)
		}

		if r := a.Resource; r != nil {
			countries.Add(r.Country)
			regions.Add(r.Region)
			if len(heatmap) < core.HeatmapMaxPoints &&
				r.Latitude != nil && r.Longitude != nil &&
				isFinite(*r.Latitude) && isFinite(*r.Longitude) {
				heatmap = append(heatmap, HeatmapPoint{Lat: *r.Latitude, Lon: *r.Longitude, Severity: a.Severity})
			}
		}

		if c := a.Compliance; c != nil {
			if len(c.Frameworks) > 0 {
				violating++
				for _, fw := range c.Frameworks {
					frameworks.Add(fw)
				}
			}
			violationSevs.Add(c.ViolationSeverity)
			classifications.Add(c.DataClassification)
		}

		if ci := a.CostImpact; ci != nil {
			if isFinite(ci.EstimatedCostUSD) {
				totalCost += ci.EstimatedCostUSD
				costBySev[sevKey] += ci.EstimatedCostUSD
			}
			totalDowntime += ci.DowntimeMinutes
			downtimeBySev[sevKey] += ci.DowntimeMinutes
			totalDataLoss += ci.DataLossMB
			dataLossBySev[sevKey] += ci.DataLossMB
		}

		if corrID, ok := a.CorrelationID(); ok {
			correlations.Add(corrID)
		}

		if ts, ok := a.EventTime(); ok {
			byHour.Add(strconv.Itoa(ts.Hour()))
			byWeekday.Add(ts.Weekday().String())
		}
	}

	riskMeans := make(map[string]float64, len(riskBySev))
	for _, sev := range riskSevOrder {
		riskMeans[sev] = round2(mean(riskBySev[sev]))
	}

	roundedCostBySev := make(map[string]float64, len(costBySev))
	for sev, cost := range costBySev {
		roundedCostBySev[sev] = round2(cost)
	}

	correlated := 0
	for _, count := range correlations.Counts() {
		if count > 1 {
			correlated++
		}
	}

	score := 0.0
	if store.Len() > 0 {
		score = round2((1 - float64(violating)/float64(store.Len())) * 100)
	}

	return &AdvancedReport{
		ThreatIntelligence: ThreatIntelligenceReport{
			TopThreatActors:      threatActors.Top(core.TopNLimit),
			ThreatActorCountries: actorCountries.Counts(),
			AttackStages:         attackStages.Counts(),
			IOCTypes:             iocTypes.Counts(),
			ActorRiskLevels:      actorRisks.Counts(),
			AttackChainSequence:  killChainOrder(attackStages),
		},
		RiskAnalysis: RiskReport{
			AverageRiskScore:        round2(mean(riskScores)),
			RiskDistribution:        riskDist,
			RiskBySeverity:          riskMeans,
			AverageConfidence:       round2(mean(confidences)),
			ExploitabilityBreakdown: exploitability.Counts(),
			AttackComplexity:        complexity.Counts(),
		},
		Geographic: GeographicReport{
			Countries: countries.Counts(),
			Regions:   regions.Counts(),
			Heatmap:   heatmap,
		},
		Compliance: ComplianceReport{
			FrameworkViolations: frameworks.Counts(),
			ViolationSeverities: violationSevs.Counts(),
			DataClassifications: classifications.Counts(),
			ComplianceScore:     score,
		},
		CostImpact: CostReport{
			TotalCostUSD:         round2(totalCost),
			CostBySeverity:       roundedCostBySev,
			TotalDowntimeMinutes: totalDowntime,
			DowntimeBySeverity:   downtimeBySev,
			TotalDataLossMB:      totalDataLoss,
			DataLossBySeverity:   dataLossBySev,
		},
		Correlation: CorrelationReport{
			CorrelatedAlerts: correlated,
			TopCorrelations:  correlations.Top(core.TopNLimit),
			HighConfidence:   highConf,
			LowConfidence:    lowConf,
		},
		TimePatterns: TimePatternsReport{
			ByHour:    byHour.Counts(),
			ByWeekday: byWeekday.Counts(),
		},
	}
}

// killChainOrder re-orders observed attack stage counts along the canonical
// kill chain, appending unknown stages in first-seen order.
func killChainOrder(stages *Counter) OrderedCounts {
	counts := stages.Counts()
	ordered := make(OrderedCounts, 0, len(counts))
	seen := make(map[string]bool, len(counts))

	for _, stage := range core.KillChainStages {
		if n, ok := counts[stage]; ok {
			ordered = append(ordered, CountEntry{Key: stage, Count: n})
			seen[stage] = true
		}
	}
	for _, key := range stages.order {
		if !seen[key] {
			ordered = append(ordered, CountEntry{Key: key, Count: counts[key]})
		}
	}
	return ordered
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
