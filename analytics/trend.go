package analytics

import (
	"math"
	"sort"
	"time"

	"argus/core"
	"argus/storage"
)

// Trend directions. The comparison is a strict greater-than: equal recent
// and previous means lean "decreasing". That tie-break is part of the report
// contract and must not be smoothed over.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Prediction confidence labels, keyed off the amount of history available.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// minTrendDays is the number of distinct days required before a direction is
// computed; below it the trend reports "stable".
const minTrendDays = 7

// highConfidenceDays is the history depth at which the prediction label
// upgrades from "medium" to "high".
const highConfidenceDays = 14

// TrendAnalysis describes the 7-day-over-7-day movement of alert volume.
type TrendAnalysis struct {
	Direction          string  `json:"direction"`
	ChangePercentage   float64 `json:"change_percentage"`
	RecentDailyAverage float64 `json:"recent_daily_average"`
}

// Predictions is the fixed linear projection: next week repeats the recent
// daily average. A deterministic heuristic, not a model.
type Predictions struct {
	PredictedAlertsNext7Days int    `json:"predicted_alerts_next_7_days"`
	PredictedDailyAverage    int    `json:"predicted_daily_average"`
	Confidence               string `json:"confidence"`
}

// DailyMetrics are the per-day series inside the trend window, keyed
// YYYY-MM-DD.
type DailyMetrics struct {
	Alerts      map[string]int     `json:"alerts"`
	AverageRisk map[string]float64 `json:"average_risk"`
	Cost        map[string]float64 `json:"cost"`
}

// TrendReport is the full predictive-analytics response.
type TrendReport struct {
	TrendAnalysis TrendAnalysis `json:"trend_analysis"`
	Predictions   Predictions   `json:"predictions"`
	DailyMetrics  DailyMetrics  `json:"daily_metrics"`
}

func computeTrend(store *storage.Store, now time.Time) *TrendReport {
	now = now.UTC()
	windowStart := now.AddDate(0, 0, -core.TrendWindowDays)

	counts := make(map[string]int)
	risks := make(map[string][]float64)
	costs := make(map[string]float64)

	for _, a := range store.All() {
		ts, ok := a.EventTime()
		if !ok || ts.Before(windowStart) || ts.After(now) {
			continue
		}
		day := ts.Format(dayKey)
		counts[day]++
		if ra := a.RiskAnalysis; ra != nil && isFinite(ra.RiskScore) {
			risks[day] = append(risks[day], ra.RiskScore)
		}
		if ci := a.CostImpact; ci != nil && isFinite(ci.EstimatedCostUSD) {
			costs[day] += ci.EstimatedCostUSD
		}
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := TrendAnalysis{Direction: TrendStable}
	if len(days) >= minTrendDays {
		recent := meanCounts(counts, days[len(days)-minTrendDays:])
		prevStart := len(days) - 2*minTrendDays
		if prevStart < 0 {
			prevStart = 0
		}
		previous := meanCounts(counts, days[prevStart:len(days)-minTrendDays])

		// Strict comparison: a tie counts as decreasing.
		if recent > previous {
			trend.Direction = TrendIncreasing
		} else {
			trend.Direction = TrendDecreasing
		}
		if previous > 0 {
			trend.ChangePercentage = round2(math.Abs(recent-previous) / previous * 100)
		}
		trend.RecentDailyAverage = round2(recent)
	} else {
		trend.RecentDailyAverage = round2(meanCounts(counts, days))
	}

	dailyAvg := int(math.Round(trend.RecentDailyAverage))
	confidence := ConfidenceMedium
	if len(days) >= highConfidenceDays {
		confidence = ConfidenceHigh
	}

	avgRisk := make(map[string]float64, len(risks))
	for day, scores := range risks {
		avgRisk[day] = round2(mean(scores))
	}
	roundedCosts := make(map[string]float64, len(costs))
	for day, cost := range costs {
		roundedCosts[day] = round2(cost)
	}

	return &TrendReport{
		TrendAnalysis: trend,
		Predictions: Predictions{
			PredictedAlertsNext7Days: dailyAvg * 7,
			PredictedDailyAverage:    dailyAvg,
			Confidence:               confidence,
		},
		DailyMetrics: DailyMetrics{
			Alerts:      counts,
			AverageRisk: avgRisk,
			Cost:        roundedCosts,
		},
	}
}

// meanCounts averages the per-day counts for the given days; 0 when the
// slice is empty.
func meanCounts(counts map[string]int, days []string) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := 0
	for _, day := range days {
		sum += counts[day]
	}
	return float64(sum) / float64(len(days))
}
