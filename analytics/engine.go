package analytics

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"argus/storage"
)

// Engine computes dashboard aggregations over an immutable store. Basic and
// advanced reports are computed at most once and shared between callers; the
// store never changes after load, so memoized results stay valid for the
// process lifetime. Trend reports depend on the caller's clock and are
// computed per call.
type Engine struct {
	store  *storage.Store
	logger *zap.SugaredLogger

	basicOnce sync.Once
	basic     *BasicStats

	advancedOnce sync.Once
	advanced     *AdvancedReport
}

// NewEngine creates an analytics engine over the given store.
func NewEngine(store *storage.Store, logger *zap.SugaredLogger) *Engine {
	return &Engine{store: store, logger: logger}
}

// BasicStats returns the memoized basic statistics report.
func (e *Engine) BasicStats() *BasicStats {
	e.basicOnce.Do(func() {
		start := time.Now()
		e.basic = computeBasicStats(e.store)
		e.logger.Debugf("basic stats computed over %d alerts in %s", e.store.Len(), time.Since(start).Round(time.Millisecond))
	})
	return e.basic
}

// Advanced returns the memoized advanced analytics report.
func (e *Engine) Advanced() *AdvancedReport {
	e.advancedOnce.Do(func() {
		start := time.Now()
		e.advanced = computeAdvanced(e.store)
		e.logger.Debugf("advanced analytics computed over %d alerts in %s", e.store.Len(), time.Since(start).Round(time.Millisecond))
	})
	return e.advanced
}

// Trend computes the trend/prediction report for the 30-day window ending at
// now.
func (e *Engine) Trend(now time.Time) *TrendReport {
	return computeTrend(e.store, now)
}
