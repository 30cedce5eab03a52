package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"argus/core"
	"argus/storage"
)

var testAlertSeq int

// newTestEngine builds a store plus engine from literal alerts, assigning
// ids to any alert that lacks one.
func newTestEngine(t *testing.T, alerts ...*core.Alert) *Engine {
	t.Helper()
	for _, a := range alerts {
		if a.Identity() == "" {
			testAlertSeq++
			a.ID = fmt.Sprintf("test-%d", testAlertSeq)
		}
	}
	store, err := storage.NewStore(alerts, zap.NewNop().Sugar())
	require.NoError(t, err)
	return NewEngine(store, zap.NewNop().Sugar())
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
