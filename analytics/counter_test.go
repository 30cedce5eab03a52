package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus/core"
)

func TestCounterSentinel(t *testing.T) {
	c := NewCounter()
	c.Add("")
	c.Add("apt28")
	c.Add("")

	counts := c.Counts()
	assert.Equal(t, 2, counts[core.UnknownKey])
	assert.Equal(t, 1, counts["apt28"])
	assert.Equal(t, 2, c.Len())
}

// TestCounterTopOrdering verifies count-descending order with first-seen
// tie-breaking.
func TestCounterTopOrdering(t *testing.T) {
	c := NewCounter()
	for _, key := range []string{"b", "a", "c", "b", "a", "c", "c", "d"} {
		c.Add(key)
	}
	// c=3; b and a tie at 2, b seen first; d=1.

	top := c.Top(10)
	require.Len(t, top, 4)
	assert.Equal(t, CountEntry{Key: "c", Count: 3}, top[0])
	assert.Equal(t, CountEntry{Key: "b", Count: 2}, top[1])
	assert.Equal(t, CountEntry{Key: "a", Count: 2}, top[2])
	assert.Equal(t, CountEntry{Key: "d", Count: 1}, top[3])

	// Truncation keeps the highest ranks.
	top2 := c.Top(2)
	require.Len(t, top2, 2)
	assert.Equal(t, "c", top2[0].Key)
	assert.Equal(t, "b", top2[1].Key)
}

// TestOrderedCountsJSON verifies that ranked lists marshal as an object with
// keys in rank order.
func TestOrderedCountsJSON(t *testing.T) {
	oc := OrderedCounts{
		{Key: "X", Count: 20},
		{Key: "with \"quotes\"", Count: 2},
		{Key: "last", Count: 1},
	}
	data, err := json.Marshal(oc)
	require.NoError(t, err)
	assert.Equal(t, `{"X":20,"with \"quotes\"":2,"last":1}`, string(data))

	// Round-trips as a plain mapping for consumers.
	var m map[string]int
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 20, m["X"])
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(100.0/3))
	assert.Equal(t, 50.0, round2(50))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 2.68, round2(2.675000001))
}

func TestMeanEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.5, mean([]float64{2, 3}))
}
