package analytics

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"argus/core"
)

// Counter counts category occurrences while remembering first-seen order.
// Tied counts rank deterministically: count descending, then first seen
// first. Empty keys are bucketed under core.UnknownKey.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count for key, mapping "" to the unknown sentinel.
func (c *Counter) Add(key string) {
	if key == "" {
		key = core.UnknownKey
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Counts returns the category-to-count map. The map is the counter's own;
// callers must not mutate it after the counter is published.
func (c *Counter) Counts() map[string]int {
	return c.counts
}

// Top returns the n highest-count entries ordered by count descending, ties
// broken by first-seen order.
func (c *Counter) Top(n int) OrderedCounts {
	entries := make(OrderedCounts, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, CountEntry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// CountEntry pairs a category with its count.
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts is a ranked category-to-count mapping. It marshals as a JSON
// object whose keys appear in slice order, so ranked lists keep their
// ordering on the wire while staying a plain mapping for consumers.
type OrderedCounts []CountEntry

// MarshalJSON emits a JSON object preserving entry order.
func (oc OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range oc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// round2 rounds to two decimal places, the precision contract for every
// average and percentage in the reports.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// mean returns the arithmetic mean, or 0 for an empty input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
