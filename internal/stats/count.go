package stats

import (
	"math"
	"sort"
)

// Count is one (label, occurrences) pair.
type Count struct {
	Label string
	Count int
}

// counter tallies keys and remembers the order they were first seen in.
type counter struct {
	order  []string
	counts map[string]int
	total  int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
	c.total++
}

// sorted returns the tallies by descending count; equal counts keep
// first-seen order.
func (c *counter) sorted() []Count {
	out := make([]Count, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count{Label: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func roundTo(v float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(v*factor) / factor
}
