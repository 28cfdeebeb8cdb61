package report

import (
	"fmt"
	"strings"
)

// Counter is a frequency table that remembers the order in which keys were
// first seen. Breakdown rows render categories in first-seen order.
type Counter struct {
	keys   []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *Counter) Empty() bool { return len(c.keys) == 0 }

// Summary renders "k1 (n1), k2 (n2), ..." in first-seen order, or "-" when
// the counter is empty.
func (c *Counter) Summary() string {
	if c.Empty() {
		return "-"
	}
	parts := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		parts = append(parts, fmt.Sprintf("%s (%d)", k, c.counts[k]))
	}
	return strings.Join(parts, ", ")
}
