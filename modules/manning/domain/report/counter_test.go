package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterKeepsFirstSeenOrder(t *testing.T) {
	c := NewCounter()
	c.Inc("B")
	c.Inc("A")
	c.Inc("B")
	c.Inc("C")
	c.Inc("A")

	require.Equal(t, "B (2), A (2), C (1)", c.Summary())
}

func TestCounterEmpty(t *testing.T) {
	c := NewCounter()
	require.True(t, c.Empty())
	require.Equal(t, "-", c.Summary())

	c.Inc("x")
	require.False(t, c.Empty())
}
