package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/launchdeck/internal/fixtures"
)

func TestZeroValueHasNoSelection(t *testing.T) {
	var c Controller
	_, ok := c.Current()
	require.False(t, ok)
	require.False(t, c.Visible())
}

func TestSelectThenDismiss(t *testing.T) {
	recs := fixtures.Catalog(time.Now())
	var c Controller

	c.Select(recs[2])
	got, ok := c.Current()
	require.True(t, ok)
	require.True(t, c.Visible())
	require.Equal(t, recs[2], got)

	c.Dismiss()
	_, ok = c.Current()
	require.False(t, ok)
	require.False(t, c.Visible())
}

func TestSelectReplacesDirectly(t *testing.T) {
	recs := fixtures.Catalog(time.Now())
	var c Controller
	c.Select(recs[0])
	c.Select(recs[1])

	got, ok := c.Current()
	require.True(t, ok)
	require.True(t, c.Visible())
	require.Equal(t, recs[1].FlightNumber, got.FlightNumber)
}

func TestDismissIsIdempotent(t *testing.T) {
	var c Controller
	c.Dismiss()
	c.Dismiss()
	require.False(t, c.Visible())

	c.Select(fixtures.Catalog(time.Now())[0])
	c.Dismiss()
	c.Dismiss()
	_, ok := c.Current()
	require.False(t, ok)
}

func TestPrune(t *testing.T) {
	recs := fixtures.Catalog(time.Now())
	var c Controller
	require.False(t, c.Prune(recs), "nothing selected")

	c.Select(recs[3])
	require.False(t, c.Prune(recs))
	require.True(t, c.Visible())

	require.True(t, c.Prune(recs[:2]))
	require.False(t, c.Visible())
	_, ok := c.Current()
	require.False(t, ok)

	c.Select(recs[0])
	require.True(t, c.Prune(nil))
}
