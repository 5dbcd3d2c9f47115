package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/launchdeck/internal/fixtures"
	"github.com/jask/launchdeck/internal/launch"
)

type fakeSource struct {
	records []launch.Record
	reads   int
}

func (s *fakeSource) Records() []launch.Record {
	s.reads++
	return s.records
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestEngineStartsWithEverythingVisible(t *testing.T) {
	src := &fakeSource{records: fixtures.Catalog(now)}
	e := NewEngine(src.Records, fixedClock(now))
	require.Equal(t, Predicates{}, e.Predicates())
	require.Equal(t, src.records, e.Visible())
	require.Equal(t, len(src.records), e.Len())
}

func TestEngineRefreshPicksUpLoadedSource(t *testing.T) {
	src := &fakeSource{}
	e := NewEngine(src.Records, fixedClock(now))
	require.Zero(t, e.Len())

	src.records = fixtures.Catalog(now)
	require.Len(t, e.Refresh(), len(src.records))
}

func TestEngineSetPredicateRecomputes(t *testing.T) {
	src := &fakeSource{records: fixtures.Catalog(now)}
	e := NewEngine(src.Records, fixedClock(now))
	reads := src.reads

	require.NoError(t, e.SetPredicate(Upcoming, true))
	require.Equal(t, []int{6, 7, 8}, flights(e.Visible()))
	require.Greater(t, src.reads, reads)

	require.NoError(t, e.SetPredicate(Success, true))
	require.Empty(t, e.Visible())
	require.Equal(t, Predicates{Upcoming: true, Success: true}, e.Predicates())

	require.NoError(t, e.SetPredicate(Upcoming, false))
	require.Equal(t, []int{2, 4, 5}, flights(e.Visible()))
}

func TestEngineRejectsUnknownPredicate(t *testing.T) {
	e := NewEngine(func() []launch.Record { return fixtures.Catalog(now) }, fixedClock(now))
	require.ErrorIs(t, e.SetPredicate("recent", true), ErrUnknownPredicate)
	require.Equal(t, Predicates{}, e.Predicates())
	_, err := e.Toggle("recent")
	require.ErrorIs(t, err, ErrUnknownPredicate)
}

func TestEngineToggle(t *testing.T) {
	e := NewEngine(func() []launch.Record { return fixtures.Catalog(now) }, fixedClock(now))
	on, err := e.Toggle(Past)
	require.NoError(t, err)
	require.True(t, on)
	require.Equal(t, 5, e.Len())

	on, err = e.Toggle(Past)
	require.NoError(t, err)
	require.False(t, on)
	require.Equal(t, 8, e.Len())
}

func TestEngineUsesClockAtEachRecompute(t *testing.T) {
	current := now
	recs := []launch.Record{fixtures.Launch(1, "Soon", now.Add(time.Minute), nil)}
	e := NewEngine(func() []launch.Record { return recs }, func() time.Time { return current })
	require.NoError(t, e.SetPredicate(Upcoming, true))
	require.Equal(t, 1, e.Len())

	current = now.Add(2 * time.Minute)
	e.Refresh()
	require.Zero(t, e.Len())
}

func TestEngineAt(t *testing.T) {
	e := NewEngine(func() []launch.Record { return fixtures.Catalog(now) }, fixedClock(now))
	r, ok := e.At(0)
	require.True(t, ok)
	require.Equal(t, 1, r.FlightNumber)
	_, ok = e.At(-1)
	require.False(t, ok)
	_, ok = e.At(e.Len())
	require.False(t, ok)
}

func TestEngineVisibleIsCopy(t *testing.T) {
	e := NewEngine(func() []launch.Record { return fixtures.Catalog(now) }, fixedClock(now))
	v := e.Visible()
	v[0].MissionName = "changed"
	r, _ := e.At(0)
	require.Equal(t, "FalconSat", r.MissionName)
}
