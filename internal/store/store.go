// Package store holds the full, unfiltered launch collection for a session.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jask/launchdeck/internal/launch"
	"github.com/jask/launchdeck/internal/logging"
)

// LoadState tracks the single load of a LaunchStore.
type LoadState int

const (
	Loading LoadState = iota
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher supplies the launch collection. Implementations report transport
// and payload problems as errors; the store does not distinguish them.
type Fetcher interface {
	FetchLaunches(ctx context.Context) ([]launch.Record, error)
}

// LaunchStore owns the launch records and their load lifecycle. Load runs at
// most once; Ready and Failed are terminal.
type LaunchStore struct {
	fetcher Fetcher
	logger  *slog.Logger
	clock   func() time.Time

	mu       sync.Mutex
	started  bool
	state    LoadState
	records  []launch.Record
	err      error
	loadedAt time.Time
}

func New(fetcher Fetcher, logger *slog.Logger) *LaunchStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LaunchStore{fetcher: fetcher, logger: logger, clock: time.Now}
}

// Load fetches the collection and returns the resulting state. Failures are
// logged and recorded, never returned: a failed store is simply empty.
// Calls after the first return the current state without fetching again.
func (s *LaunchStore) Load(ctx context.Context) LoadState {
	s.mu.Lock()
	if s.started {
		st := s.state
		s.mu.Unlock()
		return st
	}
	s.started = true
	s.mu.Unlock()

	records, err := s.fetcher.FetchLaunches(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadedAt = s.clock()
	if err != nil {
		s.state = Failed
		s.records = nil
		s.err = err
		s.logger.Error("launch load failed", "error", err)
		return s.state
	}
	s.state = Ready
	s.records = slices.Clone(records)
	s.logger.Info("launches loaded", "count", len(records))
	return s.state
}

// Records returns the loaded launches in source order. It is empty while
// Loading and after a failure. The returned slice is a copy.
func (s *LaunchStore) Records() []launch.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

func (s *LaunchStore) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err is the cause of a Failed load, kept for status display only.
func (s *LaunchStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// LoadedAt is when the load reached a terminal state; zero while Loading.
func (s *LaunchStore) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}
