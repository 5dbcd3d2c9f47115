package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jask/launchdeck/internal/store"
)

// Loader runs a store's load and archives its outcome once. Archive
// failures are logged and never change the store's state.
type Loader struct {
	Store    *store.LaunchStore
	Archive  Archiver
	Endpoint string
	Logger   *slog.Logger
	Clock    func() time.Time

	mu      sync.Mutex
	started bool
}

func (l *Loader) now() time.Time {
	if l.Clock == nil {
		return time.Now()
	}
	return l.Clock()
}

// Load behaves like LaunchStore.Load. The first call also records the run.
func (l *Loader) Load(ctx context.Context) store.LoadState {
	l.mu.Lock()
	first := !l.started
	l.started = true
	l.mu.Unlock()
	if !first || l.Archive == nil {
		return l.Store.Load(ctx)
	}

	started := l.now()
	state := l.Store.Load(ctx)
	rep := LoadReport{
		Endpoint:   l.Endpoint,
		StartedAt:  started,
		FinishedAt: l.now(),
		State:      state,
		Records:    l.Store.Records(),
		Err:        l.Store.Err(),
	}
	if _, err := l.Archive.RecordLoad(ctx, rep); err != nil && l.Logger != nil {
		l.Logger.Warn("archive fetch run failed", "error", err)
	}
	return state
}
