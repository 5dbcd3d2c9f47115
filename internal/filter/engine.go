package filter

import (
	"slices"
	"time"

	"github.com/jask/launchdeck/internal/launch"
)

// Engine owns the live predicate set and keeps the visible list in step
// with it. The list is recomputed from scratch on every change.
type Engine struct {
	source     func() []launch.Record
	clock      func() time.Time
	predicates Predicates
	visible    []launch.Record
}

// NewEngine reads records from source and "now" from clock on every
// recomputation. A nil clock uses time.Now.
func NewEngine(source func() []launch.Record, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	e := &Engine{source: source, clock: clock}
	e.Refresh()
	return e
}

// Refresh recomputes the visible list, e.g. after the source finished loading.
func (e *Engine) Refresh() []launch.Record {
	var records []launch.Record
	if e.source != nil {
		records = e.source()
	}
	e.visible = Visible(records, e.predicates, e.clock())
	return e.Visible()
}

// SetPredicate changes one toggle, leaves the others as they were, and
// recomputes the visible list.
func (e *Engine) SetPredicate(name Name, enabled bool) error {
	next, err := e.predicates.With(name, enabled)
	if err != nil {
		return err
	}
	e.predicates = next
	e.Refresh()
	return nil
}

// Toggle flips one toggle and returns its new value.
func (e *Engine) Toggle(name Name) (bool, error) {
	enabled := !e.predicates.Enabled(name)
	if err := e.SetPredicate(name, enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

func (e *Engine) Predicates() Predicates { return e.predicates }

// Visible returns a copy of the current derived list.
func (e *Engine) Visible() []launch.Record { return slices.Clone(e.visible) }

// Len is the size of the current derived list.
func (e *Engine) Len() int { return len(e.visible) }

// At returns the i-th visible record.
func (e *Engine) At(i int) (launch.Record, bool) {
	if i < 0 || i >= len(e.visible) {
		return launch.Record{}, false
	}
	return e.visible[i], true
}
