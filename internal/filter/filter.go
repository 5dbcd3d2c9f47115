// Package filter derives the visible launch list from the full record set,
// the active predicates and an evaluation instant.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jask/launchdeck/internal/launch"
)

// Name identifies one of the three filter toggles.
type Name string

const (
	Upcoming Name = "upcoming"
	Past     Name = "past"
	Success  Name = "success"
)

var ErrUnknownPredicate = errors.New("unknown filter predicate")

// Names lists the toggles in display order.
func Names() []Name { return []Name{Upcoming, Past, Success} }

// ParseName accepts a toggle name case-insensitively.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	switch n {
	case Upcoming, Past, Success:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPredicate, s)
}

// Predicates is the set of filter toggles. The zero value filters nothing.
type Predicates struct {
	Upcoming bool
	Past     bool
	Success  bool
}

// With returns a copy with exactly one toggle changed.
func (p Predicates) With(name Name, enabled bool) (Predicates, error) {
	switch name {
	case Upcoming:
		p.Upcoming = enabled
	case Past:
		p.Past = enabled
	case Success:
		p.Success = enabled
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return p, nil
}

func (p Predicates) Enabled(name Name) bool {
	switch name {
	case Upcoming:
		return p.Upcoming
	case Past:
		return p.Past
	case Success:
		return p.Success
	}
	return false
}

// Active returns the enabled toggle names in display order.
func (p Predicates) Active() []Name {
	var out []Name
	for _, n := range Names() {
		if p.Enabled(n) {
			out = append(out, n)
		}
	}
	return out
}

func (p Predicates) String() string {
	active := p.Active()
	if len(active) == 0 {
		return "all"
	}
	parts := make([]string, len(active))
	for i, n := range active {
		parts[i] = string(n)
	}
	return strings.Join(parts, "+")
}

// Visible narrows records by every enabled predicate, keeping source order.
// Comparisons against now are strict, so a launch at exactly now is neither
// upcoming nor past; enabling both temporal toggles therefore yields nothing.
// A launch without a recorded outcome never passes the success toggle.
func Visible(records []launch.Record, p Predicates, now time.Time) []launch.Record {
	out := make([]launch.Record, 0, len(records))
	for _, r := range records {
		if p.Upcoming && !r.LaunchDate.After(now) {
			continue
		}
		if p.Past && !r.LaunchDate.Before(now) {
			continue
		}
		if p.Success && !r.Succeeded() {
			continue
		}
		out = append(out, r)
	}
	return out
}
