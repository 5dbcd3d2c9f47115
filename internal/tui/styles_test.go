package tui

import (
	"regexp"
	"testing"

	"github.com/jask/launchdeck/internal/launch"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestAllPaletteColorsAreValidHex(t *testing.T) {
	colors := AllPaletteColors()
	if len(colors) != 17 {
		t.Errorf("expected 17 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestOutcomeStylesDiffer(t *testing.T) {
	success := outcomeStyle(launch.OutcomeSuccess).GetForeground()
	failure := outcomeStyle(launch.OutcomeFailure).GetForeground()
	unknown := outcomeStyle(launch.OutcomeUnknown).GetForeground()
	if success == failure || failure == unknown || success == unknown {
		t.Errorf("outcome colors should be distinct: %v %v %v", success, failure, unknown)
	}
}
