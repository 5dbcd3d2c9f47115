package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/launchdeck/internal/launch"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle)
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	filterOnStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)
	filterOffStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Padding(0, 1)
	countStyle = lipgloss.NewStyle().Foreground(colorInfo)

	statusStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	emptyStyle   = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)
	unavailStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedRow  = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	flightStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
	missionStyle = lipgloss.NewStyle().Foreground(colorText)
	dateStyle    = lipgloss.NewStyle().Foreground(colorBlue)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Background(colorBase).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	modalLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext1).Width(10)
	modalTextStyle  = lipgloss.NewStyle().Foreground(colorText)
	modalHintStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)

	jumpPromptStyle = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	separatorStyle  = lipgloss.NewStyle().Foreground(colorSurface2)
)

// outcomeStyle colours a launch outcome badge.
func outcomeStyle(o launch.Outcome) lipgloss.Style {
	switch o {
	case launch.OutcomeSuccess:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case launch.OutcomeFailure:
		return lipgloss.NewStyle().Foreground(colorError)
	default:
		return lipgloss.NewStyle().Foreground(colorWarning)
	}
}

// AllPaletteColors returns the palette colors in use, for testing.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorPink, colorRed, colorPeach, colorYellow, colorGreen,
		colorTeal, colorBlue, colorLavender,
		colorText, colorSubtext1, colorSubtext0, colorOverlay1, colorOverlay0,
		colorSurface2, colorSurface0, colorBase, colorMantle,
	}
}
