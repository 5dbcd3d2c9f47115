package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/launchdeck/internal/launch"
)

// place draws modal over view with its top-left corner at column x, row y.
// Only the first height rows of view can be drawn over; view rows are
// padded to width so the modal never shifts what lies to its right.
func place(view, modal string, x, y, width, height int) string {
	rows := strings.Split(view, "\n")
	modalWidth := lipgloss.Width(modal)
	limit := min(len(rows), height)
	for i, line := range strings.Split(modal, "\n") {
		r := y + i
		if r < 0 || r >= limit {
			continue
		}
		under := padCells(rows[r], width)
		left := padCells(ansi.Truncate(under, x, ""), x)
		right := ansi.TruncateLeft(under, x+modalWidth, "")
		rows[r] = left + padCells(line, modalWidth) + right
	}
	return strings.Join(rows, "\n")
}

// placeCentered draws modal in the middle of a width x height view.
func placeCentered(view, modal string, width, height int) string {
	x := max(0, (width-lipgloss.Width(modal))/2)
	y := max(0, (height-lipgloss.Height(modal))/2)
	return place(view, modal, x, y, width, height)
}

// renderDetail draws the launch detail modal, wrapped to fit width.
func (a *App) renderDetail(r launch.Record, width int) string {
	inner := min(64, max(24, width-8))
	valueWidth := inner - 10

	row := func(label, value string) string {
		v := lipgloss.NewStyle().Width(valueWidth).Render(value)
		return lipgloss.JoinHorizontal(lipgloss.Top, modalLabelStyle.Render(label), modalTextStyle.Render(v))
	}
	outcome := r.Outcome()
	rows := []string{
		modalTitleStyle.Render(r.MissionName),
		"",
		row("Flight", fmt.Sprintf("#%d", r.FlightNumber)),
		row("Date", a.formatDate(r)),
		row("Rocket", r.RocketName),
		row("Site", r.SiteNameLong),
		lipgloss.JoinHorizontal(lipgloss.Top, modalLabelStyle.Render("Outcome"), outcomeStyle(outcome).Render(string(outcome))),
	}
	if details := r.DetailsText(); details != "" {
		rows = append(rows, "", lipgloss.NewStyle().Width(inner).Foreground(colorText).Render(details))
	}
	rows = append(rows, "", modalHintStyle.Render("esc to close"))
	return modalStyle.Render(strings.Join(rows, "\n"))
}

// padCells widens s with trailing spaces to width terminal cells.
func padCells(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// clipCells cuts s to width cells, marking the cut with an ellipsis.
func clipCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
