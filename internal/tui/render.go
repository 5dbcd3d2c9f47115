package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/launchdeck/internal/filter"
	"github.com/jask/launchdeck/internal/launch"
	"github.com/jask/launchdeck/internal/store"
)

const (
	textLoading     = "Loading..."
	textUnavailable = "Launch data unavailable."
	textEmpty       = "No launches found."

	// header, filter bar, separator, status bar, footer
	chromeHeight = 5
)

func (a *App) listHeight() int {
	return max(1, a.height-chromeHeight)
}

func (a *App) View() string {
	width := max(20, a.width)
	parts := []string{
		a.renderHeader(width),
		a.renderFilterBar(width),
		separatorStyle.Render(strings.Repeat("─", width)),
		a.renderBody(width),
		a.renderStatusBar(width),
		a.renderFooter(width),
	}
	view := strings.Join(parts, "\n")
	if r, ok := a.Selected(); ok {
		view = placeCentered(view, a.renderDetail(r, width), width, max(a.height, chromeHeight+1))
	}
	return view
}

func (a *App) renderHeader(width int) string {
	name := headerAppStyle.Render(appName)
	pad := lipgloss.NewStyle().Background(colorMantle).Render("  ")
	return renderBar(headerBarStyle, width, pad+name, colorMantle)
}

func (a *App) renderFilterBar(width int) string {
	if a.jumping {
		return clipCells(jumpPromptStyle.Render("Jump ")+a.jump.View(), width)
	}
	preds := a.engine.Predicates()
	labels := map[filter.Name]string{
		filter.Upcoming: "u upcoming",
		filter.Past:     "p past",
		filter.Success:  "s successful",
	}
	chips := make([]string, 0, len(labels))
	for _, name := range filter.Names() {
		style := filterOffStyle
		mark := "○ "
		if preds.Enabled(name) {
			style = filterOnStyle
			mark = "● "
		}
		chips = append(chips, style.Render(mark+labels[name]))
	}
	left := strings.Join(chips, " ")
	right := countStyle.Render(fmt.Sprintf("%d/%d", a.engine.Len(), len(a.store.Records())))
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return clipCells(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderBody draws the list, or a single indicator line, padded to the list height.
func (a *App) renderBody(width int) string {
	rows := a.listHeight()
	var lines []string
	switch {
	case a.state == store.Loading:
		lines = []string{statusStyle.Render(textLoading)}
	case a.state == store.Failed:
		lines = []string{unavailStyle.Render(textUnavailable)}
	case a.engine.Len() == 0:
		lines = []string{emptyStyle.Render(textEmpty)}
	default:
		lines = a.renderRows(width, rows)
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines[:rows], "\n")
}

func (a *App) renderRows(width, rows int) []string {
	visible := a.engine.Visible()
	end := min(len(visible), a.offset+rows)
	dateW := len(a.dateFormat) + 2
	missionW := max(8, width-2-7-dateW-10)

	out := make([]string, 0, rows)
	for i := a.offset; i < end; i++ {
		r := visible[i]
		out = append(out, a.renderRow(r, i == a.cursor, width, missionW))
	}
	return out
}

func (a *App) renderRow(r launch.Record, current bool, width, missionW int) string {
	prefix := "  "
	if current {
		prefix = cursorStyle.Render("> ")
	}
	mission := padCells(clipCells(r.MissionName, missionW), missionW)
	outcome := r.Outcome()
	line := prefix +
		flightStyle.Render(fmt.Sprintf("#%-5d ", r.FlightNumber)) +
		missionStyle.Render(mission) + "  " +
		dateStyle.Render(a.formatDate(r)) + "  " +
		outcomeStyle(outcome).Render(string(outcome))
	line = clipCells(line, width)
	if current {
		return selectedRow.Render(padCells(line, width))
	}
	return line
}

func (a *App) renderStatusBar(width int) string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, width, msg, colorSurface0)
	}
	return renderBar(statusBarStyle, width, msg, colorSurface0)
}

func (a *App) footerBindings() []key.Binding {
	switch {
	case a.jumping:
		return jumpHelp()
	case a.selection.Visible():
		return a.keys.detailHelp()
	case a.showHelp:
		var out []key.Binding
		for _, group := range a.keys.FullHelp() {
			out = append(out, group...)
		}
		return out
	default:
		return a.keys.ShortHelp()
	}
}

func (a *App) renderFooter(width int) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := a.footerBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, width, strings.Join(parts, sep), bg)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
