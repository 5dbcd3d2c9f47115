// Package tui is the interactive launch browser. App coordinates the store,
// the filter engine and the selection controller; it owns none of their rules.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/launchdeck/internal/filter"
	"github.com/jask/launchdeck/internal/launch"
	"github.com/jask/launchdeck/internal/logging"
	"github.com/jask/launchdeck/internal/selection"
	"github.com/jask/launchdeck/internal/store"
)

const appName = "SpaceX Launches"

// Options wires an App. Store is required; the rest have defaults.
type Options struct {
	Store *store.LaunchStore
	// Load replaces Store.Load, e.g. to archive the run as well.
	Load       func(ctx context.Context) store.LoadState
	Clock      func() time.Time
	Location   *time.Location
	DateFormat string
	Logger     *slog.Logger
}

// App is the bubbletea model.
type App struct {
	ctx       context.Context
	store     *store.LaunchStore
	load      func(ctx context.Context) store.LoadState
	engine    *filter.Engine
	selection selection.Controller
	keys      keyMap
	logger    *slog.Logger

	loc        *time.Location
	dateFormat string

	state     store.LoadState
	cursor    int
	offset    int
	width     int
	height    int
	status    string
	statusErr bool
	showHelp  bool

	jumping bool
	jump    textinput.Model
}

type loadedMsg struct {
	state store.LoadState
}

func New(ctx context.Context, opts Options) *App {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	load := opts.Load
	if load == nil {
		load = opts.Store.Load
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	format := opts.DateFormat
	if format == "" {
		format = "2006-01-02 15:04 MST"
	}

	inp := textinput.New()
	inp.Placeholder = "mission name"
	inp.Prompt = "/ "
	inp.CharLimit = 64

	return &App{
		ctx:        ctx,
		store:      opts.Store,
		load:       load,
		engine:     filter.NewEngine(opts.Store.Records, clock),
		keys:       newKeyMap(),
		logger:     logger,
		loc:        opts.Location,
		dateFormat: format,
		state:      store.Loading,
		width:      80,
		height:     24,
		status:     "Loading launches...",
		jump:       inp,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadLaunches()
}

func (a *App) loadLaunches() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: a.load(a.ctx)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.clampCursor()
		return a, nil
	case loadedMsg:
		a.onLoaded(msg.state)
		return a, nil
	case tea.KeyMsg:
		return a.updateKey(msg)
	}
	if a.jumping {
		var cmd tea.Cmd
		a.jump, cmd = a.jump.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) onLoaded(state store.LoadState) {
	a.state = state
	visible := a.engine.Refresh()
	if a.selection.Prune(a.store.Records()) {
		a.logger.Debug("selection pruned after load")
	}
	a.cursor, a.offset = 0, 0
	a.clampCursor()
	switch state {
	case store.Ready:
		a.setStatus(fmt.Sprintf("Loaded %d launches", len(a.store.Records())))
		a.logger.Info("view ready", "visible", len(visible), "filters", a.engine.Predicates().String())
	case store.Failed:
		msg := "Launch data unavailable"
		if err := a.store.Err(); err != nil {
			msg += ": " + err.Error()
		}
		a.setError(msg)
	}
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.jumping {
		return a.updateJump(msg)
	}
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Dismiss):
		a.selection.Dismiss()
	case key.Matches(msg, a.keys.Upcoming):
		a.toggle(filter.Upcoming)
	case key.Matches(msg, a.keys.Past):
		a.toggle(filter.Past)
	case key.Matches(msg, a.keys.Success):
		a.toggle(filter.Success)
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
		a.clampCursor()
	case key.Matches(msg, a.keys.Bottom):
		a.cursor = a.engine.Len() - 1
		a.clampCursor()
	case key.Matches(msg, a.keys.Select):
		if r, ok := a.engine.At(a.cursor); ok {
			a.selection.Select(r)
		}
	case key.Matches(msg, a.keys.Jump):
		if a.state == store.Ready {
			a.jumping = true
			a.jump.SetValue("")
			return a, a.jump.Focus()
		}
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.closeJump()
		a.setStatus("Jump cancelled")
		return a, nil
	case "enter":
		query := a.jump.Value()
		a.closeJump()
		idx, ok := bestMatch(a.engine.Visible(), query)
		if !ok {
			a.setStatus("No matching mission")
			return a, nil
		}
		a.cursor = idx
		a.clampCursor()
		if r, ok := a.engine.At(idx); ok {
			a.setStatus("Jumped to " + r.MissionName)
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.jump, cmd = a.jump.Update(msg)
	return a, cmd
}

func (a *App) closeJump() {
	a.jumping = false
	a.jump.Blur()
	a.jump.SetValue("")
}

func (a *App) toggle(name filter.Name) {
	on, err := a.engine.Toggle(name)
	if err != nil {
		a.setError(err.Error())
		return
	}
	a.clampCursor()
	state := "off"
	if on {
		state = "on"
	}
	a.setStatus(fmt.Sprintf("%s %s: %d shown", name, state, a.engine.Len()))
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

// clampCursor keeps the cursor on a visible row and the row on screen.
func (a *App) clampCursor() {
	n := a.engine.Len()
	if n == 0 {
		a.cursor, a.offset = 0, 0
		return
	}
	a.cursor = max(0, min(a.cursor, n-1))
	rows := a.listHeight()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+rows {
		a.offset = a.cursor - rows + 1
	}
	a.offset = max(0, min(a.offset, n-rows))
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

func (a *App) formatDate(r launch.Record) string {
	t := r.LaunchDate
	if a.loc != nil {
		t = t.In(a.loc)
	}
	return t.Format(a.dateFormat)
}

// Cursor is the index of the highlighted row in the visible list.
func (a *App) Cursor() int { return a.cursor }

// State is the load state the view last observed.
func (a *App) State() store.LoadState { return a.state }

// Visible is the current filtered view.
func (a *App) Visible() []launch.Record { return a.engine.Visible() }

// Selected reports the launch whose detail is shown, if any.
func (a *App) Selected() (launch.Record, bool) {
	if !a.selection.Visible() {
		return launch.Record{}, false
	}
	return a.selection.Current()
}
