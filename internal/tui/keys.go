package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Upcoming key.Binding
	Past     key.Binding
	Success  key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Select   key.Binding
	Dismiss  key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Upcoming: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upcoming")),
		Past:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "past")),
		Success:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "successful")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "navigate")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Upcoming, k.Past, k.Success, k.Down, k.Select, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Upcoming, k.Past, k.Success},
		{k.Down, k.Top, k.Bottom, k.Jump},
		{k.Select, k.Dismiss, k.Help, k.Quit},
	}
}

// detailHelp is shown while the detail overlay is open.
func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Down, k.Select, k.Quit}
}

// jumpHelp is shown while the jump prompt has focus.
func jumpHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
