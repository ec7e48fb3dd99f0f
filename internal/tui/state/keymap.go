package state

import "github.com/charmbracelet/bubbles/key"

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	SwitchPane key.Binding

	// Editing
	Edit      key.Binding
	OpenBelow key.Binding
	OpenAbove key.Binding
	Confirm   key.Binding
	Backspace key.Binding

	// Actions
	Run       key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "docs up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "docs down"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),

		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		OpenBelow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "new below"),
		),
		OpenAbove: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "new above"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("esc", "enter", "alt+enter", "alt+esc"),
			key.WithHelp("esc/enter", "finish editing"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),

		Run: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "run"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "E"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the status bar hints.
func (k KeymapData) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Edit, k.OpenBelow, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeymapData) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ScrollUp, k.ScrollDown, k.SwitchPane},
		{k.Edit, k.OpenBelow, k.OpenAbove, k.Confirm, k.Backspace},
		{k.Run, k.Copy, k.Help, k.Quit},
	}
}

// InsertHelp lists the bindings that apply while typing into an argument.
func (k KeymapData) InsertHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Backspace}
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{"j/k", "Move selection down/up (wraps)"},
		{"ctrl+d/ctrl+u", "Scroll documentation down/up"},
		{"tab", "Switch focus between command and documentation"},
		{"", ""},
		{"Editing", ""},
		{"enter", "Edit selected argument"},
		{"o", "New argument below"},
		{"O", "New argument above"},
		{"esc/enter", "Finish editing (empty arguments are removed)"},
		{"backspace", "Delete last character"},
		{"", ""},
		{"General", ""},
		{"alt+enter", "Run command"},
		{"y", "Copy command line to clipboard"},
		{"?", "Toggle help"},
		{"q/E", "Quit"},
	}
}
