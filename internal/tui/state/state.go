// Package state holds the shared enums and key bindings of the TUI.
package state

// Mode is the editing mode of the command pane.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

// String returns the badge text shown in the status bar.
func (m Mode) String() string {
	if m == ModeInsert {
		return "-INSERT-"
	}
	return "-NORMAL-"
}

// Pane represents which pane is currently focused.
type Pane int

const (
	PaneCommand Pane = iota
	PaneDocumentation
)

// Other returns the pane focus switches to.
func (p Pane) Other() Pane {
	if p == PaneCommand {
		return PaneDocumentation
	}
	return PaneCommand
}
