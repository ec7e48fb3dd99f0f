// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#990000"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	statusBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Pane styles
var (
	// Pane is the bordered container for the command and documentation panes
	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle)

	// PaneFocused is for the pane receiving navigation keys
	PaneFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight)

	// PaneTitle is drawn into the top border
	PaneTitle = lipgloss.NewStyle().
			Bold(true)
)

// Command pane styles
var (
	// CommandName is the first row of the command pane
	CommandName = lipgloss.NewStyle().
			Bold(true)

	// Argument is the base style for an argument row
	Argument = lipgloss.NewStyle()

	// ArgumentSelected is for the row under the cursor
	ArgumentSelected = lipgloss.NewStyle().
				Bold(true)

	// ArgumentEditing is for the argument being typed into
	ArgumentEditing = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)
)

// Mode badges
var (
	ModeNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("1"))

	ModeInsert = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2"))
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(statusBackground).
			Padding(0, 1)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(statusBackground)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(statusBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(statusBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader titles a group of bindings
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)

	// Title is the style for dialog titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Dialog is the base style for overlays
var Dialog = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Highlight).
	Padding(1, 2)

// Spinner style
var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)
