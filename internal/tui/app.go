// Package tui provides the terminal user interface for editing a command line.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/comcom/internal/config"
	"github.com/hy4ri/comcom/internal/docs"
	"github.com/hy4ri/comcom/internal/tui/components"
	"github.com/hy4ri/comcom/internal/tui/state"
)

// docsTimeout bounds a single documentation lookup.
const docsTimeout = 10 * time.Second

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	lookup docs.Lookup

	// View state
	focusedPane state.Pane
	showHelp    bool

	// UI state
	err          error
	statusMsg    string
	statusFailed bool // last command exited non-zero
	width        int
	height       int

	// Components
	keymap state.KeymapData
	hints  help.Model

	commandComp *components.CommandModel
	docsComp    *components.DocumentationModel
	helpComp    *components.HelpModel

	// External effects, replaceable in tests
	clipboardWrite func(string) error
	notify         func(title, message string) error
}

// NewApp creates a new App editing name and its already normalized arguments.
func NewApp(cfg *config.Config, lookup docs.Lookup, name string, arguments []string) *App {
	keymap := state.DefaultKeymap()

	app := &App{
		config:      cfg,
		lookup:      lookup,
		focusedPane: state.PaneCommand,
		keymap:      keymap,
		hints:       help.New(),
		commandComp: components.NewCommand(name, arguments, keymap),
		docsComp:    components.NewDocumentation(keymap),
		helpComp:    components.NewHelp(),

		clipboardWrite: clipboard.WriteAll,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}

	app.helpComp.SetKeymap(keymap.HelpItems())

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(a.windowTitle()),
		a.docsComp.Init(),
		a.loadDocumentation(),
	)
}

// Err returns the error that ended the program, if any.
func (a *App) Err() error {
	return a.err
}

func (a *App) windowTitle() string {
	return "comcom: " + a.commandComp.Name()
}

// loadDocumentation looks up the command's documentation off the event loop.
func (a *App) loadDocumentation() tea.Cmd {
	lookup := a.lookup
	name := a.commandComp.Name()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), docsTimeout)
		defer cancel()

		return components.DocumentationLoadedMsg{
			Text: docs.FetchOrSentinel(ctx, lookup, name),
		}
	}
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
type commandFinishedMsg struct{ exitCode int }
