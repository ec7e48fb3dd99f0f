package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/comcom/internal/args"
	"github.com/hy4ri/comcom/internal/execution"
	"github.com/hy4ri/comcom/internal/tui/components"
	"github.com/hy4ri/comcom/internal/tui/state"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		// Captured so clicks don't reach the terminal, otherwise unused.
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case components.DocumentationLoadedMsg, spinner.TickMsg:
		_, cmd := a.docsComp.Update(msg)
		return a, cmd

	case components.HelpClosedMsg:
		a.showHelp = false
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, tea.Quit

	case statusMsg:
		a.statusMsg = msg.msg
		a.statusFailed = false
		return a, nil

	case commandFinishedMsg:
		a.statusMsg = fmt.Sprintf("%s exited with status %d", a.commandComp.Name(), msg.exitCode)
		a.statusFailed = msg.exitCode != 0
		cmds := []tea.Cmd{tea.ClearScreen, tea.SetWindowTitle(a.windowTitle())}
		if a.config.Exec.Notify {
			cmds = append(cmds, a.notifyFinished(msg.exitCode))
		}
		return a, tea.Batch(cmds...)
	}

	return a, nil
}

// handleKeyMsg processes keyboard input. Application keys are matched against
// the mode before the key is applied, so the key that leaves Insert mode is
// never also treated as a Normal mode command.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.ForceQuit) {
		return a, tea.Quit
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	normal := a.commandComp.Mode() == state.ModeNormal
	if normal {
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.Run):
			return a, a.runCommand()
		case key.Matches(msg, a.keymap.Copy):
			return a, a.copyCommand()
		case key.Matches(msg, a.keymap.Help):
			a.showHelp = true
			return a, nil
		case key.Matches(msg, a.keymap.SwitchPane):
			a.switchPane()
			return a, nil
		}
	}

	// The documentation pane only scrolls while no argument is being edited.
	var cmds []tea.Cmd
	if normal {
		if _, cmd := a.docsComp.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if _, cmd := a.commandComp.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return a, nil
	}
	return a, tea.Batch(cmds...)
}

// switchPane moves focus between the command and documentation panes.
func (a *App) switchPane() {
	a.focusedPane = a.focusedPane.Other()
	a.applyFocus()
}

func (a *App) applyFocus() {
	if a.focusedPane == state.PaneCommand {
		a.commandComp.Focus()
		a.docsComp.Blur()
	} else {
		a.commandComp.Blur()
		a.docsComp.Focus()
	}
}

// runCommand hands the terminal to the edited command until it exits and the
// user acknowledges the return prompt.
func (a *App) runCommand() tea.Cmd {
	name := a.commandComp.Name()
	c := execution.New(name, args.Fields(a.commandComp.Arguments()), a.config.ReturnPrompt())
	log.Printf("running %s", a.commandComp.CommandLine())

	return tea.Exec(c, func(err error) tea.Msg {
		if err != nil {
			return errMsg{err}
		}
		return commandFinishedMsg{exitCode: c.ExitCode}
	})
}

// copyCommand copies the command line to the system clipboard.
func (a *App) copyCommand() tea.Cmd {
	line := a.commandComp.CommandLine()
	write := a.clipboardWrite

	return func() tea.Msg {
		if err := write(line); err != nil {
			return errMsg{fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return statusMsg{msg: "Copied: " + line}
	}
}

// notifyFinished sends a desktop notification. Failures are only logged.
func (a *App) notifyFinished(exitCode int) tea.Cmd {
	notify := a.notify
	title := a.windowTitle()
	message := fmt.Sprintf("Finished with status %d", exitCode)

	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			log.Printf("Failed to send notification: %v", err)
		}
		return nil
	}
}
