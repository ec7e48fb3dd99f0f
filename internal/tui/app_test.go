package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/comcom/internal/config"
	"github.com/hy4ri/comcom/internal/docs"
	"github.com/hy4ri/comcom/internal/tui/components"
	"github.com/hy4ri/comcom/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	text string
	err  error
}

func (s stubLookup) Fetch(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func sendKey(a *App, k string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "alt+enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		msg = tea.KeyMsg{Type: tea.KeyCtrlD}
	}
	_, cmd := a.Update(msg)
	return cmd
}

func manyLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "doc line %d\n", i)
	}
	return b.String()
}

func newTestApp(t *testing.T, arguments ...string) *App {
	t.Helper()

	a := NewApp(config.DefaultConfig(), stubLookup{text: manyLines(20)}, "ls", arguments)
	a.clipboardWrite = func(string) error {
		t.Fatal("clipboard written unexpectedly")
		return nil
	}
	a.notify = func(string, string) error {
		t.Fatal("notification sent unexpectedly")
		return nil
	}
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return a
}

// loadDocs runs the documentation lookup and delivers its result.
func loadDocs(t *testing.T, a *App) {
	t.Helper()

	msg := a.loadDocumentation()()
	require.IsType(t, components.DocumentationLoadedMsg{}, msg)
	a.Update(msg)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAppInit(t *testing.T) {
	a := newTestApp(t)
	assert.NotNil(t, a.Init())
	assert.Equal(t, "comcom: ls", a.windowTitle())
	assert.NoError(t, a.Err())
}

func TestAppQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "E", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			a := newTestApp(t, "-a")
			assert.True(t, isQuit(sendKey(a, k)))
			assert.NoError(t, a.Err())
		})
	}
}

func TestAppQuitKeyIsTextInInsertMode(t *testing.T) {
	a := newTestApp(t, "-a")

	sendKey(a, "j")
	sendKey(a, "enter")
	assert.False(t, isQuit(sendKey(a, "q")))
	assert.Equal(t, []string{"-aq"}, a.commandComp.Arguments())
}

func TestAppForceQuitInInsertMode(t *testing.T) {
	a := newTestApp(t, "-a")

	sendKey(a, "j")
	sendKey(a, "enter")
	assert.True(t, isQuit(sendKey(a, "ctrl+c")))
}

func TestAppRunReturnsExecCommand(t *testing.T) {
	a := newTestApp(t, "-l /tmp")

	assert.NotNil(t, sendKey(a, "alt+enter"))
	assert.Equal(t, state.ModeNormal, a.commandComp.Mode())
}

func TestAppAltEnterInInsertModeOnlyConfirms(t *testing.T) {
	a := newTestApp(t, "-l")

	sendKey(a, "j")
	sendKey(a, "enter")
	sendKey(a, "a")
	cmd := sendKey(a, "alt+enter")

	assert.Nil(t, cmd, "the edit is confirmed without running the command")
	assert.Equal(t, state.ModeNormal, a.commandComp.Mode())
	assert.Equal(t, []string{"-la"}, a.commandComp.Arguments())
}

func TestAppCopy(t *testing.T) {
	a := newTestApp(t, "-l /tmp", "-a")

	var copied string
	a.clipboardWrite = func(s string) error {
		copied = s
		return nil
	}

	cmd := sendKey(a, "y")
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "ls -l /tmp -a", copied)

	a.Update(msg)
	assert.Equal(t, "Copied: ls -l /tmp -a", a.statusMsg)
	assert.NoError(t, a.Err())
}

func TestAppCopyFailureIsFatal(t *testing.T) {
	a := newTestApp(t)
	a.clipboardWrite = func(string) error {
		return errors.New("no clipboard")
	}

	cmd := sendKey(a, "y")
	require.NotNil(t, cmd)

	_, next := a.Update(cmd())
	assert.True(t, isQuit(next))
	require.Error(t, a.Err())
	assert.Contains(t, a.Err().Error(), "no clipboard")
}

func TestAppCommandFinished(t *testing.T) {
	a := newTestApp(t, "-a")

	_, cmd := a.Update(commandFinishedMsg{exitCode: 2})
	assert.NotNil(t, cmd)
	assert.Equal(t, "ls exited with status 2", a.statusMsg)
	assert.True(t, a.statusFailed)
	assert.NoError(t, a.Err())

	a.Update(commandFinishedMsg{exitCode: 0})
	assert.False(t, a.statusFailed)
}

func TestAppCommandFinishedNotifies(t *testing.T) {
	a := newTestApp(t)
	a.config.Exec.Notify = true

	var title, message string
	a.notify = func(tt, m string) error {
		title, message = tt, m
		return errors.New("no notification daemon")
	}

	_, cmd := a.Update(commandFinishedMsg{exitCode: 0})
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c != nil {
			c()
		}
	}

	assert.Equal(t, "comcom: ls", title)
	assert.Equal(t, "Finished with status 0", message)
	assert.NoError(t, a.Err(), "notification failures are not fatal")
}

func TestAppErrMsgQuits(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(errMsg{errors.New("boom")})
	assert.True(t, isQuit(cmd))
	assert.EqualError(t, a.Err(), "boom")
}

func TestAppDocumentationLoading(t *testing.T) {
	a := newTestApp(t)
	assert.True(t, a.docsComp.Loading())

	loadDocs(t, a)
	assert.False(t, a.docsComp.Loading())
	assert.Equal(t, 20, a.docsComp.TotalLines())
}

func TestAppDocumentationLookupFailureShowsSentinel(t *testing.T) {
	a := NewApp(config.DefaultConfig(), stubLookup{err: errors.New("no manual entry")}, "nosuch", nil)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	loadDocs(t, a)
	assert.Equal(t, docs.Unavailable, a.docsComp.Text())
	assert.NoError(t, a.Err())
	assert.Contains(t, a.View(), docs.Unavailable)
}

func TestAppScrollKeysReachDocumentation(t *testing.T) {
	a := newTestApp(t, "-a")
	loadDocs(t, a)

	sendKey(a, "ctrl+d")
	assert.Equal(t, 5, a.docsComp.Offset())
	assert.Equal(t, 0, a.commandComp.Selected())
}

func TestAppScrollKeysIgnoredWhileEditing(t *testing.T) {
	a := newTestApp(t, "-a")
	loadDocs(t, a)

	sendKey(a, "j")
	sendKey(a, "enter")
	sendKey(a, "ctrl+d")
	assert.Equal(t, 0, a.docsComp.Offset())
	assert.Equal(t, []string{"-a"}, a.commandComp.Arguments())
}

func TestAppSwitchPane(t *testing.T) {
	a := newTestApp(t, "-a")
	loadDocs(t, a)

	sendKey(a, "tab")
	assert.Equal(t, state.PaneDocumentation, a.focusedPane)
	assert.True(t, a.docsComp.Focused())
	assert.False(t, a.commandComp.Focused())

	sendKey(a, "j")
	assert.Equal(t, 5, a.docsComp.Offset())
	assert.Equal(t, 0, a.commandComp.Selected())

	sendKey(a, "tab")
	assert.Equal(t, state.PaneCommand, a.focusedPane)
	sendKey(a, "j")
	assert.Equal(t, 1, a.commandComp.Selected())
	assert.Equal(t, 5, a.docsComp.Offset())
}

func TestAppTabIgnoredInInsertMode(t *testing.T) {
	a := newTestApp(t, "-a")

	sendKey(a, "j")
	sendKey(a, "enter")
	sendKey(a, "tab")
	assert.Equal(t, state.PaneCommand, a.focusedPane)
	assert.Equal(t, []string{"-a"}, a.commandComp.Arguments())
}

func TestAppHelpOverlay(t *testing.T) {
	a := newTestApp(t, "-a")

	sendKey(a, "?")
	require.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")

	// Keys go to the overlay, not the editor.
	sendKey(a, "j")
	assert.Equal(t, 0, a.commandComp.Selected())

	cmd := sendKey(a, "esc")
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.False(t, a.showHelp)
}

func TestAppIgnoresMouse(t *testing.T) {
	a := newTestApp(t, "-a")

	_, cmd := a.Update(tea.MouseMsg{X: 3, Y: 2})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, a.commandComp.Selected())
}

func TestAppViewBeforeResize(t *testing.T) {
	a := NewApp(config.DefaultConfig(), stubLookup{}, "ls", nil)
	assert.Equal(t, "Loading...", a.View())
}

func TestAppView(t *testing.T) {
	a := newTestApp(t, "-l /tmp")
	loadDocs(t, a)

	view := a.View()
	assert.Contains(t, view, "┤Command├")
	assert.Contains(t, view, "┤Documentation├")
	assert.Contains(t, view, "-NORMAL-")
	assert.Contains(t, view, "> ls")
	assert.Contains(t, view, "-l /tmp")
	assert.Contains(t, view, "doc line 0")

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 20)

	sendKey(a, "j")
	sendKey(a, "enter")
	assert.Contains(t, a.View(), "-INSERT-")
	assert.Contains(t, a.View(), "-l /tmp_")
}

func TestAppViewNarrowTerminal(t *testing.T) {
	a := newTestApp(t, "-a")
	a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	view := a.View()
	assert.Contains(t, view, "┤Command├")
	assert.NotContains(t, view, "Documentation")
}

func TestAppViewShowsStatus(t *testing.T) {
	a := newTestApp(t, "-a")
	a.Update(statusMsg{msg: "ls exited with status 1"})

	assert.Contains(t, a.View(), "ls exited with status 1")
}
