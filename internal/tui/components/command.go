package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/comcom/internal/args"
	"github.com/hy4ri/comcom/internal/tui/state"
	"github.com/hy4ri/comcom/internal/tui/styles"
	"github.com/hy4ri/comcom/internal/tui/utils"
)

const (
	argumentIndent  = "    "
	selectionMarker = "> "
	insertCursor    = "_"
)

// CommandModel is the modal editor over a command's argument list.
//
// Row 0 is the command name and is never editable; row i > 0 is argument i-1.
// The selection always stays within 0..len(arguments), and in Insert mode it
// is at least 1.
type CommandModel struct {
	name      string
	arguments []string
	selected  int
	mode      state.Mode
	keymap    state.KeymapData

	width, height int
	focused       bool
}

// NewCommand creates a CommandModel in Normal mode with the command name selected.
func NewCommand(name string, arguments []string, keymap state.KeymapData) *CommandModel {
	return &CommandModel{
		name:      name,
		arguments: append([]string{}, arguments...),
		mode:      state.ModeNormal,
		keymap:    keymap,
		focused:   true,
	}
}

// Init implements Component.
func (c *CommandModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. Keys are only handled while focused;
// unrecognized keys are ignored.
func (c *CommandModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return c, nil
	}

	if c.mode == state.ModeInsert {
		c.handleInsertKey(keyMsg)
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keymap.Down):
		c.MoveDown()
	case key.Matches(keyMsg, c.keymap.Up):
		c.MoveUp()
	case key.Matches(keyMsg, c.keymap.Edit):
		c.Edit()
	case key.Matches(keyMsg, c.keymap.OpenBelow):
		c.OpenBelow()
	case key.Matches(keyMsg, c.keymap.OpenAbove):
		c.OpenAbove()
	}
	return c, nil
}

func (c *CommandModel) handleInsertKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, c.keymap.Confirm):
		c.Confirm()
	case key.Matches(msg, c.keymap.Backspace):
		c.Backspace()
	case msg.Type == tea.KeySpace:
		c.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		c.InsertText(string(msg.Runes))
	}
}

// MoveDown selects the next row, wrapping to the command name after the last argument.
func (c *CommandModel) MoveDown() {
	if c.mode != state.ModeNormal {
		return
	}
	if c.selected < len(c.arguments) {
		c.selected++
	} else {
		c.selected = 0
	}
}

// MoveUp selects the previous row, wrapping to the last argument from the command name.
func (c *CommandModel) MoveUp() {
	if c.mode != state.ModeNormal {
		return
	}
	if c.selected != 0 {
		c.selected--
	} else {
		c.selected = len(c.arguments)
	}
}

// Edit enters Insert mode on the selected argument. The command name cannot be edited.
func (c *CommandModel) Edit() {
	if c.mode != state.ModeNormal || c.selected == 0 {
		return
	}
	c.mode = state.ModeInsert
}

// OpenBelow inserts an empty argument after the selection and starts editing it.
func (c *CommandModel) OpenBelow() {
	if c.mode != state.ModeNormal {
		return
	}
	c.arguments = insertAt(c.arguments, c.selected, "")
	c.selected++
	c.mode = state.ModeInsert
}

// OpenAbove inserts an empty argument before the selected one and starts editing it.
func (c *CommandModel) OpenAbove() {
	if c.mode != state.ModeNormal || c.selected == 0 {
		return
	}
	c.arguments = insertAt(c.arguments, c.selected-1, "")
	c.mode = state.ModeInsert
}

// InsertText appends text to the argument being edited. Control characters,
// including newlines from pasted text, are dropped.
func (c *CommandModel) InsertText(text string) {
	if c.mode != state.ModeInsert {
		return
	}
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	c.arguments[c.selected-1] += text
}

// Backspace removes the last character of the argument being edited.
func (c *CommandModel) Backspace() {
	if c.mode != state.ModeInsert {
		return
	}
	runes := []rune(c.arguments[c.selected-1])
	if len(runes) == 0 {
		return
	}
	c.arguments[c.selected-1] = string(runes[:len(runes)-1])
}

// Confirm leaves Insert mode. An empty argument is removed, the whole list is
// normalized again, and the selection is clamped to the resulting list.
func (c *CommandModel) Confirm() {
	if c.mode != state.ModeInsert {
		return
	}

	if c.arguments[c.selected-1] == "" {
		c.arguments = append(c.arguments[:c.selected-1], c.arguments[c.selected:]...)
		c.clampSelection()
	}

	c.arguments = args.Normalize(c.arguments)
	c.clampSelection()
	c.mode = state.ModeNormal
}

func (c *CommandModel) clampSelection() {
	if c.selected > len(c.arguments) {
		c.selected = len(c.arguments)
	}
}

// View implements Component.
func (c *CommandModel) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	rows := len(c.arguments) + 1
	start := 0
	if c.selected >= c.height {
		start = c.selected - c.height + 1
	}
	end := min(start+c.height, rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, c.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (c *CommandModel) renderRow(i int) string {
	marker := strings.Repeat(" ", len(selectionMarker))
	if i == c.selected {
		marker = selectionMarker
	}
	available := c.width - len(marker)

	if i == 0 {
		text := utils.TruncateString(c.name, available)
		if i == c.selected {
			return styles.ArgumentSelected.Render(marker + text)
		}
		return styles.CommandName.Render(marker + text)
	}

	editing := c.mode == state.ModeInsert && i == c.selected
	if editing {
		text := utils.TruncateStart(argumentIndent+c.arguments[i-1]+insertCursor, available)
		return styles.ArgumentEditing.Render(marker + text)
	}

	text := utils.TruncateString(argumentIndent+c.arguments[i-1], available)
	if i == c.selected {
		return styles.ArgumentSelected.Render(marker + text)
	}
	return styles.Argument.Render(marker + text)
}

// SetSize implements Component.
func (c *CommandModel) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Focus implements Focusable.
func (c *CommandModel) Focus() {
	c.focused = true
}

// Blur implements Focusable.
func (c *CommandModel) Blur() {
	c.focused = false
}

// Focused implements Focusable.
func (c *CommandModel) Focused() bool {
	return c.focused
}

// Name returns the command name.
func (c *CommandModel) Name() string {
	return c.name
}

// Arguments returns a copy of the current argument list.
func (c *CommandModel) Arguments() []string {
	return append([]string{}, c.arguments...)
}

// Selected returns the selected row; 0 is the command name.
func (c *CommandModel) Selected() int {
	return c.selected
}

// Mode returns the current editing mode.
func (c *CommandModel) Mode() state.Mode {
	return c.mode
}

// CommandLine returns the command and its arguments as one line.
func (c *CommandModel) CommandLine() string {
	return args.Join(c.name, c.arguments)
}

func insertAt(list []string, i int, value string) []string {
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = value
	return list
}
