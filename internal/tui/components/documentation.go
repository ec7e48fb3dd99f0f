package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/comcom/internal/docs"
	"github.com/hy4ri/comcom/internal/tui/state"
	"github.com/hy4ri/comcom/internal/tui/styles"
)

// ScrollStep is the number of lines a single scroll moves the documentation.
const ScrollStep = 5

// DocumentationModel shows reference text with a line offset for scrolling.
// The offset is always a multiple of ScrollStep and never exceeds the last line.
type DocumentationModel struct {
	text    string
	lines   []string
	offset  int
	loading bool

	spinner spinner.Model
	keymap  state.KeymapData

	width, height int
	focused       bool
}

// NewDocumentation creates a DocumentationModel waiting for its text.
func NewDocumentation(keymap state.KeymapData) *DocumentationModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &DocumentationModel{
		loading: true,
		spinner: s,
		keymap:  keymap,
	}
}

// Init implements Component.
func (d *DocumentationModel) Init() tea.Cmd {
	if d.loading {
		return d.spinner.Tick
	}
	return nil
}

// Update implements Component.
func (d *DocumentationModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case DocumentationLoadedMsg:
		d.SetText(msg.Text)
	case spinner.TickMsg:
		if d.loading {
			var cmd tea.Cmd
			d.spinner, cmd = d.spinner.Update(msg)
			return d, cmd
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.keymap.ScrollDown):
			d.ScrollDown()
		case key.Matches(msg, d.keymap.ScrollUp):
			d.ScrollUp()
		case d.focused && key.Matches(msg, d.keymap.Down):
			d.ScrollDown()
		case d.focused && key.Matches(msg, d.keymap.Up):
			d.ScrollUp()
		}
	}
	return d, nil
}

// SetText replaces the documentation and resets the offset. Blank text is
// replaced with docs.Unavailable.
func (d *DocumentationModel) SetText(text string) {
	if strings.TrimSpace(text) == "" {
		text = docs.Unavailable
	}
	d.text = text
	d.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	d.offset = 0
	d.loading = false
}

// ScrollDown moves the view ScrollStep lines down, stopping at the last
// multiple of ScrollStep that still shows at least one line.
func (d *DocumentationModel) ScrollDown() {
	d.offset = min(d.offset+ScrollStep, d.maxOffset())
}

// ScrollUp moves the view ScrollStep lines up, stopping at the top.
func (d *DocumentationModel) ScrollUp() {
	d.offset = max(d.offset-ScrollStep, 0)
}

func (d *DocumentationModel) maxOffset() int {
	last := d.TotalLines() - 1
	if last <= 0 {
		return 0
	}
	return last / ScrollStep * ScrollStep
}

// TotalLines returns the number of lines in the text, ignoring trailing newlines.
func (d *DocumentationModel) TotalLines() int {
	return len(d.lines)
}

// Offset returns the number of leading lines hidden from view.
func (d *DocumentationModel) Offset() int {
	return d.offset
}

// Text returns the full documentation text.
func (d *DocumentationModel) Text() string {
	return d.text
}

// Loading reports whether the lookup is still running.
func (d *DocumentationModel) Loading() bool {
	return d.loading
}

// VisibleText returns the text from the current offset to the end.
func (d *DocumentationModel) VisibleText() string {
	if d.offset >= len(d.lines) {
		return ""
	}
	return strings.Join(d.lines[d.offset:], "\n")
}

// View implements Component. Long lines are wrapped to the pane width.
func (d *DocumentationModel) View() string {
	if d.width <= 0 || d.height <= 0 {
		return ""
	}

	if d.loading {
		return d.spinner.View() + " Loading documentation..."
	}

	// Each source line takes at least one row, so height lines are enough.
	end := min(d.offset+d.height, len(d.lines))
	visible := strings.Join(d.lines[d.offset:end], "\n")

	wrapped := lipgloss.NewStyle().Width(d.width).Render(visible)
	rows := strings.Split(wrapped, "\n")
	if len(rows) > d.height {
		rows = rows[:d.height]
	}
	return strings.Join(rows, "\n")
}

// SetSize implements Component.
func (d *DocumentationModel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Focus implements Focusable.
func (d *DocumentationModel) Focus() {
	d.focused = true
}

// Blur implements Focusable.
func (d *DocumentationModel) Blur() {
	d.focused = false
}

// Focused implements Focusable.
func (d *DocumentationModel) Focused() bool {
	return d.focused
}
