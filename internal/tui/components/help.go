package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/comcom/internal/tui/styles"
)

// HelpModel renders the help overlay with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keymap        [][]string
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.keymap) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	keyStyle := styles.HelpKey.Width(16).Align(lipgloss.Right).PaddingRight(2)
	for _, item := range h.keymap {
		if len(item) < 2 {
			continue
		}
		k, desc := item[0], item[1]

		switch {
		case k == "" && desc == "":
			continue
		case desc == "":
			// Section header
			b.WriteString("\n" + styles.SectionHeader.Render(k) + "\n")
		default:
			b.WriteString(keyStyle.Render(k) + styles.HelpDesc.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))

	return styles.Dialog.Render(b.String())
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetKeymap sets custom help items.
func (h *HelpModel) SetKeymap(items [][]string) {
	h.keymap = items
}
