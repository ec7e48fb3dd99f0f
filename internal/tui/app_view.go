package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/hy4ri/comcom/internal/tui/state"
	"github.com/hy4ri/comcom/internal/tui/styles"
)

const statusBarHeight = 1

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.showHelp {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.helpComp.View())
	}

	commandWidth, docsWidth := a.paneWidths()
	paneHeight := a.paneHeight()

	panes := a.renderPane("Command", a.commandComp.View(), commandWidth, paneHeight,
		a.focusedPane == state.PaneCommand)
	if docsWidth > 0 {
		docsPane := a.renderPane("Documentation", a.docsComp.View(), docsWidth, paneHeight,
			a.focusedPane == state.PaneDocumentation)
		panes = lipgloss.JoinHorizontal(lipgloss.Top, panes, docsPane)
	}

	return lipgloss.JoinVertical(lipgloss.Left, panes, a.renderStatusBar())
}

// layout sizes the components to fit inside the pane borders.
func (a *App) layout() {
	commandWidth, docsWidth := a.paneWidths()
	innerHeight := max(a.paneHeight()-2, 0)

	a.commandComp.SetSize(max(commandWidth-2, 0), innerHeight)
	a.docsComp.SetSize(max(docsWidth-2, 0), innerHeight)
	a.helpComp.SetSize(a.width, a.height)
	a.hints.Width = a.width
}

// paneWidths returns the outer widths of the command and documentation panes.
// The command pane keeps its configured width and the documentation pane
// takes whatever is left.
func (a *App) paneWidths() (int, int) {
	commandWidth := min(a.config.UI.CommandPaneWidth, a.width)
	return commandWidth, a.width - commandWidth
}

func (a *App) paneHeight() int {
	return max(a.height-statusBarHeight, 0)
}

// renderPane draws content in a rounded box of exactly width x height cells
// with the title set into the top border, e.g. ╭┤Command├──╮.
func (a *App) renderPane(title, content string, width, height int, focused bool) string {
	if width < 2 || height < 2 {
		return ""
	}

	style := styles.Pane
	if focused {
		style = styles.PaneFocused
	}
	border := lipgloss.RoundedBorder()
	borderColor := lipgloss.NewStyle().Foreground(style.GetBorderTopForeground())

	label := "┤" + title + "├"
	fill := width - 2 - lipgloss.Width(label)
	var top string
	if fill >= 0 {
		top = borderColor.Render(border.TopLeft+"┤") +
			styles.PaneTitle.Render(title) +
			borderColor.Render("├"+strings.Repeat(border.Top, fill)+border.TopRight)
	} else {
		top = borderColor.Render(border.TopLeft + strings.Repeat(border.Top, width-2) + border.TopRight)
	}

	body := style.
		Border(border, false, true, true, true).
		Width(width - 2).
		Height(height - 2).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// renderStatusBar renders the mode badge, the last status message and key hints.
func (a *App) renderStatusBar() string {
	mode := a.commandComp.Mode()

	badge := styles.ModeNormal.Render(mode.String())
	bindings := a.keymap.ShortHelp()
	if mode == state.ModeInsert {
		badge = styles.ModeInsert.Render(mode.String())
		bindings = a.keymap.InsertHelp()
	}

	parts := []string{badge}
	if a.statusMsg != "" {
		statusStyle := styles.StatusBarSuccess
		if a.statusFailed {
			statusStyle = styles.StatusBarError
		}
		parts = append(parts, statusStyle.Render(" "+a.statusMsg))
	}
	if a.config.UI.ShowHints {
		parts = append(parts, styles.StatusBarText.Render(" "), a.hints.ShortHelpView(bindings))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	width := max(a.width-2, 0)
	return styles.StatusBar.Width(a.width).Render(ansi.Truncate(bar, width, "…"))
}
