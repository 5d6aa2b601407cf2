package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the screen panel and readings panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, screenPanel, readings, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, screenPanel, readings)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// RenderScreenPanel wraps the rendered meter screen with a styled border.
func RenderScreenPanel(width, height int, screen, caption string) string {
	content := screen + "\n" + caption
	return StylePanelActive.Width(width - 2).Height(height - 2).Render(content)
}
