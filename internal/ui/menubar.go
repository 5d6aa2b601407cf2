package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swr-meter.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, running bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"P", "ause"},
		{"R", "edraw"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusRunning.Render("RUNNING")
	if !running {
		status = StyleStatusPaused.Render("PAUSED")
	}

	sourceInfo := StyleMenuLabel.Render(fmt.Sprintf("Source: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + sourceInfo + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
