package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the summary shown in the bottom bar.
type Status struct {
	Running   bool
	Mode      string
	RangeHigh bool // Level of the range-select output
	Cycles    int
	Repaint   float64 // Fraction of the screen written last cycle
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	status := StyleStatusRunning.Render("[RUNNING]")
	if !s.Running {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	line := StyleRangeLow.Render("LOW")
	if s.RangeHigh {
		line = StyleRangeHigh.Render("HIGH")
	}

	info := fmt.Sprintf(" Scale: %s  Cycles: %d  Repaint: %5.1f%%  Range line: ",
		s.Mode, s.Cycles, s.Repaint*100)

	content := status + StyleLabel.Render(info) + line

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
