package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/rgb565"
)

// RenderReadings renders the numeric readings panel beside the screen.
func RenderReadings(f meter.Frame, trace []TracePoint, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{
		StylePanelTitle.Render("READINGS"),
		StyleRule.Render(strings.Repeat("-", innerW)),
		"",
	}

	peak := "-"
	if f.Peak.Power > 0 {
		peak = fmt.Sprintf("%.0f W", f.Peak.Power)
	}

	fields := []struct {
		label, value string
		style        lipgloss.Style
	}{
		{"Forward", fmt.Sprintf("%.1f W", f.Measurement.Forward), StyleForward},
		{"Reflected", fmt.Sprintf("%.2f W", f.Measurement.Reflected), StyleValue},
		{"SWR", fmt.Sprintf("%.2f", f.Reading.SWR), StyleSWR},
		{"Peak", peak, StyleValue},
		{"Scale", fmt.Sprintf("%s %.0f W", f.Mode, f.Mode.FullScale()), StyleValue},
	}
	for _, fl := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-10s", fl.label))+fl.style.Render(fl.value))
	}

	lines = append(lines, "")

	barW := innerW - 12
	if barW < 10 {
		barW = 10
	}
	lines = append(lines,
		StyleLabel.Render("  Power    ")+renderLevelBar(f.Measurement.Forward/f.Mode.FullScale(), barW),
		StyleLabel.Render("  SWR      ")+renderLevelBar((f.Reading.SWR-1)/(config.SWRBarMax-1), barW),
		"",
	)

	if len(trace) > 0 {
		traceW := innerW - 4
		if traceW < 10 {
			traceW = 10
		}
		lines = append(lines, StyleLabel.Render("  Forward Trace:"))
		lines = append(lines, "  "+renderTrace(trace, traceW))
	}

	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

// renderLevelBar draws ratio of width as a bar colored like the meter's
// on-screen gradient.
func renderLevelBar(ratio float64, width int) string {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	var sb strings.Builder
	sb.WriteString(StyleHelp.Render("["))
	for i := 0; i < filled; i++ {
		c := rgb565.Gradient(float64(i) / float64(width-1))
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("|"))
	}
	sb.WriteString(StyleHelp.Render(strings.Repeat("-", width-filled) + "]"))
	return sb.String()
}

// TracePoint is one cycle of the forward power trace.
type TracePoint struct {
	Forward   float64
	FullScale float64 // Scale the reading was taken on
	Switched  bool    // A range switch happened this cycle
}

var traceLevels = []rune(" ▁▂▃▄▅▆▇█")

// renderTrace draws the newest width points, each as a block scaled to the
// full scale it was measured on. Range switches show as a bar in the
// warning color.
func renderTrace(points []TracePoint, width int) string {
	if width < 1 || len(points) == 0 {
		return ""
	}
	if len(points) > width {
		points = points[len(points)-width:]
	}

	var sb strings.Builder
	var run []rune
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(StyleForward.Render(string(run)))
			run = run[:0]
		}
	}
	for _, p := range points {
		if p.Switched {
			flush()
			sb.WriteString(StyleRangeHigh.Render("┃"))
			continue
		}
		run = append(run, traceLevel(p.Forward, p.FullScale))
	}
	flush()
	return sb.String()
}

// traceLevel picks the block for forward/fullScale. Any power above zero gets
// at least the lowest block.
func traceLevel(forward, fullScale float64) rune {
	if fullScale <= 0 || !(forward > 0) {
		return traceLevels[0]
	}
	top := len(traceLevels) - 1
	n := int(math.Ceil(forward / fullScale * float64(top)))
	if n > top {
		n = top
	}
	return traceLevels[n]
}
