package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/rgb565"
)

func TestScreenScale(t *testing.T) {
	tests := []struct {
		name                      string
		width, height, cols, rows int
		want                      int
	}{
		{"fits at full size", 170, 136, 200, 80, 1},
		{"too narrow", 170, 136, 100, 80, 2},
		{"too short", 170, 136, 200, 30, 3},
		{"no room", 170, 136, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScreenScale(tt.width, tt.height, tt.cols, tt.rows))
		})
	}
}

func TestRenderScreenDimensions(t *testing.T) {
	pix := make([]rgb565.Color, 8*6)
	for i := range pix {
		pix[i] = rgb565.Red
	}
	pix[0] = rgb565.Green

	out := RenderScreen(pix, 8, 6, 8, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 8, lipgloss.Width(l))
		assert.Equal(t, 8, strings.Count(l, halfBlock))
	}

	half := strings.Split(RenderScreen(pix, 8, 6, 4, 3), "\n")
	require.Len(t, half, 2, "6 rows at scale 2 give 3 pixel rows, 2 text rows")
	assert.Equal(t, 4, lipgloss.Width(half[0]))

	assert.Empty(t, RenderScreen(pix[:10], 8, 6, 8, 3))
}

func TestCellStyleCached(t *testing.T) {
	c := cellColors{top: rgb565.Orange, bottom: rgb565.Blue}
	cellStyle(c)
	cellStylesMu.Lock()
	_, ok := cellStyles[c]
	cellStylesMu.Unlock()
	assert.True(t, ok)
}

func TestTraceLevel(t *testing.T) {
	tests := []struct {
		name               string
		forward, fullScale float64
		want               rune
	}{
		{"no power", 0, 50, ' '},
		{"trickle shows", 0.1, 200, '▁'},
		{"half of low scale", 25, 50, '▄'},
		{"same watts on high scale", 25, 200, '▁'},
		{"full scale", 50, 50, '█'},
		{"over range", 80, 50, '█'},
		{"no scale", 10, 0, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(traceLevel(tt.forward, tt.fullScale)))
		})
	}
}

func TestRenderTrace(t *testing.T) {
	assert.Empty(t, renderTrace(nil, 10))

	points := []TracePoint{
		{Forward: 50, FullScale: 50},
		{Forward: 60, FullScale: 200, Switched: true},
		{Forward: 100, FullScale: 200},
		{Forward: 200, FullScale: 200},
	}
	assert.Equal(t, "█┃▄█", renderTrace(points, 10))
	assert.Equal(t, "▄█", renderTrace(points, 2), "keeps the newest points")
}

func TestRenderLevelBar(t *testing.T) {
	full := renderLevelBar(2, 10)
	assert.Equal(t, 12, lipgloss.Width(full))
	assert.Equal(t, 10, strings.Count(full, "|"))

	empty := renderLevelBar(-1, 10)
	assert.Equal(t, 0, strings.Count(empty, "|"))
	assert.Equal(t, 10, strings.Count(empty, "-"))
}

func TestRenderReadings(t *testing.T) {
	f := meter.Frame{
		Measurement: meter.Measurement{Forward: 42.5, Reflected: 2.1},
		Reading:     meter.Reading{SWR: 1.57},
		Peak:        meter.PeakState{Power: 44},
		Mode:        meter.ModeLow,
	}
	out := RenderReadings(f, []TracePoint{{Forward: 10, FullScale: 50}, {Forward: 42.5, FullScale: 50}}, 40, 20)

	assert.Contains(t, out, "42.5 W")
	assert.Contains(t, out, "1.57")
	assert.Contains(t, out, "44 W")
	assert.Contains(t, out, "LOW 50 W")
	assert.Contains(t, out, "Forward Trace")
	assert.Equal(t, 20, lipgloss.Height(out))
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(100, Status{Running: false, Mode: "HIGH", RangeHigh: true, Cycles: 12, Repaint: 0.125})
	assert.Contains(t, out, "[PAUSED]")
	assert.Contains(t, out, "Scale: HIGH")
	assert.Contains(t, out, "12.5%")
	assert.Equal(t, 100, lipgloss.Width(out))
}

func TestRenderMenuBar(t *testing.T) {
	out := RenderMenuBar(90, "demo", true)
	assert.Contains(t, out, "SWR-METER")
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "Source: demo")
}
