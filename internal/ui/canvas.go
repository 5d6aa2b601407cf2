package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"swr-meter.klederson.com/internal/rgb565"
)

const halfBlock = "▀"

type cellColors struct {
	top, bottom rgb565.Color
}

var (
	cellStylesMu sync.Mutex
	cellStyles   = map[cellColors]lipgloss.Style{}
)

func cellStyle(c cellColors) lipgloss.Style {
	cellStylesMu.Lock()
	defer cellStylesMu.Unlock()
	st, ok := cellStyles[c]
	if !ok {
		st = lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.top.Hex())).
			Background(lipgloss.Color(c.bottom.Hex()))
		cellStyles[c] = st
	}
	return st
}

// ScreenScale returns the integer downsampling factor that fits a
// width×height pixel screen into cols×rows character cells.
func ScreenScale(width, height, cols, rows int) int {
	if cols < 1 || rows < 1 {
		return 0
	}
	step := 1
	for width/step > cols || (height/step+1)/2 > rows {
		step++
	}
	return step
}

// RenderScreen draws RGB565 pixels with upper half blocks, two pixel rows per
// text row, downsampled to fit cols×rows. Runs of identical cells share one
// styled segment.
func RenderScreen(pix []rgb565.Color, width, height, cols, rows int) string {
	if width <= 0 || height <= 0 || len(pix) < width*height {
		return ""
	}
	step := ScreenScale(width, height, cols, rows)
	if step == 0 {
		return ""
	}
	outW, outH := width/step, height/step

	at := func(x, y int) rgb565.Color {
		if y >= outH {
			return rgb565.Black
		}
		return pix[y*step*width+x*step]
	}

	var sb strings.Builder
	for y := 0; y < outH; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var cur cellColors
		run := 0
		for x := 0; x < outW; x++ {
			c := cellColors{top: at(x, y), bottom: at(x, y+1)}
			if run > 0 && c != cur {
				sb.WriteString(cellStyle(cur).Render(strings.Repeat(halfBlock, run)))
				run = 0
			}
			cur = c
			run++
		}
		if run > 0 {
			sb.WriteString(cellStyle(cur).Render(strings.Repeat(halfBlock, run)))
		}
	}
	return sb.String()
}
