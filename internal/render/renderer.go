package render

import (
	"fmt"
	"math"

	"swr-meter.klederson.com/internal/config"
	"swr-meter.klederson.com/internal/meter"
	"swr-meter.klederson.com/internal/rgb565"
)

// Renderer turns frames into the minimal set of canvas operations.
type Renderer struct {
	c Canvas
}

// New creates a Renderer drawing onto c.
func New(c Canvas) *Renderer {
	return &Renderer{c: c}
}

// Init paints the whole screen for the frame's state. It is used at power-on
// and when a full redraw is requested.
func (r *Renderer) Init(f meter.Frame) {
	r.c.FillScreen(colorBackground)
	r.drawStatic(f.Mode)
	r.drawForward(f.Next.Forward)
	r.drawPeak(f.Peak.Power, f.Next.Forward)
	r.drawSWR(f.Next.SWR)
	r.drawBarDelta(config.PowerBarY, 0, f.Next.LastPowerBar)
	r.drawBarDelta(config.SWRBarY, 0, f.Next.LastSWRBar)
	if f.Next.PeakMarker >= 0 {
		r.drawMarker(f.Next.PeakMarker)
	}
}

// Draw applies one frame's changes.
func (r *Renderer) Draw(f meter.Frame) {
	d := f.Dirty
	powerMoved := f.Next.LastPowerBar != f.Prev.LastPowerBar

	if d.Mode {
		r.drawMode(f.Mode)
	}
	if d.Forward {
		r.drawForward(f.Next.Forward)
	}
	if d.Peak || d.Forward {
		r.drawPeak(f.Peak.Power, f.Next.Forward)
	}
	if d.SWR {
		r.drawSWR(f.Next.SWR)
	}

	markerUpdate := d.Peak || d.Mode || powerMoved || f.Prev.PeakMarker != f.Next.PeakMarker
	if markerUpdate && f.Prev.PeakMarker >= 0 {
		r.clearMarker(f.Prev.PeakMarker, f.Prev.LastPowerBar)
	}
	if powerMoved {
		r.drawBarDelta(config.PowerBarY, f.Prev.LastPowerBar, f.Next.LastPowerBar)
	}
	if markerUpdate && f.Next.PeakMarker >= 0 {
		r.drawMarker(f.Next.PeakMarker)
	}

	if f.Next.LastSWRBar != f.Prev.LastSWRBar {
		r.drawBarDelta(config.SWRBarY, f.Prev.LastSWRBar, f.Next.LastSWRBar)
	}
}

func (r *Renderer) drawForward(w float64) {
	r.drawValue(config.ForwardX, config.ForwardY, maxForwardText, fmt.Sprintf("%.1fW", w), colorForward)
}

func (r *Renderer) drawSWR(swr float64) {
	r.drawValue(config.SWRX, config.SWRY, maxSWRText, fmt.Sprintf("SWR %.2f", swr), colorSWR)
}

func (r *Renderer) drawValue(x, y int16, widest, text string, col rgb565.Color) {
	c := r.c
	c.SetTextSize(config.ValueTextSize)
	c.FillRect(x, y, c.TextWidth(widest), c.TextHeight(), colorBackground)
	c.SetCursor(x, y)
	c.SetTextColor(col)
	c.Print(text)
}

func (r *Renderer) drawPeak(peak, displayedForward float64) {
	c := r.c
	c.SetTextSize(config.LabelTextSize)
	c.FillRect(config.PeakX, config.PeakY, c.TextWidth(maxPeakText), c.TextHeight(), colorBackground)
	if peak <= 0 {
		return
	}
	if peak > displayedForward {
		c.SetTextColor(colorPeakHigh)
	} else {
		c.SetTextColor(colorPeakLow)
	}
	c.SetCursor(config.PeakX, config.PeakY)
	c.Print(fmt.Sprintf("Peak:%d", int(math.Round(peak))))
}

// drawBarDelta paints or clears only the columns between two bar lengths.
func (r *Renderer) drawBarDelta(y int16, from, to int) {
	switch {
	case to <= 0:
		r.c.FillRect(config.BarX, y, config.BarWidth, config.BarHeight, colorBackground)
	case to > from:
		for col := from; col < to; col++ {
			r.paintBarColumn(y, col)
		}
	case to < from:
		r.c.FillRect(int16(config.BarX+to), y, int16(from-to), config.BarHeight, colorBackground)
	}
}

func (r *Renderer) paintBarColumn(y int16, col int) {
	r.c.VLine(int16(config.BarX+col), y, config.BarHeight, BarColor(col))
}

// BarColor is the gradient color of a bar column.
func BarColor(col int) rgb565.Color {
	return rgb565.Gradient(float64(col) / float64(config.BarWidth-1))
}

func markerSpan() (y, h int16) {
	return config.PowerBarY - config.MarkerOverhang, config.BarHeight + 2*config.MarkerOverhang
}

func (r *Renderer) drawMarker(col int) {
	y, h := markerSpan()
	r.c.VLine(int16(config.BarX+col), y, h, colorMarker)
}

// clearMarker restores what the marker covered: background, bar frame and,
// inside the painted bar, the bar column itself.
func (r *Renderer) clearMarker(col, barLen int) {
	x := int16(config.BarX + col)
	y, h := markerSpan()
	r.c.VLine(x, y, h, colorBackground)
	r.c.VLine(x, config.PowerBarY-1, 1, colorBarFrame)
	r.c.VLine(x, config.PowerBarY+config.BarHeight, 1, colorBarFrame)
	if col < barLen {
		r.paintBarColumn(config.PowerBarY, col)
	}
}
