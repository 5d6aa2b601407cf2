// Package render draws meter frames onto a raster display, repainting only what
// each frame's dirty flags and bar deltas require.
package render

import "swr-meter.klederson.com/internal/rgb565"

// Canvas is the drawing surface of the display device. Coordinates are device
// pixels; the cursor is the top-left corner of the next glyph.
type Canvas interface {
	FillScreen(c rgb565.Color)
	FillRect(x, y, w, h int16, c rgb565.Color)
	HLine(x, y, w int16, c rgb565.Color)
	VLine(x, y, h int16, c rgb565.Color)

	SetCursor(x, y int16)
	SetTextColor(c rgb565.Color)
	SetTextSize(size uint8)
	Print(s string)

	// TextWidth and TextHeight report the extent Print would cover at the
	// current text size.
	TextWidth(s string) int16
	TextHeight() int16
}
