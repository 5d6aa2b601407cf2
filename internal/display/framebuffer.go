// Package display provides the in-memory RGB565 screen the meter draws on.
//
// Framebuffer implements render.Canvas for the renderer, drivers.Displayer so
// tinyfont can draw glyphs into it, and image.Image so the changed region can
// be pushed to any periph.io display.Drawer. Every write extends a damage
// rectangle and a pixel counter; Present hands the damaged region to the sink
// and resets both.
package display

import (
	"image"
	"image/color"
	"sync"

	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"swr-meter.klederson.com/internal/render"
	"swr-meter.klederson.com/internal/rgb565"
)

var (
	_ render.Canvas     = (*Framebuffer)(nil)
	_ drivers.Displayer = (*Framebuffer)(nil)
	_ image.Image       = (*Framebuffer)(nil)
)

// Glyph metrics of the TomThumb font at size 1.
const (
	fontAscent = 5
	fontHeight = 6
)

// Stats describes the writes since the previous Present.
type Stats struct {
	Pixels int             // Pixel writes, overlapping writes counted each time
	Damage image.Rectangle // Bounding box of everything written
}

// Framebuffer is a little-endian RGB565 pixel buffer.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	cursorX, cursorY int16
	textColor        rgb565.Color
	textSize         int16
	font             tinyfont.Fonter

	pending Stats
	last    Stats
	sink    display.Drawer
}

// NewFramebuffer allocates a black width×height screen.
func NewFramebuffer(width, height int) *Framebuffer {
	stride := width * 2
	return &Framebuffer{
		width:     width,
		height:    height,
		stride:    stride,
		buf:       make([]byte, stride*height),
		textColor: rgb565.White,
		textSize:  1,
		font:      &tinyfont.TomThumb,
	}
}

// SetSink attaches a display that receives the damaged region on Present.
func (f *Framebuffer) SetSink(d display.Drawer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sink = d
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Pixel returns the color at (x, y), or black outside the screen.
func (f *Framebuffer) Pixel(x, y int) rgb565.Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pixel(x, y)
}

func (f *Framebuffer) pixel(x, y int) rgb565.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return rgb565.Black
	}
	off := y*f.stride + x*2
	return rgb565.Color(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

// Snapshot copies the screen into dst, row-major, growing it if needed.
func (f *Framebuffer) Snapshot(dst []rgb565.Color) []rgb565.Color {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.width * f.height
	if cap(dst) < n {
		dst = make([]rgb565.Color, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = rgb565.Color(uint16(f.buf[2*i]) | uint16(f.buf[2*i+1])<<8)
	}
	return dst
}

// Stats returns the writes recorded before the most recent Present.
func (f *Framebuffer) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Fraction is the share of the screen written, capped at 1.
func (s Stats) Fraction(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	v := float64(s.Pixels) / float64(width*height)
	if v > 1 {
		return 1
	}
	return v
}

// Present closes the current cycle: the damaged region is pushed to the sink
// and the counters roll over.
func (f *Framebuffer) Present() error {
	f.mu.Lock()
	f.last = f.pending
	f.pending = Stats{}
	sink := f.sink
	damage := f.last.Damage
	f.mu.Unlock()

	if sink == nil || damage.Empty() {
		return nil
	}
	return sink.Draw(damage, f, damage.Min)
}

// fillRect writes a clipped rectangle. Callers hold mu.
func (f *Framebuffer) fillRect(x, y, w, h int, c rgb565.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, f.width, f.height))
	if r.Empty() {
		return
	}
	lo, hi := byte(c), byte(c>>8)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * f.stride
		for px := r.Min.X; px < r.Max.X; px++ {
			f.buf[row+px*2] = lo
			f.buf[row+px*2+1] = hi
		}
	}
	f.pending.Pixels += r.Dx() * r.Dy()
	f.pending.Damage = f.pending.Damage.Union(r)
}

// FillScreen paints every pixel.
func (f *Framebuffer) FillScreen(c rgb565.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillRect(0, 0, f.width, f.height, c)
}

// FillRect paints a w×h rectangle at (x, y), clipped to the screen.
func (f *Framebuffer) FillRect(x, y, w, h int16, c rgb565.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillRect(int(x), int(y), int(w), int(h), c)
}

// HLine draws a horizontal line of width w.
func (f *Framebuffer) HLine(x, y, w int16, c rgb565.Color) {
	f.FillRect(x, y, w, 1, c)
}

// VLine draws a vertical line of height h.
func (f *Framebuffer) VLine(x, y, h int16, c rgb565.Color) {
	f.FillRect(x, y, 1, h, c)
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.width), int16(f.height)
}

// SetPixel implements drivers.Displayer.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillRect(int(x), int(y), 1, 1, rgb565.FromRGBA(c))
}

// Display implements drivers.Displayer.
func (f *Framebuffer) Display() error {
	return f.Present()
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.Pixel(x, y).RGBA8()
}
