package display

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"periph.io/x/conn/v3/display"
)

var _ display.Drawer = (*Mirror)(nil)

// Mirror is a presentation sink that keeps an RGBA copy of everything
// presented to it, for host windows that cannot read RGB565 directly.
type Mirror struct {
	mu    sync.Mutex
	img   *image.RGBA
	dirty bool
}

// NewMirror creates a black width×height mirror.
func NewMirror(width, height int) *Mirror {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return &Mirror{img: img, dirty: true}
}

func (m *Mirror) String() string          { return "mirror" }
func (m *Mirror) Halt() error             { return nil }
func (m *Mirror) ColorModel() color.Model { return color.RGBAModel }
func (m *Mirror) Bounds() image.Rectangle { return m.img.Bounds() }

// Draw copies src into r.
func (m *Mirror) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	draw.Draw(m.img, r, src, sp, draw.Src)
	m.dirty = true
	return nil
}

// CopyIfChanged calls fn with the RGBA pixels when something was drawn since
// the last call. It reports whether fn ran.
func (m *Mirror) CopyIfChanged(fn func(pix []byte)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty {
		return false
	}
	fn(m.img.Pix)
	m.dirty = false
	return true
}

// At returns the mirrored color at (x, y).
func (m *Mirror) At(x, y int) color.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.img.RGBAAt(x, y)
}
