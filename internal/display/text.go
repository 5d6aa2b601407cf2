package display

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"swr-meter.klederson.com/internal/rgb565"
)

// SetCursor places the top-left corner of the next glyph.
func (f *Framebuffer) SetCursor(x, y int16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursorX, f.cursorY = x, y
}

// SetTextColor sets the color used by Print.
func (f *Framebuffer) SetTextColor(c rgb565.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textColor = c
}

// SetTextSize sets the integer glyph scale. Zero is treated as 1.
func (f *Framebuffer) SetTextSize(size uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if size == 0 {
		size = 1
	}
	f.textSize = int16(size)
}

// Print draws s at the cursor and advances it.
func (f *Framebuffer) Print(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	g := glyphs{f: f, ox: f.cursorX, oy: f.cursorY, size: f.textSize}
	tinyfont.WriteLine(&g, f.font, f.cursorX, f.cursorY+fontAscent, s, f.textColor.RGBA8())
	f.cursorX += f.textWidth(s)
}

// TextWidth is the advance of s at the current size.
func (f *Framebuffer) TextWidth(s string) int16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.textWidth(s)
}

func (f *Framebuffer) textWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(f.font, s)
	return int16(outbox) * f.textSize
}

// TextHeight is the line height at the current size.
func (f *Framebuffer) TextHeight() int16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fontHeight * f.textSize
}

// glyphs receives tinyfont's pixels while Print holds the lock, scaling each
// one around the cursor.
type glyphs struct {
	f      *Framebuffer
	ox, oy int16
	size   int16
}

func (g *glyphs) Size() (x, y int16) {
	return g.f.Size()
}

func (g *glyphs) SetPixel(x, y int16, c color.RGBA) {
	px := int(g.ox) + int(x-g.ox)*int(g.size)
	py := int(g.oy) + int(y-g.oy)*int(g.size)
	g.f.fillRect(px, py, int(g.size), int(g.size), rgb565.FromRGBA(c))
}

func (g *glyphs) Display() error {
	return nil
}
