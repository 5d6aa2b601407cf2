package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swr-meter.klederson.com/internal/rgb565"
)

type captureDrawer struct {
	rects  []image.Rectangle
	pixels []color.Color
}

func (d *captureDrawer) String() string           { return "capture" }
func (d *captureDrawer) Halt() error              { return nil }
func (d *captureDrawer) ColorModel() color.Model  { return color.RGBAModel }
func (d *captureDrawer) Bounds() image.Rectangle  { return image.Rect(0, 0, 170, 136) }
func (d *captureDrawer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	d.rects = append(d.rects, dst)
	d.pixels = append(d.pixels, src.At(sp.X, sp.Y))
	return nil
}

func TestFillRectClipsAndCounts(t *testing.T) {
	fb := NewFramebuffer(20, 10)
	fb.FillRect(-5, 8, 10, 10, rgb565.Red)
	require.NoError(t, fb.Present())

	s := fb.Stats()
	assert.Equal(t, 10, s.Pixels, "5 columns x 2 rows survive clipping")
	assert.Equal(t, image.Rect(0, 8, 5, 10), s.Damage)
	assert.Equal(t, rgb565.Red, fb.Pixel(0, 9))
	assert.Equal(t, rgb565.Black, fb.Pixel(5, 9))
	assert.Equal(t, rgb565.Black, fb.Pixel(-1, 9))
}

func TestLines(t *testing.T) {
	fb := NewFramebuffer(20, 10)
	fb.HLine(2, 3, 4, rgb565.Green)
	fb.VLine(10, 1, 5, rgb565.Blue)

	for x := 2; x < 6; x++ {
		assert.Equal(t, rgb565.Green, fb.Pixel(x, 3))
	}
	assert.Equal(t, rgb565.Black, fb.Pixel(6, 3))
	for y := 1; y < 6; y++ {
		assert.Equal(t, rgb565.Blue, fb.Pixel(10, y))
	}
}

func TestPresentRollsStatsOver(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.FillScreen(rgb565.White)
	require.NoError(t, fb.Present())
	assert.Equal(t, 1.0, fb.Stats().Fraction(10, 10))

	require.NoError(t, fb.Present())
	assert.Zero(t, fb.Stats().Pixels)
	assert.True(t, fb.Stats().Damage.Empty())
}

func TestPresentPushesDamageToSink(t *testing.T) {
	fb := NewFramebuffer(170, 136)
	sink := &captureDrawer{}
	fb.SetSink(sink)

	require.NoError(t, fb.Present())
	assert.Empty(t, sink.rects, "nothing written, nothing pushed")

	fb.VLine(40, 30, 16, rgb565.Yellow)
	require.NoError(t, fb.Present())
	require.Len(t, sink.rects, 1)
	assert.Equal(t, image.Rect(40, 30, 41, 46), sink.rects[0])
	assert.Equal(t, rgb565.Yellow.RGBA8(), sink.pixels[0])
}

func TestDisplayerSetPixel(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	w, h := fb.Size()
	assert.Equal(t, [2]int16{8, 8}, [2]int16{w, h})

	fb.SetPixel(3, 4, color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF})
	assert.Equal(t, rgb565.Yellow, fb.Pixel(3, 4))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}, fb.At(3, 4))
	require.NoError(t, fb.Display())
}

func TestPrintStaysInsideTextBox(t *testing.T) {
	for _, size := range []uint8{1, 2} {
		fb := NewFramebuffer(100, 40)
		fb.SetTextSize(size)
		fb.SetTextColor(rgb565.Cyan)
		fb.SetCursor(10, 5)

		w, h := fb.TextWidth("42.0W"), fb.TextHeight()
		require.Positive(t, w)
		fb.Print("42.0W")
		require.NoError(t, fb.Present())

		box := image.Rect(10, 5, 10+int(w), 5+int(h))
		lit := 0
		for y := 0; y < 40; y++ {
			for x := 0; x < 100; x++ {
				if fb.Pixel(x, y) == rgb565.Black {
					continue
				}
				lit++
				assert.True(t, image.Pt(x, y).In(box), "size %d: pixel (%d,%d) outside %v", size, x, y, box)
				assert.Equal(t, rgb565.Cyan, fb.Pixel(x, y))
			}
		}
		assert.Positive(t, lit, "size %d drew nothing", size)
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	fb := NewFramebuffer(100, 20)
	fb.SetTextSize(2)
	fb.SetCursor(0, 0)
	fb.Print("1")
	fb.Print("1")

	one := NewFramebuffer(100, 20)
	one.SetTextSize(2)
	one.SetCursor(0, 0)
	one.Print("11")

	assert.Equal(t, one.Snapshot(nil), fb.Snapshot(nil))
}

func TestTextSizeScalesMetrics(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.SetTextSize(1)
	w1, h1 := fb.TextWidth("SWR"), fb.TextHeight()
	fb.SetTextSize(2)
	assert.Equal(t, 2*w1, fb.TextWidth("SWR"))
	assert.Equal(t, 2*h1, fb.TextHeight())

	fb.SetTextSize(0)
	assert.Equal(t, w1, fb.TextWidth("SWR"))
}
