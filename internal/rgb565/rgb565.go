// Package rgb565 handles packed 16-bit colors: rrrrrggggggbbbbb.
package rgb565

import (
	"image/color"
	"math"
)

// Color is a packed RGB565 pixel.
type Color uint16

const (
	Black  Color = 0x0000
	White  Color = 0xFFFF
	Red    Color = 0xF800
	Green  Color = 0x07E0
	Blue   Color = 0x001F
	Yellow Color = 0xFFE0
	Cyan   Color = 0x07FF
	Gray   Color = 0x8410
	Orange Color = 0xFD20
)

// Pack builds a color from already-reduced channel values (5, 6 and 5 bits).
func Pack(r, g, b uint8) Color {
	return Color(uint16(r&0x1F)<<11 | uint16(g&0x3F)<<5 | uint16(b&0x1F))
}

// Channels splits c into its 5-bit red, 6-bit green and 5-bit blue parts.
func (c Color) Channels() (r, g, b uint8) {
	return uint8((c >> 11) & 0x1F), uint8((c >> 5) & 0x3F), uint8(c & 0x1F)
}

// FromRGB reduces 8-bit channels to RGB565.
func FromRGB(r, g, b uint8) Color {
	return Pack(r>>3, g>>2, b>>3)
}

// RGBA8 expands c to 8 bits per channel.
func (c Color) RGBA8() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{
		R: uint8(uint16(r) * 255 / 31),
		G: uint8(uint16(g) * 255 / 63),
		B: uint8(uint16(b) * 255 / 31),
		A: 0xFF,
	}
}

// FromRGBA reduces a color.RGBA, ignoring alpha.
func FromRGBA(c color.RGBA) Color {
	return FromRGB(c.R, c.G, c.B)
}

// Hex returns c as a "#RRGGBB" string.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	rgba := c.RGBA8()
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{rgba.R, rgba.G, rgba.B} {
		buf[1+2*i] = digits[v>>4]
		buf[2+2*i] = digits[v&0x0F]
	}
	return string(buf[:])
}

// Blend interpolates each channel of a toward b. ratio is clamped to [0, 1].
func Blend(a, b Color, ratio float64) Color {
	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	r1, g1, b1 := a.Channels()
	r2, g2, b2 := b.Channels()
	return Pack(
		lerp(r1, r2, ratio),
		lerp(g1, g2, ratio),
		lerp(b1, b2, ratio),
	)
}

func lerp(from, to uint8, ratio float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*ratio)
}

// Gradient maps an intensity in [0, 1] to green→yellow→red.
func Gradient(ratio float64) Color {
	if ratio < 0.5 {
		return Blend(Green, Yellow, ratio*2)
	}
	return Blend(Yellow, Red, (ratio-0.5)*2)
}
