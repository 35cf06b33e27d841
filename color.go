package roomplanner

import (
	"image/color"
	"math"
)

// Color is a 24-bit 0xRRGGBB value.
type Color uint32

const (
	colorMask  = 0xffffff
	WhiteColor = Color(0xffffff)
	BlackColor = Color(0x000000)
)

func NewColor(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b int) {
	return int(c>>16) & 0xff, int(c>>8) & 0xff, int(c) & 0xff
}

func (c Color) RGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func channelStep(amount float64) int {
	if math.IsNaN(amount) {
		return 0
	}
	step := math.Round(255 * amount)
	// anything past a full channel saturates anyway
	return int(clampFloat(step, -510, 510))
}

func shift(c Color, delta int) Color {
	r, g, b := c.Channels()
	return NewColor(
		uint8(clamp(r+delta, 0, 255)),
		uint8(clamp(g+delta, 0, 255)),
		uint8(clamp(b+delta, 0, 255)),
	)
}

// Lighten adds round(255*amount) to every channel, saturating at 255.
func Lighten(c Color, amount float64) Color {
	return shift(c&colorMask, channelStep(amount))
}

// Darken subtracts round(255*amount) from every channel, saturating at 0.
func Darken(c Color, amount float64) Color {
	return shift(c&colorMask, -channelStep(amount))
}

// Scale multiplies every channel by f.
func Scale(c Color, f float64) Color {
	r, g, b := c.Channels()
	return NewColor(
		uint8(clampFloat(math.Round(float64(r)*f), 0, 255)),
		uint8(clampFloat(math.Round(float64(g)*f), 0, 255)),
		uint8(clampFloat(math.Round(float64(b)*f), 0, 255)),
	)
}

// Mix blends a towards b by t in [0,1].
func Mix(a, b Color, t float64) Color {
	t = clampFloat(t, 0, 1)
	ar, ag, ab := a.Channels()
	br, bg, bb := b.Channels()
	lerp := func(x, y int) uint8 {
		return uint8(clampFloat(math.Round(float64(x)+(float64(y)-float64(x))*t), 0, 255))
	}
	return NewColor(lerp(ar, br), lerp(ag, bg), lerp(ab, bb))
}
