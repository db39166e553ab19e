package types

import (
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// A Color holds unbounded linear RGB channel values. All arithmetic
// returns a new value; operands are never mutated.
type Color f32.Vec3

// Define a color from its channel values.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }

// Add a color component-wise.
func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Scale all channels by a scalar.
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Modulate a color component-wise.
func (c Color) MulColor(c2 Color) Color {
	return Color{c[0] * c2[0], c[1] * c2[1], c[2] * c2[2]}
}

// Convert to a display color, clamping each channel to [0, 1] before
// scaling to the 8 bit range.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clampChannel(c[0]) * 255.0),
		G: uint8(clampChannel(c[1]) * 255.0),
		B: uint8(clampChannel(c[2]) * 255.0),
		A: 255,
	}
}

// Average a non-empty sequence of colors component-wise. Averaging an
// empty sequence yields black.
func AverageColors(colors []Color) Color {
	if len(colors) == 0 {
		return Color{}
	}

	var sum Color
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Scale(1.0 / float32(len(colors)))
}

func clampChannel(v float32) float32 {
	return math32.Max(0.0, math32.Min(v, 1.0))
}
