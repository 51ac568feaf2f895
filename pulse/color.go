package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// ClearColor is the color every frame is cleared to.
var ClearColor = ColorLinearRGBA(0.1, 0.2, 0.3, 1.0)

// Color is a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// Components returns the color components in linear rgb space.
func (c Color) Components() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

// ToWGPU converts the color into a clear value for a render pass.
func (c Color) ToWGPU() wgpu.Color {
	r, g, b, a := c.Components()

	return wgpu.Color{
		R: float64(r),
		G: float64(g),
		B: float64(b),
		A: float64(a),
	}
}
