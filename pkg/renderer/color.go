package renderer

import (
	"image/color"
	"math"

	"github.com/jdf/go-raytracer/pkg/core"
)

// colorMax is the quantization multiplier: the largest float64 below
// 256, so a full-intensity channel maps to 255 instead of wrapping.
var colorMax = 256.0 - 128.0*(math.Nextafter(1, 2)-1)

// ToRGBA quantizes a linear color with components in [0, 1] to an
// opaque 8-bit RGBA value. Out-of-range components are clamped first,
// so the result can never wrap.
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(colorMax * c.X),
		G: uint8(colorMax * c.Y),
		B: uint8(colorMax * c.Z),
		A: math.MaxUint8,
	}
}
