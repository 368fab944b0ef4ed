// Package photoshop is an in-memory raster image transformation library.
// It represents an image as a Grid of RGB Pixels and provides a catalog of
// per-pixel, neighborhood, and whole-image transforms: color filters,
// mirrors and flips, blurs, edge detection, chromakey, and a steganographic
// encode/decode pair.
package photoshop

import (
	"image/color"
	"math"
)

// Pixel represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. Channel arithmetic throughout
// the package saturates at those limits rather than wrapping.
type Pixel struct {
	R, G, B uint8
}

// Common colors used by the transform catalog.
var (
	Black = Pixel{R: 0, G: 0, B: 0}
	White = Pixel{R: 255, G: 255, B: 255}
)

// NewPixel creates a Pixel from integer channel values, clamping each
// channel into [0, 255].
func NewPixel(r, g, b int) Pixel {
	return Pixel{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// SetColor replaces all three channels, clamping each into [0, 255].
func (p *Pixel) SetColor(r, g, b int) {
	p.R = clampChannel(r)
	p.G = clampChannel(g)
	p.B = clampChannel(b)
}

// SetRed sets the red channel, clamped into [0, 255].
func (p *Pixel) SetRed(v int) {
	p.R = clampChannel(v)
}

// SetGreen sets the green channel, clamped into [0, 255].
func (p *Pixel) SetGreen(v int) {
	p.G = clampChannel(v)
}

// SetBlue sets the blue channel, clamped into [0, 255].
func (p *Pixel) SetBlue(v int) {
	p.B = clampChannel(v)
}

// ColorDistance calculates the Euclidean distance between two colors in
// the RGB color space. The distance is symmetric, zero only for equal
// colors, and satisfies the triangle inequality; several transforms use it
// as a similarity tolerance.
func (p Pixel) ColorDistance(other Pixel) float64 {
	dr := int(p.R) - int(other.R)
	dg := int(p.G) - int(other.G)
	db := int(p.B) - int(other.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// ToColor converts the Pixel to a color.RGBA for use with the standard
// library image packages.
func (p Pixel) ToColor() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// PixelFromColor converts any color.Color to a Pixel, discarding alpha.
func PixelFromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return Pixel{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// clampChannel clamps an integer channel value to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
