package photoshop

import "fmt"

// Per-pixel color transforms. Each operates in place with a single pass
// over the grid and no neighbor dependence.

// ZeroBlue removes all blue tint from the grid.
func (g *Grid) ZeroBlue() {
	for i := range g.pix {
		if g.pix[i].B > 0 {
			g.pix[i].B = 0
		}
	}
}

// KeepOnlyBlue removes everything but the blue tint: pixels with any blue
// lose their red and green; pixels with no blue are left unchanged.
func (g *Grid) KeepOnlyBlue() {
	for i := range g.pix {
		if g.pix[i].B > 0 {
			g.pix[i].R = 0
			g.pix[i].G = 0
		}
	}
}

// Negate inverts every channel of every pixel.
func (g *Grid) Negate() {
	for i := range g.pix {
		p := &g.pix[i]
		p.SetColor(255-int(p.R), 255-int(p.G), 255-int(p.B))
	}
}

// Solarize simulates film over-exposure: every channel strictly below
// threshold is replaced with its inverse, channels at or above threshold
// are unchanged.
func (g *Grid) Solarize(threshold int) {
	for i := range g.pix {
		p := &g.pix[i]
		if int(p.R) < threshold {
			p.SetRed(255 - int(p.R))
		}
		if int(p.G) < threshold {
			p.SetGreen(255 - int(p.G))
		}
		if int(p.B) < threshold {
			p.SetBlue(255 - int(p.B))
		}
	}
}

// Grayscale sets every channel to the integer mean of the pixel's three
// channels.
func (g *Grid) Grayscale() {
	for i := range g.pix {
		p := &g.pix[i]
		avg := (int(p.R) + int(p.G) + int(p.B)) / 3
		p.SetColor(avg, avg, avg)
	}
}

// Tint multiplies each channel by its factor, truncating toward zero. If
// any resulting channel exceeds 255, all three channels of that pixel are
// forced to 255; the saturation is all-or-nothing, not per-channel.
func (g *Grid) Tint(redFactor, blueFactor, greenFactor float64) {
	for i := range g.pix {
		p := &g.pix[i]
		r := int(float64(p.R) * redFactor)
		gr := int(float64(p.G) * greenFactor)
		b := int(float64(p.B) * blueFactor)
		if r > 255 || gr > 255 || b > 255 {
			r, gr, b = 255, 255, 255
		}
		p.SetColor(r, gr, b)
	}
}

// Posterize reduces the color depth for a "graphic poster" effect by
// rounding every channel down to a multiple of span. It returns
// ErrInvalidSpan for a non-positive span.
func (g *Grid) Posterize(span int) error {
	if span <= 0 {
		return fmt.Errorf("posterize span %d: %w", span, ErrInvalidSpan)
	}
	for i := range g.pix {
		p := &g.pix[i]
		p.SetColor(
			int(p.R)/span*span,
			int(p.G)/span*span,
			int(p.B)/span*span,
		)
	}
	return nil
}
