package photoshop

import "fmt"

// Chromakey replaces every pixel whose color distance to key is at most
// tolerance with the pixel at the same coordinate in other. The partner
// grid must be at least as large as the receiver in both dimensions; a
// smaller partner returns ErrDimensionMismatch before any pixel is touched.
func (g *Grid) Chromakey(other *Grid, key Pixel, tolerance float64) error {
	if other.width < g.width || other.height < g.height {
		return fmt.Errorf("chromakey partner is %dx%d, need at least %dx%d: %w",
			other.width, other.height, g.width, g.height, ErrDimensionMismatch)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.pix[y*g.width+x].ColorDistance(key) <= tolerance {
				g.pix[y*g.width+x] = other.pix[y*other.width+x]
			}
		}
	}
	return nil
}
