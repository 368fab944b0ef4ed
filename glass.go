package photoshop

import "math/rand"

// GlassFilter returns a new Grid that looks like the source viewed through
// rippled glass: each output pixel copies the source pixel displaced by
// two independent uniform offsets in [-jitter, +jitter], with out-of-range
// coordinates wrapped modularly into the grid. The caller supplies the
// random source, so a seeded *rand.Rand makes the result reproducible.
// A non-positive jitter returns an undisplaced copy.
func (g *Grid) GlassFilter(rng *rand.Rand, jitter int) *Grid {
	if jitter <= 0 {
		return g.Clone()
	}
	out := &Grid{width: g.width, height: g.height, pix: make([]Pixel, len(g.pix))}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sx := wrapCoord(x+rng.Intn(2*jitter+1)-jitter, g.width)
			sy := wrapCoord(y+rng.Intn(2*jitter+1)-jitter, g.height)
			out.pix[y*g.width+x] = g.pix[sy*g.width+sx]
		}
	}
	return out
}

// wrapCoord wraps v into [0, n) by modular arithmetic, handling negative
// values and displacements larger than n.
func wrapCoord(v, n int) int {
	return ((v % n) + n) % n
}
