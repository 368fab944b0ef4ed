package photoshop

// Axis transforms. The mirror operations overwrite one half of the grid
// with the reflection of the other half; VerticalFlip is a true flip that
// preserves both halves. Each pairing touches disjoint coordinates, so the
// pairs may be processed in any order.

// MirrorVertical mirrors the grid about its vertical midline, left half
// onto right half.
func (g *Grid) MirrorVertical() {
	for y := 0; y < g.height; y++ {
		row := g.row(y)
		for x := 0; x < g.width/2; x++ {
			row[g.width-1-x] = row[x]
		}
	}
}

// MirrorRightToLeft mirrors the grid about its vertical midline, right
// half onto left half.
func (g *Grid) MirrorRightToLeft() {
	for y := 0; y < g.height; y++ {
		row := g.row(y)
		for x := g.width / 2; x < g.width; x++ {
			row[g.width-1-x] = row[x]
		}
	}
}

// MirrorHorizontal mirrors the grid about its horizontal midline, top half
// onto bottom half.
func (g *Grid) MirrorHorizontal() {
	for y := 0; y < g.height/2; y++ {
		copy(g.row(g.height-1-y), g.row(y))
	}
}

// VerticalFlip flips the grid upside down by swapping row y with row
// height-1-y.
func (g *Grid) VerticalFlip() {
	scratch := make([]Pixel, g.width)
	for y := 0; y < g.height/2; y++ {
		top, bottom := g.row(y), g.row(g.height-1-y)
		copy(scratch, top)
		copy(top, bottom)
		copy(bottom, scratch)
	}
}
