package photoshop

// EdgeDetection marks edges in place by comparing each pixel to the pixel
// directly below it: pixels whose color distance to their lower neighbor is
// below threshold become white, the rest become black. The last row has no
// lower neighbor and is left untouched. Rows are processed top to bottom,
// so every comparison reads the lower row before it is overwritten.
func (g *Grid) EdgeDetection(threshold float64) {
	for y := 0; y < g.height-1; y++ {
		for x := 0; x < g.width; x++ {
			below := g.pix[(y+1)*g.width+x]
			if g.pix[y*g.width+x].ColorDistance(below) < threshold {
				g.pix[y*g.width+x] = White
			} else {
				g.pix[y*g.width+x] = Black
			}
		}
	}
}
