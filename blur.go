package photoshop

// Neighborhood sampling transforms. Both blurs read only the source grid
// and write a fresh output grid, so the source is never observed mid-pass.

// SimpleBlur returns a new Grid where each pixel is the mean of its
// orthogonal (up, left, down, right) neighbors that exist. Edge and corner
// pixels average fewer neighbors; the divisor is always the count of
// in-bounds samples, never a fixed 4. A pixel with no neighbors at all
// (a 1x1 grid) is copied through unchanged.
func (g *Grid) SimpleBlur() *Grid {
	out := &Grid{width: g.width, height: g.height, pix: make([]Pixel, len(g.pix))}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var sumR, sumG, sumB, count int
			if y > 0 {
				p := g.pix[(y-1)*g.width+x]
				sumR += int(p.R)
				sumG += int(p.G)
				sumB += int(p.B)
				count++
			}
			if x > 0 {
				p := g.pix[y*g.width+x-1]
				sumR += int(p.R)
				sumG += int(p.G)
				sumB += int(p.B)
				count++
			}
			if y < g.height-1 {
				p := g.pix[(y+1)*g.width+x]
				sumR += int(p.R)
				sumG += int(p.G)
				sumB += int(p.B)
				count++
			}
			if x < g.width-1 {
				p := g.pix[y*g.width+x+1]
				sumR += int(p.R)
				sumG += int(p.G)
				sumB += int(p.B)
				count++
			}
			if count == 0 {
				out.pix[y*g.width+x] = g.pix[y*g.width+x]
				continue
			}
			out.pix[y*g.width+x] = NewPixel(sumR/count, sumG/count, sumB/count)
		}
	}
	return out
}

// blurOffsets is the per-step sample pattern used by Blur: the four axis
// neighbors and the four diagonals at each step distance.
var blurOffsets = [8][2]int{
	{0, -1}, {-1, 0}, {0, 1}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Blur returns a new Grid where each pixel is the mean of itself plus the
// samples at orthogonal and diagonal steps 1..radius in each direction.
// This is a fixed 9-offset-per-step pattern, not a full square kernel;
// only in-bounds samples are accumulated and the divisor is the actual
// sample count.
func (g *Grid) Blur(radius int) *Grid {
	out := &Grid{width: g.width, height: g.height, pix: make([]Pixel, len(g.pix))}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			self := g.pix[y*g.width+x]
			sumR, sumG, sumB := int(self.R), int(self.G), int(self.B)
			count := 1
			for step := 1; step <= radius; step++ {
				for _, off := range blurOffsets {
					sx := x + off[0]*step
					sy := y + off[1]*step
					if sx < 0 || sx >= g.width || sy < 0 || sy >= g.height {
						continue
					}
					p := g.pix[sy*g.width+sx]
					sumR += int(p.R)
					sumG += int(p.G)
					sumB += int(p.B)
					count++
				}
			}
			out.pix[y*g.width+x] = NewPixel(sumR/count, sumG/count, sumB/count)
		}
	}
	return out
}
