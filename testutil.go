package photoshop

// Synthetic grid generators used by the tests and handy for demos. All of
// them require positive dimensions and panic otherwise, since their inputs
// are compile-time constants in practice.

// GradientGrid creates a horizontal grayscale gradient, black at the left
// edge and white at the right.
func GradientGrid(height, width int) *Grid {
	g := mustGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := 255 * x / max(width-1, 1)
			g.pix[y*width+x] = NewPixel(v, v, v)
		}
	}
	return g
}

// CheckerboardGrid creates a black and white checkerboard pattern with
// squares of the given size, useful for edge and mirror tests.
func CheckerboardGrid(height, width, squareSize int) *Grid {
	g := mustGrid(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				g.pix[y*width+x] = White
			} else {
				g.pix[y*width+x] = Black
			}
		}
	}
	return g
}

// SolidGrid creates a uniform grid of the given color.
func SolidGrid(height, width int, c Pixel) *Grid {
	g, err := Filled(height, width, c)
	if err != nil {
		panic(err)
	}
	return g
}

func mustGrid(height, width int) *Grid {
	g, err := Filled(height, width, Black)
	if err != nil {
		panic(err)
	}
	return g
}
