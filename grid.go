package photoshop

import (
	"fmt"
	"image"
)

// Grid is an owned rectangular buffer of Pixels stored row-major in a
// single allocation. A Grid is always non-empty and strictly rectangular.
// The zero value is not usable; construct with NewGrid, Filled,
// FromSamples, or FromImage.
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// NewGrid creates a solid white Grid of the given size.
func NewGrid(height, width int) (*Grid, error) {
	return Filled(height, width, White)
}

// Filled creates a Grid of uniform color. It returns ErrInvalidDimensions
// if height or width is not positive.
func Filled(height, width int, c Pixel) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%dx%d grid: %w", width, height, ErrInvalidDimensions)
	}
	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = c
	}
	return &Grid{width: width, height: height, pix: pix}, nil
}

// FromSamples builds a Grid from rows of Pixels, copying every sample into
// the Grid's own storage. It returns ErrEmptyImage for zero rows or zero
// columns and ErrNonRectangular if row lengths differ.
func FromSamples(rows [][]Pixel) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("no samples: %w", ErrEmptyImage)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d: %w",
				i, len(row), width, ErrNonRectangular)
		}
	}
	pix := make([]Pixel, 0, width*len(rows))
	for _, row := range rows {
		pix = append(pix, row...)
	}
	return &Grid{width: width, height: len(rows), pix: pix}, nil
}

// FromImage converts any image.Image to a Grid, discarding alpha.
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%dx%d image: %w", width, height, ErrEmptyImage)
	}
	g := &Grid{width: width, height: height, pix: make([]Pixel, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.pix[y*width+x] = PixelFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return g, nil
}

// ToImage renders the Grid as an *image.RGBA for use with the standard
// library encoders and drawers.
func (g *Grid) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetRGBA(x, y, g.pix[y*g.width+x].ToColor())
		}
	}
	return img
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the Pixel at (x, y), where x indexes columns and y indexes
// rows. Coordinates outside the grid are a fatal precondition violation:
// At panics, matching slice indexing semantics.
func (g *Grid) At(x, y int) Pixel {
	g.check(x, y)
	return g.pix[y*g.width+x]
}

// Set replaces the Pixel at (x, y). It panics for coordinates outside the
// grid, matching At.
func (g *Grid) Set(x, y int, p Pixel) {
	g.check(x, y)
	g.pix[y*g.width+x] = p
}

// Clone creates a deep copy with independent storage; mutating the copy
// never affects the source.
func (g *Grid) Clone() *Grid {
	pix := make([]Pixel, len(g.pix))
	copy(pix, g.pix)
	return &Grid{width: g.width, height: g.height, pix: pix}
}

// Equal reports whether two grids have identical dimensions and pixels.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// row returns the y'th row as a slice aliasing the grid's storage.
func (g *Grid) row(y int) []Pixel {
	return g.pix[y*g.width : (y+1)*g.width]
}

// setFromRGBA copies an *image.RGBA of identical dimensions back into the
// grid's storage. Used by transforms that render through the standard
// library drawers.
func (g *Grid) setFromRGBA(img *image.RGBA) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := img.RGBAAt(x, y)
			g.pix[y*g.width+x] = Pixel{R: c.R, G: c.G, B: c.B}
		}
	}
}

func (g *Grid) check(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("photoshop: no pixel at (%d, %d) in %dx%d grid",
			x, y, g.width, g.height))
	}
}
