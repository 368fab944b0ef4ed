package photoshop

import (
	"errors"
	"testing"
)

func TestFilled(t *testing.T) {
	g, err := Filled(3, 5, NewPixel(10, 20, 30))
	if err != nil {
		t.Fatalf("Failed to construct grid: %v", err)
	}
	if g.Width() != 5 || g.Height() != 3 {
		t.Errorf("Expected 5x3, got %dx%d", g.Width(), g.Height())
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != NewPixel(10, 20, 30) {
				t.Errorf("Expected uniform fill at (%d,%d), got %v", x, y, g.At(x, y))
			}
		}
	}
}

func TestFilledInvalidDimensions(t *testing.T) {
	if _, err := Filled(0, 5, White); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Filled(5, -1, White); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Expected ErrInvalidDimensions, got %v", err)
	}
}

func TestNewGridIsWhite(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("Failed to construct grid: %v", err)
	}
	if g.At(1, 1) != White {
		t.Errorf("Expected white fill, got %v", g.At(1, 1))
	}
}

func TestFromSamples(t *testing.T) {
	g, err := FromSamples([][]Pixel{
		{NewPixel(1, 2, 3), NewPixel(4, 5, 6)},
		{NewPixel(7, 8, 9), NewPixel(10, 11, 12)},
	})
	if err != nil {
		t.Fatalf("Failed to construct grid: %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Errorf("Expected 2x2, got %dx%d", g.Width(), g.Height())
	}
	if g.At(1, 0) != NewPixel(4, 5, 6) {
		t.Errorf("Expected (4,5,6) at (1,0), got %v", g.At(1, 0))
	}
	if g.At(0, 1) != NewPixel(7, 8, 9) {
		t.Errorf("Expected (7,8,9) at (0,1), got %v", g.At(0, 1))
	}
}

func TestFromSamplesCopiesInput(t *testing.T) {
	rows := [][]Pixel{{NewPixel(1, 2, 3)}}
	g, err := FromSamples(rows)
	if err != nil {
		t.Fatalf("Failed to construct grid: %v", err)
	}
	rows[0][0] = White
	if g.At(0, 0) != NewPixel(1, 2, 3) {
		t.Error("Mutating input samples should not affect the grid")
	}
}

func TestFromSamplesEmpty(t *testing.T) {
	if _, err := FromSamples(nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage for no rows, got %v", err)
	}
	if _, err := FromSamples([][]Pixel{{}}); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage for zero columns, got %v", err)
	}
}

func TestFromSamplesRagged(t *testing.T) {
	rows := [][]Pixel{
		make([]Pixel, 3),
		make([]Pixel, 3),
		make([]Pixel, 2),
	}
	if _, err := FromSamples(rows); !errors.Is(err, ErrNonRectangular) {
		t.Errorf("Expected ErrNonRectangular, got %v", err)
	}
}

func TestAtSet(t *testing.T) {
	g := SolidGrid(4, 4, Black)
	g.Set(2, 3, NewPixel(9, 8, 7))
	if g.At(2, 3) != NewPixel(9, 8, 7) {
		t.Errorf("Expected (9,8,7), got %v", g.At(2, 3))
	}
	if g.At(3, 2) != Black {
		t.Errorf("Expected untouched pixel to stay black, got %v", g.At(3, 2))
	}
}

func TestAtOutOfBoundsPanics(t *testing.T) {
	g := SolidGrid(2, 3, Black)
	coords := [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}}
	for _, c := range coords {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for At(%d, %d)", c[0], c[1])
				}
			}()
			g.At(c[0], c[1])
		}()
	}
}

func TestSetOutOfBoundsPanics(t *testing.T) {
	g := SolidGrid(2, 2, Black)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for Set outside bounds")
		}
	}()
	g.Set(2, 0, White)
}

func TestCloneIndependence(t *testing.T) {
	g := GradientGrid(4, 4)
	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("Clone should equal the source")
	}
	clone.Set(0, 0, NewPixel(1, 2, 3))
	if g.At(0, 0) == NewPixel(1, 2, 3) {
		t.Error("Modifying clone should not affect original")
	}
}

func TestEqual(t *testing.T) {
	a := GradientGrid(3, 5)
	b := GradientGrid(3, 5)
	if !a.Equal(b) {
		t.Error("Identical grids should be equal")
	}
	b.Set(4, 2, NewPixel(1, 1, 1))
	if a.Equal(b) {
		t.Error("Grids with differing pixels should not be equal")
	}
	c := GradientGrid(5, 3)
	if a.Equal(c) {
		t.Error("Grids with differing dimensions should not be equal")
	}
}

func TestImageRoundTrip(t *testing.T) {
	g := CheckerboardGrid(8, 8, 2)
	back, err := FromImage(g.ToImage())
	if err != nil {
		t.Fatalf("Failed to convert image: %v", err)
	}
	if !g.Equal(back) {
		t.Error("ToImage followed by FromImage should preserve every pixel")
	}
}
