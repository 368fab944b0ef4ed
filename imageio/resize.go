package imageio

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	photoshop "github.com/arnav-g24/PhotoShop"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the high-quality choice for
	// downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize scales a Grid to the specified dimensions using the given
// interpolation method.
func Resize(g *photoshop.Grid, width, height int, interp Interpolation) (*photoshop.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize to %dx%d: %w", width, height, photoshop.ErrInvalidDimensions)
	}

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	src := g.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return photoshop.FromImage(dst)
}
