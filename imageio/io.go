// Package imageio loads and saves Grids using standard image container
// formats. It is the thin adapter layer between the in-memory Grid and
// on-disk images; the transform catalog itself never touches a file.
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WebP decoder

	photoshop "github.com/arnav-g24/PhotoShop"
)

// Load decodes an image file into a Grid.
// Supports PNG, JPEG, GIF, TIFF, BMP, and WebP formats.
func Load(path string) (*photoshop.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return photoshop.FromImage(img)
}

// Save encodes a Grid to the specified path. The format is determined by
// the file extension (png, jpg/jpeg, gif, tiff, bmp); anything else is
// written as PNG.
func Save(g *photoshop.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	img := g.ToImage()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(f, img, nil)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	case ".bmp":
		return bmp.Encode(f, img)
	default:
		// Default to PNG
		return png.Encode(f, img)
	}
}
