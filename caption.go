package photoshop

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption draws text onto the grid in the given color using the built-in
// fixed-width face. (x, y) positions the start of the text baseline, so a
// caption near the top-left corner wants a y of at least the face's ascent
// (11 pixels for the built-in face). Glyphs falling outside the grid are
// clipped.
func (g *Grid) Caption(text string, x, y int, c Pixel) {
	img := g.ToImage()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.ToColor()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	g.setFromRGBA(img)
}

// CaptionFont draws text onto the grid with a caller-supplied TrueType
// font at the given point size. (x, y) positions the start of the text
// baseline, as in Caption.
func (g *Grid) CaptionFont(text string, x, y int, c Pixel, ttf []byte, size float64) error {
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	img := g.ToImage()
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(c.ToColor()))
	if _, err := ctx.DrawString(text, freetype.Pt(x, y)); err != nil {
		return fmt.Errorf("failed to draw caption: %w", err)
	}
	g.setFromRGBA(img)
	return nil
}
