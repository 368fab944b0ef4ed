package photoshop

import "fmt"

// markDistance is the color distance from black at or below which a
// message pixel counts as part of the hidden message.
const markDistance = 50

// Encode hides msg in the grid using red-channel parity steganography.
// The low bit of every red channel is first cleared, then set again at
// every coordinate where the message pixel lies within markDistance of
// black. The visible change to any pixel is at most one red level. The
// message grid must be at least as large as the receiver; a smaller
// message returns ErrDimensionMismatch before any pixel is touched.
func (g *Grid) Encode(msg *Grid) error {
	if msg.width < g.width || msg.height < g.height {
		return fmt.Errorf("message is %dx%d, need at least %dx%d: %w",
			msg.width, msg.height, g.width, g.height, ErrDimensionMismatch)
	}
	for i := range g.pix {
		g.pix[i].R &^= 1
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if msg.pix[y*msg.width+x].ColorDistance(Black) <= markDistance {
				g.pix[y*g.width+x].R |= 1
			}
		}
	}
	return nil
}

// Decode recovers a message hidden by Encode: it returns a new white Grid
// of the same dimensions with a black pixel at every coordinate where the
// receiver's red channel is odd.
func (g *Grid) Decode() *Grid {
	out := &Grid{width: g.width, height: g.height, pix: make([]Pixel, len(g.pix))}
	for i := range g.pix {
		if g.pix[i].R&1 == 1 {
			out.pix[i] = Black
		} else {
			out.pix[i] = White
		}
	}
	return out
}
