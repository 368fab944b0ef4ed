package photoshop

import (
	"image/color"
	"testing"
)

func TestNewPixelClamps(t *testing.T) {
	p := NewPixel(-5, 300, 128)
	want := Pixel{R: 0, G: 255, B: 128}
	if p != want {
		t.Errorf("Expected %v, got %v", want, p)
	}
}

func TestSettersClamp(t *testing.T) {
	var p Pixel
	p.SetRed(999)
	p.SetGreen(-1)
	p.SetBlue(42)
	want := Pixel{R: 255, G: 0, B: 42}
	if p != want {
		t.Errorf("Expected %v, got %v", want, p)
	}

	p.SetColor(-10, 256, 7)
	want = Pixel{R: 0, G: 255, B: 7}
	if p != want {
		t.Errorf("Expected %v, got %v", want, p)
	}
}

func TestColorDistanceZeroForEqual(t *testing.T) {
	p := NewPixel(17, 102, 230)
	if d := p.ColorDistance(p); d != 0 {
		t.Errorf("Expected distance 0 for equal colors, got %f", d)
	}
}

func TestColorDistanceSymmetric(t *testing.T) {
	p := NewPixel(10, 20, 30)
	q := NewPixel(200, 100, 0)
	if p.ColorDistance(q) != q.ColorDistance(p) {
		t.Errorf("Expected symmetric distance, got %f and %f",
			p.ColorDistance(q), q.ColorDistance(p))
	}
}

func TestColorDistanceKnownValue(t *testing.T) {
	// A 3-4-0 offset is a 3-4-5 triangle
	p := NewPixel(0, 0, 0)
	q := NewPixel(3, 4, 0)
	if d := p.ColorDistance(q); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestPixelColorRoundTrip(t *testing.T) {
	p := NewPixel(12, 34, 56)
	got := PixelFromColor(p.ToColor())
	if got != p {
		t.Errorf("Expected %v, got %v", p, got)
	}
}

func TestPixelFromColorDiscardsAlpha(t *testing.T) {
	got := PixelFromColor(color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	want := Pixel{R: 100, G: 150, B: 200}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
