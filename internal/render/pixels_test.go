package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 4},
		{R: 5, G: 6, B: 7, A: 8},
	}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}
}

func TestFillPaletteFallsBack(t *testing.T) {
	buf := make([]byte, 8)
	FillPaletteRGBA(buf, []uint8{0, 3}, nil)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}
}

func TestFillPaletteShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	FillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if buf[0] != 255 {
		t.Fatalf("first pixel not written: %v", buf)
	}
}
