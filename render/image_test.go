package render

import (
	"testing"
)

func TestPNGDimensions(t *testing.T) {
	bands := testBands()
	strip := PNG(bands, 360, 90)

	bounds := strip.Bounds()
	if bounds.Dx() != 360 || bounds.Dy() != 90*len(bands) {
		t.Errorf("strip is %dx%d, want 360x%d", bounds.Dx(), bounds.Dy(), 90*len(bands))
	}
}

func TestPNGDefaultsGeometry(t *testing.T) {
	strip := PNG(testBands(), 0, -5)
	bounds := strip.Bounds()
	if bounds.Dx() != 360 || bounds.Dy() != 90*2 {
		t.Errorf("strip is %dx%d, want defaults 360x180", bounds.Dx(), bounds.Dy())
	}
}

func TestPNGBandColors(t *testing.T) {
	bands := testBands()
	strip := PNG(bands, 360, 90)

	// Sample the top-right corner of each band, away from the caption text
	for i, band := range bands {
		got := strip.RGBAAt(359, i*90)
		if got != band.Color {
			t.Errorf("band %d pixel = %v, want %v", i, got, band.Color)
		}
	}
}
