package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PNG renders the bands as a vertical strip of captioned swatches, one band
// of bandWidth x bandHeight pixels per step.
func PNG(bands []Band, bandWidth int, bandHeight int) *image.RGBA {
	if bandWidth <= 0 {
		bandWidth = 360
	}
	if bandHeight <= 0 {
		bandHeight = 90
	}

	strip := image.NewRGBA(image.Rect(0, 0, bandWidth, bandHeight*len(bands)))
	for i, band := range bands {
		bounds := image.Rect(0, i*bandHeight, bandWidth, (i+1)*bandHeight)
		draw.Draw(strip, bounds, image.NewUniform(band.Color), image.Point{}, draw.Src)

		caption := fmt.Sprintf("%s #%s LAB: %.2f, %.2f, %.2f", band.Label, band.Hex, band.Lab.L, band.Lab.A, band.Lab.B)
		if band.Match != "" {
			caption += " " + band.Match
		}

		textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if band.TextColor() == "black" {
			textColor = color.RGBA{A: 255}
		}
		drawer := &font.Drawer{
			Dst:  strip,
			Src:  image.NewUniform(textColor),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, i*bandHeight+bandHeight/2+4),
		}
		drawer.DrawString(caption)
	}
	return strip
}
