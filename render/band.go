package render

import (
	"FolioScale/gradient"
	"image/color"
)

// Band is the display view of one gradient step. Rendering only formats what
// the generator produced; it never recomputes color math.
type Band struct {
	Step  int
	Label string
	Hex   string
	Lab   gradient.LabColor
	Color color.RGBA
	Match string
}

// TextColor picks the caption color against the band background. Light
// backgrounds get black text, dark backgrounds get white.
func (b Band) TextColor() string {
	if b.Lab.L > 50 {
		return "black"
	}
	return "white"
}
