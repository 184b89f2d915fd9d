package gradient

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidInput is returned when Generate is handed arguments outside the
// meaningful range. Callers can match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ColorRecord is one step of a generated gradient. Records are never mutated
// after creation.
type ColorRecord struct {
	Lab   LabColor
	Label string
	Hex   string
	Color color.RGBA
}

func (cr *ColorRecord) String() string {
	output := "{ColorRecord "
	output += fmt.Sprintf("Label: %s ", cr.Label)
	output += fmt.Sprintf("Hex: %s ", cr.Hex)
	output += fmt.Sprintf("Lab: %s}", cr.Lab)
	return output
}

// Gradient is an ordered sequence of color records, first element the start
// endpoint and last element the end endpoint.
type Gradient []ColorRecord

// Generate interpolates steps samples between start and end in LAB space and
// converts each to sRGB. Interpolation is per channel at fixed fractions
// t = i/(steps-1), so lightness ramps monotonically between the endpoints.
// Adjacent steps may round to the same hex value near the gamut edge; that is
// expected, not an error.
func Generate(start LabColor, end LabColor, steps int) (Gradient, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: steps must be at least 2, got %d", ErrInvalidInput, steps)
	}
	if start.L < 0 || start.L > 100 {
		return nil, fmt.Errorf("%w: start lightness %.2f outside [0, 100]", ErrInvalidInput, start.L)
	}
	if end.L < 0 || end.L > 100 {
		return nil, fmt.Errorf("%w: end lightness %.2f outside [0, 100]", ErrInvalidInput, end.L)
	}

	records := make(Gradient, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		lab := start.Lerp(end, t)
		records[i] = ColorRecord{
			Lab:   lab,
			Label: fmt.Sprintf("F-%02d", i+1),
			Hex:   lab.Hex(),
			Color: lab.RGBA(),
		}
	}
	return records, nil
}
