package gradient

import (
	"FolioScale/misc"
	"fmt"
	"image/color"
	"math"
)

// LabColor is a CIE L*a*b* color. L is lightness in [0, 100]; A and B are the
// chromaticity axes, unbounded but practically within [-128, 127].
type LabColor struct {
	L float64
	A float64
	B float64
}

// D65 reference white in CIE XYZ, normalized so Y = 1.
const (
	whitePointX = 0.95047
	whitePointY = 1.00000
	whitePointZ = 1.08883
)

// Knee of the CIE lightness function, delta = 6/29.
const labDelta = 6.0 / 29.0

func (c LabColor) String() string {
	return fmt.Sprintf("{Lab L: %.2f a: %.2f b: %.2f}", c.L, c.A, c.B)
}

// Lerp interpolates each channel independently toward to at fraction t.
func (c LabColor) Lerp(to LabColor, t float64) LabColor {
	return LabColor{
		L: misc.LerpFloat64(c.L, to.L, t),
		A: misc.LerpFloat64(c.A, to.A, t),
		B: misc.LerpFloat64(c.B, to.B, t),
	}
}

// XYZ converts to CIE XYZ relative to the D65 white point.
func (c LabColor) XYZ() (x float64, y float64, z float64) {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	x = labFInv(fx) * whitePointX
	y = labFInv(fy) * whitePointY
	z = labFInv(fz) * whitePointZ
	return x, y, z
}

// RGBA converts to a displayable sRGB color. The pipeline is
// LAB -> XYZ (D65) -> linear RGB -> gamma-encoded sRGB. Linear components
// outside [0, 1] are clamped, so out-of-gamut inputs come back as the nearest
// representable channel values rather than an error.
func (c LabColor) RGBA() color.RGBA {
	x, y, z := c.XYZ()

	// XYZ to linear RGB using the inverse sRGB matrix
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return color.RGBA{
		R: uint8(math.Round(linearToSRGB(misc.Clamp01(r)) * 255)),
		G: uint8(math.Round(linearToSRGB(misc.Clamp01(g)) * 255)),
		B: uint8(math.Round(linearToSRGB(misc.Clamp01(b)) * 255)),
		A: 255,
	}
}

// Hex returns the six digit lowercase sRGB encoding, without a '#' prefix.
func (c LabColor) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}
