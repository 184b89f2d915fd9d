package gradient

import "math"

// DeltaE76 is the original CIE76 color difference, the Euclidean distance
// between two LAB colors.
func DeltaE76(c1 LabColor, c2 LabColor) float64 {
	dL := c1.L - c2.L
	dA := c1.A - c2.A
	dB := c1.B - c2.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// DeltaECIEDE2000 is the CIEDE2000 color difference with the parametric
// weights kL, kC and kH all set to 1. The formulation follows Sharma,
// Wu & Dalal, "The CIEDE2000 Color-Difference Formula" (2005).
func DeltaECIEDE2000(c1 LabColor, c2 LabColor) float64 {
	const pow25To7 = 6103515625 // 25^7

	chroma1 := math.Hypot(c1.A, c1.B)
	chroma2 := math.Hypot(c2.A, c2.B)
	chromaBar := (chroma1 + chroma2) / 2
	chromaBar7 := math.Pow(chromaBar, 7)
	g := 0.5 * (1 - math.Sqrt(chromaBar7/(chromaBar7+pow25To7)))

	a1p := (1 + g) * c1.A
	a2p := (1 + g) * c2.A
	cp1 := math.Hypot(a1p, c1.B)
	cp2 := math.Hypot(a2p, c2.B)
	h1p := hueAngle(a1p, c1.B)
	h2p := hueAngle(a2p, c2.B)

	dLp := c2.L - c1.L
	dCp := cp2 - cp1

	var dhp float64
	switch {
	case cp1*cp2 == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2 * math.Sqrt(cp1*cp2) * math.Sin(radians(dhp)/2)

	lBar := (c1.L + c2.L) / 2
	cBarP := (cp1 + cp2) / 2

	var hBar float64
	switch {
	case cp1*cp2 == 0:
		hBar = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBar = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBar = (h1p + h2p + 360) / 2
	default:
		hBar = (h1p + h2p - 360) / 2
	}

	t := 1 - 0.17*math.Cos(radians(hBar-30)) + 0.24*math.Cos(radians(2*hBar)) +
		0.32*math.Cos(radians(3*hBar+6)) - 0.20*math.Cos(radians(4*hBar-63))

	lBar50sq := (lBar - 50) * (lBar - 50)
	sl := 1 + 0.015*lBar50sq/math.Sqrt(20+lBar50sq)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25To7))
	dTheta := 30 * math.Exp(-((hBar-275)/25)*((hBar-275)/25))
	rt := -rc * math.Sin(radians(2*dTheta))

	lTerm := dLp / sl
	cTerm := dCp / sc
	hTerm := dHp / sh
	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

func hueAngle(a float64, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
