package color

import "math"

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labUncompress(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}

// XYZToLab converts XYZ to CIE L*a*b* against the D65 white point.
// L is clamped to [0,100] and a, b to [-128,127]; nothing is rounded.
func XYZToLab(x, y, z float64) Lab {
	fx := labCompress(x / WhiteX)
	fy := labCompress(y / WhiteY)
	fz := labCompress(z / WhiteZ)

	return ClampLab(
		116*fy-16,
		500*(fx-fy),
		200*(fy-fz),
	)
}

// LabToXYZ converts CIE L*a*b* to XYZ. The inputs are clamped to their
// legal ranges first.
func LabToXYZ(l, a, b float64) XYZ {
	in := ClampLab(l, a, b)
	fy := (in.L + 16) / 116
	fx := in.A/500 + fy
	fz := fy - in.B/200

	return XYZ{
		X: labUncompress(fx) * WhiteX,
		Y: labUncompress(fy) * WhiteY,
		Z: labUncompress(fz) * WhiteZ,
	}
}

// Lab returns the color converted to L*a*b*.
func (c XYZ) Lab() Lab {
	return XYZToLab(c.X, c.Y, c.Z)
}

// XYZ returns the color converted to XYZ.
func (c Lab) XYZ() XYZ {
	return LabToXYZ(c.L, c.A, c.B)
}
