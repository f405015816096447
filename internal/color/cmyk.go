package color

import "math"

// RGBToCMYK converts an RGB color to CMYK. The inputs are rounded and
// clamped to [0,255] first. Pure black maps to K=100 with no chroma.
func RGBToCMYK(r, g, b float64) CMYK {
	in := ClampRGB(r, g, b)
	rn := float64(in.R) / 255.0
	gn := float64(in.G) / 255.0
	bn := float64(in.B) / 255.0

	k := 1.0 - math.Max(rn, math.Max(gn, bn))
	if k == 1.0 {
		return CMYK{C: 0, M: 0, Y: 0, K: MaxCMYK}
	}

	c := (1.0 - rn - k) / (1.0 - k)
	m := (1.0 - gn - k) / (1.0 - k)
	y := (1.0 - bn - k) / (1.0 - k)
	return ClampCMYK(c*100, m*100, y*100, k*100)
}

// CMYKToRGB converts a CMYK color to RGB. The inputs are rounded and
// clamped to [0,100] first.
func CMYKToRGB(c, m, y, k float64) RGB {
	in := ClampCMYK(c, m, y, k)
	cn := float64(in.C) / 100.0
	mn := float64(in.M) / 100.0
	yn := float64(in.Y) / 100.0
	kn := float64(in.K) / 100.0

	return ClampRGB(
		255*(1-cn)*(1-kn),
		255*(1-mn)*(1-kn),
		255*(1-yn)*(1-kn),
	)
}

// CMYK returns the color converted to CMYK.
func (c RGB) CMYK() CMYK {
	return RGBToCMYK(float64(c.R), float64(c.G), float64(c.B))
}

// RGB returns the color converted to RGB.
func (c CMYK) RGB() RGB {
	return CMYKToRGB(float64(c.C), float64(c.M), float64(c.Y), float64(c.K))
}
