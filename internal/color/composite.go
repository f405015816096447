package color

// RGBToLab converts RGB to L*a*b* through XYZ.
func RGBToLab(r, g, b float64) Lab {
	return RGBToXYZ(r, g, b).Lab()
}

// LabToRGB converts L*a*b* to RGB through XYZ. The second result reports
// whether the color had to be clamped into the sRGB gamut.
func LabToRGB(l, a, b float64) (RGB, bool) {
	return LabToXYZ(l, a, b).RGB()
}

// CMYKToLab converts CMYK to L*a*b*, routed through RGB and XYZ.
func CMYKToLab(c, m, y, k float64) Lab {
	rgb := CMYKToRGB(c, m, y, k)
	return rgb.Lab()
}

// LabToCMYK converts L*a*b* to CMYK, routed through XYZ and RGB. Gamut
// clamping on the RGB leg is silent here; use LabToRGB to observe it.
func LabToCMYK(l, a, b float64) CMYK {
	rgb, _ := LabToRGB(l, a, b)
	return rgb.CMYK()
}

// Lab returns the color converted to L*a*b*.
func (c RGB) Lab() Lab {
	return RGBToLab(float64(c.R), float64(c.G), float64(c.B))
}

// Lab returns the color converted to L*a*b*.
func (c CMYK) Lab() Lab {
	return CMYKToLab(float64(c.C), float64(c.M), float64(c.Y), float64(c.K))
}

// RGB returns the color converted to RGB and whether it was out of gamut.
func (c Lab) RGB() (RGB, bool) {
	return LabToRGB(c.L, c.A, c.B)
}

// CMYK returns the color converted to CMYK.
func (c Lab) CMYK() CMYK {
	return LabToCMYK(c.L, c.A, c.B)
}
