package color

import "math"

// sRGB primaries to XYZ, D65.
var (
	rgbToXYZ = [3][3]float64{
		{0.412453, 0.357580, 0.180423},
		{0.212671, 0.715160, 0.072169},
		{0.019334, 0.119193, 0.950227},
	}
	xyzToRGB = [3][3]float64{
		{3.2406, -1.5372, -0.4986},
		{-0.9689, 1.8758, 0.0415},
		{0.0557, -0.2040, 1.0570},
	}
)

// linearize removes the sRGB transfer function from a channel in [0,1].
func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// delinearize applies the sRGB transfer function to a linear channel.
func delinearize(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func mul(m [3][3]float64, a, b, c float64) (float64, float64, float64) {
	return a*m[0][0] + b*m[0][1] + c*m[0][2],
		a*m[1][0] + b*m[1][1] + c*m[1][2],
		a*m[2][0] + b*m[2][1] + c*m[2][2]
}

// RGBToXYZ converts an RGB color to XYZ. The inputs are rounded and clamped
// to [0,255] first; the result is not clamped.
func RGBToXYZ(r, g, b float64) XYZ {
	in := ClampRGB(r, g, b)
	rl := linearize(float64(in.R)/255.0) * 100
	gl := linearize(float64(in.G)/255.0) * 100
	bl := linearize(float64(in.B)/255.0) * 100

	x, y, z := mul(rgbToXYZ, rl, gl, bl)
	return XYZ{X: x, Y: y, Z: z}
}

// XYZToRGB converts XYZ to RGB. The second result reports whether the color
// lies outside the sRGB gamut, i.e. whether clamping to [0,255] changed any
// rounded channel. The clamped color is returned either way.
func XYZToRGB(x, y, z float64) (RGB, bool) {
	rl, gl, bl := mul(xyzToRGB, x/100.0, y/100.0, z/100.0)

	r := delinearize(rl) * 255
	g := delinearize(gl) * 255
	b := delinearize(bl) * 255

	out := ClampRGB(r, g, b)
	return out, outOfGamut(r) || outOfGamut(g) || outOfGamut(b)
}

// outOfGamut reports whether clamping alters the rounded channel value.
func outOfGamut(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	v = math.Round(v)
	return v < 0 || v > MaxRGB
}

// XYZ returns the color converted to XYZ.
func (c RGB) XYZ() XYZ {
	return RGBToXYZ(float64(c.R), float64(c.G), float64(c.B))
}

// RGB returns the color converted to RGB and whether it was out of gamut.
func (c XYZ) RGB() (RGB, bool) {
	return XYZToRGB(c.X, c.Y, c.Z)
}
