package color

import (
	stdcolor "image/color"

	"fortio.org/safecast"
	"github.com/crazy3lf/colorconv"
)

var _ stdcolor.Color = RGB{}

// RGBA implements image/color.Color. The color is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as an opaque image/color.NRGBA.
func (c RGB) NRGBA() stdcolor.NRGBA {
	in := ClampRGB(float64(c.R), float64(c.G), float64(c.B))
	return stdcolor.NRGBA{
		R: safecast.MustConv[uint8](in.R),
		G: safecast.MustConv[uint8](in.G),
		B: safecast.MustConv[uint8](in.B),
		A: 0xff,
	}
}

// FromColor converts any image/color.Color to RGB, ignoring alpha.
func FromColor(c stdcolor.Color) RGB {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB{R: int(n.R), G: int(n.G), B: int(n.B)}
}

// HSL returns hue in degrees [0,360) and saturation and lightness in [0,1].
func (c RGB) HSL() (h, s, l float64) {
	return colorconv.ColorToHSL(c.NRGBA())
}
