package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrEmptyColor is returned when parsing an empty color string.
var ErrEmptyColor = errors.New("empty color")

// Hex returns the color as a lower-case "#rrggbb" string. Channels are
// clamped to [0,255] first.
func (c RGB) Hex() string {
	in := ClampRGB(float64(c.R), float64(c.G), float64(c.B))
	return fmt.Sprintf("#%02x%02x%02x", in.R, in.G, in.B)
}

// ParseHex reads "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 0:
		return RGB{}, ErrEmptyColor
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q: expected 3 or 6 digits, got %d", s, len(h))
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: int(v>>16) & 0xff,
		G: int(v>>8) & 0xff,
		B: int(v) & 0xff,
	}, nil
}

// ParseRGB reads a hex color (see ParseHex) or a CSS/SVG color name such
// as "tomato".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, ErrEmptyColor
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, nil
	}
	rgb, err := ParseHex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("not a color name or hex value: %w", err)
	}
	return rgb, nil
}

// Name returns the CSS color name whose value equals c exactly, if any.
func (c RGB) Name() (string, bool) {
	for _, name := range colornames.Names {
		v := colornames.Map[name]
		if int(v.R) == c.R && int(v.G) == c.G && int(v.B) == c.B {
			return name, true
		}
	}
	return "", false
}
