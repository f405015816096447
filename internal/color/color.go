// Package color converts colors between the RGB, CMYK and CIE L*a*b* models,
// using CIE XYZ (D65, 2° observer) as the device-independent pivot.
//
// Every converter accepts numbers in any range and returns a fresh value
// clamped (and, for RGB and CMYK, rounded) into the target model's legal
// domain. None of the functions hold state between calls.
package color

import "math"

// Reference white for CIE standard illuminant D65, 2° observer.
const (
	WhiteX = 95.047
	WhiteY = 100.0
	WhiteZ = 108.883
)

// Legal ranges of the user-facing models.
const (
	MaxRGB  = 255
	MaxCMYK = 100
	MinL    = 0.0
	MaxL    = 100.0
	MinAB   = -128.0
	MaxAB   = 127.0
)

// RGB is an 8-bit-per-channel sRGB color, each channel in [0,255].
type RGB struct {
	R, G, B int
}

// CMYK holds cyan, magenta, yellow and key percentages, each in [0,100].
type CMYK struct {
	C, M, Y, K int
}

// Lab is a CIE L*a*b* color with L in [0,100] and a, b in [-128,127].
// Components keep their fractional precision.
type Lab struct {
	L, A, B float64
}

// XYZ holds CIE tristimulus values scaled so that Y of the reference white
// is 100. XYZ is an internal intermediate and is never clamped.
type XYZ struct {
	X, Y, Z float64
}

// clampRound rounds v to the nearest integer and clamps it to [lo,hi].
// NaN maps to lo.
func clampRound(v float64, lo, hi int) int {
	if math.IsNaN(v) {
		return lo
	}
	v = math.Round(v)
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

// clampFloat clamps v to [lo,hi]. NaN maps to lo.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRGB(v float64) int  { return clampRound(v, 0, MaxRGB) }
func clampCMYK(v float64) int { return clampRound(v, 0, MaxCMYK) }
func clampL(v float64) float64 {
	return clampFloat(v, MinL, MaxL)
}
func clampAB(v float64) float64 {
	return clampFloat(v, MinAB, MaxAB)
}

// ClampRGB returns r, g, b rounded and clamped to [0,255].
func ClampRGB(r, g, b float64) RGB {
	return RGB{R: clampRGB(r), G: clampRGB(g), B: clampRGB(b)}
}

// ClampCMYK returns c, m, y, k rounded and clamped to [0,100].
func ClampCMYK(c, m, y, k float64) CMYK {
	return CMYK{C: clampCMYK(c), M: clampCMYK(m), Y: clampCMYK(y), K: clampCMYK(k)}
}

// ClampLab returns l clamped to [0,100] and a, b clamped to [-128,127].
func ClampLab(l, a, b float64) Lab {
	return Lab{L: clampL(l), A: clampAB(a), B: clampAB(b)}
}
