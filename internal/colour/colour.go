// Package colour provides colour conversion and dominant-colour extraction
// for skin tone analysis.
package colour

import (
	"encoding/hex"
	"fmt"
	"math"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL space.
// Hue is in degrees [0, 360); saturation and lightness are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ToHSL converts the colour to HSL using the standard six-case formula.
// Achromatic inputs (R == G == B) yield hue and saturation of 0.
func (rgb RGB) ToHSL() HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HexFromFloat renders floating-point channel values as a lowercase hex
// string. Each channel is rounded to the nearest integer and clamped to
// [0, 255] before encoding.
func HexFromFloat(r, g, b float64) string {
	return RGB{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}.Hex()
}

// clampChannel rounds a channel value and clamps it into the 8-bit range.
func clampChannel(v float64) uint8 {
	rounded := math.Round(v)
	if rounded < 0 {
		return 0
	}
	if rounded > 255 {
		return 255
	}
	return uint8(rounded)
}

// ParseError describes a malformed hex colour string.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Input, e.Reason)
}

// ParseHex parses a 7-character "#rrggbb" string into an RGB colour.
// It returns a *ParseError on wrong length, missing '#', or non-hex digits.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 {
		return RGB{}, &ParseError{Input: s, Reason: "expected 7 characters in the form #rrggbb"}
	}
	if s[0] != '#' {
		return RGB{}, &ParseError{Input: s, Reason: "missing leading '#'"}
	}

	raw, err := hex.DecodeString(s[1:])
	if err != nil {
		return RGB{}, &ParseError{Input: s, Reason: "non-hex digits"}
	}

	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}
