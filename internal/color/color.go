package color

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Parse parses a CSS color (hex, rgb(), hsl(), named colors, etc.)
func Parse(value string) (csscolorparser.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return csscolorparser.Color{}, fmt.Errorf("empty color value")
	}

	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return csscolorparser.Color{}, fmt.Errorf("unsupported color format: %s", value)
	}
	return parsed, nil
}

// Hex returns the normalized #rrggbb (or #rrggbbaa) form of a CSS color
func Hex(value string) (string, error) {
	parsed, err := Parse(value)
	if err != nil {
		return "", err
	}
	return parsed.HexString(), nil
}

// Equal reports whether two CSS color strings denote the same RGBA color.
// Either side failing to parse is returned as an error.
func Equal(a, b string) (bool, error) {
	hexA, err := Hex(a)
	if err != nil {
		return false, err
	}
	hexB, err := Hex(b)
	if err != nil {
		return false, err
	}
	return hexA == hexB, nil
}
