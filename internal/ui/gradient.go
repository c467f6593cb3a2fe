package ui

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
)

var gradientPattern = regexp.MustCompile(`^linear-gradient\(\s*(\d+(?:\.\d+)?)deg\s*,\s*#([0-9a-fA-F]{6})[^,]*,\s*#([0-9a-fA-F]{6})[^)]*\)$`)

// Fallback gradient when a description cannot be parsed
var (
	fallbackStart = color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
	fallbackEnd   = color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
)

// gradient is a two stop linear gradient.
type gradient struct {
	Angle      float64
	Start, End color.NRGBA
}

// parseGradient reads a two stop CSS linear-gradient with hex colors.
func parseGradient(s string) (gradient, error) {
	m := gradientPattern.FindStringSubmatch(s)
	if m == nil {
		return gradient{Angle: 135, Start: fallbackStart, End: fallbackEnd}, fmt.Errorf("unsupported gradient: %q", s)
	}
	angle, _ := strconv.ParseFloat(m[1], 64)
	return gradient{Angle: angle, Start: hexColor(m[2]), End: hexColor(m[3])}, nil
}

func hexColor(h string) color.NRGBA {
	v, _ := strconv.ParseUint(h, 16, 32)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
