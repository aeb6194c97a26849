package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Shared text colors of the dark theme.
const (
	colorText   = "#E8E8E8"
	colorMuted  = "#888888"
	colorFaint  = "#666666"
	colorCredit = "#FEFAE0"
)

// hexRGB parses "#RRGGBB" into 0..1 components.
func hexRGB(hex string) (r, g, b float64, err error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, perr := strconv.ParseUint(s, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, perr)
	}
	r = float64(v>>16&0xFF) / 255
	g = float64(v>>8&0xFF) / 255
	b = float64(v&0xFF) / 255
	return r, g, b, nil
}

// lerpHex interpolates between two hex colors at t in [0,1].
func lerpHex(low, high string, t float64) (r, g, b float64, err error) {
	lr, lg, lb, err := hexRGB(low)
	if err != nil {
		return 0, 0, 0, err
	}
	hr, hg, hb, err := hexRGB(high)
	if err != nil {
		return 0, 0, 0, err
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lr + (hr-lr)*t, lg + (hg-lg)*t, lb + (hb-lb)*t, nil
}

// luminance estimates perceived brightness of a hex color in [0,1], used to
// pick readable text colors on bar segments.
func luminance(hex string) float64 {
	r, g, b, err := hexRGB(hex)
	if err != nil {
		return 0
	}
	return 0.299*r + 0.587*g + 0.114*b
}

// stackOffsets returns the left edge of each stacked segment.
func stackOffsets(values []float64) []float64 {
	offsets := make([]float64, len(values))
	var left float64
	for i, v := range values {
		offsets[i] = left
		left += v
	}
	return offsets
}

// formatValue renders a metric value compactly: integers without decimals,
// everything else with two.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
