package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBA(r, g, b, alpha), nil
}

// Palette maps a triangle index to a flat color.
// Palettes must be pure so that renders stay reproducible.
type Palette func(i int) Color

// goldenAngle spreads successive hues as far apart as possible.
const goldenAngle = 360 / math.Phi / math.Phi

// GoldenPalette returns a palette that walks the hue circle by the golden
// angle at fixed saturation and value (both in [0, 1]).
func GoldenPalette(saturation, value float64) Palette {
	return func(i int) Color {
		h := math.Mod(float64(i)*goldenAngle, 360)
		if h < 0 {
			h += 360
		}
		r, g, b := colorful.Hsv(h, saturation, value).RGB255()
		return RGB(r, g, b)
	}
}

// FixedPalette cycles through colors. An empty list yields opaque black.
func FixedPalette(colors ...Color) Palette {
	cs := append([]Color(nil), colors...)
	return func(i int) Color {
		if len(cs) == 0 {
			return ColorBlack
		}
		i %= len(cs)
		if i < 0 {
			i += len(cs)
		}
		return cs[i]
	}
}
