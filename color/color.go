package color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidHex = errors.New("invalid hex color")

// Color represents an RGB color
type Color struct {
	R uint8
	G uint8
	B uint8
}

// HSV is a sampled color: hue in [0, 360), saturation and value in [0, 100]
type HSV struct {
	H int
	S int
	V int
}

// HSL represents a color in HSL space with integer components
type HSL struct {
	H int
	S int
	L int
}

// Hex formats the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ToRGBA converts our Color to color.RGBA with the given alpha in [0, 1]
func (c Color) ToRGBA(alpha float64) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(alpha)}
}

// Floats returns the channels scaled to [0, 1]
func (c Color) Floats() [3]float64 {
	return [3]float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
	}
}

// Colorful converts the color to a go-colorful value
func (c Color) Colorful() colorful.Color {
	f := c.Floats()
	return colorful.Color{R: f[0], G: f[1], B: f[2]}
}

// ParseHex parses #rrggbb or rrggbb
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// HSVToRGB converts hue [0, 360], saturation and brightness [0, 100] to RGB.
// Hues 0 and 360 are treated as 1 and 359. Channels are floored, not rounded.
func HSVToRGB(hue, saturation, brightness int) Color {
	if hue == 0 {
		hue = 1
	}
	if hue == 360 {
		hue = 359
	}

	h := float64(hue) / 360
	s := float64(saturation) / 100
	v := float64(brightness) / 100

	hi := math.Floor(h * 6)
	f := h*6 - hi
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(hi) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return Color{
		R: channel(r),
		G: channel(g),
		B: channel(b),
	}
}

func channel(x float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Floor(x*255))))
}

// HSVToHSL converts the sampled HSV triple to integer HSL components.
// A fully black color has zero saturation.
func HSVToHSL(hue, saturation, brightness int) HSL {
	s := float64(saturation) / 100
	v := float64(brightness) / 100

	k := (2 - s) * v
	if k > 1 {
		k = 2 - k
	}

	var sl float64
	if k != 0 {
		sl = s * v / k
	}

	return HSL{
		H: hue,
		S: int(sl * 100),
		L: int(k / 2 * 100),
	}
}

// ContrastColor returns white or black depending on which provides better contrast
func ContrastColor(c Color) color.Color {
	// Calculate relative luminance
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	luminance := 0.2126*math.Pow(r, 2.2) + 0.7152*math.Pow(g, 2.2) + 0.0722*math.Pow(b, 2.2)

	if luminance > 0.5 {
		return color.Black
	}
	return color.White
}

func alphaByte(alpha float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
}

func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}
