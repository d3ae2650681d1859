package color

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RandomColor generates attractive random colors. Every output method draws a
// new color. With an explicit seed the draws form a reproducible sequence:
// the seeded source is created once and advanced by each call.
//
// A RandomColor is not safe for concurrent use.
type RandomColor struct {
	hue        *Gamut
	luminosity *Luminosity
	alpha      *float64
	rng        *rand.Rand
	dictionary *Dictionary
}

// New returns a generator with no hue or luminosity constraint, an alpha of
// 1.0, an entropy-seeded source and the default dictionary.
func New() *RandomColor {
	alpha := 1.0
	return &RandomColor{
		alpha:      &alpha,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		dictionary: DefaultDictionary(),
	}
}

// Hue restricts generated hues to the given gamut
func (rc *RandomColor) Hue(g Gamut) *RandomColor {
	rc.hue = &g
	return rc
}

// AnyHue removes the hue constraint
func (rc *RandomColor) AnyHue() *RandomColor {
	rc.hue = nil
	return rc
}

// Luminosity sets the luminosity mode
func (rc *RandomColor) Luminosity(l Luminosity) *RandomColor {
	rc.luminosity = &l
	return rc
}

// Seed reseeds the source so that subsequent colors are reproducible
func (rc *RandomColor) Seed(seed uint64) *RandomColor {
	rc.rng = rand.New(rand.NewPCG(seed, seed))
	return rc
}

// SeedString seeds the source with the xxhash of the text
func (rc *RandomColor) SeedString(seed string) *RandomColor {
	return rc.Seed(xxhash.Sum64String(seed))
}

// Alpha sets the alpha value. Values of 1.0 or more are ignored and negative
// values are clamped to 0.
func (rc *RandomColor) Alpha(alpha float64) *RandomColor {
	if alpha < 1.0 {
		alpha = max(alpha, 0)
		rc.alpha = &alpha
	}
	return rc
}

// RandomAlpha removes the alpha setting; each output then draws its own alpha.
// These draws come from the process-wide source and are not reproducible.
func (rc *RandomColor) RandomAlpha() *RandomColor {
	rc.alpha = nil
	return rc
}

// Dictionary replaces the color dictionary
func (rc *RandomColor) Dictionary(d *Dictionary) *RandomColor {
	rc.dictionary = d
	return rc
}

// HSV generates a color and returns it as an HSV triple
func (rc *RandomColor) HSV() HSV {
	return rc.generate()
}

// RGB generates a color and returns it as RGB bytes
func (rc *RandomColor) RGB() Color {
	c := rc.generate()
	return HSVToRGB(c.H, c.S, c.V)
}

// RGBString generates a color formatted as rgb(r, g, b)
func (rc *RandomColor) RGBString() string {
	return rc.RGB().String()
}

// RGBAString generates a color formatted as rgba(r, g, b, a)
func (rc *RandomColor) RGBAString() string {
	c := rc.RGB()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(rc.alphaValue()))
}

// RGBA generates a color as an image/color value with the alpha scaled to a byte
func (rc *RandomColor) RGBA() color.RGBA {
	return rc.RGB().ToRGBA(rc.alphaValue())
}

// RGBFloat generates a color with channels in [0, 1]
func (rc *RandomColor) RGBFloat() [3]float64 {
	return rc.RGB().Floats()
}

// RGBAFloat generates a color with channels and alpha in [0, 1]
func (rc *RandomColor) RGBAFloat() [4]float64 {
	f := rc.RGB().Floats()
	return [4]float64{f[0], f[1], f[2], rc.alphaValue()}
}

// HSL generates a color and returns its HSL components
func (rc *RandomColor) HSL() HSL {
	c := rc.generate()
	return HSVToHSL(c.H, c.S, c.V)
}

// HSLString generates a color formatted as hsl(h, s%, l%)
func (rc *RandomColor) HSLString() string {
	c := rc.HSL()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// HSLAString generates a color formatted as hsla(h, s%, l%, a)
func (rc *RandomColor) HSLAString() string {
	c := rc.HSL()
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", c.H, c.S, c.L, formatAlpha(rc.alphaValue()))
}

// Hex generates a color formatted as #rrggbb
func (rc *RandomColor) Hex() string {
	return rc.RGB().Hex()
}

// Colorful generates a color as a go-colorful value
func (rc *RandomColor) Colorful() colorful.Color {
	return rc.RGB().Colorful()
}

func (rc *RandomColor) alphaValue() float64 {
	if rc.alpha != nil {
		return *rc.alpha
	}
	return rand.Float64()
}

// generate runs the hue, saturation and brightness stages in order
func (rc *RandomColor) generate() HSV {
	h := rc.pickHue()
	s := rc.pickSaturation(h)
	v := rc.pickBrightness(h, s)
	return HSV{H: h, S: s, V: v}
}

// pickHue draws from [0, 360) without a constraint, otherwise from the
// gamut's inclusive range normalized into [0, 360).
func (rc *RandomColor) pickHue() int {
	if rc.hue == nil {
		return rc.randomWithin(0, 360)
	}
	lo, hi := rc.dictionary.Category(*rc.hue).Range()
	return normalizeHue(rc.randomWithin(lo, hi+1))
}

func (rc *RandomColor) pickSaturation(hue int) int {
	sMin, sMax := rc.dictionary.SaturationRange(hue)

	if rc.luminosity == nil {
		return rc.randomWithin(sMin, sMax)
	}
	switch *rc.luminosity {
	case Random:
		return rc.randomWithin(0, 100)
	case Bright:
		return rc.randomWithin(55, sMax)
	case Dark:
		return rc.randomWithin(sMax-10, sMax)
	case Light:
		return rc.randomWithin(sMin, 55)
	default:
		return rc.randomWithin(sMin, sMax)
	}
}

func (rc *RandomColor) pickBrightness(hue, saturation int) int {
	bMin := rc.dictionary.MinimumBrightness(hue, saturation)
	bMax := 100

	if rc.luminosity == nil {
		return rc.randomWithin(bMin, bMax)
	}
	switch *rc.luminosity {
	case Random:
		return rc.randomWithin(0, 100)
	case Light:
		return rc.randomWithin((bMin+bMax)/2, bMax)
	case Dark:
		return rc.randomWithin(bMin, min(bMin+20, bMax))
	default:
		return rc.randomWithin(bMin, bMax)
	}
}

// randomWithin draws from [lo, hi). Inverted bounds are swapped and an empty
// range is widened to [lo, lo+1).
func (rc *RandomColor) randomWithin(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		hi++
	}
	return lo + rc.rng.IntN(hi-lo)
}
