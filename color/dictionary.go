package color

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrTooFewBounds   = errors.New("lower bounds need at least two points")
	ErrUnsortedBounds = errors.New("lower bounds must strictly increase in saturation")
	ErrInvalidRange   = errors.New("hue range minimum exceeds maximum")
	ErrDuplicateGamut = errors.New("gamut defined more than once")
	ErrMissingGamut   = errors.New("gamut not defined")
	ErrUncoveredHue   = errors.New("hue not covered by any category")
)

// Bound is one point of a category's minimum brightness curve
type Bound struct {
	Saturation int
	Brightness int
}

// HueCategory is a named slice of the hue circle together with the
// piecewise-linear curve giving the minimum brightness for each saturation.
type HueCategory struct {
	gamut           Gamut
	hueRange        [2]int
	lowerBounds     []Bound
	saturationRange [2]int
	brightnessRange [2]int
}

// NewHueCategory validates the curve and derives the saturation and brightness
// ranges from its first and last points.
func NewHueCategory(gamut Gamut, hueRange [2]int, lowerBounds []Bound) (HueCategory, error) {
	if !gamut.valid() {
		return HueCategory{}, fmt.Errorf("%w: %d", ErrUnknownGamut, int(gamut))
	}
	if hueRange[0] > hueRange[1] {
		return HueCategory{}, fmt.Errorf("%s: %w", gamut, ErrInvalidRange)
	}
	if len(lowerBounds) < 2 {
		return HueCategory{}, fmt.Errorf("%s: %w", gamut, ErrTooFewBounds)
	}
	for i := 1; i < len(lowerBounds); i++ {
		if lowerBounds[i].Saturation <= lowerBounds[i-1].Saturation {
			return HueCategory{}, fmt.Errorf("%s: %w", gamut, ErrUnsortedBounds)
		}
	}

	bounds := make([]Bound, len(lowerBounds))
	copy(bounds, lowerBounds)
	first, last := bounds[0], bounds[len(bounds)-1]

	return HueCategory{
		gamut:           gamut,
		hueRange:        hueRange,
		lowerBounds:     bounds,
		saturationRange: [2]int{first.Saturation, last.Saturation},
		brightnessRange: [2]int{last.Brightness, first.Brightness},
	}, nil
}

func (c HueCategory) Gamut() Gamut { return c.gamut }

// Range returns the inclusive hue interval. The minimum may be negative for
// categories that wrap through 0.
func (c HueCategory) Range() (int, int) { return c.hueRange[0], c.hueRange[1] }

func (c HueCategory) SaturationRange() (int, int) {
	return c.saturationRange[0], c.saturationRange[1]
}

// BrightnessRange is taken from the curve endpoints, not its extrema.
func (c HueCategory) BrightnessRange() (int, int) {
	return c.brightnessRange[0], c.brightnessRange[1]
}

// LowerBounds returns a copy of the curve points.
func (c HueCategory) LowerBounds() []Bound {
	bounds := make([]Bound, len(c.lowerBounds))
	copy(bounds, c.lowerBounds)
	return bounds
}

// Contains reports whether hue, taken modulo 360, lies in the category's range
func (c HueCategory) Contains(hue int) bool {
	hue = normalizeHue(hue)
	return c.within(hue) || c.within(hue-360)
}

func (c HueCategory) within(hue int) bool {
	return hue >= c.hueRange[0] && hue <= c.hueRange[1]
}

// MinimumBrightness interpolates the lower bound curve at the given saturation
// and floors the result. Saturations outside the curve take the nearest
// endpoint's brightness.
func (c HueCategory) MinimumBrightness(saturation int) int {
	first, last := c.lowerBounds[0], c.lowerBounds[len(c.lowerBounds)-1]
	if saturation <= first.Saturation {
		return first.Brightness
	}
	if saturation >= last.Saturation {
		return last.Brightness
	}

	for i := 0; i < len(c.lowerBounds)-1; i++ {
		p1, p2 := c.lowerBounds[i], c.lowerBounds[i+1]
		if saturation < p1.Saturation || saturation > p2.Saturation {
			continue
		}
		delta := float64((p2.Brightness-p1.Brightness)*(saturation-p1.Saturation)) /
			float64(p2.Saturation-p1.Saturation)
		return int(math.Floor(float64(p1.Brightness) + delta))
	}

	// unreachable: the curve covers [first, last] without gaps
	return last.Brightness
}

// Dictionary maps every gamut to its hue category. It is never modified after
// construction and may be shared between goroutines.
type Dictionary struct {
	categories [len(gamuts)]HueCategory
}

// NewDictionary builds a dictionary from exactly one category per gamut. Every
// hue in [0, 360) must belong to some category.
func NewDictionary(categories ...HueCategory) (*Dictionary, error) {
	d := &Dictionary{}
	var seen [len(gamuts)]bool
	for _, c := range categories {
		if !c.gamut.valid() || len(c.lowerBounds) < 2 {
			return nil, fmt.Errorf("%s: %w", c.gamut, ErrTooFewBounds)
		}
		if seen[c.gamut] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGamut, c.gamut)
		}
		seen[c.gamut] = true
		d.categories[c.gamut] = c
	}
	for _, g := range gamuts {
		if !seen[g] {
			return nil, fmt.Errorf("%w: %s", ErrMissingGamut, g)
		}
	}
	for hue := 0; hue < 360; hue++ {
		if _, ok := d.lookup(hue); !ok {
			return nil, fmt.Errorf("%w: %d", ErrUncoveredHue, hue)
		}
	}
	return d, nil
}

var defaultDictionary = mustDictionary(
	mustCategory(Monochrome, [2]int{0, 0}, []Bound{{0, 0}, {100, 0}}),
	mustCategory(Red, [2]int{-26, 18}, []Bound{
		{20, 100}, {30, 92}, {40, 89}, {50, 85}, {60, 78}, {70, 70}, {80, 60}, {90, 55}, {100, 50},
	}),
	mustCategory(Orange, [2]int{19, 46}, []Bound{
		{20, 100}, {30, 93}, {40, 88}, {50, 86}, {60, 85}, {70, 70}, {100, 70},
	}),
	mustCategory(Yellow, [2]int{47, 62}, []Bound{
		{25, 100}, {40, 94}, {50, 89}, {60, 86}, {70, 84}, {80, 82}, {90, 80}, {100, 75},
	}),
	mustCategory(Green, [2]int{63, 178}, []Bound{
		{30, 100}, {40, 90}, {50, 85}, {60, 81}, {70, 74}, {80, 64}, {90, 50}, {100, 40},
	}),
	mustCategory(Blue, [2]int{179, 257}, []Bound{
		{20, 100}, {30, 86}, {40, 80}, {50, 74}, {60, 60}, {70, 52}, {80, 44}, {90, 39}, {100, 35},
	}),
	mustCategory(Purple, [2]int{258, 282}, []Bound{
		{20, 100}, {30, 87}, {40, 79}, {50, 70}, {60, 65}, {70, 59}, {80, 52}, {90, 45}, {100, 42},
	}),
	// 334 wraps to red's -26
	mustCategory(Pink, [2]int{283, 333}, []Bound{
		{20, 100}, {30, 90}, {40, 86}, {60, 84}, {80, 80}, {90, 75}, {100, 73},
	}),
)

// DefaultDictionary returns the built-in calibration table.
func DefaultDictionary() *Dictionary {
	return defaultDictionary
}

func mustCategory(gamut Gamut, hueRange [2]int, lowerBounds []Bound) HueCategory {
	c, err := NewHueCategory(gamut, hueRange, lowerBounds)
	if err != nil {
		panic(err)
	}
	return c
}

func mustDictionary(categories ...HueCategory) *Dictionary {
	d, err := NewDictionary(categories...)
	if err != nil {
		panic(err)
	}
	return d
}

// Category returns the category of the given gamut.
func (d *Dictionary) Category(g Gamut) HueCategory {
	if !g.valid() {
		panic(fmt.Errorf("color: %w: %d", ErrUnknownGamut, int(g)))
	}
	return d.categories[g]
}

// CategoryForHue returns the category containing hue modulo 360. Monochrome is
// checked first, so hue 0 is always monochrome.
func (d *Dictionary) CategoryForHue(hue int) HueCategory {
	c, ok := d.lookup(hue)
	if !ok {
		panic(fmt.Errorf("color: %w: %d", ErrUncoveredHue, hue))
	}
	return c
}

func (d *Dictionary) lookup(hue int) (HueCategory, bool) {
	for _, g := range gamuts {
		if d.categories[g].Contains(hue) {
			return d.categories[g], true
		}
	}
	return HueCategory{}, false
}

// SaturationRange returns the saturation bounds for the category of hue.
func (d *Dictionary) SaturationRange(hue int) (int, int) {
	return d.CategoryForHue(hue).SaturationRange()
}

// MinimumBrightness returns the lowest acceptable brightness for a hue at the
// given saturation.
func (d *Dictionary) MinimumBrightness(hue, saturation int) int {
	return d.CategoryForHue(hue).MinimumBrightness(saturation)
}

func normalizeHue(hue int) int {
	hue %= 360
	if hue < 0 {
		hue += 360
	}
	return hue
}
