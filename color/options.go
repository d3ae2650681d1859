package color

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGamut      = errors.New("unknown gamut")
	ErrUnknownLuminosity = errors.New("unknown luminosity")
)

// Gamut names a hue category of the color dictionary
type Gamut int

const (
	Monochrome Gamut = iota
	Red
	Orange
	Yellow
	Green
	Blue
	Purple
	Pink
)

// gamuts lists every gamut in dictionary lookup order
var gamuts = [...]Gamut{Monochrome, Red, Orange, Yellow, Green, Blue, Purple, Pink}

var gamutNames = [...]string{
	Monochrome: "monochrome",
	Red:        "red",
	Orange:     "orange",
	Yellow:     "yellow",
	Green:      "green",
	Blue:       "blue",
	Purple:     "purple",
	Pink:       "pink",
}

func (g Gamut) String() string {
	if g < 0 || int(g) >= len(gamutNames) {
		return fmt.Sprintf("Gamut(%d)", int(g))
	}
	return gamutNames[g]
}

func (g Gamut) valid() bool {
	return g >= Monochrome && g <= Pink
}

// ParseGamut returns the gamut with the given case-insensitive name
func ParseGamut(name string) (Gamut, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, g := range gamuts {
		if gamutNames[g] == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGamut, name)
}

// Luminosity narrows the saturation and brightness ranges a color is drawn from
type Luminosity int

const (
	Random Luminosity = iota
	Bright
	Light
	Dark
)

var luminosityNames = [...]string{
	Random: "random",
	Bright: "bright",
	Light:  "light",
	Dark:   "dark",
}

func (l Luminosity) String() string {
	if l < 0 || int(l) >= len(luminosityNames) {
		return fmt.Sprintf("Luminosity(%d)", int(l))
	}
	return luminosityNames[l]
}

// ParseLuminosity returns the luminosity with the given case-insensitive name
func ParseLuminosity(name string) (Luminosity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, n := range luminosityNames {
		if n == name {
			return Luminosity(l), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLuminosity, name)
}
