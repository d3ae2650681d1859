package palette

import (
	"fmt"
	"strings"

	"github.com/watzon/randomcolor/color"
)

// Generator handles the generation of color palettes
type Generator struct {
	rc    *color.RandomColor
	title string
	size  int
}

// NewGenerator creates a palette generator drawing size colors per palette
// from rc. The title describes the generator's constraints.
func NewGenerator(rc *color.RandomColor, title string, size int) (*Generator, error) {
	if rc == nil {
		return nil, fmt.Errorf("no color generator provided")
	}
	if size < 1 {
		return nil, fmt.Errorf("palette size must be positive, got %d", size)
	}

	return &Generator{
		rc:    rc,
		title: title,
		size:  size,
	}, nil
}

// Generate draws a new palette; every swatch is one generation
func (g *Generator) Generate() *Palette {
	p := &Palette{
		Title:    g.title,
		Colors:   make([]color.Color, 0, g.size),
		HexCodes: make([]string, 0, g.size),
		Labels:   make([]string, 0, g.size),
	}

	for i := 0; i < g.size; i++ {
		hsv := g.rc.HSV()
		c := color.HSVToRGB(hsv.H, hsv.S, hsv.V)
		hsl := color.HSVToHSL(hsv.H, hsv.S, hsv.V)

		p.Colors = append(p.Colors, c)
		p.HexCodes = append(p.HexCodes, c.Hex())
		p.Labels = append(p.Labels, fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L))
	}

	return p
}

// Title builds a human-readable palette title from the constraint names
func Title(hue, luminosity string) string {
	var parts []string
	for _, s := range []string{luminosity, hue} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, strings.ToUpper(s[:1])+strings.ToLower(s[1:]))
		}
	}
	if len(parts) == 0 {
		return "Random Palette"
	}
	return strings.Join(parts, " ") + " Palette"
}
