package palette

import (
	"image"

	"github.com/watzon/randomcolor/color"
)

// Palette represents a generated color palette
type Palette struct {
	Title    string
	Colors   []color.Color
	HexCodes []string
	Labels   []string
}

// ToImage converts the palette to an image
func (p *Palette) ToImage() (image.Image, error) {
	cfg := PaletteImage{
		Colors:       p.Colors,
		Labels:       p.Labels,
		HexCodes:     p.HexCodes,
		ShowHexCodes: true,
		ShowLabels:   true,
	}

	return GeneratePaletteImage(cfg)
}
