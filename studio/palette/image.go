package palette

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/watzon/randomcolor/color"
)

const (
	imageSize    = 1400
	baseFontSize = 42
	minFontSize  = 24
)

// PaletteImage represents configuration for generating a palette image
type PaletteImage struct {
	Colors   []color.Color
	Labels   []string
	HexCodes []string

	// Optional text options
	ShowHexCodes bool
	ShowLabels   bool
}

// GeneratePaletteImage creates an image of the color palette
func GeneratePaletteImage(cfg PaletteImage) (image.Image, error) {
	numColors := len(cfg.Colors)
	if numColors == 0 {
		return nil, fmt.Errorf("no colors provided")
	}
	if cfg.ShowHexCodes && len(cfg.HexCodes) < numColors {
		return nil, fmt.Errorf("expected %d hex codes, got %d", numColors, len(cfg.HexCodes))
	}

	// Create square context
	dc := gg.NewContext(imageSize, imageSize)

	// Fill background with white to ensure no transparency
	dc.SetColor(stdcolor.White)
	dc.Clear()

	regularFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}

	boldFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	// Calculate the appropriate font size based on number of colors
	fontSize := baseFontSize
	if numColors > 5 {
		fontSize = max(baseFontSize*5/numColors, minFontSize)
	}

	regularFace := truetype.NewFace(regularFont, &truetype.Options{
		Size: float64(fontSize),
	})
	boldFace := truetype.NewFace(boldFont, &truetype.Options{
		Size: float64(fontSize),
	})

	barHeight := float64(imageSize)
	barWidth := float64(imageSize) / float64(numColors)

	// Draw color bars and text
	for i, c := range cfg.Colors {
		x := float64(i) * barWidth

		dc.SetColor(c.ToRGBA(1))
		dc.DrawRectangle(x, 0, barWidth, barHeight)
		dc.Fill()

		dc.SetColor(color.ContrastColor(c))

		hexY := barHeight * 0.33
		labelStartY := hexY + float64(fontSize)*1.4
		lineHeight := float64(fontSize) * 1.2

		if cfg.ShowHexCodes {
			hexText := strings.TrimPrefix(cfg.HexCodes[i], "#")
			dc.SetFontFace(boldFace)
			textWidth, _ := dc.MeasureString(hexText)
			dc.DrawString(hexText, x+(barWidth-textWidth)/2, hexY)
		}

		if cfg.ShowLabels && i < len(cfg.Labels) {
			dc.SetFontFace(regularFace)

			textY := labelStartY
			for _, line := range wrapText(dc, cfg.Labels[i], barWidth*0.9) {
				textWidth, _ := dc.MeasureString(line)
				dc.DrawString(line, x+(barWidth-textWidth)/2, textY)
				textY += lineHeight
			}
		}
	}

	return dc.Image(), nil
}

// wrapText wraps text to fit within a given width, breaking on word boundaries
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	// Use a smaller space width for tighter text
	spaceWidth, _ := dc.MeasureString(" ")
	spaceWidth *= 0.8

	var lines []string
	currentLine := []string{words[0]}
	currentLineWidth, _ := dc.MeasureString(words[0])

	for _, word := range words[1:] {
		wordWidth, _ := dc.MeasureString(word)

		if newLineWidth := currentLineWidth + spaceWidth + wordWidth; newLineWidth <= maxWidth {
			currentLine = append(currentLine, word)
			currentLineWidth = newLineWidth
			continue
		}

		lines = append(lines, strings.Join(currentLine, " "))
		currentLine = []string{word}
		currentLineWidth = wordWidth
	}

	return append(lines, strings.Join(currentLine, " "))
}
