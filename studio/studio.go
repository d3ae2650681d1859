// Package studio wires a color generator to its text and image outputs.
package studio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/watzon/randomcolor/color"
	"github.com/watzon/randomcolor/studio/config"
	"github.com/watzon/randomcolor/studio/image"
	"github.com/watzon/randomcolor/studio/palette"
)

// Formats accepted by WriteColors
var formats = map[string]func(*color.RandomColor) string{
	"hex":  (*color.RandomColor).Hex,
	"rgb":  (*color.RandomColor).RGBString,
	"rgba": (*color.RandomColor).RGBAString,
	"hsl":  (*color.RandomColor).HSLString,
	"hsla": (*color.RandomColor).HSLAString,
	"hsv": func(rc *color.RandomColor) string {
		c := rc.HSV()
		return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
	},
}

// Studio renders colors and palettes from one configured generator.
// Its methods may be called from concurrent cron jobs.
type Studio struct {
	config     *config.Config
	format     func(*color.RandomColor) string
	imgHandler *image.Handler
	paletteGen *palette.Generator
	now        func() time.Time

	mu sync.Mutex
	rc *color.RandomColor
	n  int
}

// New creates a studio from the configuration
func New(cfg *config.Config) (*Studio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	format, ok := formats[strings.ToLower(cfg.Format)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}

	rc, err := NewRandomColor(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create color generator: %w", err)
	}

	paletteGen, err := palette.NewGenerator(rc, palette.Title(cfg.Hue, cfg.Luminosity), cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to create palette generator: %w", err)
	}

	return &Studio{
		config:     cfg,
		format:     format,
		imgHandler: image.NewHandler(cfg),
		paletteGen: paletteGen,
		now:        time.Now,
		rc:         rc,
	}, nil
}

// NewRandomColor builds a generator from the configured constraints. Integer
// seeds are used as is; any other text is hashed.
func NewRandomColor(cfg *config.Config) (*color.RandomColor, error) {
	rc := color.New()

	if cfg.Hue != "" {
		hue, err := color.ParseGamut(cfg.Hue)
		if err != nil {
			return nil, err
		}
		rc.Hue(hue)
	}

	if cfg.Luminosity != "" {
		luminosity, err := color.ParseLuminosity(cfg.Luminosity)
		if err != nil {
			return nil, err
		}
		rc.Luminosity(luminosity)
	}

	if cfg.Seed != "" {
		if seed, err := strconv.ParseUint(cfg.Seed, 10, 64); err == nil {
			rc.Seed(seed)
		} else if seed, err := strconv.ParseInt(cfg.Seed, 10, 64); err == nil {
			rc.Seed(uint64(seed))
		} else {
			rc.SeedString(cfg.Seed)
		}
	}

	if cfg.Alpha != nil {
		rc.Alpha(*cfg.Alpha)
	} else {
		rc.RandomAlpha()
	}

	return rc, nil
}

// WriteColors writes Count colors, one per line, in the configured format
func (s *Studio) WriteColors(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < s.config.Count; i++ {
		if _, err := fmt.Fprintln(w, s.format(s.rc)); err != nil {
			return fmt.Errorf("failed to write color: %w", err)
		}
	}
	return nil
}

// RenderPalette generates a palette, renders it and saves it as PNG in the
// output directory. It returns the palette and the written path.
func (s *Studio) RenderPalette() (*palette.Palette, string, error) {
	s.mu.Lock()
	p := s.paletteGen.Generate()
	s.n++
	name := fmt.Sprintf("palette-%s-%03d.png", s.now().Format("20060102-150405"), s.n)
	s.mu.Unlock()

	img, err := p.ToImage()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate palette image: %w", err)
	}

	path, err := s.imgHandler.Save(img, name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to save palette image: %w", err)
	}

	return p, path, nil
}
