package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvHue         = "RANDOMCOLOR_HUE"
	EnvLuminosity  = "RANDOMCOLOR_LUMINOSITY"
	EnvSeed        = "RANDOMCOLOR_SEED"
	EnvAlpha       = "RANDOMCOLOR_ALPHA"
	EnvCount       = "RANDOMCOLOR_COUNT"
	EnvFormat      = "RANDOMCOLOR_FORMAT"
	EnvOutputDir   = "RANDOMCOLOR_OUTPUT_DIR"
	EnvSchedule    = "RANDOMCOLOR_SCHEDULE"
	EnvMaxWidth    = "RANDOMCOLOR_MAX_WIDTH"
	EnvMaxHeight   = "RANDOMCOLOR_MAX_HEIGHT"
	EnvTimezone    = "TZ"
	defaultFormat  = "hex"
	defaultCount   = 5
	defaultMaxSize = 1600
)

// Config holds all configuration for the generator and its outputs
type Config struct {
	// Color constraints; empty means unconstrained
	Hue        string
	Luminosity string

	// Seed is an integer or arbitrary text; empty draws from entropy
	Seed string

	// Alpha is used when set; nil means a random alpha per color
	Alpha *float64

	// Number of colors per palette and their text format
	Count  int
	Format string

	// Output directory for generated images
	OutputDir string

	// Cron expression for scheduled palette rendering
	Schedule string
	Timezone string

	// Image configuration
	MaxWidth  int
	MaxHeight int
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Count:     defaultCount,
		Format:    defaultFormat,
		OutputDir: filepath.Join(os.TempDir(), "randomcolor"),
		MaxWidth:  defaultMaxSize,
		MaxHeight: defaultMaxSize,
	}
}

// Load reads a .env file from the working directory when present, then
// overlays the environment onto DefaultConfig.
func Load() (*Config, error) {
	// Load environment variables
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.Hue = os.Getenv(EnvHue)
	cfg.Luminosity = os.Getenv(EnvLuminosity)
	cfg.Seed = os.Getenv(EnvSeed)
	cfg.Schedule = os.Getenv(EnvSchedule)
	cfg.Timezone = os.Getenv(EnvTimezone)
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}

	if v := os.Getenv(EnvAlpha); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", EnvAlpha, err)
		}
		cfg.WithAlpha(alpha)
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvCount, &cfg.Count},
		{EnvMaxWidth, &cfg.MaxWidth},
		{EnvMaxHeight, &cfg.MaxHeight},
	}
	for _, i := range ints {
		v := os.Getenv(i.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", i.name, err)
		}
		*i.dst = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the numeric settings
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.MaxWidth < 1 || c.MaxHeight < 1 {
		return fmt.Errorf("image bounds must be positive, got %dx%d", c.MaxWidth, c.MaxHeight)
	}
	return nil
}

// WithHue sets the hue gamut name
func (c *Config) WithHue(hue string) *Config {
	c.Hue = hue
	return c
}

// WithLuminosity sets the luminosity name
func (c *Config) WithLuminosity(luminosity string) *Config {
	c.Luminosity = luminosity
	return c
}

// WithSeed sets the seed
func (c *Config) WithSeed(seed string) *Config {
	c.Seed = seed
	return c
}

// WithAlpha sets a fixed alpha
func (c *Config) WithAlpha(alpha float64) *Config {
	c.Alpha = &alpha
	return c
}

// WithCount sets the number of colors per palette
func (c *Config) WithCount(count int) *Config {
	c.Count = count
	return c
}

// WithFormat sets the text format of printed colors
func (c *Config) WithFormat(format string) *Config {
	c.Format = format
	return c
}

// WithOutputDir sets the output directory
func (c *Config) WithOutputDir(dir string) *Config {
	c.OutputDir = dir
	return c
}

// WithSchedule sets the cron expression for scheduled rendering
func (c *Config) WithSchedule(schedule string) *Config {
	c.Schedule = schedule
	return c
}
