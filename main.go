package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/watzon/randomcolor/studio"
	"github.com/watzon/randomcolor/studio/config"
)

func main() {
	// Load .env and RANDOMCOLOR_* settings
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	var (
		alpha      string
		renderOnce bool
	)
	flag.StringVar(&cfg.Hue, "hue", cfg.Hue, "restrict hues to a gamut: monochrome, red, orange, yellow, green, blue, purple, pink")
	flag.StringVar(&cfg.Luminosity, "luminosity", cfg.Luminosity, "random, bright, light or dark")
	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "integer or text seed for a reproducible sequence")
	flag.StringVar(&alpha, "alpha", "", "alpha below 1.0; random per color when unset")
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of colors")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "hex, rgb, rgba, hsl, hsla or hsv")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for palette images")
	flag.BoolVar(&renderOnce, "image", false, "render a palette image instead of printing colors")
	flag.StringVar(&cfg.Schedule, "schedule", cfg.Schedule, "cron expression for rendering palettes periodically")
	flag.Parse()

	if alpha != "" {
		a, err := strconv.ParseFloat(alpha, 64)
		if err != nil {
			log.Fatalf("Invalid alpha %q: %v", alpha, err)
		}
		cfg.WithAlpha(a)
	}

	s, err := studio.New(cfg)
	if err != nil {
		log.Fatal("Failed to create studio: ", err)
	}

	switch {
	case cfg.Schedule != "":
		runScheduled(s, cfg)
	case renderOnce:
		render(s)
	default:
		if err := s.WriteColors(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

func render(s *studio.Studio) {
	p, path, err := s.RenderPalette()
	if err != nil {
		log.Printf("Error rendering palette: %v", err)
		return
	}
	log.Printf("Wrote %s (%s): %v", path, p.Title, p.HexCodes)
}

func runScheduled(s *studio.Studio, cfg *config.Config) {
	// Get timezone from configuration or default to UTC
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Warning: Invalid timezone %q, defaulting to UTC", cfg.Timezone)
		location = time.UTC
	}

	c := cron.New(cron.WithLocation(location))
	_, err = c.AddFunc(cfg.Schedule, func() {
		log.Println("Rendering new color palette...")
		render(s)
	})
	if err != nil {
		log.Fatal("Failed to schedule palette cron job: ", err)
	}

	c.Start()
	log.Printf("Rendering palettes on %q into %s", cfg.Schedule, cfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	<-c.Stop().Done()
}
