// Package config holds the command-line settings for the plane window.
package config

import (
	"errors"
	"flag"
	"io"
	"time"
)

type Config struct {
	Title         string
	PlaneWidth    float64
	PlaneHeight   float64
	GenerateCount int
	Seed          int64
}

func Default() Config {
	return Config{
		Title:         "Coordinate Plane",
		PlaneWidth:    800,
		PlaneHeight:   800,
		GenerateCount: 100,
	}
}

// Parse reads flags from args (without the program name).
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("coordinateplane", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.Float64Var(&cfg.PlaneWidth, "width", cfg.PlaneWidth, "plane width in pixels")
	fs.Float64Var(&cfg.PlaneHeight, "height", cfg.PlaneHeight, "plane height in pixels")
	fs.IntVar(&cfg.GenerateCount, "count", cfg.GenerateCount, "points added by Generate Points")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 uses the current time)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.PlaneWidth <= 0 || cfg.PlaneHeight <= 0 {
		return Config{}, errors.New("width and height must be positive")
	}
	if cfg.GenerateCount < 0 {
		return Config{}, errors.New("count must not be negative")
	}
	return cfg, nil
}

// RandomSeed returns the configured seed, or a time-based one when unset.
func (c Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
