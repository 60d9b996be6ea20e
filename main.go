package main

import (
	"log"
	"math/rand"
	"os"

	"CoordinatePlane/internal/config"
	"CoordinatePlane/internal/state"
	"CoordinatePlane/internal/ui"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	seed := cfg.RandomSeed()
	log.Printf("Starting %q: plane %gx%g, seed %d", cfg.Title, cfg.PlaneWidth, cfg.PlaneHeight, seed)

	model := state.NewPlaneModel(
		state.DefaultBounds(cfg.PlaneWidth, cfg.PlaneHeight),
		rand.NewSource(seed),
	)
	ui.RunApp(cfg, model)
}
