//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"agelife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctl, err := app.NewController(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("agelife: %dx%d grid, seed %d, %s soups", cfg.Rows, cfg.Cols, cfg.Seed, cfg.SeedMode)

	ebiten.SetWindowTitle("agelife")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app.New(ctl)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
