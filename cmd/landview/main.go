//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"landgrow/internal/app"
	"landgrow/internal/noise"
	"landgrow/internal/pipeline"
)

func main() {
	vcfg := app.NewConfig()
	vcfg.Bind(flag.CommandLine)
	flag.Parse()

	cfg := pipeline.DefaultConfig()
	cfg.Seed = vcfg.Seed
	cfg.Workers = vcfg.Workers
	if vcfg.Noise != "" {
		field, err := noise.New(vcfg.Noise, cfg.Seed)
		if err != nil {
			log.Fatalf("landview: %v", err)
		}
		cfg.Stages[0] = pipeline.NoiseSeed(field, 0.05, 0.36)
	}

	game, err := app.New(cfg, vcfg.Scale)
	if err != nil {
		log.Fatalf("landview: %v", err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("landgrow seed %d", cfg.Seed))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("landview: %v", err)
	}
}
