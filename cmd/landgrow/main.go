package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"landgrow/internal/export"
	"landgrow/internal/metrics"
	"landgrow/internal/noise"
	"landgrow/internal/pipeline"
)

func main() {
	seed := flag.Int64("seed", 0, "world seed (required)")
	width := flag.Int("width", 4, "seed grid width")
	height := flag.Int("height", 4, "seed grid height")
	fill := flag.Float64("fill", 0.1, "land odds per cell during seeding")
	stagePlan := flag.String("stages", "", "override the growth plan (comma-separated, e.g. seed,zoom:2,addisland:3)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel rows per automaton pass")
	outDir := flag.String("out", ".", "output directory")
	writePNG := flag.Bool("png", false, "also write a greyscale PNG")
	noiseKind := flag.String("noise", "", "seed from a noise field instead of uniform draws (perlin|simplex|fractal)")
	noiseScale := flag.Float64("noise-scale", 0.05, "noise sample scale")
	noiseThreshold := flag.Float64("noise-threshold", 0.36, "land threshold for noise samples")
	quiet := flag.Bool("quiet", false, "suppress per-stage progress")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		fmt.Fprintln(os.Stderr, "landgrow requires an explicit -seed")
		flag.Usage()
		os.Exit(2)
	}

	cfg := pipeline.DefaultConfig()
	cfg.Seed = *seed
	cfg.StartWidth = *width
	cfg.StartHeight = *height
	cfg.FillChance = *fill
	cfg.Workers = *workers

	if *stagePlan != "" {
		stages, err := pipeline.ParseStages(*stagePlan)
		if err != nil {
			log.Fatalf("configure stages: %v", err)
		}
		cfg.Stages = stages
	}

	if *noiseKind != "" {
		field, err := noise.New(*noiseKind, *seed)
		if err != nil {
			log.Fatalf("configure noise: %v", err)
		}
		cfg.Stages[0] = pipeline.NoiseSeed(field, *noiseScale, *noiseThreshold)
	}

	if !*quiet {
		cfg.OnStage = func(e pipeline.StageEvent) {
			fmt.Printf("stage %d/%d %-14s %3dx%-3d land=%d (%.1f%%)\n",
				e.Index+1, e.Total, e.Label(), e.Width, e.Height, e.Land,
				100*float64(e.Land)/float64(e.Width*e.Height))
		}
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("configure pipeline: %v", err)
	}
	grid, err := p.Run()
	if err != nil {
		log.Fatalf("generate terrain: %v", err)
	}

	s := metrics.Summarize(grid)
	fmt.Printf("generated %dx%d: land=%d ocean=%d coverage=%.1f%% islands=%d largest=%d\n",
		grid.W, grid.H, s.Land, s.Ocean, 100*s.Coverage, s.Islands, s.Largest)

	path, err := export.WriteFile(*outDir, *seed, grid)
	if err != nil {
		log.Fatalf("write heightmap: %v", err)
	}
	fmt.Printf("wrote %s\n", path)

	if *writePNG {
		pngPath, err := export.WritePNGFile(*outDir, *seed, grid)
		if err != nil {
			log.Fatalf("write png: %v", err)
		}
		fmt.Printf("wrote %s\n", pngPath)
	}
}
