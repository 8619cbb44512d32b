package app

import (
	"flag"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Seed != 1337 {
		t.Fatalf("default seed = %d, want 1337", cfg.Seed)
	}
	if cfg.Scale != 10 {
		t.Fatalf("default scale = %d, want 10", cfg.Scale)
	}
	if cfg.Workers != 0 {
		t.Fatalf("default workers = %d, want 0", cfg.Workers)
	}
	if cfg.Noise != "" {
		t.Fatalf("default noise = %q, want empty", cfg.Noise)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("landview", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-seed", "-42", "-scale", "4", "-workers", "3", "-noise", "perlin"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != -42 {
		t.Fatalf("seed = %d, want -42", cfg.Seed)
	}
	if cfg.Scale != 4 {
		t.Fatalf("scale = %d, want 4", cfg.Scale)
	}
	if cfg.Workers != 3 {
		t.Fatalf("workers = %d, want 3", cfg.Workers)
	}
	if cfg.Noise != "perlin" {
		t.Fatalf("noise = %q, want perlin", cfg.Noise)
	}
}
