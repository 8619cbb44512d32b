package pipeline

import (
	"slices"
	"testing"
)

func TestParseStagesPlan(t *testing.T) {
	stages, err := ParseStages("seed, zoom:2, addisland:3, removeocean, zoom, life:2")
	if err != nil {
		t.Fatalf("ParseStages returned error: %v", err)
	}
	if len(stages) != 6 {
		t.Fatalf("parsed %d stages, expected 6", len(stages))
	}

	kinds := []StageKind{KindSeed, KindZoom, KindAutomaton, KindAutomaton, KindZoom, KindAutomaton}
	for i, want := range kinds {
		if stages[i].Kind != want {
			t.Fatalf("stage %d kind = %s, expected %s", i, stages[i].Kind, want)
		}
	}
	if stages[1].Factor != 2 || stages[4].Factor != 2 {
		t.Fatalf("zoom factors = %d and %d, expected 2 and 2", stages[1].Factor, stages[4].Factor)
	}
	if stages[2].Rule.Name() != "addisland" || stages[2].Iterations != 3 {
		t.Fatalf("stage 2 = %s x%d, expected addisland x3", stages[2].Rule.Name(), stages[2].Iterations)
	}
	if stages[3].Rule.Name() != "removeocean" || stages[3].Iterations != 1 {
		t.Fatalf("stage 3 = %s x%d, expected removeocean x1", stages[3].Rule.Name(), stages[3].Iterations)
	}
	if stages[5].Rule.Name() != "life" || stages[5].Iterations != 2 {
		t.Fatalf("stage 5 = %s x%d, expected life x2", stages[5].Rule.Name(), stages[5].Iterations)
	}
}

func TestParseStagesMatchesDefaultSequence(t *testing.T) {
	plan := "seed,zoom:2,addisland,zoom:2,addisland:3,removeocean,zoom:2,zoom:2,addisland"
	parsed, err := ParseStages(plan)
	if err != nil {
		t.Fatalf("ParseStages returned error: %v", err)
	}

	def := DefaultStages()
	if len(parsed) != len(def) {
		t.Fatalf("parsed %d stages, reference sequence has %d", len(parsed), len(def))
	}
	for i := range def {
		if parsed[i].Kind != def[i].Kind || parsed[i].Factor != def[i].Factor || parsed[i].Iterations != def[i].Iterations {
			t.Fatalf("stage %d = %+v, expected %+v", i, parsed[i], def[i])
		}
		if def[i].Rule != nil && parsed[i].Rule.Name() != def[i].Rule.Name() {
			t.Fatalf("stage %d rule = %s, expected %s", i, parsed[i].Rule.Name(), def[i].Rule.Name())
		}
	}

	cfg := DefaultConfig()
	cfg.Seed = 0
	cfg.Stages = parsed
	fromPlan := mustRun(t, cfg)

	cfg.Stages = DefaultStages()
	if !slices.Equal(fromPlan.Cells(), mustRun(t, cfg).Cells()) {
		t.Fatal("plan-built pipeline diverged from the reference sequence")
	}
}

func TestParseStagesRejectsMalformedPlans(t *testing.T) {
	for _, plan := range []string{
		"",
		"   ",
		"seed,zoom:x",
		"seed:2,zoom:2",
		"seed,volcanic",
		"seed,noiseseed",
	} {
		if _, err := ParseStages(plan); err == nil {
			t.Fatalf("ParseStages(%q) should fail", plan)
		}
	}
}
