package validation

import (
	"context"
	"testing"

	"github.com/dshills/worldgen/pkg/world"
)

func smallConfig(seed uint64) *world.Config {
	cfg := world.DefaultConfig()
	cfg.Seed = seed
	cfg.Width = 64
	cfg.Height = 48
	cfg.LorePreset = "Minimal"
	return &cfg
}

func TestValidatePassesOnGeneratedWorld(t *testing.T) {
	gen := world.NewGenerator()
	cfg := smallConfig(5)
	data, loreResult, err := gen.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	report, err := Validate(context.Background(), data, loreResult, gen, cfg)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !report.Passed {
		t.Fatalf("expected report to pass, errors: %v", report.Errors)
	}
}

func TestCheckBiomeConsistencyHoldsOnGeneratedWorld(t *testing.T) {
	gen := world.NewGenerator()
	cfg := smallConfig(9)
	data, _, err := gen.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	result := CheckBiomeConsistency(data)
	if !result.Satisfied {
		t.Fatalf("expected biome consistency to hold on a freshly classified world: %s", result.Details)
	}
}

func TestCheckLandmarkAttributionOnGeneratedWorld(t *testing.T) {
	gen := world.NewGenerator()
	cfg := smallConfig(3)
	_, loreResult, err := gen.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	result := CheckLandmarkAttribution(loreResult)
	if !result.Satisfied {
		t.Fatalf("expected attribution to hold: %s", result.Details)
	}
}

func TestSummaryRendersWithoutPanicking(t *testing.T) {
	report := NewReport()
	report.AddResult(NewHardResult("example", true, "ok"))
	report.AddResult(NewSoftResult("soft-example", 0.8, "fine"))
	if Summary(report) == "" {
		t.Fatal("expected non-empty summary")
	}
}
