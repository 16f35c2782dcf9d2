package integration

import (
	"context"
	"testing"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/hydrology"
	"github.com/dshills/worldgen/pkg/validation"
	"github.com/dshills/worldgen/pkg/world"
	"pgregory.net/rapid"
)

// TestProperty_DeterminismAcrossRandomSeeds verifies the pipeline is a
// pure function of its config: running it twice with any randomly drawn
// seed and dimensions produces identical output.
func TestProperty_DeterminismAcrossRandomSeeds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := world.DefaultConfig()
		cfg.Seed = rapid.Uint64().Draw(t, "seed")
		cfg.Width = rapid.IntRange(16, 96).Draw(t, "width")
		cfg.Height = rapid.IntRange(16, 96).Draw(t, "height")
		cfg.LorePreset = "Minimal"

		gen := world.NewGenerator()
		a, loreA, err := gen.Generate(context.Background(), &cfg)
		if err != nil {
			t.Fatalf("first Generate: %v", err)
		}
		b, loreB, err := gen.Generate(context.Background(), &cfg)
		if err != nil {
			t.Fatalf("second Generate: %v", err)
		}

		a.Elevation.ForEach(func(x, y int, v float64) {
			if b.Elevation.At(x, y) != v {
				t.Fatalf("elevation diverged across reruns at (%d,%d) for seed %d", x, y, cfg.Seed)
			}
		})
		if len(loreA.Landmarks) != len(loreB.Landmarks) {
			t.Fatalf("landmark count diverged across reruns for seed %d: %d vs %d", cfg.Seed, len(loreA.Landmarks), len(loreB.Landmarks))
		}
	})
}

// TestProperty_RiverDAGTerminates verifies that following flow-direction
// successors from any tile terminates within H+W steps, for randomly
// sized and seeded worlds.
func TestProperty_RiverDAGTerminates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := world.DefaultConfig()
		cfg.Seed = rapid.Uint64().Draw(t, "seed")
		cfg.Width = rapid.IntRange(16, 64).Draw(t, "width")
		cfg.Height = rapid.IntRange(16, 64).Draw(t, "height")
		cfg.LorePreset = "Minimal"

		gen := world.NewGenerator()
		data, _, err := gen.Generate(context.Background(), &cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		maxSteps := data.Elevation.Width + data.Elevation.Height
		data.Elevation.ForEach(func(x, y int, _ float64) {
			if !hydrology.Acyclic(data.FlowDirections, geo.Point{X: x, Y: y}, maxSteps) {
				t.Fatalf("flow chain from (%d,%d) did not terminate within %d steps for seed %d", x, y, maxSteps, cfg.Seed)
			}
		})
	})
}

// TestProperty_GeneratedWorldsPassValidation verifies every randomly
// configured world satisfies all hard invariants (biome consistency,
// landmark separation and attribution, wanderer path validity)
// simultaneously.
func TestProperty_GeneratedWorldsPassValidation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := world.DefaultConfig()
		cfg.Seed = rapid.Uint64().Draw(t, "seed")
		cfg.Width = rapid.IntRange(32, 96).Draw(t, "width")
		cfg.Height = rapid.IntRange(32, 96).Draw(t, "height")
		styles := []string{"Earthlike", "Continents", "Archipelago", "Pangaea", "Inverted"}
		cfg.Style = styles[rapid.IntRange(0, len(styles)-1).Draw(t, "style")]
		cfg.LorePreset = "Minimal"

		gen := world.NewGenerator()
		data, loreResult, err := gen.Generate(context.Background(), &cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		report, err := validation.Validate(context.Background(), data, loreResult, nil, nil)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if !report.Passed {
			t.Fatalf("seed %d style %s failed validation: %v", cfg.Seed, cfg.Style, report.Errors)
		}
	})
}
