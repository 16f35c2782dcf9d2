package validation

import (
	"context"
	"fmt"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/hydrology"
	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/world"
)

// Validate runs every invariant check over a generated world and its
// lore result, producing one Report. It checks ctx once at entry, matching
// the rest of the pipeline's "check between stages, not mid-stage"
// contract, since no single property check here is expensive enough to
// warrant an interior cancellation point.
func Validate(ctx context.Context, data *world.Data, loreResult *lore.Result, gen world.Generator, cfg *world.Config) (*Report, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := NewReport()
	report.AddResult(CheckBiomeConsistency(data))
	report.AddResult(CheckRiverDAGAcyclic(data))
	report.AddResult(CheckLandmarkSeparation(loreResult, data))
	report.AddResult(CheckLandmarkAttribution(loreResult))
	report.AddResult(CheckWandererPathValidity(loreResult, data))

	if gen != nil && cfg != nil {
		result, err := CheckDeterminism(ctx, gen, cfg)
		if err != nil {
			return nil, err
		}
		report.AddResult(result)
	}

	return report, nil
}

// CheckDeterminism reruns Generate with the same config and seed and
// reports whether the elevation field matches bit-for-bit.
func CheckDeterminism(ctx context.Context, gen world.Generator, cfg *world.Config) (ConstraintResult, error) {
	a, _, err := gen.Generate(ctx, cfg)
	if err != nil {
		return ConstraintResult{}, fmt.Errorf("determinism check: first run: %w", err)
	}
	b, _, err := gen.Generate(ctx, cfg)
	if err != nil {
		return ConstraintResult{}, fmt.Errorf("determinism check: second run: %w", err)
	}

	mismatches := 0
	a.Elevation.ForEach(func(x, y int, v float64) {
		if b.Elevation.At(x, y) != v {
			mismatches++
		}
	})
	if mismatches > 0 {
		return NewHardResult("determinism", false, fmt.Sprintf("%d elevation tiles diverged across reruns", mismatches)), nil
	}
	return NewHardResult("determinism", true, "elevation matched bit-for-bit across reruns"), nil
}

// CheckBiomeConsistency verifies elevation below sea level always carries
// a water biome.
func CheckBiomeConsistency(data *world.Data) ConstraintResult {
	violations := 0
	data.Elevation.ForEach(func(x, y int, elev float64) {
		b := data.Biomes.At(x, y)
		if elev < data.Config.SeaLevel && !b.IsWater() {
			violations++
		}
	})
	if violations > 0 {
		return NewHardResult("biome-consistency", false, fmt.Sprintf("%d sub-sea-level tiles have a non-water biome", violations))
	}
	return NewHardResult("biome-consistency", true, "every sub-sea-level tile is a water biome")
}

// CheckRiverDAGAcyclic verifies every flow-direction chain terminates
// within H+W steps.
func CheckRiverDAGAcyclic(data *world.Data) ConstraintResult {
	width, height := data.Elevation.Width, data.Elevation.Height
	maxSteps := width + height
	failures := 0
	data.Elevation.ForEach(func(x, y int, v float64) {
		if !hydrology.Acyclic(data.FlowDirections, geo.Point{X: x, Y: y}, maxSteps) {
			failures++
		}
	})
	if failures > 0 {
		return NewHardResult("river-dag-acyclic", false, fmt.Sprintf("%d tiles did not terminate within %d steps", failures, maxSteps))
	}
	return NewHardResult("river-dag-acyclic", true, fmt.Sprintf("every tile's flow chain terminates within %d steps", maxSteps))
}

// CheckLandmarkSeparation verifies every pair of registered landmarks is
// at least MinLandmarkSeparation tiles apart (wrap-aware Manhattan
// distance).
func CheckLandmarkSeparation(loreResult *lore.Result, data *world.Data) ConstraintResult {
	minSep := data.Config.LoreParams().MinLandmarkSeparation
	width := data.Elevation.Width
	violations := 0
	for i := 0; i < len(loreResult.Landmarks); i++ {
		for j := i + 1; j < len(loreResult.Landmarks); j++ {
			d := geo.ManhattanDistance(loreResult.Landmarks[i].Location.Position, loreResult.Landmarks[j].Location.Position, width)
			if d < minSep {
				violations++
			}
		}
	}
	if violations > 0 {
		return NewHardResult("landmark-separation", false, fmt.Sprintf("%d landmark pairs are closer than %d tiles", violations, minSep))
	}
	return NewHardResult("landmark-separation", true, fmt.Sprintf("every landmark pair is at least %d tiles apart", minSep))
}

// CheckLandmarkAttribution verifies every landmark has at least one
// discoverer and one interpretation.
func CheckLandmarkAttribution(loreResult *lore.Result) ConstraintResult {
	unattributed := 0
	for _, lm := range loreResult.Landmarks {
		if len(lm.DiscoveredBy) == 0 || len(lm.Interpretations) == 0 {
			unattributed++
		}
	}
	if unattributed > 0 {
		return NewHardResult("landmark-attribution", false, fmt.Sprintf("%d landmarks lack a discoverer or interpretation", unattributed))
	}
	return NewHardResult("landmark-attribution", true, "every landmark has a discoverer and an interpretation")
}

// CheckWandererPathValidity verifies every wanderer's path steps by at
// most one tile per axis (accounting for x-wrap) and stays in bounds.
func CheckWandererPathValidity(loreResult *lore.Result, data *world.Data) ConstraintResult {
	width, height := data.Elevation.Width, data.Elevation.Height
	violations := 0
	for _, w := range loreResult.Wanderers {
		for i := 1; i < len(w.Path); i++ {
			prev, cur := w.Path[i-1], w.Path[i]
			if cur.Y < 0 || cur.Y >= height || cur.X < 0 || cur.X >= width {
				violations++
				continue
			}
			if geo.ManhattanDistance(prev, cur, width) > 2 {
				violations++
			}
		}
	}
	if violations > 0 {
		return NewHardResult("wanderer-path-validity", false, fmt.Sprintf("%d path steps were invalid", violations))
	}
	return NewHardResult("wanderer-path-validity", true, "every wanderer path step is a valid single-tile move")
}
