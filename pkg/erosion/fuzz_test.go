package erosion

import (
	"math"
	"testing"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/rng"
)

// FuzzApplyStability hammers the full erosion stack with hostile
// parameter combinations: oversized capacity factors, zero slopes,
// saturated transfer rates. The per-step clamp must keep every output
// tile finite no matter what.
func FuzzApplyStability(f *testing.F) {
	// Format: seed, width, height, capacityFactor, erosionRate, talusAngle
	f.Add(uint64(1), 16, 16, 6.0, 0.3, 0.5)
	f.Add(uint64(2), 24, 12, 1e9, 1.0, 0.0)
	f.Add(uint64(3), 8, 8, 0.0, 0.0, 10.0)
	f.Add(uint64(99), 32, 32, 500.0, 0.9, 0.01)

	f.Fuzz(func(t *testing.T, seed uint64, width, height int, capacityFactor, erosionRate, talusAngle float64) {
		if width < 4 || width > 64 || height < 4 || height > 64 {
			t.Skip("dimensions out of fuzz range")
		}
		if math.IsNaN(capacityFactor) || math.IsInf(capacityFactor, 0) ||
			math.IsNaN(erosionRate) || math.IsInf(erosionRate, 0) ||
			math.IsNaN(talusAngle) || math.IsInf(talusAngle, 0) {
			t.Skip("non-finite parameters are rejected at config validation")
		}

		field := geo.NewField[float64](width, height)
		r := rng.NewRNG(seed, "fuzz-elevation", nil)
		field.Map(func(x, y int, v float64) float64 {
			return r.Float64Range(-4000, 4000)
		})

		params := ParamsFor(Normal)
		params.HydraulicCapacityFactor = math.Abs(capacityFactor)
		params.HydraulicErosionRate = math.Abs(erosionRate)
		params.ThermalTalusAngle = math.Abs(talusAngle)

		ApplyThermal(field, params)
		ApplyHydraulic(field, rng.NewRNG(seed, "fuzz-hydraulic", nil), params, 0)
		ApplyRivers(field, params)

		field.ForEach(func(x, y int, v float64) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite elevation at (%d,%d) after erosion: %v", x, y, v)
			}
		})
	})
}
