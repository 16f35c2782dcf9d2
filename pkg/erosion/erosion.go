package erosion

import (
	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/rng"
)

// Apply runs the three erosion sub-passes in their fixed order: thermal,
// then hydraulic, then river. Each pass is a no-op when its preset
// parameters are zeroed (Preset None zeroes all of them). seaLevel marks
// where land ends: hydraulic droplets halt on reaching open water.
// Mutates elevation in place.
func Apply(elevation *geo.Field[float64], r *rng.RNG, preset Preset, seaLevel float64) {
	params := ParamsFor(preset)
	ApplyThermal(elevation, params)
	ApplyHydraulic(elevation, r.Fork("hydraulic"), params, seaLevel)
	ApplyRivers(elevation, params)
}
