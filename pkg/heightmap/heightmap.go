// Package heightmap synthesizes the base elevation grid from a plate
// tessellation and its boundary stress field: a per-plate baseline, a
// stress-driven uplift/trench term eased by plate age, multi-octave
// coherent noise, and a land-mask pass that nudges borderline tiles toward
// the plate's bias.
package heightmap

import (
	"math"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/noise"
	"github.com/dshills/worldgen/pkg/tectonics"
)

// Baseline elevations in meters for the two plate types before any
// uplift, noise, or land-mask adjustment is applied.
const (
	ContinentalBaseline = 150.0
	OceanicBaseline     = -4000.0
)

// maxPlateAge normalizes a plate's age into curve progress.
const maxPlateAge = 500.0

// Params tunes the synthesis pass. Zero-value Params is invalid; use
// DefaultParams.
type Params struct {
	// UpliftScale multiplies stress-driven elevation change: positive
	// stress raises tiles (mountain building), negative lowers them
	// (rift trenches).
	UpliftScale float64
	// UpliftCurve eases the uplift contribution by plate age: young
	// boundaries have had less time to express relief than old ones.
	// Nil means no age easing.
	UpliftCurve tectonics.ConvergenceCurve
	// NoiseOctaves is the octave count for multi-octave terrain detail.
	NoiseOctaves int
	// NoiseBaseFrequency is the first octave's spatial frequency.
	NoiseBaseFrequency float64
	// NoiseAmplitude scales the combined noise contribution in meters.
	NoiseAmplitude float64
	// LandMaskStrength controls how strongly borderline tiles are
	// nudged toward their plate type's sea-level side.
	LandMaskStrength float64
}

// DefaultParams returns the standard synthesis tuning.
func DefaultParams() Params {
	return Params{
		UpliftScale:        4000.0,
		UpliftCurve:        tectonics.NewSCurveConvergence(),
		NoiseOctaves:       4,
		NoiseBaseFrequency: 0.015,
		NoiseAmplitude:     600.0,
		LandMaskStrength:   300.0,
	}
}

// Synthesize builds the elevation field in meters, sea level at 0.
// plateIDs and stress must share the same dimensions.
func Synthesize(plateIDs *geo.Field[tectonics.PlateId], plates []tectonics.Plate, stress *geo.Field[float64], seed int64, params Params) *geo.Field[float64] {
	width, height := plateIDs.Width, plateIDs.Height
	elevation := geo.NewField[float64](width, height)

	byID := make(map[tectonics.PlateId]*tectonics.Plate, len(plates))
	ageEase := make(map[tectonics.PlateId]float64, len(plates))
	for i := range plates {
		byID[plates[i].ID] = &plates[i]
		ease := 1.0
		if params.UpliftCurve != nil {
			// Half the uplift is unconditional; the other half grows in
			// with plate age, so young boundaries still read as relief.
			ease = 0.5 + 0.5*params.UpliftCurve.Evaluate(plates[i].Age/maxPlateAge)
		}
		ageEase[plates[i].ID] = ease
	}

	src := noise.NewSource(seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pid := plateIDs.At(x, y)
			plate := byID[pid]

			base := OceanicBaseline
			if plate != nil && plate.Type == tectonics.Continental {
				base = ContinentalBaseline
			}

			s := stress.At(x, y)
			uplift := upliftFromStress(s) * params.UpliftScale * ageEase[pid]

			detail := src.FBM(float64(x), float64(y), params.NoiseOctaves, params.NoiseBaseFrequency) * params.NoiseAmplitude

			elevation.Set(x, y, base+uplift+detail)
		}
	}

	applyLandMask(elevation, plateIDs, byID, params.LandMaskStrength)

	return elevation
}

// upliftFromStress maps signed stress to a signed elevation multiplier:
// monotonically increasing for positive (convergent) stress, monotonically
// decreasing for negative (divergent) stress, with no hard knee at zero.
func upliftFromStress(stress float64) float64 {
	if stress >= 0 {
		return math.Pow(stress, 1.5)
	}
	return -math.Pow(-stress, 1.3)
}

// applyLandMask nudges borderline tiles toward their plate's bias: a
// continental tile sitting just below sea level is pushed up, an oceanic
// tile sitting just above is pushed down. Only tiles within one
// land-mask band of sea level are affected, so this is a smoothing
// correction rather than a hard floor/ceiling.
func applyLandMask(elevation *geo.Field[float64], plateIDs *geo.Field[tectonics.PlateId], byID map[tectonics.PlateId]*tectonics.Plate, strength float64) {
	if strength <= 0 {
		return
	}
	elevation.Map(func(x, y int, v float64) float64 {
		plate := byID[plateIDs.At(x, y)]
		if plate == nil {
			return v
		}
		switch plate.Type {
		case tectonics.Continental:
			if v < 0 && v > -strength {
				return v + (strength+v)*0.4
			}
		case tectonics.Oceanic:
			if v > 0 && v < strength {
				return v - (strength-v)*0.4
			}
		}
		return v
	})
}
