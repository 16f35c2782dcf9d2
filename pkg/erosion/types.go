// Package erosion reshapes a synthesized heightmap with three composable
// passes run in a fixed order (thermal, then hydraulic, then river), each
// driven by a named preset that tunes or disables it.
package erosion

// Preset names a named erosion intensity level.
type Preset int

const (
	None Preset = iota
	Light
	Normal
	Heavy
	Extreme
)

// String renders the preset name.
func (p Preset) String() string {
	switch p {
	case None:
		return "None"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Heavy:
		return "Heavy"
	case Extreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// Params holds the tuned constants for all three sub-passes. Hardness is
// a single constant for the whole map; the field exists so a future pass
// can plug in per-tile hardness without changing the Params shape.
type Params struct {
	ThermalIterations   int
	ThermalTalusAngle   float64
	ThermalTransferRate float64

	HydraulicDroplets          int
	HydraulicInertia           float64
	HydraulicCapacityFactor    float64
	HydraulicMinSlope          float64
	HydraulicErosionRate       float64
	HydraulicDepositionRate    float64
	HydraulicEvaporateRate     float64
	HydraulicMaxSteps          int
	HydraulicMaxErosionPerStep float64

	RiverSourceElevation float64
	RiverMinAccumulation int
	RiverCarveDepth      float64
	RiverCarveWidth      int
	RiverMaxLength       int

	Hardness float64
}

// ParamsFor returns the tuning table for a named preset. None returns a
// Params with all passes effectively disabled (zero iterations/droplets).
func ParamsFor(p Preset) Params {
	switch p {
	case Light:
		return Params{
			ThermalIterations: 2, ThermalTalusAngle: 0.6, ThermalTransferRate: 0.2,
			HydraulicDroplets: 2000, HydraulicInertia: 0.05, HydraulicCapacityFactor: 4, HydraulicMinSlope: 0.01,
			HydraulicErosionRate: 0.2, HydraulicDepositionRate: 0.2, HydraulicEvaporateRate: 0.03, HydraulicMaxSteps: 40,
			HydraulicMaxErosionPerStep: 8,
			RiverSourceElevation: 600, RiverMinAccumulation: 40, RiverCarveDepth: 10, RiverCarveWidth: 1, RiverMaxLength: 300,
			Hardness: 0.3,
		}
	case Normal:
		return Params{
			ThermalIterations: 5, ThermalTalusAngle: 0.5, ThermalTransferRate: 0.25,
			HydraulicDroplets: 6000, HydraulicInertia: 0.1, HydraulicCapacityFactor: 6, HydraulicMinSlope: 0.01,
			HydraulicErosionRate: 0.3, HydraulicDepositionRate: 0.3, HydraulicEvaporateRate: 0.02, HydraulicMaxSteps: 60,
			HydraulicMaxErosionPerStep: 12,
			RiverSourceElevation: 500, RiverMinAccumulation: 25, RiverCarveDepth: 20, RiverCarveWidth: 2, RiverMaxLength: 400,
			Hardness: 0.3,
		}
	case Heavy:
		return Params{
			ThermalIterations: 9, ThermalTalusAngle: 0.4, ThermalTransferRate: 0.3,
			HydraulicDroplets: 12000, HydraulicInertia: 0.15, HydraulicCapacityFactor: 8, HydraulicMinSlope: 0.01,
			HydraulicErosionRate: 0.4, HydraulicDepositionRate: 0.35, HydraulicEvaporateRate: 0.02, HydraulicMaxSteps: 80,
			HydraulicMaxErosionPerStep: 16,
			RiverSourceElevation: 400, RiverMinAccumulation: 15, RiverCarveDepth: 30, RiverCarveWidth: 2, RiverMaxLength: 500,
			Hardness: 0.25,
		}
	case Extreme:
		return Params{
			ThermalIterations: 15, ThermalTalusAngle: 0.3, ThermalTransferRate: 0.35,
			HydraulicDroplets: 24000, HydraulicInertia: 0.2, HydraulicCapacityFactor: 10, HydraulicMinSlope: 0.01,
			HydraulicErosionRate: 0.5, HydraulicDepositionRate: 0.4, HydraulicEvaporateRate: 0.015, HydraulicMaxSteps: 100,
			HydraulicMaxErosionPerStep: 24,
			RiverSourceElevation: 300, RiverMinAccumulation: 10, RiverCarveDepth: 40, RiverCarveWidth: 3, RiverMaxLength: 600,
			Hardness: 0.2,
		}
	default: // None
		return Params{Hardness: 0.3}
	}
}
