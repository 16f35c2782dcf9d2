package erosion

import "github.com/dshills/worldgen/pkg/geo"

// ApplyThermal redistributes material from tiles whose slope to a
// neighbor exceeds the talus angle, moving a fraction of the excess to
// that neighbor each iteration. Mass-conserving: every unit removed from
// a tile is added to a neighbor.
func ApplyThermal(elevation *geo.Field[float64], params Params) {
	if params.ThermalIterations <= 0 {
		return
	}
	width, height := elevation.Width, elevation.Height

	for iter := 0; iter < params.ThermalIterations; iter++ {
		delta := geo.NewField[float64](width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				p := geo.Point{X: x, Y: y}
				current := elevation.At(x, y)
				for _, nb := range elevation.Neighbors8(p) {
					neighborElev := elevation.Get(nb)
					diff := current - neighborElev
					if diff <= params.ThermalTalusAngle {
						continue
					}
					transfer := (diff - params.ThermalTalusAngle) * params.ThermalTransferRate
					transfer = clampErosion(transfer, params.HydraulicMaxErosionPerStep)
					delta.Set(x, y, delta.At(x, y)-transfer)
					delta.Put(nb, delta.Get(nb)+transfer)
				}
			}
		}
		delta.ForEach(func(x, y int, d float64) {
			if d != 0 {
				elevation.Set(x, y, elevation.At(x, y)+d)
			}
		})
	}
}

func clampErosion(v, max float64) float64 {
	if max <= 0 {
		return v
	}
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
