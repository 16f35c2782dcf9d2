package hydrology

import "github.com/dshills/worldgen/pkg/geo"

// epsilon is the minimal elevation increment Planchon-Darboux uses to
// guarantee a strictly descending path out of every depression.
const epsilon = 1e-3

// FillDepressions runs the Planchon-Darboux priority-flood-equivalent pass
// over elevation, raising interior tiles up to their lowest-surrounding-pour
// point so every non-edge, non-water tile has a strictly downhill path to
// the map boundary. Kept as its own explicit pass rather than folded into
// flow direction computation: without it, rivers stall in closed basins.
//
// The cylindrical topology wraps x, so "the map boundary" here means rows 0
// and height-1 only: a tile can always drain off the top or bottom edge
// (edge-row tiles keep their own elevation and are never raised) even
// though x never reaches a hard edge.
func FillDepressions(elevation *geo.Field[float64]) {
	width, height := elevation.Width, elevation.Height
	filled := elevation.Clone()

	const veryHigh = 1e18
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 {
				filled.Set(x, y, elevation.At(x, y))
			} else {
				filled.Set(x, y, veryHigh)
			}
		}
	}

	changed := true
	for changed {
		changed = false
		for y := 1; y < height-1; y++ {
			for x := 0; x < width; x++ {
				e := elevation.At(x, y)
				cur := filled.At(x, y)
				if cur <= e {
					continue
				}
				for _, nb := range elevation.Neighbors8(geo.Point{X: x, Y: y}) {
					nf := filled.Get(nb)
					if e >= nf+epsilon {
						filled.Set(x, y, e)
						changed = true
						break
					}
					if candidate := nf + epsilon; candidate < cur {
						cur = candidate
						filled.Set(x, y, cur)
						changed = true
					}
				}
			}
		}
	}

	elevation.Map(func(x, y int, v float64) float64 { return filled.At(x, y) })
}
