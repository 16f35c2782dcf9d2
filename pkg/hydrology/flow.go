package hydrology

import (
	"sort"

	"github.com/dshills/worldgen/pkg/geo"
)

// NoFlow marks a tile with no downhill neighbor (a local minimum, present
// only if FillDepressions was skipped or the tile sits on the map edge).
var NoFlow = geo.Point{X: -1, Y: -1}

// FlowDirections computes each tile's steepest-descent target among its
// 8-neighbors, breaking ties by the fixed neighbor order Field.Neighbors8
// returns (N, NE, E, SE, S, SW, W, NW) so results are reproducible without
// depending on map ordering.
func FlowDirections(elevation *geo.Field[float64]) *geo.Field[geo.Point] {
	width, height := elevation.Width, elevation.Height
	dirs := geo.NewFieldFilled[geo.Point](width, height, NoFlow)

	elevation.ForEach(func(x, y int, e float64) {
		best := NoFlow
		bestElev := e
		for _, nb := range elevation.Neighbors8(geo.Point{X: x, Y: y}) {
			ne := elevation.Get(nb)
			if ne < bestElev {
				bestElev = ne
				best = nb
			}
		}
		dirs.Set(x, y, best)
	})
	return dirs
}

// Accumulate computes, for every tile, the number of tiles (including
// itself) whose flow path passes through it, by processing tiles from
// highest to lowest elevation and adding each tile's running total to its
// downhill target. Requires FlowDirections to have been computed over an
// elevation field with no unresolved depressions (run FillDepressions
// first), otherwise a cycle-free result isn't guaranteed.
func Accumulate(elevation *geo.Field[float64], dirs *geo.Field[geo.Point]) *geo.Field[int] {
	width, height := elevation.Width, elevation.Height
	accum := geo.NewFieldFilled[int](width, height, 1)

	order := orderByElevationDescending(elevation)
	for _, p := range order {
		target := dirs.At(p.X, p.Y)
		if target == NoFlow {
			continue
		}
		accum.Set(target.X, target.Y, accum.At(target.X, target.Y)+accum.At(p.X, p.Y))
	}
	return accum
}

func orderByElevationDescending(elevation *geo.Field[float64]) []geo.Point {
	width, height := elevation.Width, elevation.Height
	points := make([]geo.Point, 0, width*height)
	elevation.ForEach(func(x, y int, v float64) {
		points = append(points, geo.Point{X: x, Y: y})
	})
	sort.Slice(points, func(i, j int) bool {
		ei, ej := elevation.Get(points[i]), elevation.Get(points[j])
		if ei != ej {
			return ei > ej
		}
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}
