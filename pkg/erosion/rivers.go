package erosion

import (
	"sort"

	"github.com/dshills/worldgen/pkg/geo"
)

// ApplyRivers identifies high-elevation, high-flow source candidates and
// carves a descent path from each toward sea level. A local
// flow-accumulation proxy selects and orders the sources; the carve depth
// and width come from params alone and do not grow with accumulation
// along the path. This is a
// preliminary carve pass only: the authoritative river network (with its
// DAG and classification) is computed later from the fully eroded
// heightmap by the hydrology stage; this pass exists because erosion
// must visibly cut valleys before climate and biome classification run.
func ApplyRivers(elevation *geo.Field[float64], params Params) {
	if params.RiverMaxLength <= 0 {
		return
	}
	width, height := elevation.Width, elevation.Height
	accumulation := simpleFlowAccumulation(elevation)

	type candidate struct {
		x, y  int
		accum int
	}
	var candidates []candidate
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if elevation.At(x, y) >= params.RiverSourceElevation && accumulation.At(x, y) >= params.RiverMinAccumulation {
				candidates = append(candidates, candidate{x, y, accumulation.At(x, y)})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].accum != candidates[j].accum {
			return candidates[i].accum > candidates[j].accum
		}
		if candidates[i].y != candidates[j].y {
			return candidates[i].y < candidates[j].y
		}
		return candidates[i].x < candidates[j].x
	})

	carved := geo.NewFieldFilled[bool](width, height, false)
	for _, c := range candidates {
		if carved.At(c.x, c.y) {
			continue
		}
		carveRiver(elevation, carved, c.x, c.y, params)
	}
}

// carveRiver traces the steepest 8-neighbor descent from (sx,sy),
// lowering each visited tile by RiverCarveDepth and, when the carve width
// exceeds 1, its 8-neighbor ring by 0.4 of that depth, stopping at sea
// level, a local minimum, or RiverMaxLength.
func carveRiver(elevation *geo.Field[float64], carved *geo.Field[bool], sx, sy int, params Params) {
	x, y := sx, sy
	for step := 0; step < params.RiverMaxLength; step++ {
		carved.Set(x, y, true)
		carveAt(elevation, x, y, params.RiverCarveDepth, params.RiverCarveWidth)

		current := elevation.At(x, y)
		bestX, bestY, bestElev := x, y, current
		found := false
		for _, nb := range elevation.Neighbors8(geo.Point{X: x, Y: y}) {
			e := elevation.At(nb.X, nb.Y)
			if e < bestElev {
				bestElev, bestX, bestY = e, nb.X, nb.Y
				found = true
			}
		}
		if !found || current <= 0 || carved.At(bestX, bestY) {
			return
		}
		x, y = bestX, bestY
	}
}

// carveAt lowers the tile at (cx,cy) and, for width>1, its 8-ring, with
// the center taking the full depth and the ring a fraction of it.
func carveAt(elevation *geo.Field[float64], cx, cy int, depth float64, width int) {
	elevation.Set(cx, cy, elevation.At(cx, cy)-depth)
	if width <= 1 {
		return
	}
	ringDepth := depth * 0.4
	for _, nb := range elevation.Neighbors8(geo.Point{X: cx, Y: cy}) {
		elevation.Set(nb.X, nb.Y, elevation.At(nb.X, nb.Y)-ringDepth)
	}
}

// simpleFlowAccumulation gives each tile a rough upstream-tile count by
// processing tiles from highest to lowest elevation and adding each
// tile's running total to its single steepest downhill neighbor. This is
// a cheap local proxy for river-source ranking within the erosion stage;
// the hydrology stage computes the real topological flow-accumulation
// graph once the heightmap is final.
func simpleFlowAccumulation(elevation *geo.Field[float64]) *geo.Field[int] {
	width, height := elevation.Width, elevation.Height
	accum := geo.NewFieldFilled[int](width, height, 1)

	type tile struct {
		x, y int
		elev float64
	}
	tiles := make([]tile, 0, width*height)
	elevation.ForEach(func(x, y int, v float64) {
		tiles = append(tiles, tile{x, y, v})
	})
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].elev > tiles[j].elev })

	for _, t := range tiles {
		current := elevation.At(t.x, t.y)
		bestX, bestY, bestElev := -1, -1, current
		for _, nb := range elevation.Neighbors8(geo.Point{X: t.x, Y: t.y}) {
			e := elevation.At(nb.X, nb.Y)
			if e < bestElev {
				bestElev, bestX, bestY = e, nb.X, nb.Y
			}
		}
		if bestX >= 0 {
			accum.Set(bestX, bestY, accum.At(bestX, bestY)+accum.At(t.x, t.y))
		}
	}
	return accum
}
