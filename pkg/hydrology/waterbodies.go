package hydrology

import (
	"github.com/google/uuid"

	"github.com/dshills/worldgen/pkg/geo"
)

// NoWaterBody is the id-grid value for tiles that belong to no water body.
const NoWaterBody = -1

// WaterBodyKind distinguishes an ocean (connected to the map's polar edge)
// from an inland lake.
type WaterBodyKind int

const (
	LakeKind WaterBodyKind = iota
	OceanKind
)

// String renders the water body kind.
func (k WaterBodyKind) String() string {
	if k == OceanKind {
		return "Ocean"
	}
	return "Lake"
}

// WaterBody is one connected component of at-or-below-sea-level tiles.
// Index is its position in the FindWaterBodies result and the value its
// tiles carry in the id grid; ID is a stable external handle for exports.
type WaterBody struct {
	ID       uuid.UUID
	Index    int
	Kind     WaterBodyKind
	Tiles    []geo.Point
	Area     int
	Centroid geo.Point
	AvgDepth float64
}

// FindWaterBodies labels every connected component of at-or-below-sea-level
// tiles via 4-neighbor flood fill and classifies each one: a component that
// touches row 0 or row height-1 (the map's polar edge, which this pipeline
// treats as open ocean) is Ocean, everything else is Lake. Returns the
// body records and an id grid mapping each tile to its body's Index (or
// NoWaterBody on land).
func FindWaterBodies(elevation *geo.Field[float64], seaLevel float64) ([]WaterBody, *geo.Field[int]) {
	width, height := elevation.Width, elevation.Height
	ids := geo.NewFieldFilled[int](width, height, NoWaterBody)
	var bodies []WaterBody

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if elevation.At(x, y) > seaLevel || ids.At(x, y) != NoWaterBody {
				continue
			}
			index := len(bodies)
			tiles := floodFill(elevation, seaLevel, ids, geo.Point{X: x, Y: y}, index)

			kind := LakeKind
			var sumX, sumY int
			var sumDepth float64
			for _, t := range tiles {
				if t.Y == 0 || t.Y == height-1 {
					kind = OceanKind
				}
				sumX += t.X
				sumY += t.Y
				sumDepth += seaLevel - elevation.Get(t)
			}
			n := len(tiles)
			bodies = append(bodies, WaterBody{
				ID:       deterministicID(tiles[0], kind),
				Index:    index,
				Kind:     kind,
				Tiles:    tiles,
				Area:     n,
				Centroid: geo.Point{X: sumX / n, Y: sumY / n},
				AvgDepth: sumDepth / float64(n),
			})
		}
	}
	return bodies, ids
}

func floodFill(elevation *geo.Field[float64], seaLevel float64, ids *geo.Field[int], start geo.Point, index int) []geo.Point {
	ids.Put(start, index)
	queue := []geo.Point{start}
	var tiles []geo.Point
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		tiles = append(tiles, cur)
		for _, nb := range elevation.Neighbors4(cur) {
			if elevation.Get(nb) > seaLevel || ids.Get(nb) != NoWaterBody {
				continue
			}
			ids.Put(nb, index)
			queue = append(queue, nb)
		}
	}
	return tiles
}

// deterministicID derives a stable UUID from a water body's first-visited
// tile and kind, so reruns over the same heightmap produce identical ids
// without needing a counter threaded through the caller.
func deterministicID(first geo.Point, kind WaterBodyKind) uuid.UUID {
	name := []byte{byte(first.X), byte(first.X >> 8), byte(first.Y), byte(first.Y >> 8), byte(kind)}
	return uuid.NewSHA1(uuid.NameSpaceOID, name)
}
