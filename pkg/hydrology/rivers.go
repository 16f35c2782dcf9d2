package hydrology

import (
	"sort"

	"github.com/dshills/worldgen/pkg/geo"
)

// RiverClass grades a river tile by its flow accumulation.
type RiverClass int

const (
	NotRiver RiverClass = iota
	Stream
	RiverClassMajor
	GreatRiver
)

// String renders the river class name.
func (c RiverClass) String() string {
	switch c {
	case Stream:
		return "Stream"
	case RiverClassMajor:
		return "River"
	case GreatRiver:
		return "GreatRiver"
	default:
		return "NotRiver"
	}
}

// RiverParams tunes the accumulation thresholds a tile must clear to count
// as a river of each class.
type RiverParams struct {
	StreamThreshold int
	RiverThreshold  int
	GreatThreshold  int
}

// DefaultRiverParams sets thresholds as small multiples of the preliminary
// erosion-pass source thresholds, since the accumulation counts here are
// computed on the fully eroded, depression-filled heightmap and therefore
// run higher.
func DefaultRiverParams() RiverParams {
	return RiverParams{StreamThreshold: 30, RiverThreshold: 120, GreatThreshold: 500}
}

// Segment is one edge of the river DAG: water flows from From to To.
type Segment struct {
	From, To geo.Point
	Class    RiverClass
}

// Network is the full river DAG over a finished flow-direction field: every
// tile whose accumulation clears StreamThreshold contributes one outgoing
// segment (or none, at a sink/water tile), classified by its own
// accumulation. It is acyclic by construction, since every segment points
// strictly downhill and FillDepressions removed local minima before
// FlowDirections ran.
type Network struct {
	Segments []Segment
	ClassOf  *geo.Field[RiverClass]
}

// ClassifyRivers walks dirs/accum and builds the river DAG. isWater marks
// tiles that are already a water body (so no segment is emitted once a
// flow path reaches one).
func ClassifyRivers(dirs *geo.Field[geo.Point], accum *geo.Field[int], isWater *geo.Field[bool], params RiverParams) *Network {
	width, height := accum.Width, accum.Height
	classOf := geo.NewFieldFilled[RiverClass](width, height, NotRiver)
	var segments []Segment

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := accum.At(x, y)
			class := classify(a, params)
			if class == NotRiver {
				continue
			}
			classOf.Set(x, y, class)

			if isWater.At(x, y) {
				continue
			}
			target := dirs.At(x, y)
			if target == NoFlow {
				continue
			}
			segments = append(segments, Segment{From: geo.Point{X: x, Y: y}, To: target, Class: class})
		}
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].From.Y != segments[j].From.Y {
			return segments[i].From.Y < segments[j].From.Y
		}
		return segments[i].From.X < segments[j].From.X
	})

	return &Network{Segments: segments, ClassOf: classOf}
}

func classify(accum int, params RiverParams) RiverClass {
	switch {
	case accum >= params.GreatThreshold:
		return GreatRiver
	case accum >= params.RiverThreshold:
		return RiverClassMajor
	case accum >= params.StreamThreshold:
		return Stream
	default:
		return NotRiver
	}
}

// Acyclic reports whether the flow chain from start terminates within
// maxSteps hops. It walks dirs directly rather than the segment list,
// since a tile's chain continues past the point its own accumulation
// drops below StreamThreshold.
func Acyclic(dirs *geo.Field[geo.Point], start geo.Point, maxSteps int) bool {
	cur := start
	for step := 0; step < maxSteps; step++ {
		next := dirs.At(cur.X, cur.Y)
		if next == NoFlow {
			return true
		}
		if next == cur {
			return false
		}
		cur = next
	}
	return false
}
