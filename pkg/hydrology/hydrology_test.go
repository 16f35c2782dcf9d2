package hydrology

import (
	"testing"

	"github.com/dshills/worldgen/pkg/geo"
)

func TestFillDepressionsRemovesLocalMinimum(t *testing.T) {
	width, height := 5, 5
	elev := geo.NewFieldFilled[float64](width, height, 100)
	elev.Set(2, 2, 0) // pit surrounded by higher land, no edge access

	FillDepressions(elev)

	dirs := FlowDirections(elev)
	if dirs.At(2, 2) == NoFlow {
		t.Fatalf("filled pit still has no downhill neighbor")
	}
}

func TestFlowDirectionsPointsDownhill(t *testing.T) {
	width, height := 4, 4
	elev := geo.NewField[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			elev.Set(x, y, float64(y)*10+float64(x))
		}
	}
	dirs := FlowDirections(elev)
	for y := 1; y < height; y++ {
		for x := 0; x < width; x++ {
			target := dirs.At(x, y)
			if target == NoFlow {
				continue
			}
			if elev.Get(target) >= elev.At(x, y) {
				t.Fatalf("tile (%d,%d) flows to non-downhill target %v", x, y, target)
			}
		}
	}
}

func TestAccumulateConservesMass(t *testing.T) {
	width, height := 10, 10
	elev := geo.NewField[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			elev.Set(x, y, float64(y)*10)
		}
	}
	FillDepressions(elev)
	dirs := FlowDirections(elev)
	accum := Accumulate(elev, dirs)

	total := 0
	for y := 0; y < height; y++ {
		if dirs.At(0, y) == NoFlow {
			total += accum.At(0, y)
		}
	}
	// every tile in a column-uniform downhill slope drains to row 0;
	// the top row's total accumulation should equal the tile count.
	topTotal := 0
	for x := 0; x < width; x++ {
		topTotal += accum.At(x, 0)
	}
	if topTotal != width*height {
		t.Fatalf("flow accumulation lost mass: top row total = %d, want %d", topTotal, width*height)
	}
}

func TestClassifyRiversThresholds(t *testing.T) {
	width, height := 5, 5
	accum := geo.NewField[int](width, height)
	dirs := geo.NewFieldFilled[geo.Point](width, height, geo.Point{X: 0, Y: 1})
	isWater := geo.NewFieldFilled[bool](width, height, false)
	accum.Set(2, 2, 1000)

	net := ClassifyRivers(dirs, accum, isWater, DefaultRiverParams())
	if net.ClassOf.At(2, 2) != GreatRiver {
		t.Fatalf("accum 1000 classified as %v, want GreatRiver", net.ClassOf.At(2, 2))
	}
	if net.ClassOf.At(0, 0) != NotRiver {
		t.Fatalf("accum 0 classified as %v, want NotRiver", net.ClassOf.At(0, 0))
	}
}

func TestFindWaterBodiesEdgeTouchingIsOcean(t *testing.T) {
	width, height := 6, 6
	elev := geo.NewFieldFilled[float64](width, height, 100)
	for x := 0; x < width; x++ {
		elev.Set(x, 0, -300)
	}
	elev.Set(3, 3, -50)
	elev.Set(3, 4, -50)

	bodies, ids := FindWaterBodies(elev, 0)
	if len(bodies) != 2 {
		t.Fatalf("expected 2 water bodies, got %d", len(bodies))
	}
	var ocean, lake *WaterBody
	for i := range bodies {
		switch bodies[i].Kind {
		case OceanKind:
			ocean = &bodies[i]
		case LakeKind:
			lake = &bodies[i]
		}
	}
	if ocean == nil || lake == nil {
		t.Fatalf("expected one ocean and one lake, got %+v", bodies)
	}
	if ocean.AvgDepth != 300 {
		t.Fatalf("ocean average depth = %v, want 300", ocean.AvgDepth)
	}
	if lake.Centroid.X != 3 || lake.Centroid.Y != 3 {
		t.Fatalf("lake centroid = %v, want (3,3)", lake.Centroid)
	}
	if ids.At(3, 3) != lake.Index {
		t.Fatalf("id grid does not map the lake tile to its body index")
	}
	if ids.At(5, 5) != NoWaterBody {
		t.Fatalf("land tile should carry NoWaterBody")
	}
}

func TestAcyclicTerminates(t *testing.T) {
	width, height := 10, 10
	dirs := geo.NewField[geo.Point](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y == 0 {
				dirs.Set(x, y, NoFlow)
			} else {
				dirs.Set(x, y, geo.Point{X: x, Y: y - 1})
			}
		}
	}
	if !Acyclic(dirs, geo.Point{X: 5, Y: 9}, width+height) {
		t.Fatalf("expected acyclic chain to terminate within H+W steps")
	}
}
