package heightmap

import (
	"testing"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/tectonics"
)

func uniformPlateField(width, height int, t tectonics.PlateType) (*geo.Field[tectonics.PlateId], []tectonics.Plate) {
	field := geo.NewFieldFilled[tectonics.PlateId](width, height, 0)
	return field, []tectonics.Plate{{ID: 0, Type: t}}
}

func TestSynthesizeContinentalAboveOceanicOnAverage(t *testing.T) {
	width, height := 16, 16
	contField, contPlates := uniformPlateField(width, height, tectonics.Continental)
	oceField, ocePlates := uniformPlateField(width, height, tectonics.Oceanic)
	stress := geo.NewField[float64](width, height)

	// Noise amplitude zeroed so the comparison isolates the base-plus-
	// land-mask contribution instead of depending on a coherent noise
	// field happening to average near zero over a small sample.
	params := DefaultParams()
	params.NoiseAmplitude = 0

	contElev := Synthesize(contField, contPlates, stress, 1, params)
	oceElev := Synthesize(oceField, ocePlates, stress, 1, params)

	var contSum, oceSum float64
	contElev.ForEach(func(x, y int, v float64) { contSum += v })
	oceElev.ForEach(func(x, y int, v float64) { oceSum += v })

	contMean := contSum / float64(width*height)
	oceMean := oceSum / float64(width*height)

	if contMean <= oceMean {
		t.Fatalf("expected continental mean elevation (%v) above oceanic mean (%v)", contMean, oceMean)
	}
	if contMean <= 0 {
		t.Fatalf("expected continental interior to read above sea level on average, got %v", contMean)
	}
	if oceMean >= 0 {
		t.Fatalf("expected oceanic interior to read below sea level on average, got %v", oceMean)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	width, height := 10, 10
	field, plates := uniformPlateField(width, height, tectonics.Continental)
	stress := geo.NewField[float64](width, height)

	e1 := Synthesize(field, plates, stress, 7, DefaultParams())
	e2 := Synthesize(field, plates, stress, 7, DefaultParams())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if e1.At(x, y) != e2.At(x, y) {
				t.Fatalf("non-deterministic elevation at (%d,%d)", x, y)
			}
		}
	}
}

func TestUpliftFromStressMonotonic(t *testing.T) {
	prev := upliftFromStress(-1.0)
	for _, s := range []float64{-0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1.0} {
		cur := upliftFromStress(s)
		if cur < prev {
			t.Fatalf("upliftFromStress not monotonic: f(%v)=%v < previous %v", s, cur, prev)
		}
		prev = cur
	}
}

func TestLandMaskPushesBorderlineContinentalAboveSeaLevel(t *testing.T) {
	width, height := 4, 4
	field := geo.NewFieldFilled[tectonics.PlateId](width, height, 0)
	plates := []tectonics.Plate{{ID: 0, Type: tectonics.Continental}}
	byID := map[tectonics.PlateId]*tectonics.Plate{0: &plates[0]}

	elevation := geo.NewFieldFilled[float64](width, height, -10.0)
	applyLandMask(elevation, field, byID, 300.0)

	elevation.ForEach(func(x, y int, v float64) {
		if v <= -10.0 {
			t.Fatalf("expected land mask to raise borderline continental tile, got %v", v)
		}
	})
}
