package climate

import (
	"math"
	"testing"

	"github.com/dshills/worldgen/pkg/geo"
)

func flatElevation(width, height int, value float64) *geo.Field[float64] {
	return geo.NewFieldFilled[float64](width, height, value)
}

func TestTemperatureEquatorWarmerThanPoles(t *testing.T) {
	width, height := 40, 40
	elev := flatElevation(width, height, 100)
	f := Derive(elev, 0, DefaultParams())

	equatorY := height / 2
	poleY := 0
	if f.Temperature.At(0, equatorY) <= f.Temperature.At(0, poleY) {
		t.Fatalf("equator temp %v should exceed pole temp %v", f.Temperature.At(0, equatorY), f.Temperature.At(0, poleY))
	}
}

func TestTemperatureLapseRate(t *testing.T) {
	width, height := 10, 10
	low := flatElevation(width, height, 0)
	high := flatElevation(width, height, 2000)

	lowF := Derive(low, 0, DefaultParams())
	highF := Derive(high, 0, DefaultParams())

	y := height / 2
	if highF.Temperature.At(0, y) >= lowF.Temperature.At(0, y) {
		t.Fatalf("higher elevation should be colder: low=%v high=%v", lowF.Temperature.At(0, y), highF.Temperature.At(0, y))
	}
	want := lowF.Temperature.At(0, y) - 2000*DefaultParams().LapseRate
	if math.Abs(highF.Temperature.At(0, y)-want) > 1e-6 {
		t.Fatalf("lapse rate mismatch: got %v want %v", highF.Temperature.At(0, y), want)
	}
}

// TestTemperatureSymmetricAndMonotonicOnFlatOcean: with no relief in
// play, temperature depends only on latitude, so the field mirrors about
// the equator row and cools strictly toward either pole.
func TestTemperatureSymmetricAndMonotonicOnFlatOcean(t *testing.T) {
	width, height := 8, 40
	elev := flatElevation(width, height, -2000)
	f := Derive(elev, 0, DefaultParams())

	for y := 0; y < height; y++ {
		mirror := height - 1 - y
		if math.Abs(f.Temperature.At(0, y)-f.Temperature.At(0, mirror)) > 1e-9 {
			t.Fatalf("temperature not symmetric about the equator: row %d = %v, row %d = %v",
				y, f.Temperature.At(0, y), mirror, f.Temperature.At(0, mirror))
		}
	}

	// Walking from the pole row toward the equator must strictly warm.
	for y := 1; y < height/2; y++ {
		if f.Temperature.At(0, y) <= f.Temperature.At(0, y-1) {
			t.Fatalf("temperature not strictly increasing toward the equator: row %d = %v, row %d = %v",
				y-1, f.Temperature.At(0, y-1), y, f.Temperature.At(0, y))
		}
	}
}

func TestMoistureOceanIsSaturated(t *testing.T) {
	width, height := 20, 20
	elev := flatElevation(width, height, -500)
	f := Derive(elev, 0, DefaultParams())
	f.Moisture.ForEach(func(x, y int, v float64) {
		if v != 1.0 {
			t.Fatalf("ocean tile (%d,%d) moisture = %v, want 1.0", x, y, v)
		}
	})
}

func TestMoistureDecaysInland(t *testing.T) {
	width, height := 40, 10
	elev := geo.NewField[float64](width, height)
	elev.ForEach(func(x, y int, v float64) {})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < 2 {
				elev.Set(x, y, -500)
			} else {
				elev.Set(x, y, 200)
			}
		}
	}
	f := Derive(elev, 0, DefaultParams())
	near := f.Moisture.At(3, 5)
	far := f.Moisture.At(20, 5)
	if far >= near {
		t.Fatalf("moisture should decay with distance from water: near=%v far=%v", near, far)
	}
}

func TestMoistureBounded(t *testing.T) {
	width, height := 30, 30
	elev := geo.NewField[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			elev.Set(x, y, float64((x*37+y*13)%4000)-1000)
		}
	}
	f := Derive(elev, 0, DefaultParams())
	f.Moisture.ForEach(func(x, y int, v float64) {
		if v < 0 || v > 1 {
			t.Fatalf("moisture out of [0,1] at (%d,%d): %v", x, y, v)
		}
	})
}

func TestParamsForPresets(t *testing.T) {
	tropical := ParamsFor(Tropical, NormalRainfall)
	polar := ParamsFor(Polar, NormalRainfall)
	if tropical.PoleTemp <= polar.PoleTemp {
		t.Fatalf("tropical pole temp %v should exceed polar pole temp %v", tropical.PoleTemp, polar.PoleTemp)
	}

	arid := ParamsFor(Globe, Arid)
	wet := ParamsFor(Globe, Wet)
	if arid.MoistureDecay <= wet.MoistureDecay {
		t.Fatalf("arid moisture decay %v should exceed wet %v", arid.MoistureDecay, wet.MoistureDecay)
	}
}

func TestAridWorldDrierThanWet(t *testing.T) {
	width, height := 40, 10
	elev := geo.NewField[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < 2 {
				elev.Set(x, y, -500)
			} else {
				elev.Set(x, y, 200)
			}
		}
	}
	arid := Derive(elev, 0, ParamsFor(Globe, Arid))
	wet := Derive(elev, 0, ParamsFor(Globe, Wet))
	if arid.Moisture.At(20, 5) >= wet.Moisture.At(20, 5) {
		t.Fatalf("arid inland moisture %v should be below wet %v", arid.Moisture.At(20, 5), wet.Moisture.At(20, 5))
	}
}

func TestDeriveDeterministic(t *testing.T) {
	width, height := 25, 25
	elev := geo.NewField[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			elev.Set(x, y, float64((x*7+y*11)%3000)-800)
		}
	}
	a := Derive(elev, 0, DefaultParams())
	b := Derive(elev, 0, DefaultParams())
	a.Temperature.ForEach(func(x, y int, v float64) {
		if b.Temperature.At(x, y) != v {
			t.Fatalf("temperature not deterministic at (%d,%d)", x, y)
		}
	})
	a.Moisture.ForEach(func(x, y int, v float64) {
		if b.Moisture.At(x, y) != v {
			t.Fatalf("moisture not deterministic at (%d,%d)", x, y)
		}
	})
}
