package tectonics

import (
	"testing"

	"github.com/dshills/worldgen/pkg/geo"
)

func twoPlateField(width, height int) (*geo.Field[PlateId], []Plate) {
	field := geo.NewField[PlateId](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 {
				field.Set(x, y, 0)
			} else {
				field.Set(x, y, 1)
			}
		}
	}
	plates := []Plate{
		{ID: 0, Type: Continental, Motion: Vector{VX: 1, VY: 0}},
		{ID: 1, Type: Continental, Motion: Vector{VX: -1, VY: 0}},
	}
	return field, plates
}

func TestStressFieldNonzeroOnlyNearBoundary(t *testing.T) {
	// Width 16 gives two boundary seams (x=7/8 and the x=15/0 wrap) with
	// interior tiles roughly midway between them (around x=4) far enough
	// from both for the exponential falloff to show a clear drop.
	field, plates := twoPlateField(16, 8)
	stress := StressField(field, plates, 1)

	seamStress := stress.At(7, 0)
	farStress := stress.At(4, 0)
	if seamStress <= farStress {
		t.Fatalf("expected seam stress (%v) to exceed interior stress (%v)", seamStress, farStress)
	}
}

func TestStressFieldConvergentPositive(t *testing.T) {
	field, plates := twoPlateField(8, 8)
	stress := StressField(field, plates, 1)

	// Two plates with motion {+1,0} and {-1,0} squeeze toward each other
	// across the left-of-center seam: expect convergent (positive) stress
	// at the boundary column.
	v := stress.At(3, 4)
	if v <= 0 {
		t.Fatalf("expected convergent boundary to read positive stress, got %v", v)
	}
	if Classify(v) != Convergent {
		t.Fatalf("expected Convergent classification, got %v", Classify(v))
	}
}

func TestStressFieldDivergentNegative(t *testing.T) {
	field, plates := twoPlateField(8, 8)
	plates[0].Motion = Vector{VX: -1, VY: 0}
	plates[1].Motion = Vector{VX: 1, VY: 0}
	stress := StressField(field, plates, 1)

	v := stress.At(3, 4)
	if v >= 0 {
		t.Fatalf("expected divergent boundary to read negative stress, got %v", v)
	}
	if Classify(v) != Divergent {
		t.Fatalf("expected Divergent classification, got %v", Classify(v))
	}
}

func TestStressFieldDeterministic(t *testing.T) {
	field, plates := twoPlateField(10, 10)
	s1 := StressField(field, plates, 99)
	s2 := StressField(field, plates, 99)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s1.At(x, y) != s2.At(x, y) {
				t.Fatalf("stress field not deterministic at (%d,%d)", x, y)
			}
		}
	}
}

func TestStressFieldClampedToUnitRange(t *testing.T) {
	field, plates := twoPlateField(6, 6)
	plates[0].Motion = Vector{VX: 50, VY: 50}
	plates[1].Motion = Vector{VX: -50, VY: -50}
	stress := StressField(field, plates, 3)

	stress.ForEach(func(x, y int, v float64) {
		if v < -1 || v > 1 {
			t.Fatalf("stress value out of [-1,1] at (%d,%d): %v", x, y, v)
		}
	})
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		stress float64
		want   BoundaryType
	}{
		{0.5, Convergent},
		{-0.5, Divergent},
		{0.0, Transform},
		{0.1, Transform},
		{-0.1, Transform},
	}
	for _, c := range cases {
		if got := Classify(c.stress); got != c.want {
			t.Fatalf("Classify(%v) = %v, want %v", c.stress, got, c.want)
		}
	}
}
