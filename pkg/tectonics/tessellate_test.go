package tectonics

import (
	"testing"

	"github.com/dshills/worldgen/pkg/rng"
)

func TestTessellateProducesExactPlateCount(t *testing.T) {
	r := rng.NewRNG(0, "tectonics", nil)
	result, err := Tessellate(4, 4, 2, Earthlike, r)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	if len(result.Plates) != 2 {
		t.Fatalf("expected 2 plates, got %d", len(result.Plates))
	}

	seen := make(map[PlateId]bool)
	result.PlateIDs.ForEach(func(x, y int, v PlateId) {
		seen[v] = true
	})
	if len(seen) != 2 {
		t.Fatalf("expected exactly 2 distinct plate ids on the grid, got %d", len(seen))
	}
}

func TestTessellateDeterministic(t *testing.T) {
	r1 := rng.NewRNG(42, "tectonics", nil)
	r2 := rng.NewRNG(42, "tectonics", nil)

	res1, err := Tessellate(16, 16, 6, Continents, r1)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	res2, err := Tessellate(16, 16, 6, Continents, r2)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if res1.PlateIDs.At(x, y) != res2.PlateIDs.At(x, y) {
				t.Fatalf("non-deterministic plate assignment at (%d,%d)", x, y)
			}
		}
	}
	for i := range res1.Plates {
		if res1.Plates[i] != res2.Plates[i] {
			t.Fatalf("non-deterministic plate record %d", i)
		}
	}
}

func TestTessellateRejectsInvalidInput(t *testing.T) {
	r := rng.NewRNG(0, "tectonics", nil)
	if _, err := Tessellate(0, 4, 2, Earthlike, r); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := Tessellate(4, 4, 0, Earthlike, r); err == nil {
		t.Fatalf("expected error for zero plate count")
	}
	if _, err := Tessellate(2, 2, 10, Earthlike, r); err == nil {
		t.Fatalf("expected error for plate count exceeding map area")
	}
}

func TestTessellateEveryTileAssigned(t *testing.T) {
	r := rng.NewRNG(7, "tectonics", nil)
	result, err := Tessellate(20, 12, 8, Archipelago, r)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	validIDs := make(map[PlateId]bool)
	for _, p := range result.Plates {
		validIDs[p.ID] = true
	}
	result.PlateIDs.ForEach(func(x, y int, v PlateId) {
		if v == NonePlate || !validIDs[v] {
			t.Fatalf("tile (%d,%d) has invalid plate id %d", x, y, v)
		}
	})
}

func TestTessellateContinentalFractionRoughlyMatchesStyle(t *testing.T) {
	r := rng.NewRNG(1, "tectonics", nil)
	result, err := Tessellate(32, 32, 20, Pangaea, r)
	if err != nil {
		t.Fatalf("Tessellate: %v", err)
	}
	continental := 0
	for _, p := range result.Plates {
		if p.Type == Continental {
			continental++
		}
	}
	params := ParamsFor(Pangaea)
	want := int(params.ContinentalFraction * float64(len(result.Plates)))
	if diff := continental - want; diff < -1 || diff > 1 {
		t.Fatalf("expected about %d continental plates for Pangaea, got %d", want, continental)
	}
}
