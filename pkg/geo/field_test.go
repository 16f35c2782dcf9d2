package geo

import "testing"

func TestFieldWrapX(t *testing.T) {
	f := NewField[int](4, 3)
	f.Set(0, 0, 99)
	if got := f.At(4, 0); got != 99 {
		t.Fatalf("At(4,0) = %d, want 99 (wrap)", got)
	}
	if got := f.At(-1, 0); got != f.At(3, 0) {
		t.Fatalf("At(-1,0) = %v, want At(3,0) = %v", got, f.At(3, 0))
	}
}

func TestFieldClampY(t *testing.T) {
	f := NewField[int](4, 3)
	f.Set(0, 0, 7)
	if got := f.At(0, -5); got != 7 {
		t.Fatalf("At(0,-5) = %d, want 7 (clamp to row 0)", got)
	}
	f.Set(0, 2, 8)
	if got := f.At(0, 50); got != 8 {
		t.Fatalf("At(0,50) = %d, want 8 (clamp to last row)", got)
	}
}

func TestNeighbors8OmitsOffTopBottom(t *testing.T) {
	f := NewField[int](4, 3)
	n := f.Neighbors8(Point{X: 0, Y: 0})
	for _, p := range n {
		if p.Y < 0 || p.Y >= f.Height {
			t.Fatalf("neighbor %v escaped Y bounds", p)
		}
	}
	// top row: 3 of 8 offsets have Y=-1 and are dropped
	if len(n) != 5 {
		t.Fatalf("Neighbors8 at top row = %d entries, want 5", len(n))
	}
}

func TestNeighbors8WrapsX(t *testing.T) {
	f := NewField[int](4, 3)
	n := f.Neighbors8(Point{X: 0, Y: 1})
	foundWrap := false
	for _, p := range n {
		if p.X == 3 {
			foundWrap = true
		}
		if p.X < 0 || p.X >= f.Width {
			t.Fatalf("neighbor %v escaped X wrap", p)
		}
	}
	if !foundWrap {
		t.Fatalf("expected a wrapped neighbor at x=3")
	}
}

func TestManhattanDistanceWraps(t *testing.T) {
	// width 10: point at x=0 and x=9 are 1 apart going around, not 9.
	d := ManhattanDistance(Point{X: 0, Y: 0}, Point{X: 9, Y: 0}, 10)
	if d != 1 {
		t.Fatalf("ManhattanDistance wrapped = %d, want 1", d)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := NewField[int](2, 2)
	f.Set(0, 0, 1)
	clone := f.Clone()
	clone.Set(0, 0, 2)
	if f.At(0, 0) != 1 {
		t.Fatalf("mutating clone affected original")
	}
}
