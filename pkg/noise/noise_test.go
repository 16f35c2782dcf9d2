package noise

import "testing"

func TestHash2DDeterministic(t *testing.T) {
	a := Hash2D(42, 3, 7)
	b := Hash2D(42, 3, 7)
	if a != b {
		t.Fatalf("Hash2D not deterministic: %v != %v", a, b)
	}
	if a < 0 || a >= 1 {
		t.Fatalf("Hash2D out of range [0,1): %v", a)
	}
}

func TestHash2DVariesWithCoordinate(t *testing.T) {
	a := Hash2D(42, 3, 7)
	b := Hash2D(42, 4, 7)
	if a == b {
		t.Fatalf("Hash2D did not vary with x")
	}
}

func TestHash2DVariesWithSeed(t *testing.T) {
	a := Hash2D(1, 3, 7)
	b := Hash2D(2, 3, 7)
	if a == b {
		t.Fatalf("Hash2D did not vary with seed")
	}
}

func TestFBMDeterministic(t *testing.T) {
	s := NewSource(99)
	a := s.FBM(1.5, 2.5, 4, 0.05)
	b := s.FBM(1.5, 2.5, 4, 0.05)
	if a != b {
		t.Fatalf("FBM not deterministic: %v != %v", a, b)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 {
		t.Fatalf("Clamp did not clamp high")
	}
	if Clamp(-5, 0, 1) != 0 {
		t.Fatalf("Clamp did not clamp low")
	}
}
