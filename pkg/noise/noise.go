// Package noise provides the coherent noise primitives used across the
// pipeline: multi-octave Perlin noise for heightmap detail, stress wiggle,
// and moisture variation, plus an integer hash noise for contracts that
// need per-tile stability rather than spatial coherence (see Hash2D).
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Source wraps aquilax/go-perlin with alpha=2, beta=2, n=3 octaves,
// keyed on a stage-derived int64 seed.
type Source struct {
	p *perlin.Perlin
}

// NewSource creates a 3-octave Perlin noise source seeded deterministically.
func NewSource(seed int64) *Source {
	return &Source{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Noise2D returns a single-octave-equivalent coherent value, typically in
// roughly [-1,1].
func (s *Source) Noise2D(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// FBM evaluates fractal Brownian motion at (x,y): octaves summed with
// amplitude halving and frequency doubling each octave, normalized to
// roughly [-1,1].
func (s *Source) FBM(x, y float64, octaves int, baseFreq float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	amplitude := 1.0
	frequency := baseFreq
	sum := 0.0
	norm := 0.0
	for o := 0; o < octaves; o++ {
		sum += s.p.Noise2D(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Hash2D returns a deterministic pseudo-random value in [0,1) for integer
// tile coordinates. It backs per-tile jitter where the contract is
// "stable given (seed, x, y)" rather than "coherent between neighboring
// tiles"; a cheap integer hash serves that contract without involving a
// gradient-noise lattice.
func Hash2D(seed int64, x, y int) float64 {
	h := uint64(seed)
	h ^= uint64(uint32(x)) * 0x9E3779B97F4A7C15
	h = (h ^ (h >> 33)) * 0xFF51AFD7ED558CCD
	h ^= uint64(uint32(y)) * 0xC2B2AE3D27D4EB4F
	h = (h ^ (h >> 33)) * 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	// top 53 bits give a well-distributed float mantissa
	return float64(h>>11) / float64(1<<53)
}

// Clamp restricts v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
