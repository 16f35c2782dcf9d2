package tectonics

import (
	"math"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/noise"
)

// blurPasses is the number of 3x3 box-blur passes applied to raw boundary
// stress before it is spread into plate interiors.
const blurPasses = 2

// spreadFalloff controls how quickly stress decays with distance from a
// boundary tile during the interior spreading pass.
const spreadFalloff = 0.35

// StressField computes a per-tile signed stress value in [-1,1]: positive
// for convergent pressure, negative for divergent tension, near zero away
// from boundaries or along transform boundaries. Raw boundary stress (the
// relative-velocity dot product against the inter-plate direction) is box
// blurred, spread into plate interiors with exponential falloff, and
// wiggled with a small deterministic noise term so boundaries aren't
// perfectly crisp lines.
func StressField(plateIDs *geo.Field[PlateId], plates []Plate, noiseSeed int64) *geo.Field[float64] {
	width, height := plateIDs.Width, plateIDs.Height
	byID := make(map[PlateId]*Plate, len(plates))
	for i := range plates {
		byID[plates[i].ID] = &plates[i]
	}

	raw := geo.NewField[float64](width, height)
	boundary := geo.NewField[bool](width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pid := plateIDs.At(x, y)
			p := byID[pid]
			if p == nil {
				continue
			}
			var sum float64
			var n int
			for _, nb := range plateIDs.Neighbors8(geo.Point{X: x, Y: y}) {
				npid := plateIDs.Get(nb)
				if npid == pid {
					continue
				}
				other := byID[npid]
				if other == nil {
					continue
				}
				sum += boundaryStress(plateIDs.Width, x, y, nb, p, other)
				n++
			}
			if n > 0 {
				raw.Set(x, y, sum/float64(n))
				boundary.Set(x, y, true)
			}
		}
	}

	blurred := raw
	for i := 0; i < blurPasses; i++ {
		blurred = boxBlur(blurred)
	}

	spread := spreadFromBoundaries(blurred, boundary)

	src := noise.NewSource(noiseSeed)
	spread.Map(func(x, y int, v float64) float64 {
		wiggle := src.Noise2D(float64(x)*0.15, float64(y)*0.15) * 0.05
		return clampSigned(v + wiggle)
	})

	return spread
}

// boundaryStress returns the signed convergence strength between tile
// (x,y) on plate p and its neighbor nb on plate other: the relative
// velocity projected onto the direction from (x,y) to nb, positive when
// the plates move toward each other (convergent), negative when apart
// (divergent), and small in magnitude for sideways (transform) motion.
func boundaryStress(width, x, y int, nb geo.Point, p, other *Plate) float64 {
	dx := float64(nb.X - x)
	if wrapped := dx - float64(width); math.Abs(wrapped) < math.Abs(dx) {
		dx = wrapped
	}
	if wrapped := dx + float64(width); math.Abs(wrapped) < math.Abs(dx) {
		dx = wrapped
	}
	dy := float64(nb.Y - y)

	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0
	}
	dirX, dirY := dx/length, dy/length

	relVX := p.Motion.VX - other.Motion.VX
	relVY := p.Motion.VY - other.Motion.VY

	// Positive dot means p is moving toward the neighbor relative to
	// other's motion: plates are colliding along this edge.
	dot := relVX*dirX + relVY*dirY
	return clampSigned(dot)
}

// Classify reports the boundary type a stress value represents, using a
// small dead zone around zero for Transform.
func Classify(stress float64) BoundaryType {
	switch {
	case stress > 0.15:
		return Convergent
	case stress < -0.15:
		return Divergent
	default:
		return Transform
	}
}

func clampSigned(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func boxBlur(f *geo.Field[float64]) *geo.Field[float64] {
	out := geo.NewField[float64](f.Width, f.Height)
	f.ForEach(func(x, y int, v float64) {
		sum := v
		count := 1
		for _, nb := range f.Neighbors8(geo.Point{X: x, Y: y}) {
			sum += f.Get(nb)
			count++
		}
		out.Set(x, y, sum/float64(count))
	})
	return out
}

// spreadFromBoundaries lets boundary stress bleed into plate interiors
// with exponential distance falloff via a bounded multi-source BFS.
func spreadFromBoundaries(raw *geo.Field[float64], boundary *geo.Field[bool]) *geo.Field[float64] {
	width, height := raw.Width, raw.Height
	out := raw.Clone()
	dist := geo.NewFieldFilled[int](width, height, -1)

	type queued struct {
		p geo.Point
		d int
	}
	var queue []queued
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if boundary.At(x, y) {
				dist.Set(x, y, 0)
				queue = append(queue, queued{geo.Point{X: x, Y: y}, 0})
			}
		}
	}

	const maxSpread = 6
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if cur.d >= maxSpread {
			continue
		}
		source := raw.Get(cur.p)
		for _, nb := range raw.Neighbors4(cur.p) {
			if dist.Get(nb) != -1 {
				continue
			}
			nd := cur.d + 1
			dist.Set(nb.X, nb.Y, nd)
			falloff := math.Exp(-spreadFalloff * float64(nd))
			out.Put(nb, source*falloff)
			queue = append(queue, queued{nb, nd})
		}
	}
	return out
}
