package erosion

import (
	"math"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/rng"
)

// droplet tracks one particle's position, direction, speed, water volume,
// and sediment load as it traces downhill across the field.
type droplet struct {
	x, y       float64
	dirX, dirY float64
	speed      float64
	water      float64
	sediment   float64
}

// ApplyHydraulic runs the particle-based erosion pass: HydraulicDroplets
// independent droplets, each stepping downhill under a blend of inertia
// and local gradient, eroding or depositing sediment split across its
// four bilinear-weighted neighbors. Droplets are spread uniformly over
// the grid; one that spawns over open water, or flows into it, halts
// there (its remaining sediment is lost to the sea). All writes
// accumulate into a delta buffer applied after every droplet has run, so
// droplet order never reads a partially eroded surface.
func ApplyHydraulic(elevation *geo.Field[float64], r *rng.RNG, params Params, seaLevel float64) {
	if params.HydraulicDroplets <= 0 {
		return
	}
	width, height := elevation.Width, elevation.Height
	delta := geo.NewField[float64](width, height)

	for i := 0; i < params.HydraulicDroplets; i++ {
		d := droplet{
			x:     r.Float64() * float64(width),
			y:     r.Float64() * float64(height),
			water: 1.0,
			speed: 1.0,
		}
		simulateDroplet(elevation, delta, d, params, seaLevel)
	}

	delta.ForEach(func(x, y int, v float64) {
		if v != 0 {
			elevation.Set(x, y, elevation.At(x, y)+v)
		}
	})
}

func simulateDroplet(elevation, delta *geo.Field[float64], d droplet, params Params, seaLevel float64) {
	width, height := elevation.Width, elevation.Height

	for step := 0; step < params.HydraulicMaxSteps; step++ {
		if d.y < 0 || d.y >= float64(height-1) {
			return
		}

		oldX, oldY := d.x, d.y
		h, gx, gy := bilinearHeightAndGradient(elevation, d.x, d.y)
		if h <= seaLevel {
			return
		}

		// (b) blend inertia with the downhill gradient direction.
		d.dirX = d.dirX*params.HydraulicInertia - gx*(1-params.HydraulicInertia)
		d.dirY = d.dirY*params.HydraulicInertia - gy*(1-params.HydraulicInertia)
		length := math.Hypot(d.dirX, d.dirY)
		if length < 1e-9 {
			return
		}
		d.dirX /= length
		d.dirY /= length

		// (c) move one tile.
		d.x += d.dirX
		d.y += d.dirY
		if d.y < 0 || d.y >= float64(height-1) {
			return
		}

		newH, _, _ := bilinearHeightAndGradient(elevation, d.x, d.y)
		heightDiff := newH - h

		// (d) carrying capacity from speed, water volume, and slope.
		slope := math.Max(-heightDiff, params.HydraulicMinSlope)
		capacity := slope * d.speed * d.water * params.HydraulicCapacityFactor

		if heightDiff > 0 || d.sediment > capacity {
			// (e) deposit at the previous tile, either the downhill
			// overshoot case or excess sediment over capacity.
			var deposit float64
			if heightDiff > 0 {
				deposit = math.Min(heightDiff, d.sediment)
			} else {
				deposit = (d.sediment - capacity) * params.HydraulicDepositionRate
			}
			deposit = clampErosion(deposit, params.HydraulicMaxErosionPerStep)
			d.sediment -= deposit
			depositBilinear(delta, oldX, oldY, deposit, width)
		} else {
			erode := math.Min((capacity-d.sediment)*params.HydraulicErosionRate, -heightDiff*0.5)
			erode = clampErosion(erode, params.HydraulicMaxErosionPerStep)
			if erode > 0 {
				d.sediment += erode
				depositBilinear(delta, oldX, oldY, -erode, width)
			}
		}

		// (f) evaporate.
		d.water *= 1 - params.HydraulicEvaporateRate
		d.speed = math.Sqrt(math.Max(0, d.speed*d.speed+heightDiff*-9.8))

		// (g) halt when water is spent.
		if d.water <= 0.01 {
			return
		}
	}
}

// bilinearHeightAndGradient samples elevation and its gradient at a
// fractional position using the four surrounding integer tiles, wrapping
// X through the field's own At (which wraps) and leaving Y unwrapped so
// callers can detect falling off the top/bottom edge.
func bilinearHeightAndGradient(field *geo.Field[float64], fx, fy float64) (h, gx, gy float64) {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	h00 := field.At(x0, y0)
	h10 := field.At(x0+1, y0)
	h01 := field.At(x0, y0+1)
	h11 := field.At(x0+1, y0+1)

	top := h00*(1-tx) + h10*tx
	bottom := h01*(1-tx) + h11*tx
	h = top*(1-ty) + bottom*ty

	gx = (h10-h00)*(1-ty) + (h11-h01)*ty
	gy = (h01-h00)*(1-tx) + (h11-h10)*tx
	return h, gx, gy
}

// depositBilinear splits amount across the four tiles surrounding
// (fx,fy) by the same bilinear weights used to sample height, so mass
// added or removed integrates smoothly instead of snapping to one tile.
func depositBilinear(delta *geo.Field[float64], fx, fy, amount float64, width int) {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	if y0 < 0 || y0+1 >= delta.Height {
		return
	}

	w00 := (1 - tx) * (1 - ty)
	w10 := tx * (1 - ty)
	w01 := (1 - tx) * ty
	w11 := tx * ty

	delta.Set(x0, y0, delta.At(x0, y0)+amount*w00)
	delta.Set(x0+1, y0, delta.At(x0+1, y0)+amount*w10)
	delta.Set(x0, y0+1, delta.At(x0, y0+1)+amount*w01)
	delta.Set(x0+1, y0+1, delta.At(x0+1, y0+1)+amount*w11)
}
