// Package climate derives temperature and moisture fields from a finished
// heightmap. Temperature follows a latitude band with a lapse-rate penalty
// above sea level; land moisture starts from a rainfall-scaled latitude
// base, gains a proximity bonus that decays with distance from water, and
// loses a rain-shadow reduction on the lee side of mountains, with wind
// direction set per latitude band.
package climate

import (
	"math"

	"github.com/dshills/worldgen/pkg/geo"
)

// Mode names a latitude-profile preset: where the hot band sits and how
// steeply temperature falls off toward the map edges.
type Mode int

const (
	Globe Mode = iota
	ContinentalMode
	Tropical
	Polar
)

// String renders the mode name.
func (m Mode) String() string {
	switch m {
	case Globe:
		return "Globe"
	case ContinentalMode:
		return "Continental"
	case Tropical:
		return "Tropical"
	case Polar:
		return "Polar"
	default:
		return "Globe"
	}
}

// Rainfall names a moisture-abundance preset.
type Rainfall int

const (
	Arid Rainfall = iota
	NormalRainfall
	Wet
)

// String renders the rainfall level name.
func (r Rainfall) String() string {
	switch r {
	case Arid:
		return "Arid"
	case NormalRainfall:
		return "Normal"
	case Wet:
		return "Wet"
	default:
		return "Normal"
	}
}

// Params tunes the climate model. Zero-value Params is invalid; use
// DefaultParams or ParamsFor.
type Params struct {
	// EquatorTemp and PoleTemp are surface temperatures in Celsius at sea
	// level, at the equator and poles respectively.
	EquatorTemp float64
	PoleTemp    float64
	// LatitudeCurve shapes the temperature falloff between equator and
	// pole; 1.0 is linear in sin(latitude), >1 keeps more of the map warm.
	LatitudeCurve float64
	// LapseRate is the Celsius drop per meter of elevation above sea level.
	LapseRate float64
	// MoistureDecay controls how quickly the proximity-to-water bonus
	// falls off with distance from the nearest water tile.
	MoistureDecay float64
	// LatitudeMoistureBase is the rainfall-scaled moisture floor every
	// land tile starts from at the equator; it thins toward the poles
	// before the proximity bonus is added.
	LatitudeMoistureBase float64
	// OrographicStrength scales how much a windward elevation gain dries
	// out the leeward side of a mountain range.
	OrographicStrength float64
}

// DefaultParams returns the standard climate tuning: 30C equator, -20C
// poles, the usual 6.5C/1000m lapse rate.
func DefaultParams() Params {
	return Params{
		EquatorTemp:          30,
		PoleTemp:             -20,
		LatitudeCurve:        1.0,
		LapseRate:            6.5 / 1000.0,
		MoistureDecay:        0.04,
		LatitudeMoistureBase: 0.25,
		OrographicStrength:   0.0006,
	}
}

// ParamsFor resolves a (mode, rainfall) preset pair into concrete tuning:
// the mode shifts the latitude temperature profile, the rainfall level
// stretches or shrinks how far ocean moisture carries inland.
func ParamsFor(mode Mode, rainfall Rainfall) Params {
	p := DefaultParams()
	switch mode {
	case ContinentalMode:
		p.EquatorTemp = 26
		p.PoleTemp = -30
		p.LatitudeCurve = 1.2
	case Tropical:
		p.EquatorTemp = 34
		p.PoleTemp = 0
		p.LatitudeCurve = 1.6
	case Polar:
		p.EquatorTemp = 12
		p.PoleTemp = -35
		p.LatitudeCurve = 0.8
	}
	switch rainfall {
	case Arid:
		p.MoistureDecay = 0.09
		p.LatitudeMoistureBase = 0.1
		p.OrographicStrength = 0.001
	case Wet:
		p.MoistureDecay = 0.02
		p.LatitudeMoistureBase = 0.4
		p.OrographicStrength = 0.0004
	}
	return p
}

// Fields holds the two derived climate grids, same dimensions as elevation.
type Fields struct {
	Temperature *geo.Field[float64] // Celsius
	Moisture    *geo.Field[float64] // normalized [0,1]
}

// Derive computes temperature and moisture for every tile. seaLevel is the
// elevation (meters) at or below which a tile is considered water.
func Derive(elevation *geo.Field[float64], seaLevel float64, params Params) *Fields {
	width, height := elevation.Width, elevation.Height
	temperature := geo.NewField[float64](width, height)
	elevation.ForEach(func(x, y int, elev float64) {
		temperature.Set(x, y, temperatureAt(y, height, elev, seaLevel, params))
	})

	moisture := deriveMoisture(elevation, seaLevel, params)

	return &Fields{Temperature: temperature, Moisture: moisture}
}

// temperatureAt computes the Celsius temperature for a single tile from its
// row (latitude proxy) and elevation above sea level.
func temperatureAt(y, height int, elev, seaLevel float64, params Params) float64 {
	lat := latitudeFraction(y, height)
	band := math.Pow(lat, params.LatitudeCurve)
	base := params.EquatorTemp - (params.EquatorTemp-params.PoleTemp)*band

	above := elev - seaLevel
	if above <= 0 {
		return base
	}
	return base - above*params.LapseRate
}

// latitudeFraction maps a row to [0,1], 0 at the equator (the map's
// vertical center) and 1 at either pole edge.
func latitudeFraction(y, height int) float64 {
	if height <= 1 {
		return 0
	}
	norm := float64(y)/float64(height-1) - 0.5
	return math.Abs(math.Sin(math.Pi * norm))
}

// deriveMoisture starts every water tile at 1.0 and every land tile at
// its rainfall-scaled latitude base, adds a distance-decay proximity
// bonus inland via multi-source BFS from water, then applies an
// orographic reduction on tiles that sit higher than their upwind
// neighbor.
func deriveMoisture(elevation *geo.Field[float64], seaLevel float64, params Params) *geo.Field[float64] {
	width, height := elevation.Width, elevation.Height
	moisture := geo.NewField[float64](width, height)
	dist := geo.NewFieldFilled[int](width, height, -1)

	type queued struct {
		p geo.Point
		d int
	}
	var queue []queued
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if elevation.At(x, y) <= seaLevel {
				moisture.Set(x, y, 1.0)
				dist.Set(x, y, 0)
				queue = append(queue, queued{geo.Point{X: x, Y: y}, 0})
			} else {
				moisture.Set(x, y, latitudeMoistureBase(y, height, params))
			}
		}
	}

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, nb := range elevation.Neighbors4(cur.p) {
			if dist.Get(nb) != -1 {
				continue
			}
			nd := cur.d + 1
			dist.Set(nb.X, nb.Y, nd)
			bonus := math.Exp(-params.MoistureDecay * float64(nd))
			moisture.Put(nb, latitudeMoistureBase(nb.Y, height, params)+bonus)
			queue = append(queue, queued{nb, nd})
		}
	}

	if params.OrographicStrength > 0 {
		applyOrographic(moisture, elevation, params)
	}

	moisture.Map(func(x, y int, v float64) float64 { return clamp01(v) })
	return moisture
}

// latitudeMoistureBase is the moisture floor a land tile starts from:
// the rainfall-scaled base at the equator, thinning toward the poles.
func latitudeMoistureBase(y, height int, params Params) float64 {
	return params.LatitudeMoistureBase * (1 - 0.6*latitudeFraction(y, height))
}

// windDirection returns the prevailing x-direction of moisture transport
// for a row, by latitude band: easterly trade winds near the equator,
// westerlies in the mid-latitudes, easterlies again toward the poles.
func windDirection(y, height int) int {
	lat := latitudeFraction(y, height)
	switch {
	case lat < 0.3:
		return -1
	case lat < 0.6:
		return 1
	default:
		return -1
	}
}

// applyOrographic reduces moisture on tiles whose upwind neighbor is
// substantially lower, approximating a rain shadow: moisture that was
// already dropped on the windward slope doesn't reach the lee side. The
// upwind side of a tile depends on its row's wind band.
func applyOrographic(moisture, elevation *geo.Field[float64], params Params) {
	width, height := elevation.Width, elevation.Height
	moisture.Map(func(x, y int, v float64) float64 {
		dx := windDirection(y, height)
		ux := ((x-dx)%width + width) % width
		upwind := elevation.At(ux, y)
		here := elevation.At(x, y)
		rise := here - upwind
		if rise <= 0 {
			return v
		}
		reduction := rise * params.OrographicStrength
		return v - reduction
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
