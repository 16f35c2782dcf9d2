// Package tectonics builds the plate partition and stress field that the
// rest of the pipeline is shaped around: plate tessellation by Lloyd
// relaxation over the cylindrical map, continental/oceanic classification,
// motion vectors, and the boundary stress field consumed by heightmap
// synthesis.
package tectonics

import "github.com/dshills/worldgen/pkg/geo"

// PlateId identifies a tectonic plate. NonePlate is the sentinel for "not
// yet assigned"; it must never appear in a finished plate-id grid.
type PlateId int32

// NonePlate is the sentinel plate id. Valid plate ids are >= 0.
const NonePlate PlateId = -1

// PlateType classifies a plate's baseline behavior.
type PlateType int

const (
	Continental PlateType = iota
	Oceanic
)

// String renders the plate type name.
func (t PlateType) String() string {
	switch t {
	case Continental:
		return "Continental"
	case Oceanic:
		return "Oceanic"
	default:
		return "Unknown"
	}
}

// Plate is an immutable record created once by tessellation.
type Plate struct {
	ID       PlateId
	Type     PlateType
	Centroid geo.Point
	Motion   Vector
	Age      float64
	Color    [3]uint8
}

// Vector is a 2D motion vector in tiles-per-geological-tick.
type Vector struct {
	VX, VY float64
}

// BoundaryType classifies the relative motion of two plates at a shared edge.
type BoundaryType int

const (
	Convergent BoundaryType = iota
	Divergent
	Transform
)

// String renders the boundary type name.
func (b BoundaryType) String() string {
	switch b {
	case Convergent:
		return "Convergent"
	case Divergent:
		return "Divergent"
	case Transform:
		return "Transform"
	default:
		return "Unknown"
	}
}

// Style is a named preset biasing plate count, continental fraction, and
// downstream heightmap shaping.
type Style int

const (
	Earthlike Style = iota
	Continents
	Archipelago
	Pangaea
	Inverted
)

// String renders the style name.
func (s Style) String() string {
	switch s {
	case Earthlike:
		return "Earthlike"
	case Continents:
		return "Continents"
	case Archipelago:
		return "Archipelago"
	case Pangaea:
		return "Pangaea"
	case Inverted:
		return "Inverted"
	default:
		return "Unknown"
	}
}

// Params holds the per-style tuning table: plate count range, continental
// fraction, and a motion-magnitude range.
type Params struct {
	PlateCountMin, PlateCountMax int
	ContinentalFraction          float64
	MotionMagnitudeMin           float64
	MotionMagnitudeMax           float64
}

// ParamsFor returns the tuning table for a named style.
func ParamsFor(s Style) Params {
	switch s {
	case Continents:
		return Params{PlateCountMin: 6, PlateCountMax: 12, ContinentalFraction: 0.55, MotionMagnitudeMin: 0.2, MotionMagnitudeMax: 0.8}
	case Archipelago:
		return Params{PlateCountMin: 12, PlateCountMax: 20, ContinentalFraction: 0.22, MotionMagnitudeMin: 0.3, MotionMagnitudeMax: 1.0}
	case Pangaea:
		return Params{PlateCountMin: 6, PlateCountMax: 9, ContinentalFraction: 0.65, MotionMagnitudeMin: 0.1, MotionMagnitudeMax: 0.5}
	case Inverted:
		return Params{PlateCountMin: 8, PlateCountMax: 16, ContinentalFraction: 0.25, MotionMagnitudeMin: 0.2, MotionMagnitudeMax: 0.9}
	default: // Earthlike
		return Params{PlateCountMin: 6, PlateCountMax: 20, ContinentalFraction: 0.40, MotionMagnitudeMin: 0.2, MotionMagnitudeMax: 1.0}
	}
}

// Result is the output of plate tessellation: a field of plate ids over
// the whole map plus the immutable plate records.
type Result struct {
	PlateIDs *geo.Field[PlateId]
	Plates   []Plate
}

// PlateByID returns a pointer to the plate record with the given id, or
// nil if not found.
func (r *Result) PlateByID(id PlateId) *Plate {
	for i := range r.Plates {
		if r.Plates[i].ID == id {
			return &r.Plates[i]
		}
	}
	return nil
}
