package lore

import "github.com/dshills/worldgen/pkg/geo"

// LandmarkID and StorySeedID are opaque identifiers, monotonically
// assigned within one generation run.
type LandmarkID uint32
type StorySeedID uint32

// Direction is a coarse compass heading, used when describing a wanderer's
// approach to a landmark.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// String renders the compass heading.
func (d Direction) String() string {
	names := [...]string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}
	if int(d) < len(names) {
		return names[d]
	}
	return "North"
}

// DirectionBetween returns the coarse heading from a to b on the
// cylindrical grid (x wraps modulo width).
func DirectionBetween(a, b geo.Point, width int) Direction {
	dx := b.X - a.X
	if wrapped := dx - width; abs(wrapped) < abs(dx) {
		dx = wrapped
	}
	if wrapped := dx + width; abs(wrapped) < abs(dx) {
		dx = wrapped
	}
	dy := b.Y - a.Y

	switch {
	case dx == 0 && dy < 0:
		return North
	case dx > 0 && dy < 0:
		return NorthEast
	case dx > 0 && dy == 0:
		return East
	case dx > 0 && dy > 0:
		return SouthEast
	case dx == 0 && dy > 0:
		return South
	case dx < 0 && dy > 0:
		return SouthWest
	case dx < 0 && dy == 0:
		return West
	case dx < 0 && dy < 0:
		return NorthWest
	default:
		return North
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// WorldLocation pins a lore event to a tile and its derived readings, so
// downstream consumers (export, story-seed prose generators outside this
// module's scope) don't need to re-look-up the world fields.
type WorldLocation struct {
	Position    geo.Point
	Elevation   float64
	Temperature float64
	Moisture    float64
}

// CulturalLensKind tags which lens variant a CulturalLens value holds.
type CulturalLensKind int

const (
	Highland CulturalLensKind = iota
	Maritime
	Desert
	Sylvan
	Steppe
	Subterranean
)

// String renders the lens kind name.
func (k CulturalLensKind) String() string {
	names := [...]string{"Highland", "Maritime", "Desert", "Sylvan", "Steppe", "Subterranean"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Highland"
}

// CulturalLens is a tagged union over the six wanderer cultures, each
// carrying two variant-specific belief flags. Only the fields matching
// Kind are meaningful; the others are zero-valued. Kept as one struct with
// per-kind fields rather than an interface per lens, so TerrainPreference
// below stays one nested switch instead of a dynamic registry.
type CulturalLens struct {
	Kind CulturalLensKind

	// Highland
	AncestorWorship bool
	FearsLowlands   bool

	// Maritime
	TidesSignificant bool
	FearsDeepWater   bool

	// Desert
	WaterSacred  bool
	FearsOpenSky bool

	// Sylvan
	TreesSentient bool
	FearsFire     bool

	// Steppe
	SkyWorship    bool
	FearsEnclosed bool

	// Subterranean
	DarknessSacred bool
	FearsOpenSky2  bool
}

// CultureName renders the lens kind as a culture label.
func (l CulturalLens) CultureName() string { return l.Kind.String() }

// TerrainPreference scores how strongly this lens's culture is drawn to a
// tile, in [-1,1], given the tile's biome water-ness, elevation, and
// moisture.
func (l CulturalLens) TerrainPreference(isWater bool, elevation, moisture float64) float64 {
	switch l.Kind {
	case Highland:
		if elevation > 1500 {
			return 0.8
		}
		if l.FearsLowlands && elevation < 0 {
			return -0.6
		}
		return 0.1
	case Maritime:
		if isWater {
			return 0.7
		}
		if l.FearsDeepWater && elevation > 2000 {
			return -0.5
		}
		return 0.0
	case Desert:
		if moisture < 0.2 {
			return 0.6
		}
		if l.WaterSacred && isWater {
			return 0.9
		}
		return -0.2
	case Sylvan:
		if moisture > 0.5 && elevation > 0 && elevation < 1500 {
			return 0.7
		}
		return -0.1
	case Steppe:
		if elevation > 0 && elevation < 600 && moisture < 0.4 {
			return 0.6
		}
		if l.FearsEnclosed && elevation > 2000 {
			return -0.4
		}
		return 0.0
	case Subterranean:
		if l.DarknessSacred {
			return 0.5
		}
		if l.FearsOpenSky2 && elevation > 1000 {
			return -0.3
		}
		return 0.0
	default:
		return 0.0
	}
}
