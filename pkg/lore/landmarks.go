package lore

import "github.com/dshills/worldgen/pkg/geo"

// Noun banks for landmark naming, one prefix/name pair per feature family.
var (
	mountainPrefixes = []string{"Mount", "Peak", "Summit", "Spire", "Tooth", "Horn", "Crown", "Throne"}
	mountainNames    = []string{"Thunder", "Storm", "Sky", "Cloud", "Eagle", "Frozen", "Ancient", "Lone", "Twin", "Broken", "Sleeping", "Watching", "Silver", "Iron", "Stone"}

	waterPrefixes = []string{"Lake", "Sea", "Pool", "Waters", "Depths", "Falls", "Springs"}
	waterNames    = []string{"Mirror", "Crystal", "Serpent", "Mist", "Moon", "Star", "Shadow", "Silver", "Tears", "Dreams", "Whisper", "Echo", "Reflection", "Stillness"}

	valleyPrefixes = []string{"Vale", "Valley", "Glen", "Dell", "Hollow", "Gorge", "Canyon"}
	valleyNames    = []string{"Shadow", "Hidden", "Lost", "Forgotten", "Verdant", "Silent", "Echoing", "Winding", "Deep", "Sacred", "Ancient", "Twilight"}

	volcanicPrefixes = []string{"Mount", "Caldera", "Furnace", "Forge", "Hearth"}
	volcanicNames    = []string{"Flame", "Fire", "Ember", "Ash", "Cinder", "Molten", "Burning", "Infernal", "Wrath", "Fury", "Dragon", "Phoenix", "Doom"}

	mysticalPrefixes = []string{"The", "Sacred", "Cursed", "Blessed", "Eternal", "Ancient"}
	mysticalNames    = []string{"Nexus", "Sanctum", "Threshold", "Veil", "Gate", "Heart", "Eye", "Wound", "Scar", "Font", "Well", "Shrine", "Altar"}

	ruinPrefixes = []string{"Ruins of", "Fallen", "Lost", "Sunken", "Buried", "Forgotten"}
	ruinNames    = []string{"Citadel", "Temple", "Palace", "Tower", "City", "Fortress", "Sanctuary", "Halls", "Throne", "Spire", "Catacombs"}
)

// generateName builds a landmark name from the prefix/name bank matching
// its feature kind.
func generateName(feature GeographicFeature, prefixRoll, nameRoll float64) string {
	var prefixes, names []string
	switch feature.Kind {
	case FeatureMountainPeak:
		if feature.IsVolcanic {
			prefixes, names = volcanicPrefixes, volcanicNames
		} else {
			prefixes, names = mountainPrefixes, mountainNames
		}
	case FeatureVolcano:
		prefixes, names = volcanicPrefixes, volcanicNames
	case FeatureValley:
		prefixes, names = valleyPrefixes, valleyNames
	case FeatureLake:
		prefixes, names = waterPrefixes, waterNames
	case FeaturePlateBoundary:
		prefixes, names = mysticalPrefixes, mysticalNames
	case FeatureAncientSite:
		prefixes, names = ruinPrefixes, ruinNames
	case FeatureMysticalAnomaly:
		prefixes, names = mysticalPrefixes, mysticalNames
	case FeatureRiverConfluence:
		prefixes, names = waterPrefixes, waterNames
	case FeatureCoastline:
		prefixes, names = waterPrefixes, waterNames
	default:
		prefixes, names = mysticalPrefixes, mysticalNames
	}
	return pick(prefixes, prefixRoll) + " " + pick(names, nameRoll)
}

// interpretationEntry is one row of the (lens, feature) -> (role, tone)
// table.
type interpretationEntry struct {
	role string
	tone EmotionalTone
}

// interpretationTable holds the bespoke (lens, feature-kind) readings;
// everything else falls back to defaultTone for its lens.
var interpretationTable = map[CulturalLensKind]map[GeographicFeatureKind]interpretationEntry{
	Highland: {
		FeatureMountainPeak:  {"the ancestors' throne", Reverence},
		FeaturePlateBoundary: {"where the old war was fought", Awe},
	},
	Maritime: {
		FeatureLake:      {"a landlocked echo of the sea", Wonder},
		FeatureCoastline: {"the boundary of the known world", Awe},
	},
	Desert: {
		FeatureLake:    {"a miracle of standing water", Reverence},
		FeatureVolcano: {"the sky's anger made stone", Dread},
	},
	Sylvan: {
		FeatureValley:      {"the old grove's cradle", Wonder},
		FeatureAncientSite: {"a memory the forest kept", Reverence},
	},
	Steppe: {
		FeatureMountainPeak:  {"the sky's nearest post", Awe},
		FeaturePlateBoundary: {"the wound in the open land", Unease},
	},
	Subterranean: {
		FeatureAncientSite:     {"a hall older than the sun", Reverence},
		FeatureMysticalAnomaly: {"a place where stone forgets itself", Dread},
	},
}

// defaultTone is the per-lens fallback emotional reading when no specific
// interpretation table entry matches.
func defaultTone(lens CulturalLensKind) EmotionalTone {
	switch lens {
	case Highland:
		return Curiosity
	case Maritime:
		return Wonder
	case Desert:
		return Awe
	case Sylvan:
		return Wonder
	case Steppe:
		return Curiosity
	case Subterranean:
		return Curiosity
	default:
		return Curiosity
	}
}

func createInterpretation(lens CulturalLens, feature GeographicFeature, roll float64) LandmarkInterpretation {
	role := "a place worth remembering"
	tone := defaultTone(lens.Kind)
	if byFeature, ok := interpretationTable[lens.Kind]; ok {
		if entry, ok := byFeature[feature.Kind]; ok {
			role, tone = entry.role, entry.tone
		}
	}
	return LandmarkInterpretation{
		Lens: lens.Kind,
		Name: generateName(feature, roll, 1-roll),
		Role: role,
		Tone: tone,
	}
}

// Registry deduplicates landmarks through a spatial hash grid: cell size
// floors at 10 tiles, and a candidate folds into an existing landmark if
// any occupied neighboring cell (3x3, wrapping across the x seam, widened
// to 5 columns when the map width is not a multiple of the cell size)
// holds one within MinSeparation Manhattan distance.
type Registry struct {
	cellSize      int
	minSeparation int
	clusterRadius int
	width         int
	numCellsX     int
	cells         map[[2]int][]LandmarkID
	landmarks     []Landmark
	nextID        LandmarkID
}

// NewRegistry constructs an empty registry. width is the map width, needed
// for wrap-aware cell lookup and Manhattan distance. clusterRadius bounds
// how far a folded-in discovery can sit from the landmark's anchor before
// the landmark's extent widens from a point to a cluster or region.
func NewRegistry(minSeparation, clusterRadius, width int) *Registry {
	cellSize := minSeparation
	if cellSize < 10 {
		cellSize = 10
	}
	numCellsX := (width + cellSize - 1) / cellSize
	if numCellsX < 1 {
		numCellsX = 1
	}
	return &Registry{
		cellSize:      cellSize,
		minSeparation: minSeparation,
		clusterRadius: clusterRadius,
		width:         width,
		numCellsX:     numCellsX,
		cells:         make(map[[2]int][]LandmarkID),
	}
}

func (r *Registry) gridCell(p geo.Point) [2]int {
	return [2]int{(p.X / r.cellSize) % r.numCellsX, p.Y / r.cellSize}
}

// RegisterOrGet returns the id of an existing landmark within
// minSeparation of loc.Position, or creates a new one and registers it.
// Either way the landmark ends up with discoveredBy in its discoverer list
// and one interpretation per distinct discoverer.
func (r *Registry) RegisterOrGet(loc WorldLocation, feature GeographicFeature, extent LandmarkExtent, lens CulturalLens, interpretationRoll float64, discoveredBy int) LandmarkID {
	cell := r.gridCell(loc.Position)
	// A narrower last column of cells lets two tiles that straddle the x
	// seam sit two cell indices apart while closer than cellSize.
	reach := 1
	if r.width%r.cellSize != 0 {
		reach = 2
	}
	for dx := -reach; dx <= reach; dx++ {
		for dy := -1; dy <= 1; dy++ {
			kx := ((cell[0]+dx)%r.numCellsX + r.numCellsX) % r.numCellsX
			key := [2]int{kx, cell[1] + dy}
			for _, id := range r.cells[key] {
				lm := &r.landmarks[id]
				d := geo.ManhattanDistance(lm.Location.Position, loc.Position, r.width)
				if d < r.minSeparation {
					if !containsInt(lm.DiscoveredBy, discoveredBy) {
						lm.DiscoveredBy = append(lm.DiscoveredBy, discoveredBy)
						lm.Interpretations = append(lm.Interpretations, createInterpretation(lens, feature, interpretationRoll))
					}
					if d > 0 && lm.Extent == ExtentPoint {
						if d <= r.clusterRadius {
							lm.Extent = ExtentCluster
						} else {
							lm.Extent = ExtentRegion
						}
					}
					return lm.ID
				}
			}
		}
	}

	id := r.nextID
	r.nextID++
	landmark := Landmark{
		ID:              id,
		Feature:         feature,
		Location:        loc,
		Extent:          extent,
		Name:            generateName(feature, interpretationRoll, 1-interpretationRoll),
		Interpretations: []LandmarkInterpretation{createInterpretation(lens, feature, interpretationRoll)},
		DiscoveredBy:    []int{discoveredBy},
	}
	r.landmarks = append(r.landmarks, landmark)
	r.cells[cell] = append(r.cells[cell], id)
	return id
}

// Landmarks returns every registered landmark.
func (r *Registry) Landmarks() []Landmark {
	return r.landmarks
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
