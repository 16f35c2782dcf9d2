package lore

// ClimateCategory buckets a tile's temperature/moisture reading for word
// bank lookup.
type ClimateCategory int

const (
	ClimateCold ClimateCategory = iota
	ClimateTemperate
	ClimateHot
	ClimateWet
	ClimateDry
)

// String renders the lowercase name used to key a MythologyPack bank.
func (c ClimateCategory) String() string {
	switch c {
	case ClimateCold:
		return "cold"
	case ClimateTemperate:
		return "temperate"
	case ClimateHot:
		return "hot"
	case ClimateWet:
		return "wet"
	case ClimateDry:
		return "dry"
	default:
		return "unknown"
	}
}

// TerrainType buckets a tile's dominant terrain shape for word bank
// lookup.
type TerrainType int

const (
	TerrainMountain TerrainType = iota
	TerrainWater
	TerrainForest
	TerrainDesert
	TerrainPlains
	TerrainUnderground
	TerrainMystical
	TerrainCoastal
	TerrainWetland
)

// String renders the lowercase name used to key a MythologyPack bank.
func (t TerrainType) String() string {
	switch t {
	case TerrainMountain:
		return "mountain"
	case TerrainWater:
		return "water"
	case TerrainForest:
		return "forest"
	case TerrainDesert:
		return "desert"
	case TerrainPlains:
		return "plains"
	case TerrainUnderground:
		return "underground"
	case TerrainMystical:
		return "mystical"
	case TerrainCoastal:
		return "coastal"
	case TerrainWetland:
		return "wetland"
	default:
		return "unknown"
	}
}

// ClassifyClimate maps a temperature/moisture pair to the coarse climate
// category word banks are keyed on.
func ClassifyClimate(temperature, moisture float64) ClimateCategory {
	switch {
	case moisture > 0.7:
		return ClimateWet
	case moisture < 0.2:
		return ClimateDry
	case temperature < 5:
		return ClimateCold
	case temperature > 25:
		return ClimateHot
	default:
		return ClimateTemperate
	}
}

// wordBank is one (climate, terrain) cell's sample pool.
type wordBank struct {
	Deities   []string
	Creatures []string
	Artifacts []string
	Rituals   []string
	Taboos    []string
}

// banks is keyed by [ClimateCategory][TerrainType]; entries absent from
// this table fall back to the generic bank via bankFor.
var banks = map[ClimateCategory]map[TerrainType]wordBank{
	ClimateCold: {
		TerrainMountain: {
			Deities:   []string{"the Frost Warden", "the Silent Peak", "the Ice-Father"},
			Creatures: []string{"snow wyrm", "frost elk", "ice shrieker"},
			Artifacts: []string{"a rime-etched horn", "a frozen standard"},
			Rituals:   []string{"the vigil of first snow", "the breaking of the ice-seal"},
			Taboos:    []string{"never sleep above the tree line", "never name the summit aloud"},
		},
		TerrainForest: {
			Deities:   []string{"the Pale Huntress", "the Needle King"},
			Creatures: []string{"white stag", "bone-wolf"},
			Artifacts: []string{"a carved antler totem"},
			Rituals:   []string{"the longest-night fire"},
			Taboos:    []string{"never cut a frost-marked tree"},
		},
	},
	ClimateHot: {
		TerrainDesert: {
			Deities:   []string{"the Burning Widow", "the Glass Serpent"},
			Creatures: []string{"sand drake", "dust jackal", "glassback scorpion"},
			Artifacts: []string{"a sun-fused blade", "a waterskin of black glass"},
			Rituals:   []string{"the dawn water-sharing", "the naming of the dunes"},
			Taboos:    []string{"never spill water on bare sand", "never travel at noon"},
		},
		TerrainPlains: {
			Deities:   []string{"the Grass Mother", "the Drought Rider"},
			Creatures: []string{"firetail hawk", "ash-maned horse"},
			Artifacts: []string{"a woven sun-banner"},
			Rituals:   []string{"the burning of the old grass"},
			Taboos:    []string{"never hunt the firetail hawk"},
		},
	},
	ClimateWet: {
		TerrainForest: {
			Deities:   []string{"the Green Coil", "the Weeping Canopy"},
			Creatures: []string{"mist panther", "vine serpent", "canopy wyrm"},
			Artifacts: []string{"a moss-bound idol", "a rain-drum"},
			Rituals:   []string{"the first-rain planting", "the canopy procession"},
			Taboos:    []string{"never fell the oldest tree", "never speak under the canopy at dusk"},
		},
		TerrainWetland: {
			Deities:   []string{"the Reed Mother", "the Drowned King"},
			Creatures: []string{"marsh heron", "bog-strider"},
			Artifacts: []string{"a reed-woven mask"},
			Rituals:   []string{"the offering to the still water"},
			Taboos:    []string{"never drain a sacred bog"},
		},
		TerrainCoastal: {
			Deities:   []string{"the Tide Warden", "the Salt Mother"},
			Creatures: []string{"storm gull", "deep-kraken"},
			Artifacts: []string{"a barnacled anchor-idol"},
			Rituals:   []string{"the first-catch offering"},
			Taboos:    []string{"never sail on the new moon"},
		},
	},
	ClimateTemperate: {
		TerrainPlains: {
			Deities:   []string{"the Harvest Warden", "the Wide Sky"},
			Creatures: []string{"grain-fox", "skylark spirit"},
			Artifacts: []string{"a carved grain totem"},
			Rituals:   []string{"the harvest procession"},
			Taboos:    []string{"never burn the last sheaf"},
		},
		TerrainForest: {
			Deities:   []string{"the Old Oak", "the Quiet Warden"},
			Creatures: []string{"antlered spirit", "grey fox"},
			Artifacts: []string{"an acorn-carved staff"},
			Rituals:   []string{"the equinox gathering"},
			Taboos:    []string{"never cut the oldest oak"},
		},
	},
	ClimateDry: {
		TerrainUnderground: {
			Deities:   []string{"the Deep Warden", "the Unseen Flame"},
			Creatures: []string{"cave lurker", "stoneback beetle"},
			Artifacts: []string{"an unlit lantern of old make"},
			Rituals:   []string{"the descent-blessing"},
			Taboos:    []string{"never speak the deep names above ground"},
		},
		TerrainMystical: {
			Deities:   []string{"the Nameless Between", "the Folded One"},
			Creatures: []string{"void-touched hound", "shimmering wisp"},
			Artifacts: []string{"a fragment that is not quite there"},
			Rituals:   []string{"the rite of closed eyes"},
			Taboos:    []string{"never look directly at the anomaly"},
		},
	},
}

// generic is the fallback bank for a (climate, terrain) pair with no
// specific entry.
var generic = wordBank{
	Deities:   []string{"the Wanderer's God", "the Unnamed One"},
	Creatures: []string{"a wary beast", "a watching bird"},
	Artifacts: []string{"a weathered token"},
	Rituals:   []string{"a quiet offering"},
	Taboos:    []string{"never travel here alone"},
}

func bankFor(climate ClimateCategory, terrain TerrainType) wordBank {
	if byTerrain, ok := banks[climate]; ok {
		if b, ok := byTerrain[terrain]; ok {
			return b
		}
	}
	return generic
}

// pick deterministically selects one string from a non-empty slice using
// roll in [0,1).
func pick(items []string, roll float64) string {
	if len(items) == 0 {
		return ""
	}
	idx := int(roll * float64(len(items)))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	return items[idx]
}
