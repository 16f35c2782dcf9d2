// Package biome classifies each tile into a named biome from elevation,
// temperature, moisture, tectonic stress, and a small deterministic noise
// term that injects rare biomes into otherwise ordinary terrain. The
// classifier is a single pure function over its inputs; per-biome lookup
// tables carry everything downstream consumers need (names, categories,
// rare-variant pools) so no type switch is repeated elsewhere.
package biome

import (
	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/noise"
)

// Biome identifies a tile's biome category. Values group into bands
// documented alongside each constant; the Category and glyph lookup tables
// below key off these values directly rather than a type switch.
type Biome int

const (
	Unclassified Biome = iota

	// Water
	Ocean
	DeepOcean
	OceanicTrench
	Coastal
	CoralReef
	KelpForest
	IceShelf
	Lake
	River
	Wetland
	Mangrove

	// Cold
	Tundra
	Taiga
	Glacier
	BorealForest
	Permafrost

	// Temperate
	TemperateGrassland
	TemperateForest
	DeciduousForest
	Shrubland
	Heath

	// Arid
	Desert
	SaltFlats
	Oasis
	Savanna
	Badlands

	// Tropical
	TropicalForest
	TropicalRainforest
	Jungle
	Mangle

	// Elevation-dominant
	Foothills
	Alpine
	Peak
	Glacial

	// Tectonic / volcanic
	VolcanicWasteland
	RiftValley
	Geothermal
	Obsidian

	// Rare / mystical, sampled only via tile-noise injection
	AncientGrove
	MushroomForest
	Sinkhole
	CaveEntrance
	HollowEarth
	Cenote
	TitanBones
	FloatingStones
	VoidScar
	VoidMaw
	CrystalFields
	WhisperingFen
)

// String renders the biome name.
func (b Biome) String() string {
	if name, ok := names[b]; ok {
		return name
	}
	return "Unclassified"
}

var names = map[Biome]string{
	Ocean: "Ocean", DeepOcean: "DeepOcean", OceanicTrench: "OceanicTrench",
	Coastal: "Coastal", CoralReef: "CoralReef", KelpForest: "KelpForest",
	IceShelf: "IceShelf", Lake: "Lake", River: "River",
	Wetland: "Wetland", Mangrove: "Mangrove",
	Tundra: "Tundra", Taiga: "Taiga", Glacier: "Glacier", BorealForest: "BorealForest",
	Permafrost: "Permafrost",
	TemperateGrassland: "TemperateGrassland", TemperateForest: "TemperateForest",
	DeciduousForest: "DeciduousForest", Shrubland: "Shrubland", Heath: "Heath",
	Desert: "Desert", SaltFlats: "SaltFlats", Oasis: "Oasis", Savanna: "Savanna",
	Badlands: "Badlands",
	TropicalForest: "TropicalForest", TropicalRainforest: "TropicalRainforest",
	Jungle: "Jungle", Mangle: "Mangle",
	Foothills: "Foothills", Alpine: "Alpine", Peak: "Peak", Glacial: "Glacial",
	VolcanicWasteland: "VolcanicWasteland", RiftValley: "RiftValley",
	Geothermal: "Geothermal", Obsidian: "Obsidian",
	AncientGrove: "AncientGrove", MushroomForest: "MushroomForest", Sinkhole: "Sinkhole",
	CaveEntrance: "CaveEntrance", HollowEarth: "HollowEarth", Cenote: "Cenote",
	TitanBones: "TitanBones", FloatingStones: "FloatingStones", VoidScar: "VoidScar",
	VoidMaw: "VoidMaw", CrystalFields: "CrystalFields", WhisperingFen: "WhisperingFen",
}

// Category groups biomes into the coarse bands encounter detection,
// transition scoring, and rendering key off.
type Category int

const (
	CategoryWater Category = iota
	CategoryCold
	CategoryForest
	CategoryDesert
	CategoryGrassland
	CategoryVolcanic
	CategoryWetland
	CategoryMystical
	CategoryRuin
	CategoryOther
)

// String renders the category name.
func (c Category) String() string {
	names := [...]string{
		"Water", "Cold", "Forest", "Desert", "Grassland",
		"Volcanic", "Wetland", "Mystical", "Ruin", "Other",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "Other"
}

var categories = map[Biome]Category{
	Ocean: CategoryWater, DeepOcean: CategoryWater, OceanicTrench: CategoryWater,
	Coastal: CategoryWater, CoralReef: CategoryWater, KelpForest: CategoryWater,
	IceShelf: CategoryWater, Lake: CategoryWater, River: CategoryWater,
	Wetland: CategoryWetland, Mangrove: CategoryWetland, Mangle: CategoryWetland,
	WhisperingFen: CategoryWetland,
	Tundra: CategoryCold, Taiga: CategoryCold, Glacier: CategoryCold,
	BorealForest: CategoryCold, Permafrost: CategoryCold, Glacial: CategoryCold,
	TemperateForest: CategoryForest, DeciduousForest: CategoryForest,
	TropicalForest: CategoryForest, TropicalRainforest: CategoryForest,
	Jungle: CategoryForest, AncientGrove: CategoryForest, MushroomForest: CategoryForest,
	Desert: CategoryDesert, SaltFlats: CategoryDesert, Oasis: CategoryDesert,
	Badlands: CategoryDesert,
	TemperateGrassland: CategoryGrassland, Savanna: CategoryGrassland,
	Shrubland: CategoryGrassland, Heath: CategoryGrassland,
	VolcanicWasteland: CategoryVolcanic, RiftValley: CategoryVolcanic,
	Geothermal: CategoryVolcanic, Obsidian: CategoryVolcanic,
	FloatingStones: CategoryMystical, VoidScar: CategoryMystical,
	VoidMaw: CategoryMystical, CrystalFields: CategoryMystical,
	Cenote: CategoryMystical,
	TitanBones: CategoryRuin, HollowEarth: CategoryRuin, Sinkhole: CategoryRuin,
	CaveEntrance: CategoryRuin,
}

// Category returns b's coarse band; biomes outside every band (peaks,
// foothills, alpine) fall into CategoryOther.
func (b Biome) Category() Category {
	if c, ok := categories[b]; ok {
		return c
	}
	return CategoryOther
}

var glyphs = map[Biome]byte{
	Ocean: '~', DeepOcean: '~', OceanicTrench: '~', Coastal: ',',
	CoralReef: '%', KelpForest: '%', IceShelf: '#', Lake: 'o', River: '=',
	Wetland: 'w', Mangrove: 'w', Mangle: 'w', WhisperingFen: 'w',
	Tundra: '-', Taiga: 't', Glacier: '#', BorealForest: 't', Permafrost: '-',
	TemperateGrassland: '.', TemperateForest: 'T', DeciduousForest: 'T',
	Shrubland: ':', Heath: ':',
	Desert: 'd', SaltFlats: '_', Oasis: 'O', Savanna: ';', Badlands: 'x',
	TropicalForest: 'J', TropicalRainforest: 'J', Jungle: 'J',
	Foothills: 'n', Alpine: 'A', Peak: '^', Glacial: '^',
	VolcanicWasteland: 'V', RiftValley: 'r', Geothermal: '*', Obsidian: 'V',
	AncientGrove: '&', MushroomForest: 'm', Sinkhole: 'u', CaveEntrance: 'c',
	HollowEarth: 'c', Cenote: 'u', TitanBones: '!', FloatingStones: '?',
	VoidScar: '0', VoidMaw: '0', CrystalFields: '+',
}

// Glyph returns the single ASCII character the text renderer draws for b.
func (b Biome) Glyph() byte {
	if g, ok := glyphs[b]; ok {
		return g
	}
	return ' '
}

// IsWater reports whether b is one of the water-body biomes.
func (b Biome) IsWater() bool {
	switch b {
	case Ocean, DeepOcean, OceanicTrench, Coastal, CoralReef, KelpForest,
		IceShelf, Lake, River, Wetland, Mangrove, Mangle, WhisperingFen:
		return true
	default:
		return false
	}
}

// Params tunes classification thresholds. Zero-value Params is invalid;
// use DefaultParams.
type Params struct {
	SeaLevel           float64
	DeepOceanDepth     float64
	TrenchDepth        float64
	CoastalDepth       float64
	AlpineElevation    float64
	PeakElevation      float64
	FoothillsBand      float64
	RareBiomeChance    float64
	RareBiomeNoiseFreq float64
}

// DefaultParams returns the standard classification thresholds.
func DefaultParams() Params {
	return Params{
		SeaLevel:           0,
		DeepOceanDepth:     -2000,
		TrenchDepth:        -4500,
		CoastalDepth:       -150,
		AlpineElevation:    2000,
		PeakElevation:      3500,
		FoothillsBand:      700,
		RareBiomeChance:    0.1,
		RareBiomeNoiseFreq: 0.08,
	}
}

// Inputs bundles the per-tile fields Classify reads. All fields must share
// elevation's dimensions.
type Inputs struct {
	Elevation   *geo.Field[float64]
	Temperature *geo.Field[float64]
	Moisture    *geo.Field[float64]
	Stress      *geo.Field[float64]
}

// Classify assigns a biome to every tile of in, returning a field of the
// same dimensions. seed drives the rare-biome injection noise only; the
// elevation/temperature/moisture/stress classification itself is a pure
// function of its inputs.
func Classify(in Inputs, seed int64, params Params) *geo.Field[Biome] {
	width, height := in.Elevation.Width, in.Elevation.Height
	out := geo.NewField[Biome](width, height)
	src := noise.NewSource(seed)

	in.Elevation.ForEach(func(x, y int, elev float64) {
		temp := in.Temperature.At(x, y)
		moist := in.Moisture.At(x, y)
		stress := in.Stress.At(x, y)

		rareRoll := (src.Noise2D(float64(x)*params.RareBiomeNoiseFreq, float64(y)*params.RareBiomeNoiseFreq) + 1) / 2
		b := classifyOne(elev, temp, moist, stress, rareRoll, params)

		if rareRoll < params.RareBiomeChance {
			if rare, ok := rareOverride(b, elev, temp, moist, stress, rareRoll); ok {
				b = rare
			}
		}

		out.Set(x, y, b)
	})
	return out
}

// classifyOne is the baseline Whittaker-like lookup: the peak and alpine
// elevation bands first, then a tectonic override for active boundaries,
// then the foothills band, then temperature/moisture for the remaining
// land. Water tiles refine by depth, temperature, and the
// tile noise roll into coastal, reef, kelp, and ice-shelf variants. Kept as
// one function with early returns rather than nested branching so every
// band is independently testable.
func classifyOne(elev, temp, moist, stress, noiseRoll float64, params Params) Biome {
	if elev <= params.SeaLevel {
		return classifyWater(elev, temp, moist, noiseRoll, params)
	}

	if elev >= params.PeakElevation {
		if temp < -5 {
			return Glacial
		}
		return Peak
	}
	if elev >= params.AlpineElevation {
		return Alpine
	}

	if absf(stress) > 0.6 {
		if stress > 0 && temp > 5 {
			return VolcanicWasteland
		}
		if stress < 0 {
			return RiftValley
		}
	}

	if elev >= params.AlpineElevation-params.FoothillsBand {
		return Foothills
	}

	switch {
	case temp < -10:
		return Glacier
	case temp < 0:
		if moist > 0.5 {
			return BorealForest
		}
		return Tundra
	case temp < 10:
		if moist > 0.6 {
			return Taiga
		}
		if moist > 0.3 {
			return TemperateForest
		}
		return Permafrost
	case temp < 22:
		switch {
		case moist > 0.7:
			return DeciduousForest
		case moist > 0.4:
			return TemperateGrassland
		case moist > 0.2:
			return Shrubland
		default:
			return Heath
		}
	default: // temp >= 22, tropical/arid band
		switch {
		case moist > 0.8:
			return TropicalRainforest
		case moist > 0.6:
			return TropicalForest
		case moist > 0.35:
			return Savanna
		case moist > 0.15:
			return Badlands
		default:
			return Desert
		}
	}
}

// classifyWater grades a sub-sea-level tile by depth, then splits the
// shallow coastal band by temperature and tile noise.
func classifyWater(elev, temp, moist, noiseRoll float64, params Params) Biome {
	if elev <= params.TrenchDepth {
		return OceanicTrench
	}
	if elev <= params.DeepOceanDepth {
		return DeepOcean
	}
	if elev > params.CoastalDepth {
		switch {
		case moist > 0.9 && temp > 15 && elev > params.SeaLevel-40:
			return Wetland
		case temp < -10:
			return IceShelf
		case temp > 20 && noiseRoll > 0.6:
			return CoralReef
		case temp >= 5 && temp <= 20 && noiseRoll > 0.7:
			return KelpForest
		default:
			return Coastal
		}
	}
	return Ocean
}

// rareOverride replaces a baseline biome with a thematically compatible
// rare variant, keyed by a small table so the mapping stays a lookup rather
// than an if-chain. rareRoll reseeds the sub-choice deterministically.
func rareOverride(base Biome, elev, temp, moist, stress, rareRoll float64) (Biome, bool) {
	candidates, ok := rareCandidates[base]
	if !ok || len(candidates) == 0 {
		return Unclassified, false
	}
	idx := int(rareRoll*1000) % len(candidates)
	return candidates[idx], true
}

var rareCandidates = map[Biome][]Biome{
	Desert:             {SaltFlats, Oasis},
	TropicalRainforest: {AncientGrove, MushroomForest, Jungle},
	TropicalForest:     {Mangle, Jungle},
	Wetland:            {WhisperingFen, Mangrove},
	RiftValley:         {VoidScar, VoidMaw, Sinkhole},
	VolcanicWasteland:  {Obsidian, Geothermal},
	Foothills:          {CaveEntrance, Sinkhole},
	Peak:               {TitanBones, FloatingStones, CrystalFields},
	Glacial:            {HollowEarth, Cenote},
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
