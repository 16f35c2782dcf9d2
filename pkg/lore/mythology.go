package lore

import (
	"github.com/dshills/worldgen/pkg/rng"
	"github.com/dshills/worldgen/pkg/themes"
)

// GenerateStorySeeds maps a landmark encounter to zero or more story
// seeds: the feature proposes an ordered list of potential StorySeedType
// candidates (with cultural-lens-specific additions), creation myths are
// reserved for encounters whose cultural significance clears
// params.CreationMythThreshold, then
// params.StorySeedsPerEncounter{Min,Max} bounds how many candidates are
// actually emitted.
func GenerateStorySeeds(feature GeographicFeature, loc WorldLocation, lens CulturalLens, significance float64, wandererIndex int, nextID *StorySeedID, params LoreParams, r *rng.RNG) []StorySeed {
	potentials := classifyMythPotential(feature, lens)
	if significance < params.CreationMythThreshold {
		kept := potentials[:0]
		for _, p := range potentials {
			if p.Kind != SeedCreationMyth {
				kept = append(kept, p)
			}
		}
		potentials = kept
	}
	if len(potentials) == 0 {
		return nil
	}

	span := params.StorySeedsPerEncounterMax - params.StorySeedsPerEncounterMin
	num := params.StorySeedsPerEncounterMin
	if span > 0 {
		num += r.Intn(span + 1)
	}
	if num > len(potentials) {
		num = len(potentials)
	}

	seeds := make([]StorySeed, 0, num)
	for i := 0; i < num; i++ {
		seedType := potentials[i]
		seeds = append(seeds, StorySeed{
			ID:                *nextID,
			SeedType:          seedType,
			PrimaryLocation:   loc,
			Themes:            extractThemes(seedType, feature),
			Archetypes:        extractArchetypes(seedType, lens),
			EmotionalTone:     determineEmotionalTone(seedType, lens),
			NarrativeStyle:    params.NarrativeStyle,
			SourceWanderers:   []int{wandererIndex},
			SuggestedElements: generateSuggestedElements(feature, loc, params, r),
		})
		*nextID++
	}
	return seeds
}

// classifyMythPotential is the feature-to-candidate-types dispatch: one
// switch over the feature kind with nested cultural-lens refinements,
// ordered so the strongest candidate comes first.
func classifyMythPotential(feature GeographicFeature, lens CulturalLens) []StorySeedType {
	var out []StorySeedType

	switch feature.Kind {
	case FeatureMountainPeak:
		out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "ClosenessToSky", PilgrimageWorthy: feature.Height > 3000})
		if feature.IsVolcanic {
			out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Regional"})
			out = append(out, StorySeedType{Kind: SeedCataclysmMyth, DisasterType: "VolcanicEruption", AffectedRegion: "the surrounding lands"})
		}
		switch lens.Kind {
		case Highland:
			out = append(out, StorySeedType{Kind: SeedHeroLegend, JourneyType: "Ascent", TrialFeatures: []string{"treacherous slopes", "thin air"}})
		case Maritime:
			out = append(out, StorySeedType{Kind: SeedForbiddenZone, DangerType: "TooFarFromSea", WarningSigns: []string{"air too thin", "no salt smell"}})
		case Steppe:
			if lens.SkyWorship {
				out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "ClosenessToSky", PilgrimageWorthy: true})
			}
		}

	case FeatureVolcano:
		out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Regional"})
		if feature.Active {
			out = append(out, StorySeedType{Kind: SeedForbiddenZone, DangerType: "PhysicalHazard", WarningSigns: []string{"smoke rises", "ground trembles"}})
		}
		out = append(out, StorySeedType{Kind: SeedOriginStory, PeopleOrCreature: "fire spirits", BirthplaceFeature: "the volcanic heart"})

	case FeatureValley:
		if feature.RiverCarved {
			out = append(out, StorySeedType{Kind: SeedHeroLegend, JourneyType: "Crossing", TrialFeatures: []string{"raging waters", "steep cliffs"}})
		}
		switch lens.Kind {
		case Sylvan:
			out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "AncientPresence"})
		case Subterranean:
			out = append(out, StorySeedType{Kind: SeedOriginStory, PeopleOrCreature: "the deep folk", BirthplaceFeature: "where earth opens"})
		}

	case FeatureLake:
		out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "SacredWaters", PilgrimageWorthy: feature.Area > 100})
		switch lens.Kind {
		case Maritime:
			out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Local"})
		case Desert:
			if lens.WaterSacred {
				out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "DivineManifestation", PilgrimageWorthy: true})
			}
		}
		out = append(out, StorySeedType{Kind: SeedOriginStory, PeopleOrCreature: "water spirits", BirthplaceFeature: "the deep waters"})

	case FeaturePlateBoundary:
		if feature.Convergent {
			out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Continental"})
			out = append(out, StorySeedType{Kind: SeedHeroLegend, JourneyType: "CosmicBattle", TrialFeatures: []string{"where lands collide"}})
		} else {
			out = append(out, StorySeedType{Kind: SeedCataclysmMyth, DisasterType: "WorldRift", AffectedRegion: "the lands that were once one"})
		}
		if absf(feature.Stress) > 0.6 {
			out = append(out, StorySeedType{Kind: SeedForbiddenZone, DangerType: "CursedGround", WarningSigns: []string{"the earth trembles", "cracks widen"}})
		}

	case FeatureAncientSite:
		switch feature.Biome {
		case "TitanBones":
			out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Cosmic"})
			out = append(out, StorySeedType{Kind: SeedOriginStory, PeopleOrCreature: "the giants who shaped the land", BirthplaceFeature: "before time began"})
		case "AncientGrove":
			out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "FirstForest", PilgrimageWorthy: true})
			out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Regional"})
		default:
			out = append(out, StorySeedType{Kind: SeedSacredPlace, SanctitySource: "AncientPresence", PilgrimageWorthy: true})
		}

	case FeatureMysticalAnomaly:
		switch feature.Biome {
		case "FloatingStones", "VoidScar", "VoidMaw":
			out = append(out, StorySeedType{Kind: SeedForbiddenZone, DangerType: "ThinReality", WarningSigns: []string{"reality bends", "time flows strangely"}})
			out = append(out, StorySeedType{Kind: SeedCreationMyth, CosmicScale: "Cosmic"})
		default:
			out = append(out, StorySeedType{Kind: SeedLostCivilization})
		}

	case FeatureRiverConfluence:
		out = append(out, StorySeedType{Kind: SeedHeroLegend, JourneyType: "Crossing", TrialFeatures: []string{"two rivers becoming one"}})

	case FeatureCoastline:
		out = append(out, StorySeedType{Kind: SeedPropheticVision})
	}

	return out
}

func extractThemes(seedType StorySeedType, feature GeographicFeature) []NarrativeTheme {
	switch seedType.Kind {
	case SeedCreationMyth:
		return []NarrativeTheme{ThemeDiscovery, ThemeLegacy}
	case SeedCataclysmMyth:
		return []NarrativeTheme{ThemeLoss, ThemeSurvival}
	case SeedHeroLegend:
		return []NarrativeTheme{ThemeSacrifice, ThemeTransformation}
	case SeedSacredPlace:
		return []NarrativeTheme{ThemeBelonging}
	case SeedForbiddenZone:
		return []NarrativeTheme{ThemeIsolation}
	case SeedOriginStory:
		return []NarrativeTheme{ThemeLegacy, ThemeDiscovery}
	case SeedPropheticVision:
		return []NarrativeTheme{ThemePower}
	case SeedLostCivilization:
		return []NarrativeTheme{ThemeLoss, ThemeBetrayal}
	default:
		return nil
	}
}

func extractArchetypes(seedType StorySeedType, lens CulturalLens) []Archetype {
	switch seedType.Kind {
	case SeedHeroLegend:
		return []Archetype{ArchetypeHero, ArchetypeSeeker}
	case SeedCreationMyth:
		return []Archetype{ArchetypeCreator}
	case SeedCataclysmMyth:
		return []Archetype{ArchetypeDestroyer}
	case SeedSacredPlace:
		return []Archetype{ArchetypeGuardian, ArchetypeSage}
	case SeedForbiddenZone:
		return []Archetype{ArchetypeGuardian}
	case SeedOriginStory:
		return []Archetype{ArchetypeCreator, ArchetypeRuler}
	case SeedLostCivilization:
		return []Archetype{ArchetypeExile, ArchetypeMartyr}
	default:
		return []Archetype{ArchetypeSeeker}
	}
}

func determineEmotionalTone(seedType StorySeedType, lens CulturalLens) EmotionalTone {
	switch seedType.Kind {
	case SeedCreationMyth:
		return Awe
	case SeedCataclysmMyth:
		return Dread
	case SeedHeroLegend:
		return Triumph
	case SeedSacredPlace:
		return Reverence
	case SeedForbiddenZone:
		return Unease
	case SeedOriginStory:
		return Wonder
	case SeedLostCivilization:
		return Melancholy
	default:
		return defaultTone(lens.Kind)
	}
}

// generateSuggestedElements samples the word banks keyed by the location's
// climate and the feature's terrain type. When params carries a
// MythologyPack with a matching bank, its weighted entries take
// precedence over the built-in table; any element absent from the
// override bank falls back to the built-in pick.
func generateSuggestedElements(feature GeographicFeature, loc WorldLocation, params LoreParams, r *rng.RNG) SuggestedElements {
	climate := ClassifyClimate(loc.Temperature, loc.Moisture)
	terrain := terrainTypeFor(feature)
	b := bankFor(climate, terrain)

	elements := SuggestedElements{
		Deities:   pickSome(b.Deities, r),
		Creatures: pickSome(b.Creatures, r),
		Artifacts: pickSome(b.Artifacts, r),
		Rituals:   pickSome(b.Rituals, r),
		Taboos:    pickSome(b.Taboos, r),
	}

	if override := params.MythologyPack.BankFor(climate.String(), terrain.String()); override != nil {
		if v := themes.SelectWeighted(override.Deities, r); v != "" {
			elements.Deities = []string{v}
		}
		if v := themes.SelectWeighted(override.Creatures, r); v != "" {
			elements.Creatures = []string{v}
		}
		if v := themes.SelectWeighted(override.Artifacts, r); v != "" {
			elements.Artifacts = []string{v}
		}
		if v := themes.SelectWeighted(override.Rituals, r); v != "" {
			elements.Rituals = []string{v}
		}
		if v := themes.SelectWeighted(override.Taboos, r); v != "" {
			elements.Taboos = []string{v}
		}
	}

	return elements
}

// pickSome draws one to three distinct entries from items, fewer when the
// bank is smaller.
func pickSome(items []string, r *rng.RNG) []string {
	if len(items) == 0 {
		return nil
	}
	max := 3
	if len(items) < max {
		max = len(items)
	}
	n := 1 + r.Intn(max)
	start := r.Intn(len(items))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[(start+i)%len(items)])
	}
	return out
}

func terrainTypeFor(feature GeographicFeature) TerrainType {
	switch feature.Kind {
	case FeatureMountainPeak, FeatureVolcano:
		return TerrainMountain
	case FeatureLake, FeatureRiverConfluence:
		return TerrainWater
	case FeatureValley:
		return TerrainForest
	case FeatureCoastline:
		return TerrainCoastal
	case FeatureAncientSite:
		return TerrainUnderground
	case FeatureMysticalAnomaly:
		return TerrainMystical
	case FeaturePlateBoundary:
		return TerrainPlains
	default:
		return TerrainPlains
	}
}
