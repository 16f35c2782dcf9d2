package lore

import "github.com/dshills/worldgen/pkg/themes"

// LoreParams tunes the whole lore pass. Zero-value LoreParams is invalid;
// use DefaultParams or one of the named presets.
type LoreParams struct {
	NumWanderers                   int
	MaxStepsPerWanderer            int
	WandererFatigueRate            float64
	WandererRecoveryRate           float64
	ExplorationRandomness          float64
	FeatureAttractionWeight        float64
	BiomeNoveltyWeight             float64
	AvoidRevisitWeight             float64
	CulturalBiasWeight             float64
	MinElevationForPeak            float64
	MinStressForBoundary           float64
	RareBiomeEncounterChance       float64
	MinBiomeTransitionSignificance float64
	LandmarkClusterRadius          int
	MinLandmarkSeparation          int
	StorySeedsPerEncounterMin      int
	StorySeedsPerEncounterMax      int
	CreationMythThreshold          float64
	NarrativeStyle                 NarrativeStyle

	// MythologyPack optionally overrides the built-in word banks used for
	// a StorySeed's SuggestedElements. Nil uses the built-in banks.
	MythologyPack *themes.MythologyPack
}

// DefaultParams is the balanced preset: a handful of long-lived wanderers
// and sparse story seeding.
func DefaultParams() LoreParams {
	return LoreParams{
		NumWanderers:                   5,
		MaxStepsPerWanderer:            100_000,
		WandererFatigueRate:            0.0001,
		WandererRecoveryRate:           0.1,
		ExplorationRandomness:          0.3,
		FeatureAttractionWeight:        0.5,
		BiomeNoveltyWeight:             0.4,
		AvoidRevisitWeight:             0.6,
		CulturalBiasWeight:             0.3,
		MinElevationForPeak:            2000.0,
		MinStressForBoundary:           0.3,
		RareBiomeEncounterChance:       0.1,
		MinBiomeTransitionSignificance: 0.7,
		LandmarkClusterRadius:          5,
		MinLandmarkSeparation:          20,
		StorySeedsPerEncounterMin:      0,
		StorySeedsPerEncounterMax:      1,
		CreationMythThreshold:          0.9,
		NarrativeStyle:                 Mythic,
	}
}

// MinimalParams is a fast, sparse preset for tests and previews.
func MinimalParams() LoreParams {
	p := DefaultParams()
	p.NumWanderers = 2
	p.MaxStepsPerWanderer = 200
	return p
}

// DetailedParams is a slower, denser preset: more wanderers, less
// randomness, and a story seed or three per landmark encounter.
func DetailedParams() LoreParams {
	p := DefaultParams()
	p.NumWanderers = 8
	p.MaxStepsPerWanderer = 2000
	p.ExplorationRandomness = 0.2
	p.StorySeedsPerEncounterMin = 1
	p.StorySeedsPerEncounterMax = 3
	return p
}
