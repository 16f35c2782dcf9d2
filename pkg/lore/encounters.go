package lore

import (
	"github.com/dshills/worldgen/pkg/biome"
	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/rng"
)

// tectonicEvidenceChance is the per-step probability that standing on
// visibly stressed ground becomes an encounter rather than passing
// unremarked.
const tectonicEvidenceChance = 0.1

// DetectEncounter checks w's current tile against a fixed predicate order
// and returns the first match, or nil if the tile is unremarkable. The
// order is significant: a tile that would qualify as both, say,
// ElevationMilestone and WaterCrossing is classified by whichever
// predicate comes first, so reruns are reproducible regardless of how many
// predicates a tile could satisfy. A notable biome registers a landmark
// only the first time this wanderer meets that biome; later visits fall
// through to the probabilistic RareBiome branch. visitedByOthers holds
// every tile an earlier wanderer's path already covered, for
// PathConvergence.
func DetectEncounter(w *Wanderer, view *WorldView, params LoreParams, registry *Registry, visitedByOthers map[geo.Point]bool, r *rng.RNG, step int) *Encounter {
	pos := w.Position
	loc := view.locationAt(pos)
	b := view.Biomes.Get(pos)
	elev := loc.Elevation
	stress := view.Stress.Get(pos)

	// Step already counted the current tile's biome, so a count of one
	// means this is the wanderer's first meeting with it.
	firstVisit := w.VisitedBiomes[b] <= 1

	if feature, extent, ok := detectLandmarkFeature(view, pos, b, elev, stress, firstVisit, params); ok {
		id := registry.RegisterOrGet(loc, feature, extent, w.Lens, r.Float64(), w.Index)
		return &Encounter{
			Type:     EncounterLandmarkFound,
			Location: loc,
			Step:     step,
			Landmark: &id,
			Reaction: reactTo(w.Lens, feature, elev, view.Moisture.Get(pos)),
		}
	}

	if isRareBiome(b) && r.Float64() < params.RareBiomeEncounterChance {
		return &Encounter{Type: EncounterRareBiome, Location: loc, Step: step, Reaction: WandererReaction{Tone: Wonder, Significance: 0.8, FatigueDelta: -0.01}}
	}

	if len(w.Path) > 1 {
		prevBiome := view.Biomes.Get(w.Path[len(w.Path)-2])
		if prevBiome != b && prevBiome.Category() != b.Category() && r.Float64() < params.MinBiomeTransitionSignificance {
			return &Encounter{Type: EncounterBiomeTransition, Location: loc, Step: step, Reaction: WandererReaction{Tone: Curiosity, Significance: biomeTransitionSignificance(prevBiome, b)}}
		}
	}

	if absf(stress) >= params.MinStressForBoundary && r.Float64() < tectonicEvidenceChance {
		return &Encounter{Type: EncounterPlateBoundaryCrossing, Location: loc, Step: step, Reaction: WandererReaction{Tone: Unease, Significance: 0.5}}
	}

	if loc.Temperature <= -15 || loc.Temperature >= 35 {
		return &Encounter{Type: EncounterClimateExtreme, Location: loc, Step: step, Reaction: WandererReaction{Tone: Dread, Significance: 0.4, FatigueDelta: 0.02}}
	}

	if len(w.Path) > 1 {
		prevWater := view.Biomes.Get(w.Path[len(w.Path)-2]).IsWater()
		if prevWater != b.IsWater() {
			return &Encounter{Type: EncounterWaterCrossing, Location: loc, Step: step, Reaction: WandererReaction{Tone: Curiosity, Significance: 0.3}}
		}
	}

	if isElevationMilestone(elev) {
		return &Encounter{Type: EncounterElevationMilestone, Location: loc, Step: step, Reaction: WandererReaction{Tone: Triumph, Significance: 0.3}}
	}

	if visitedByOthers[pos] {
		return &Encounter{Type: EncounterPathConvergence, Location: loc, Step: step, Reaction: WandererReaction{Tone: Curiosity, Significance: 0.2}}
	}

	if w.visited[pos] && len(w.Path) > 2 {
		return &Encounter{Type: EncounterReturnToKnown, Location: loc, Step: step, Reaction: WandererReaction{Tone: Melancholy, Significance: 0.1}}
	}

	return nil
}

// detectLandmarkFeature maps the current tile to a GeographicFeature when
// it clears one of the landmark thresholds. Biome-keyed features (rare
// anomalies, ancient sites, volcanic ground, standing water) only fire on
// the wanderer's first meeting with that biome; terrain-shape features
// (peaks, plate boundaries) depend on the ground alone. Ultra-rare biomes
// come first so a one-tile anomaly always registers.
func detectLandmarkFeature(view *WorldView, pos geo.Point, b biome.Biome, elev, stress float64, firstVisit bool, params LoreParams) (GeographicFeature, LandmarkExtent, bool) {
	switch {
	case firstVisit && (b == biome.VoidScar || b == biome.VoidMaw || b == biome.FloatingStones || b == biome.CrystalFields || b == biome.WhisperingFen):
		return GeographicFeature{Kind: FeatureMysticalAnomaly, Biome: b.String()}, ExtentPoint, true
	case firstVisit && (b == biome.TitanBones || b == biome.AncientGrove || b == biome.HollowEarth || b == biome.Cenote || b == biome.MushroomForest):
		return GeographicFeature{Kind: FeatureAncientSite, Biome: b.String()}, ExtentRegion, true
	case firstVisit && (b == biome.CaveEntrance || b == biome.Sinkhole):
		return GeographicFeature{Kind: FeatureValley, RiverCarved: false, Area: 1}, ExtentPoint, true
	case firstVisit && (b == biome.VolcanicWasteland || b == biome.Geothermal || b == biome.Obsidian):
		return GeographicFeature{Kind: FeatureVolcano, Active: b == biome.Geothermal}, ExtentRegion, true
	case elev >= params.MinElevationForPeak && isLocalMax(view.Elevation, pos):
		return GeographicFeature{Kind: FeatureMountainPeak, Height: elev, IsVolcanic: stress > params.MinStressForBoundary}, ExtentPoint, true
	case absf(stress) >= params.MinStressForBoundary*1.5:
		return GeographicFeature{Kind: FeaturePlateBoundary, Stress: stress, Convergent: stress > 0}, ExtentRegion, true
	case firstVisit && (b == biome.Lake || b == biome.Oasis || b == biome.SaltFlats):
		return GeographicFeature{Kind: FeatureLake, Area: 1}, ExtentCluster, true
	default:
		return GeographicFeature{}, ExtentPoint, false
	}
}

// isLocalMax reports whether p is a strict maximum over its 8-neighborhood.
func isLocalMax(elevation *geo.Field[float64], p geo.Point) bool {
	e := elevation.Get(p)
	for _, nb := range elevation.Neighbors8(p) {
		if elevation.Get(nb) >= e {
			return false
		}
	}
	return true
}

func isRareBiome(b biome.Biome) bool {
	switch b {
	case biome.AncientGrove, biome.MushroomForest, biome.Sinkhole, biome.CaveEntrance,
		biome.HollowEarth, biome.Cenote, biome.TitanBones, biome.FloatingStones,
		biome.VoidScar, biome.VoidMaw, biome.CrystalFields, biome.WhisperingFen,
		biome.SaltFlats, biome.Oasis:
		return true
	default:
		return false
	}
}

// biomeTransitionSignificance scores how notable a biome-to-biome change
// is, in [0,1]: a change within one category is mild, a category crossing
// is strong, and gaining or losing water underfoot is strongest.
func biomeTransitionSignificance(from, to biome.Biome) float64 {
	if from == to {
		return 0
	}
	if from.IsWater() != to.IsWater() {
		return 0.9
	}
	if from.Category() != to.Category() {
		return 0.7
	}
	return 0.4
}

func isElevationMilestone(elev float64) bool {
	for _, m := range []float64{0, 500, 1000, 2000, 3000} {
		if elev >= m && elev < m+5 {
			return true
		}
	}
	return false
}

// reactTo derives a wanderer's emotional reaction to finding a landmark
// feature from its cultural lens's terrain preference.
func reactTo(lens CulturalLens, feature GeographicFeature, elev, moisture float64) WandererReaction {
	pref := lens.TerrainPreference(feature.Kind == FeatureLake, elev, moisture)
	significance := 0.5 + pref/2
	if significance < 0 {
		significance = 0
	}
	if significance > 1 {
		significance = 1
	}
	switch {
	case pref > 0.5:
		return WandererReaction{Tone: Reverence, Significance: significance, FatigueDelta: -0.02, PreferenceNote: "drawn to this place"}
	case pref < -0.3:
		return WandererReaction{Tone: Dread, Significance: significance, FatigueDelta: 0.03, PreferenceNote: "unsettled by this place"}
	default:
		return WandererReaction{Tone: Curiosity, Significance: significance}
	}
}
