// Package lore walks a population of wandering agents across a finished
// world, each carrying a cultural lens that biases where it wanders and how
// it reacts to what it finds. Encounters with notable terrain register
// landmarks (deduplicated through a spatial hash grid) and spawn story
// seeds: structured mythological hooks, not prose.
package lore

import (
	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/rng"
)

// Result bundles everything the lore pass produces over one world.
type Result struct {
	Wanderers  []*Wanderer
	Landmarks  []Landmark
	StorySeeds []StorySeed
}

// Run walks params.NumWanderers wanderers across view to completion, one
// at a time (run-to-completion scheduling, not round-robin): each
// wanderer's path, RNG stream, and encounter log stay un-interleaved with
// any other wanderer's, which keeps per-wanderer state trivial to reason
// about and test in isolation. Interleaving would still be deterministic
// given per-wanderer RNG forks; run-to-completion was chosen for its
// simpler termination and fatigue bookkeeping. Returns ErrNoLand (wrapped)
// when the world has no land to place wanderers on.
func Run(view *WorldView, params LoreParams, r *rng.RNG) (*Result, error) {
	wanderers, err := CreateWanderers(view, params, r.Fork("wanderers/start"))
	if err != nil {
		return nil, err
	}

	width := view.Elevation.Width
	registry := NewRegistry(params.MinLandmarkSeparation, params.LandmarkClusterRadius, width)

	var storySeeds []StorySeed
	var nextSeedID StorySeedID
	visitedByOthers := make(map[geo.Point]bool)

	for _, w := range wanderers {
		walkRNG := r.Fork("wanderer").Fork(wandererTag(w.Index))

		for step := 0; step < params.MaxStepsPerWanderer; step++ {
			if w.Fatigue >= 1.0 {
				break
			}
			if !w.Step(view, params, walkRNG) {
				break
			}

			encounter := DetectEncounter(w, view, params, registry, visitedByOthers, walkRNG, step)
			if encounter == nil {
				continue
			}
			w.Fatigue = clampFatigue(w.Fatigue + encounter.Reaction.FatigueDelta)

			if encounter.Type == EncounterLandmarkFound && encounter.Landmark != nil {
				landmark := &registry.landmarks[*encounter.Landmark]
				seeds := GenerateStorySeeds(landmark.Feature, encounter.Location, w.Lens, encounter.Reaction.Significance, w.Index, &nextSeedID, params, walkRNG)
				for i := range seeds {
					seeds[i].RelatedLandmarks = []LandmarkID{landmark.ID}
					encounter.StorySeeds = append(encounter.StorySeeds, seeds[i].ID)
				}
				storySeeds = append(storySeeds, seeds...)
			}

			w.AddEncounter(*encounter)
		}

		for p := range w.visited {
			visitedByOthers[p] = true
		}
	}

	return &Result{
		Wanderers:  wanderers,
		Landmarks:  registry.Landmarks(),
		StorySeeds: storySeeds,
	}, nil
}

func wandererTag(index int) string {
	const digits = "0123456789"
	if index < 10 {
		return string(digits[index])
	}
	buf := make([]byte, 0, 4)
	for index > 0 {
		buf = append([]byte{digits[index%10]}, buf...)
		index /= 10
	}
	return string(buf)
}
