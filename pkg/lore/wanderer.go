package lore

import (
	"errors"
	"fmt"
	"math"

	"github.com/dshills/worldgen/pkg/biome"
	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/rng"
)

// ErrNoLand reports a world with no tile above sea level: wanderers have
// nowhere to start and the lore pass cannot run.
var ErrNoLand = errors.New("lore: world has no land tiles")

// shallowWaterFloor is the deepest water (meters below sea level) a
// Maritime wanderer will cross. Everyone else stays on land.
const shallowWaterFloor = -500.0

// recencyWindow is how many steps a recently visited tile keeps repelling
// its visitor before the penalty decays to zero.
const recencyWindow = 50

// WorldView bundles the finished world fields the lore pass reads. All
// fields must share Elevation's dimensions.
type WorldView struct {
	Elevation   *geo.Field[float64]
	Temperature *geo.Field[float64]
	Moisture    *geo.Field[float64]
	Stress      *geo.Field[float64]
	Biomes      *geo.Field[biome.Biome]
	SeaLevel    float64
}

func (v *WorldView) locationAt(p geo.Point) WorldLocation {
	return WorldLocation{
		Position:    p,
		Elevation:   v.Elevation.Get(p),
		Temperature: v.Temperature.Get(p),
		Moisture:    v.Moisture.Get(p),
	}
}

// traversable reports whether a wanderer with the given lens may stand on
// p: land for everyone, plus shallow water for Maritime wanderers.
func (v *WorldView) traversable(p geo.Point, lens CulturalLens) bool {
	elev := v.Elevation.Get(p)
	if elev > v.SeaLevel {
		return true
	}
	return lens.Kind == Maritime && elev > v.SeaLevel+shallowWaterFloor
}

// Wanderer is one agent's accumulated path and state across its run.
type Wanderer struct {
	Index         int
	Lens          CulturalLens
	Position      geo.Point
	Path          []geo.Point
	Fatigue       float64
	VisitedBiomes map[biome.Biome]int
	visited       map[geo.Point]bool
	lastVisit     map[geo.Point]int
	Encounters    []Encounter
}

// NewWanderer starts a wanderer at pos with the given lens.
func NewWanderer(index int, pos geo.Point, lens CulturalLens) *Wanderer {
	return &Wanderer{
		Index:         index,
		Lens:          lens,
		Position:      pos,
		Path:          []geo.Point{pos},
		VisitedBiomes: make(map[biome.Biome]int),
		visited:       map[geo.Point]bool{pos: true},
		lastVisit:     map[geo.Point]int{pos: 0},
	}
}

// AddEncounter appends e to the wanderer's encounter log.
func (w *Wanderer) AddEncounter(e Encounter) {
	w.Encounters = append(w.Encounters, e)
}

// lensForBiome picks a starting cultural lens biased by the biome a
// wanderer begins in, so highland wanderers tend to start in mountains and
// so on, without hard-restricting any lens to any biome.
func lensForBiome(b biome.Biome, r *rng.RNG) CulturalLens {
	var weights [6]float64
	for i := range weights {
		weights[i] = 1.0
	}
	switch {
	case b.IsWater():
		weights[Maritime] = 4
	case b == biome.Peak || b == biome.Alpine || b == biome.Foothills:
		weights[Highland] = 4
	case b == biome.Desert || b == biome.SaltFlats || b == biome.Badlands:
		weights[Desert] = 4
	case b == biome.TropicalRainforest || b == biome.TemperateForest || b == biome.DeciduousForest || b == biome.AncientGrove:
		weights[Sylvan] = 4
	case b == biome.TemperateGrassland || b == biome.Savanna:
		weights[Steppe] = 4
	case b == biome.CaveEntrance || b == biome.HollowEarth || b == biome.Sinkhole:
		weights[Subterranean] = 4
	}
	idx := r.WeightedChoice(weights[:])
	return buildLens(CulturalLensKind(idx), r)
}

// buildLens fills a CulturalLens's per-kind sub-fields with a coin flip
// each.
func buildLens(kind CulturalLensKind, r *rng.RNG) CulturalLens {
	l := CulturalLens{Kind: kind}
	switch kind {
	case Highland:
		l.AncestorWorship = r.Bool()
		l.FearsLowlands = r.Bool()
	case Maritime:
		l.TidesSignificant = r.Bool()
		l.FearsDeepWater = r.Bool()
	case Desert:
		l.WaterSacred = r.Bool()
		l.FearsOpenSky = r.Bool()
	case Sylvan:
		l.TreesSentient = r.Bool()
		l.FearsFire = r.Bool()
	case Steppe:
		l.SkyWorship = r.Bool()
		l.FearsEnclosed = r.Bool()
	case Subterranean:
		l.DarknessSacred = r.Bool()
		l.FearsOpenSky2 = r.Bool()
	}
	return l
}

// CreateWanderers picks params.NumWanderers land starting positions by
// rejection sampling: a candidate tile is accepted only if it's at least
// (W+H)/(2*NumWanderers) tiles (Manhattan) from every already-placed
// wanderer, so the population starts spread out rather than clustered.
// When the separation constraint can't be met within the attempt budget,
// it is halved and the sampling retried once; the final fallback accepts
// any unclaimed land tile. A world with no land at all returns ErrNoLand.
func CreateWanderers(view *WorldView, params LoreParams, r *rng.RNG) ([]*Wanderer, error) {
	width, height := view.Elevation.Width, view.Elevation.Height
	minSeparation := (width + height) / (2 * maxInt(params.NumWanderers, 1))

	var placed []geo.Point
	wanderers := make([]*Wanderer, 0, params.NumWanderers)

	for i := 0; i < params.NumWanderers; i++ {
		start, ok := sampleStart(view, placed, minSeparation, r)
		if !ok {
			start, ok = sampleStart(view, placed, minSeparation/2, r)
		}
		if !ok {
			start, ok = firstUnclaimedLand(view, placed)
		}
		if !ok {
			return nil, fmt.Errorf("%w: placed %d of %d wanderers", ErrNoLand, i, params.NumWanderers)
		}
		placed = append(placed, start)

		lensRNG := r.Fork("lens").Fork(wandererTag(i))
		lens := lensForBiome(view.Biomes.Get(start), lensRNG)
		w := NewWanderer(i, start, lens)
		w.VisitedBiomes[view.Biomes.Get(start)] = 1
		wanderers = append(wanderers, w)
	}
	return wanderers, nil
}

func sampleStart(view *WorldView, placed []geo.Point, minSeparation int, r *rng.RNG) (geo.Point, bool) {
	width, height := view.Elevation.Width, view.Elevation.Height
	const maxAttempts = 500
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := geo.Point{X: r.Intn(width), Y: r.Intn(height)}
		if view.Elevation.Get(candidate) <= view.SeaLevel {
			continue
		}
		ok := true
		for _, p := range placed {
			if geo.ManhattanDistance(p, candidate, width) < minSeparation {
				ok = false
				break
			}
		}
		if ok {
			return candidate, true
		}
	}
	return geo.Point{}, false
}

// firstUnclaimedLand scans row-major for a land tile no wanderer already
// occupies, so the fallback stays deterministic rather than burning more
// RNG draws.
func firstUnclaimedLand(view *WorldView, placed []geo.Point) (geo.Point, bool) {
	width, height := view.Elevation.Width, view.Elevation.Height
	taken := make(map[geo.Point]bool, len(placed))
	for _, p := range placed {
		taken[p] = true
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := geo.Point{X: x, Y: y}
			if view.Elevation.Get(p) > view.SeaLevel && !taken[p] {
				return p, true
			}
		}
	}
	return geo.Point{}, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// stepCandidate is one of the up-to-8 tiles a wanderer could move to next.
type stepCandidate struct {
	target geo.Point
	score  float64
}

// Step advances w by one tile. Candidate moves are the traversable
// 8-neighbors, scored as a weighted sum of biome novelty, cultural terrain
// preference, a recency-decaying revisit penalty, feature attraction from
// elevation/stress extremity, a shelter bias once fatigue runs high, and
// exploration jitter. Candidates are ranked by score and picked by
// rank-weighted selection rather than always taking the top score, so
// paths aren't perfectly greedy. Returns false if the wanderer has no
// traversable neighbor.
func (w *Wanderer) Step(view *WorldView, params LoreParams, r *rng.RNG) bool {
	stepIndex := len(w.Path)
	neighbors := view.Elevation.Neighbors8(w.Position)
	candidates := make([]stepCandidate, 0, len(neighbors))
	for _, nb := range neighbors {
		if !view.traversable(nb, w.Lens) {
			continue
		}
		b := view.Biomes.Get(nb)
		novelty := 1.0
		if count, ok := w.VisitedBiomes[b]; ok {
			novelty = 1.0 / float64(count+1)
		}
		if isRareBiome(b) && w.VisitedBiomes[b] == 0 {
			novelty *= 2
		}

		elev := view.Elevation.Get(nb)
		pref := w.Lens.TerrainPreference(b.IsWater(), elev, view.Moisture.Get(nb))

		revisit := 0.0
		if last, ok := w.lastVisit[nb]; ok {
			if age := stepIndex - last; age < recencyWindow {
				revisit = 1.0 - float64(age)/recencyWindow
			}
		}

		attraction := featureAttraction(view, nb, b, params)

		shelter := 0.0
		if w.Fatigue > 0.7 {
			if isRestBiome(b) {
				shelter = 0.5
			}
			if temp := view.Temperature.Get(nb); temp <= -15 || temp >= 35 {
				shelter -= 0.5
			}
		}

		jitter := r.Float64() * params.ExplorationRandomness

		score := params.BiomeNoveltyWeight*novelty +
			params.CulturalBiasWeight*pref -
			params.AvoidRevisitWeight*revisit +
			params.FeatureAttractionWeight*attraction +
			shelter +
			jitter

		candidates = append(candidates, stepCandidate{target: nb, score: score})
	}
	if len(candidates) == 0 {
		return false
	}

	// Rank-weighted selection: sort descending by score, then weight rank
	// k by 1/(k+1)^1.5 so the best candidate is likeliest but never
	// guaranteed.
	sortCandidatesDesc(candidates)
	weights := make([]float64, len(candidates))
	for i := range candidates {
		weights[i] = 1.0 / math.Pow(float64(i+1), 1.5)
	}
	choice := candidates[r.WeightedChoice(weights)]

	w.Position = choice.target
	w.Path = append(w.Path, choice.target)
	w.visited[choice.target] = true
	w.lastVisit[choice.target] = stepIndex
	w.VisitedBiomes[view.Biomes.Get(choice.target)]++

	w.Fatigue += params.WandererFatigueRate
	if isRestBiome(view.Biomes.Get(choice.target)) {
		w.Fatigue -= params.WandererRecoveryRate * params.WandererFatigueRate
	}
	w.Fatigue = clampFatigue(w.Fatigue)

	return true
}

// isRestBiome reports whether b offers the kind of shelter a tired
// wanderer seeks out: water sources, groves, geothermal warmth.
func isRestBiome(b biome.Biome) bool {
	switch b {
	case biome.Oasis, biome.AncientGrove, biome.TemperateForest, biome.Geothermal:
		return true
	default:
		return false
	}
}

func featureAttraction(view *WorldView, p geo.Point, b biome.Biome, params LoreParams) float64 {
	score := 0.0
	if view.Elevation.Get(p) >= params.MinElevationForPeak {
		score += 0.6
	}
	if absf(view.Stress.Get(p)) >= params.MinStressForBoundary {
		score += 0.4
	}
	if isRareBiome(b) {
		score += 0.8
	}
	return score
}

func sortCandidatesDesc(c []stepCandidate) {
	for i := 1; i < len(c); i++ {
		j := i
		for j > 0 && c[j-1].score < c[j].score {
			c[j-1], c[j] = c[j], c[j-1]
			j--
		}
	}
}

// clampFatigue keeps fatigue inside its unit range at every write site.
func clampFatigue(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
