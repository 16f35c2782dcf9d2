package lore

// EmotionalTone is the feeling a wanderer's encounter carries into a story
// seed.
type EmotionalTone int

const (
	Awe EmotionalTone = iota
	Dread
	Wonder
	Sorrow
	Curiosity
	Reverence
	Unease
	Triumph
	Melancholy
)

// String renders the tone name.
func (t EmotionalTone) String() string {
	names := [...]string{"Awe", "Dread", "Wonder", "Sorrow", "Curiosity", "Reverence", "Unease", "Triumph", "Melancholy"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Awe"
}

// PromptGuidance gives a short phrase describing how prose touching this
// tone should read, for a downstream narrative generator to fold into its
// prompts.
func (t EmotionalTone) PromptGuidance() string {
	switch t {
	case Awe:
		return "vast, humbling, sublime"
	case Dread:
		return "foreboding, oppressive, wrong"
	case Wonder:
		return "delighted, curious, open"
	case Sorrow:
		return "grieving, wistful, heavy"
	case Curiosity:
		return "inquisitive, searching, alert"
	case Reverence:
		return "hushed, devotional, careful"
	case Unease:
		return "uncertain, watchful, tense"
	case Triumph:
		return "victorious, proud, relieved"
	case Melancholy:
		return "quiet, faded, longing"
	default:
		return ""
	}
}

// GeographicFeatureKind tags the terrain shape an encounter noticed.
type GeographicFeatureKind int

const (
	FeatureMountainPeak GeographicFeatureKind = iota
	FeatureVolcano
	FeatureValley
	FeatureLake
	FeaturePlateBoundary
	FeatureAncientSite
	FeatureMysticalAnomaly
	FeatureRiverConfluence
	FeatureCoastline
)

// String renders the feature kind name.
func (k GeographicFeatureKind) String() string {
	names := [...]string{
		"MountainPeak", "Volcano", "Valley", "Lake", "PlateBoundary",
		"AncientSite", "MysticalAnomaly", "RiverConfluence", "Coastline",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "MountainPeak"
}

// GeographicFeature is a tagged union over the terrain kinds a wanderer
// can encounter, limited to the shapes the biome, hydrology, and tectonics
// stages can actually detect. Only the payload fields matching Kind are
// meaningful.
type GeographicFeature struct {
	Kind GeographicFeatureKind

	Height       float64 // MountainPeak
	IsVolcanic   bool    // MountainPeak
	Active       bool    // Volcano
	RiverCarved  bool    // Valley
	Area         int     // Lake, Valley
	Stress       float64 // PlateBoundary
	Convergent   bool    // PlateBoundary
	Biome        string  // AncientSite, MysticalAnomaly
}

// Description renders a short human-readable label for the feature.
func (f GeographicFeature) Description() string {
	switch f.Kind {
	case FeatureMountainPeak:
		if f.IsVolcanic {
			return "a volcanic peak"
		}
		return "a towering peak"
	case FeatureVolcano:
		if f.Active {
			return "an active volcano"
		}
		return "a dormant volcano"
	case FeatureValley:
		if f.RiverCarved {
			return "a river-carved valley"
		}
		return "a quiet valley"
	case FeatureLake:
		return "a still lake"
	case FeaturePlateBoundary:
		if f.Convergent {
			return "where the land visibly collides"
		}
		return "a widening rift"
	case FeatureAncientSite:
		return "an ancient site"
	case FeatureMysticalAnomaly:
		return "a place where the world bends"
	case FeatureRiverConfluence:
		return "the meeting of two rivers"
	case FeatureCoastline:
		return "the edge of the sea"
	default:
		return "an unremarkable place"
	}
}

// StorySeedTypeKind tags the mythological hook a story seed carries.
type StorySeedTypeKind int

const (
	SeedCreationMyth StorySeedTypeKind = iota
	SeedCataclysmMyth
	SeedHeroLegend
	SeedSacredPlace
	SeedForbiddenZone
	SeedOriginStory
	SeedPropheticVision
	SeedLostCivilization
)

// String renders the seed type name.
func (k StorySeedTypeKind) String() string {
	names := [...]string{
		"CreationMyth", "CataclysmMyth", "HeroLegend", "SacredPlace",
		"ForbiddenZone", "OriginStory", "PropheticVision", "LostCivilization",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "CreationMyth"
}

// StorySeedType is a tagged union over the mythological hook kinds, each
// carrying the payload fields that flavor it. Only the fields matching
// Kind are meaningful.
type StorySeedType struct {
	Kind StorySeedTypeKind

	CosmicScale       string // CreationMyth
	DisasterType      string // CataclysmMyth
	AffectedRegion    string // CataclysmMyth
	JourneyType       string // HeroLegend
	TrialFeatures     []string
	SanctitySource    string // SacredPlace
	PilgrimageWorthy  bool
	DangerType        string // ForbiddenZone
	WarningSigns      []string
	PeopleOrCreature  string // OriginStory
	BirthplaceFeature string
}

// Archetype is a recurring mythic role a story seed can invoke; the set
// is closed at these ten.
type Archetype int

const (
	ArchetypeHero Archetype = iota
	ArchetypeTrickster
	ArchetypeGuardian
	ArchetypeSage
	ArchetypeExile
	ArchetypeRuler
	ArchetypeMartyr
	ArchetypeSeeker
	ArchetypeDestroyer
	ArchetypeCreator
)

// String renders the archetype name.
func (a Archetype) String() string {
	names := [...]string{
		"Hero", "Trickster", "Guardian", "Sage", "Exile",
		"Ruler", "Martyr", "Seeker", "Destroyer", "Creator",
	}
	if int(a) < len(names) {
		return names[a]
	}
	return "Hero"
}

// NarrativeTheme is one of the twelve fixed thematic tags a story seed
// can carry.
type NarrativeTheme int

const (
	ThemeSurvival NarrativeTheme = iota
	ThemeSacrifice
	ThemeBetrayal
	ThemeRedemption
	ThemeDiscovery
	ThemeLoss
	ThemePower
	ThemeTransformation
	ThemeIsolation
	ThemeBelonging
	ThemeRevenge
	ThemeLegacy
)

// String renders the theme name.
func (t NarrativeTheme) String() string {
	names := [...]string{
		"Survival", "Sacrifice", "Betrayal", "Redemption", "Discovery",
		"Loss", "Power", "Transformation", "Isolation", "Belonging",
		"Revenge", "Legacy",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "Survival"
}

// NarrativeStyle tags the prose register a story seed is classified
// under, carried as metadata for a downstream narrative layer even though
// prose generation itself happens outside this module.
type NarrativeStyle int

const (
	Mythic NarrativeStyle = iota
	Folkloric
	Epic
	Grim
	Whimsical
)

// String renders the narrative style name.
func (s NarrativeStyle) String() string {
	names := [...]string{"Mythic", "Folkloric", "Epic", "Grim", "Whimsical"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Mythic"
}

// SuggestedElements bundles word-bank samples a prose generator outside
// this module's scope could draw on.
type SuggestedElements struct {
	Deities   []string
	Creatures []string
	Artifacts []string
	Rituals   []string
	Taboos    []string
}

// StorySeed is a structured mythological hook, not prose: the output this
// package produces is data a narrative layer downstream could expand.
type StorySeed struct {
	ID                StorySeedID
	SeedType          StorySeedType
	PrimaryLocation   WorldLocation
	RelatedLandmarks  []LandmarkID
	Themes            []NarrativeTheme
	Archetypes        []Archetype
	EmotionalTone     EmotionalTone
	NarrativeStyle    NarrativeStyle
	SourceWanderers   []int
	SuggestedElements SuggestedElements
}

// LandmarkExtent describes how much ground a landmark covers.
type LandmarkExtent int

const (
	ExtentPoint LandmarkExtent = iota
	ExtentCluster
	ExtentRegion
)

// LandmarkInterpretation is one culture's reading of a landmark: a name,
// a social role, and the emotional tone that culture associates with it.
type LandmarkInterpretation struct {
	Lens CulturalLensKind
	Name string
	Role string
	Tone EmotionalTone
}

// Landmark is a registered, deduplicated point of interest.
type Landmark struct {
	ID              LandmarkID
	Feature         GeographicFeature
	Location        WorldLocation
	Extent          LandmarkExtent
	Name            string
	Interpretations []LandmarkInterpretation
	DiscoveredBy    []int // wanderer indices
}

// EncounterTypeKind tags why a wanderer's step became an encounter.
type EncounterTypeKind int

const (
	EncounterLandmarkFound EncounterTypeKind = iota
	EncounterRareBiome
	EncounterBiomeTransition
	EncounterPlateBoundaryCrossing
	EncounterClimateExtreme
	EncounterWaterCrossing
	EncounterElevationMilestone
	EncounterPathConvergence
	EncounterReturnToKnown
)

// String renders the encounter type name.
func (k EncounterTypeKind) String() string {
	names := [...]string{
		"LandmarkFound", "RareBiome", "BiomeTransition", "PlateBoundaryCrossing",
		"ClimateExtreme", "WaterCrossing", "ElevationMilestone", "PathConvergence",
		"ReturnToKnown",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "LandmarkFound"
}

// WandererReaction records how a wanderer's internal state responded to an
// encounter: its emotional read, how much the moment mattered to its
// culture, and any fatigue/preference adjustment.
type WandererReaction struct {
	Tone           EmotionalTone
	Significance   float64
	FatigueDelta   float64
	PreferenceNote string
}

// Encounter is one notable event along a wanderer's path.
type Encounter struct {
	Type       EncounterTypeKind
	Location   WorldLocation
	Step       int
	Landmark   *LandmarkID
	Reaction   WandererReaction
	StorySeeds []StorySeedID
}
