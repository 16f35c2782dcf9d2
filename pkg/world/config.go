// Package world orchestrates the full generation pipeline (tectonics,
// heightmap synthesis, erosion, climate, biome classification, hydrology,
// and the lore pass) behind one Config and one Generate entry point:
// YAML-loadable config with cascading Validate(), a config hash feeding
// per-stage RNG derivation, and context cancellation checked between
// stages rather than mid-stage.
package world

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/worldgen/pkg/biome"
	"github.com/dshills/worldgen/pkg/climate"
	"github.com/dshills/worldgen/pkg/erosion"
	"github.com/dshills/worldgen/pkg/heightmap"
	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/tectonics"
	"github.com/dshills/worldgen/pkg/themes"
)

// Config specifies every parameter one generation run needs. It supports
// YAML parsing and cascading validation.
type Config struct {
	// Seed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	Seed uint64 `yaml:"seed" json:"seed"`

	// Width and Height are the map dimensions in tiles. Width wraps
	// (cylindrical); height does not.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// Style names the plate tessellation preset (see tectonics.Style).
	Style string `yaml:"style" json:"style"`

	// PlateCount overrides the style's default plate count range when
	// non-zero.
	PlateCount int `yaml:"plateCount,omitempty" json:"plateCount,omitempty"`

	// ErosionPreset names the erosion intensity (None, Light, Normal,
	// Heavy, Extreme).
	ErosionPreset string `yaml:"erosionPreset" json:"erosionPreset"`

	// ClimateMode names the latitude temperature profile (Globe,
	// Continental, Tropical, Polar).
	ClimateMode string `yaml:"climateMode" json:"climateMode"`

	// Rainfall names the moisture abundance level (Arid, Normal, Wet).
	Rainfall string `yaml:"rainfall" json:"rainfall"`

	// SeaLevel is the elevation (meters) at or below which a tile is
	// classified as water.
	SeaLevel float64 `yaml:"seaLevel" json:"seaLevel"`

	// LorePreset names the lore engine tuning (Default, Minimal,
	// Detailed).
	LorePreset string `yaml:"lorePreset" json:"lorePreset"`

	// NumWanderers overrides LorePreset's wanderer count when non-zero.
	NumWanderers int `yaml:"numWanderers,omitempty" json:"numWanderers,omitempty"`

	// MythologyPackPath, if set, names a YAML file the lore pass loads to
	// override its built-in narrative word banks (see pkg/themes).
	MythologyPackPath string `yaml:"mythologyPackPath,omitempty" json:"mythologyPackPath,omitempty"`
}

var validStyles = map[string]tectonics.Style{
	"Earthlike":    tectonics.Earthlike,
	"Continents":   tectonics.Continents,
	"Archipelago":  tectonics.Archipelago,
	"Pangaea":      tectonics.Pangaea,
	"Inverted":     tectonics.Inverted,
}

var validClimateModes = map[string]climate.Mode{
	"Globe": climate.Globe, "Continental": climate.ContinentalMode,
	"Tropical": climate.Tropical, "Polar": climate.Polar,
}

var validRainfalls = map[string]climate.Rainfall{
	"Arid": climate.Arid, "Normal": climate.NormalRainfall, "Wet": climate.Wet,
}

var validErosionPresets = map[string]erosion.Preset{
	"None": erosion.None, "Light": erosion.Light, "Normal": erosion.Normal,
	"Heavy": erosion.Heavy, "Extreme": erosion.Extreme,
}

var validLorePresets = map[string]func() lore.LoreParams{
	"Default": lore.DefaultParams, "Minimal": lore.MinimalParams, "Detailed": lore.DetailedParams,
}

// DefaultConfig returns a reasonably sized, fully valid configuration.
func DefaultConfig() Config {
	return Config{
		Width: 512, Height: 256,
		Style:         "Earthlike",
		ErosionPreset: "Normal",
		ClimateMode:   "Globe",
		Rainfall:      "Normal",
		SeaLevel:      0,
		LorePreset:    "Default",
	}
}

// LoadConfig reads and parses a YAML config file, auto-generating a seed
// and validating before returning.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewInvalidConfiguration(err.Error())
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, returning the first
// failure found.
func (c *Config) Validate() error {
	if c.Width < 16 || c.Width > 8192 {
		return fmt.Errorf("width must be in range [16, 8192], got %d", c.Width)
	}
	if c.Height < 16 || c.Height > 8192 {
		return fmt.Errorf("height must be in range [16, 8192], got %d", c.Height)
	}
	if _, ok := validStyles[c.Style]; !ok {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if c.PlateCount < 0 {
		return fmt.Errorf("plateCount must be >= 0, got %d", c.PlateCount)
	}
	if _, ok := validErosionPresets[c.ErosionPreset]; !ok {
		return fmt.Errorf("unknown erosionPreset %q", c.ErosionPreset)
	}
	if _, ok := validClimateModes[c.ClimateMode]; !ok {
		return fmt.Errorf("unknown climateMode %q", c.ClimateMode)
	}
	if _, ok := validRainfalls[c.Rainfall]; !ok {
		return fmt.Errorf("unknown rainfall %q", c.Rainfall)
	}
	if _, ok := validLorePresets[c.LorePreset]; !ok {
		return fmt.Errorf("unknown lorePreset %q", c.LorePreset)
	}
	if c.NumWanderers < 0 {
		return fmt.Errorf("numWanderers must be >= 0, got %d", c.NumWanderers)
	}
	if c.MythologyPackPath != "" {
		if _, err := themes.LoadMythologyFromFile(c.MythologyPackPath); err != nil {
			return fmt.Errorf("mythologyPackPath: %w", err)
		}
	}
	return nil
}

// styleValue resolves the configured Style name to its tectonics.Style
// value; Validate guarantees this always succeeds.
func (c *Config) styleValue() tectonics.Style { return validStyles[c.Style] }

func (c *Config) erosionValue() erosion.Preset { return validErosionPresets[c.ErosionPreset] }

func (c *Config) heightmapParams() heightmap.Params { return heightmap.DefaultParams() }

func (c *Config) climateParams() climate.Params {
	return climate.ParamsFor(validClimateModes[c.ClimateMode], validRainfalls[c.Rainfall])
}

func (c *Config) biomeParams() biome.Params {
	p := biome.DefaultParams()
	p.SeaLevel = c.SeaLevel
	return p
}

func (c *Config) loreParams() lore.LoreParams { return c.LoreParams() }

// LoreParams resolves the configured lore preset (with NumWanderers
// override applied), exported so downstream packages like validation can
// check properties (e.g. landmark separation) against the same tuning the
// generator used.
func (c *Config) LoreParams() lore.LoreParams {
	p := validLorePresets[c.LorePreset]()
	if c.NumWanderers > 0 {
		p.NumWanderers = c.NumWanderers
	}
	if c.MythologyPackPath != "" {
		if pack, err := themes.LoadMythologyFromFile(c.MythologyPackPath); err == nil {
			p.MythologyPack = pack
		}
	}
	return p
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration, used to derive
// per-stage RNG seeds alongside the master seed.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.Seed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// generateSeed creates a non-zero seed from the current time.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
