package themes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MythologyPack is a YAML-loadable table of narrative flavor text the lore
// engine draws on when it populates a StorySeed's SuggestedElements, keyed
// by climate and terrain band. A world run with no pack configured falls
// back to the engine's built-in word banks; a loaded pack lets a caller
// swap in a different cultural flavor (e.g. a "nordic" or "desert-trade"
// pack) without touching the generation code.
//
// Packs are loaded from YAML files and looked up by (climate, terrain)
// pair; a bank absent from the pack falls through to the built-in generic
// bank the same way an unmatched pair does in the default tables.
type MythologyPack struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description"`
	Banks       []MythologyBank `yaml:"banks" json:"banks"`
}

// MythologyBank is one (climate, terrain) cell's weighted sample pool.
// Climate and Terrain match the lowercase names of lore.ClimateCategory
// and lore.TerrainType (e.g. "cold", "mountain").
type MythologyBank struct {
	Climate   string          `yaml:"climate" json:"climate"`
	Terrain   string          `yaml:"terrain" json:"terrain"`
	Deities   []WeightedEntry `yaml:"deities" json:"deities"`
	Creatures []WeightedEntry `yaml:"creatures" json:"creatures"`
	Artifacts []WeightedEntry `yaml:"artifacts" json:"artifacts"`
	Rituals   []WeightedEntry `yaml:"rituals" json:"rituals"`
	Taboos    []WeightedEntry `yaml:"taboos" json:"taboos"`
}

// WeightedEntry represents an entry with a selection weight.
type WeightedEntry struct {
	Value  string `yaml:"value" json:"value"`
	Weight int    `yaml:"weight" json:"weight"`
}

// LoadMythologyFromFile loads a mythology pack from a YAML file.
func LoadMythologyFromFile(path string) (*MythologyPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mythology pack file: %w", err)
	}

	var pack MythologyPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parsing mythology pack YAML: %w", err)
	}

	if err := ValidateMythologyPack(&pack); err != nil {
		return nil, err
	}

	return &pack, nil
}

// LoadMythologyFromDirectory loads a mythology pack from a directory
// containing mythology.yml (or mythology.yaml).
func LoadMythologyFromDirectory(dir string) (*MythologyPack, error) {
	packPath := filepath.Join(dir, "mythology.yml")
	if _, err := os.Stat(packPath); os.IsNotExist(err) {
		packPath = filepath.Join(dir, "mythology.yaml")
		if _, err := os.Stat(packPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("mythology pack not found in directory: %s", dir)
		}
	}

	return LoadMythologyFromFile(packPath)
}

// ValidateMythologyPack checks that a pack has a name and well-formed
// weighted entries.
func ValidateMythologyPack(pack *MythologyPack) error {
	if pack.Name == "" {
		return errors.New("name is required")
	}
	if len(pack.Banks) == 0 {
		return errors.New("at least one bank is required")
	}
	for _, bank := range pack.Banks {
		if bank.Climate == "" || bank.Terrain == "" {
			return errors.New("bank climate and terrain are required")
		}
		for _, group := range [][]WeightedEntry{bank.Deities, bank.Creatures, bank.Artifacts, bank.Rituals, bank.Taboos} {
			for _, entry := range group {
				if entry.Value == "" {
					return errors.New("mythology entry value is required")
				}
				if entry.Weight <= 0 {
					return errors.New("mythology entry weight must be positive")
				}
			}
		}
	}
	return nil
}

// BankFor returns the bank matching climate and terrain exactly, or nil if
// the pack has no entry for that pair.
func (mp *MythologyPack) BankFor(climate, terrain string) *MythologyBank {
	if mp == nil {
		return nil
	}
	for i := range mp.Banks {
		if mp.Banks[i].Climate == climate && mp.Banks[i].Terrain == terrain {
			return &mp.Banks[i]
		}
	}
	return nil
}
