package world

import (
	"os"
	"path/filepath"
	"testing"
)

const testMythologyPackYAML = `
name: test-override
banks:
  - climate: cold
    terrain: mountain
    deities:
      - value: the Override Warden
        weight: 1
`

func TestConfigValidateRejectsMissingMythologyPack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.MythologyPackPath = filepath.Join(t.TempDir(), "missing.yml")
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for missing mythology pack file")
	}
}

func TestConfigLoreParamsLoadsMythologyPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mythology.yml")
	if err := os.WriteFile(path, []byte(testMythologyPackYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.MythologyPackPath = path
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	params := cfg.LoreParams()
	if params.MythologyPack == nil {
		t.Fatal("expected MythologyPack to be populated")
	}
	bank := params.MythologyPack.BankFor("cold", "mountain")
	if bank == nil || bank.Deities[0].Value != "the Override Warden" {
		t.Fatal("expected overridden cold/mountain bank")
	}
}
