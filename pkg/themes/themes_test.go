package themes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/worldgen/pkg/rng"
	"github.com/dshills/worldgen/pkg/themes"
)

const validPackYAML = `
name: test-pack
description: A test mythology pack
banks:
  - climate: cold
    terrain: mountain
    deities:
      - value: the Frost Warden
        weight: 10
    creatures:
      - value: snow wyrm
        weight: 10
    artifacts:
      - value: a rime-etched horn
        weight: 10
    rituals:
      - value: the vigil of first snow
        weight: 10
    taboos:
      - value: never name the summit aloud
        weight: 10
`

func TestLoadMythologyFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "mythology.yml")
	if err := os.WriteFile(path, []byte(validPackYAML), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	pack, err := themes.LoadMythologyFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack.Name != "test-pack" {
		t.Errorf("expected name 'test-pack', got %q", pack.Name)
	}
	if len(pack.Banks) != 1 {
		t.Fatalf("expected 1 bank, got %d", len(pack.Banks))
	}

	bank := pack.BankFor("cold", "mountain")
	if bank == nil {
		t.Fatal("expected bank for cold/mountain")
	}
	if bank.Deities[0].Value != "the Frost Warden" {
		t.Errorf("unexpected deity entry: %q", bank.Deities[0].Value)
	}

	if pack.BankFor("hot", "desert") != nil {
		t.Error("expected nil bank for unmatched climate/terrain")
	}
}

func TestValidateMythologyPack(t *testing.T) {
	tests := []struct {
		name    string
		pack    *themes.MythologyPack
		wantErr bool
	}{
		{
			name: "valid pack",
			pack: &themes.MythologyPack{
				Name: "valid",
				Banks: []themes.MythologyBank{
					{Climate: "cold", Terrain: "mountain", Deities: []themes.WeightedEntry{{Value: "x", Weight: 1}}},
				},
			},
			wantErr: false,
		},
		{
			name: "missing name",
			pack: &themes.MythologyPack{
				Banks: []themes.MythologyBank{{Climate: "cold", Terrain: "mountain"}},
			},
			wantErr: true,
		},
		{
			name: "no banks",
			pack: &themes.MythologyPack{Name: "empty"},
			wantErr: true,
		},
		{
			name: "zero weight entry",
			pack: &themes.MythologyPack{
				Name: "bad-weight",
				Banks: []themes.MythologyBank{
					{Climate: "cold", Terrain: "mountain", Deities: []themes.WeightedEntry{{Value: "x", Weight: 0}}},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := themes.ValidateMythologyPack(tt.pack)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoaderLoadRejectsPathTraversal(t *testing.T) {
	loader := themes.NewLoader(t.TempDir())
	if _, err := loader.Load("../escape"); err == nil {
		t.Fatal("expected error for path-traversal name")
	}
}

func TestLoaderLoadCaches(t *testing.T) {
	tmpDir := t.TempDir()
	packDir := filepath.Join(tmpDir, "nordic")
	if err := os.Mkdir(packDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(packDir, "mythology.yml"), []byte(validPackYAML), 0644); err != nil {
		t.Fatal(err)
	}

	loader := themes.NewLoader(tmpDir)
	first, err := loader.Load("nordic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := loader.Load("nordic")
	if err != nil {
		t.Fatalf("unexpected error on cached load: %v", err)
	}
	if first != second {
		t.Error("expected cached load to return the same pack instance")
	}
}

func TestSelectWeightedIsDeterministic(t *testing.T) {
	entries := []themes.WeightedEntry{
		{Value: "a", Weight: 1},
		{Value: "b", Weight: 1},
		{Value: "c", Weight: 1},
	}

	r1 := rng.NewRNG(99, "mythology-test", []byte("hash"))
	r2 := rng.NewRNG(99, "mythology-test", []byte("hash"))

	for i := 0; i < 10; i++ {
		v1 := themes.SelectWeighted(entries, r1)
		v2 := themes.SelectWeighted(entries, r2)
		if v1 != v2 {
			t.Fatalf("selection %d diverged: %q vs %q", i, v1, v2)
		}
	}
}

func TestSelectWeightedEmpty(t *testing.T) {
	r := rng.NewRNG(1, "mythology-test", []byte("hash"))
	if v := themes.SelectWeighted(nil, r); v != "" {
		t.Errorf("expected empty string for no entries, got %q", v)
	}
}
