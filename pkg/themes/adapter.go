package themes

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/worldgen/pkg/rng"
)

// Loader provides cached loading of mythology packs from a base directory.
type Loader struct {
	baseDir string
	cache   map[string]*MythologyPack
	mu      sync.RWMutex
}

// NewLoader creates a mythology pack loader for the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		baseDir: baseDir,
		cache:   make(map[string]*MythologyPack),
	}
}

// Load loads a mythology pack by name from baseDir/<name>/mythology.yml.
// Results are cached for subsequent loads.
func (l *Loader) Load(name string) (*MythologyPack, error) {
	if strings.Contains(name, "..") || strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return nil, fmt.Errorf("invalid mythology pack name: %s", name)
	}

	l.mu.RLock()
	if pack, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return pack, nil
	}
	l.mu.RUnlock()

	packPath := filepath.Join(l.baseDir, name)
	pack, err := LoadMythologyFromDirectory(packPath)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[name] = pack
	l.mu.Unlock()

	return pack, nil
}

// SelectWeighted picks one value from entries using r's weighted choice.
// Returns "" if entries is empty or every weight is zero.
func SelectWeighted(entries []WeightedEntry, r *rng.RNG) string {
	if len(entries) == 0 {
		return ""
	}
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = float64(e.Weight)
	}
	idx := r.WeightedChoice(weights)
	if idx < 0 {
		return ""
	}
	return entries[idx].Value
}
