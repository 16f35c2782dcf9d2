// Package rng provides deterministic random number generation for the world
// generator.
//
// # Overview
//
// The RNG type ensures reproducible world generation by deriving stage-specific
// seeds from a master seed. This allows each pipeline stage (tectonics,
// heightmap, erosion, climate, biomes, hydrology, lore) to have independent
// random sequences while maintaining overall determinism.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for entire generation
//   - stageName: Pipeline stage identifier (e.g., "tectonics", "heightmap")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	configHash := cfg.Hash()
//	tectonicsRNG := rng.NewRNG(masterSeed, "tectonics", configHash)
//	heightmapRNG := rng.NewRNG(masterSeed, "heightmap", configHash)
//
// Use the RNG for all random decisions in that stage:
//
//	plateCount := tectonicsRNG.IntRange(6, 20)
//	magnitude := tectonicsRNG.Float64Range(0.2, 1.0)
//	if tectonicsRNG.Bool() {
//	    // continental plate
//	}
//
// A stage that fans work out across workers (hydraulic-erosion droplet
// batches, per-tile noise) derives one further sub-stream per worker with
// Fork, rather than sharing one *RNG across goroutines:
//
//	for w := 0; w < numWorkers; w++ {
//	    workerRNG := erosionRNG.Fork(fmt.Sprintf("worker-%d", w))
//	    go runDropletBatch(workerRNG, ...)
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance, obtained via Fork before the goroutines are spawned.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient:
//   - Uint64(): ~2ns per call
//   - Intn():   ~3ns per call
//   - Float64(): ~2ns per call
//
// Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
package rng
