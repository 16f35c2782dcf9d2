package world

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dshills/worldgen/pkg/biome"
	"github.com/dshills/worldgen/pkg/climate"
	"github.com/dshills/worldgen/pkg/erosion"
	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/heightmap"
	"github.com/dshills/worldgen/pkg/hydrology"
	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/rng"
	"github.com/dshills/worldgen/pkg/tectonics"
)

// Data is the complete generated world: every field every later stage
// (export, validation, lore) reads.
type Data struct {
	Config Config

	Plates      []tectonics.Plate
	PlateIDs    *geo.Field[tectonics.PlateId]
	Stress      *geo.Field[float64]
	Elevation   *geo.Field[float64]
	Temperature *geo.Field[float64]
	Moisture    *geo.Field[float64]
	Biomes      *geo.Field[biome.Biome]

	FlowDirections *geo.Field[geo.Point]
	Accumulation   *geo.Field[int]
	Rivers         *hydrology.Network
	WaterBodies    []hydrology.WaterBody
	WaterBodyIDs   *geo.Field[int]
}

// Generator produces a Data and a lore.Result from a Config.
type Generator interface {
	Generate(ctx context.Context, cfg *Config) (*Data, *lore.Result, error)
}

// DefaultGenerator runs the full pipeline in its fixed stage order:
// tectonics, stress, heightmap, erosion, climate, biome, hydrology, lore.
// Each stage's RNG is derived from (seed, stage name, config hash), and
// context cancellation is checked between stages, never mid-stage, so a
// stage always either completes fully or doesn't start.
type DefaultGenerator struct{}

// NewGenerator constructs the default pipeline.
func NewGenerator() *DefaultGenerator { return &DefaultGenerator{} }

func (g *DefaultGenerator) Generate(ctx context.Context, cfg *Config) (*Data, *lore.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, NewInvalidConfiguration(err.Error())
	}
	configHash := cfg.Hash()

	data := &Data{Config: *cfg}

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	plateCount := cfg.PlateCount
	if plateCount <= 0 {
		params := tectonics.ParamsFor(cfg.styleValue())
		plateCount = (params.PlateCountMin + params.PlateCountMax) / 2
	}
	tessRNG := rng.NewRNG(cfg.Seed, "tectonics", configHash)
	tessResult, err := tectonics.Tessellate(cfg.Width, cfg.Height, plateCount, cfg.styleValue(), tessRNG)
	if err != nil {
		return nil, nil, fmt.Errorf("tectonics: %w", err)
	}
	data.Plates = tessResult.Plates
	data.PlateIDs = tessResult.PlateIDs

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	stressRNG := rng.NewRNG(cfg.Seed, "stress", configHash)
	data.Stress = tectonics.StressField(data.PlateIDs, data.Plates, int64(stressRNG.Uint64()))

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	heightRNG := rng.NewRNG(cfg.Seed, "heightmap", configHash)
	data.Elevation = heightmap.Synthesize(data.PlateIDs, data.Plates, data.Stress, int64(heightRNG.Uint64()), cfg.heightmapParams())
	if err := checkFinite("heightmap", data.Elevation); err != nil {
		return nil, nil, err
	}

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	erosionRNG := rng.NewRNG(cfg.Seed, "erosion", configHash)
	erosion.Apply(data.Elevation, erosionRNG, cfg.erosionValue(), cfg.SeaLevel)
	if err := checkFinite("erosion", data.Elevation); err != nil {
		return nil, nil, err
	}

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	climateFields := climate.Derive(data.Elevation, cfg.SeaLevel, cfg.climateParams())
	data.Temperature = climateFields.Temperature
	data.Moisture = climateFields.Moisture
	if err := checkFinite("climate", data.Temperature); err != nil {
		return nil, nil, err
	}
	if err := checkFinite("climate", data.Moisture); err != nil {
		return nil, nil, err
	}

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	biomeRNG := rng.NewRNG(cfg.Seed, "biome", configHash)
	data.Biomes = biome.Classify(biome.Inputs{
		Elevation: data.Elevation, Temperature: data.Temperature,
		Moisture: data.Moisture, Stress: data.Stress,
	}, int64(biomeRNG.Uint64()), cfg.biomeParams())

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	hydrology.FillDepressions(data.Elevation)
	data.FlowDirections = hydrology.FlowDirections(data.Elevation)
	data.Accumulation = hydrology.Accumulate(data.Elevation, data.FlowDirections)
	data.WaterBodies, data.WaterBodyIDs = hydrology.FindWaterBodies(data.Elevation, cfg.SeaLevel)
	isWater := waterMaskFromIDs(data.WaterBodyIDs)
	data.Rivers = hydrology.ClassifyRivers(data.FlowDirections, data.Accumulation, isWater, hydrology.DefaultRiverParams())

	if err := checkDone(ctx); err != nil {
		return nil, nil, err
	}
	loreRNG := rng.NewRNG(cfg.Seed, "lore", configHash)
	view := &lore.WorldView{
		Elevation: data.Elevation, Temperature: data.Temperature,
		Moisture: data.Moisture, Stress: data.Stress, Biomes: data.Biomes,
		SeaLevel: cfg.SeaLevel,
	}
	loreResult, err := lore.Run(view, cfg.loreParams(), loreRNG)
	if err != nil {
		if errors.Is(err, lore.ErrNoLand) {
			return nil, nil, NewExhaustedRetries("lore wanderer placement", cfg.loreParams().NumWanderers)
		}
		return nil, nil, fmt.Errorf("lore: %w", err)
	}

	return data, loreResult, nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// checkFinite guards against a numeric stage emitting NaN or Inf from a
// pathological parameter combination; such a field cannot safely feed the
// next stage.
func checkFinite(stage string, field *geo.Field[float64]) error {
	bad := 0
	field.ForEach(func(x, y int, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad++
		}
	})
	if bad > 0 {
		return NewDegenerateField(stage, fmt.Sprintf("%d non-finite tiles", bad))
	}
	return nil
}

func waterMaskFromIDs(ids *geo.Field[int]) *geo.Field[bool] {
	mask := geo.NewField[bool](ids.Width, ids.Height)
	ids.ForEach(func(x, y int, v int) {
		mask.Set(x, y, v != hydrology.NoWaterBody)
	})
	return mask
}
