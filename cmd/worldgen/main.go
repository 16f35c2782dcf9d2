// Command worldgen generates a deterministic procedural world from a
// seed and writes it out in one or more export formats.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/worldgen/pkg/export"
	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/validation"
	"github.com/dshills/worldgen/pkg/world"
)

const version = "1.0.0"

var (
	configPath    = flag.String("config", "", "Path to YAML configuration file (generation flags set on the command line override its values)")
	outputDir     = flag.String("output", ".", "Output directory for generated files")
	format        = flag.String("format", "json", "Export format: json, tmj, svg, ascii, or all")
	seedFlag      = flag.Uint64("seed", 0, "Master seed (0 = auto-generate)")
	widthFlag     = flag.Int("width", 0, "World width in tiles (0 = use config/default)")
	heightFlag    = flag.Int("height", 0, "World height in tiles (0 = use config/default)")
	styleFlag     = flag.String("style", "", "Plate tessellation style (Earthlike, Continents, Archipelago, Pangaea, Inverted)")
	erosionFlag   = flag.String("erosion-preset", "", "Erosion intensity (None, Light, Normal, Heavy, Extreme)")
	climateFlag   = flag.String("climate-mode", "", "Climate latitude profile (Globe, Continental, Tropical, Polar)")
	rainfallFlag  = flag.String("rainfall", "", "Rainfall level (Arid, Normal, Wet)")
	lorePresetF   = flag.String("lore-preset", "", "Lore engine tuning (Default, Minimal, Detailed)")
	mythologyPack = flag.String("mythology-pack", "", "Path to a YAML mythology pack overriding built-in narrative word banks")
	validateFlag  = flag.Bool("validate", true, "Run the validation suite after generation")
	verbose       = flag.Bool("verbose", false, "Enable verbose output")
	versionF      = flag.Bool("version", false, "Print version and exit")
	help          = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("worldgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	validFormats := map[string]bool{"json": true, "tmj": true, "svg": true, "ascii": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, tmj, svg, ascii, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := loadOrBuildConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *verbose {
		log.Printf("Using seed: %d", cfg.Seed)
		log.Printf("Dimensions: %dx%d, style=%s, erosion=%s, climate=%s/%s, lore=%s",
			cfg.Width, cfg.Height, cfg.Style, cfg.ErosionPreset, cfg.ClimateMode, cfg.Rainfall, cfg.LorePreset)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	gen := world.NewGenerator()

	start := time.Now()
	if *verbose {
		log.Println("Generating world...")
	}
	data, loreResult, err := gen.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		log.Printf("Generation completed in %v", elapsed)
		printStats(data, loreResult)
	}

	if *validateFlag {
		report, err := validation.Validate(ctx, data, loreResult, gen, cfg)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if *verbose {
			fmt.Println(validation.Summary(report))
		}
		if !report.Passed {
			log.Printf("warning: generated world failed %d hard constraint(s)", len(report.Errors))
		}
	}

	baseName := fmt.Sprintf("world_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(data, loreResult, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJ(data, loreResult, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(data, loreResult, baseName); err != nil {
			return err
		}
	}
	if *format == "ascii" || *format == "all" {
		filename := filepath.Join(*outputDir, baseName+".txt")
		if *verbose {
			log.Printf("Exporting ASCII to %s", filename)
		}
		if err := export.SaveASCIIToFile(data, loreResult, filename); err != nil {
			return fmt.Errorf("failed to export ASCII: %w", err)
		}
	}

	fmt.Printf("Successfully generated world (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

// loadOrBuildConfig starts from the YAML config named by -config, or from
// world.DefaultConfig when none was given, and layers any explicitly set
// generation flags on top of either one.
func loadOrBuildConfig() (*world.Config, error) {
	var cfg world.Config
	if *configPath != "" {
		if *verbose {
			log.Printf("Loading configuration from %s", *configPath)
		}
		loaded, err := world.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	} else {
		cfg = world.DefaultConfig()
	}

	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *widthFlag > 0 {
		cfg.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Height = *heightFlag
	}
	if *styleFlag != "" {
		cfg.Style = *styleFlag
	}
	if *erosionFlag != "" {
		cfg.ErosionPreset = *erosionFlag
	}
	if *climateFlag != "" {
		cfg.ClimateMode = *climateFlag
	}
	if *rainfallFlag != "" {
		cfg.Rainfall = *rainfallFlag
	}
	if *lorePresetF != "" {
		cfg.LorePreset = *lorePresetF
	}
	if *mythologyPack != "" {
		cfg.MythologyPackPath = *mythologyPack
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return nil, world.NewInvalidConfiguration(err.Error())
	}
	return &cfg, nil
}

func exportJSON(data *world.Data, loreResult *lore.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		log.Printf("Exporting JSON to %s", filename)
	}
	if err := export.SaveJSONToFile(data, loreResult, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if *verbose {
		reportFileSize(filename)
	}
	return nil
}

func exportTMJ(data *world.Data, loreResult *lore.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		log.Printf("Exporting TMJ to %s", filename)
	}
	if err := export.SaveWorldToTMJFile(data, loreResult, filename, true); err != nil {
		return fmt.Errorf("failed to export TMJ: %w", err)
	}
	if *verbose {
		reportFileSize(filename)
	}
	return nil
}

func exportSVG(data *world.Data, loreResult *lore.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		log.Printf("Exporting SVG to %s", filename)
	}
	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("World (seed=%d)", data.Config.Seed)
	if err := export.SaveSVGToFile(data, loreResult, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		reportFileSize(filename)
	}
	return nil
}

func reportFileSize(filename string) {
	info, err := os.Stat(filename)
	if err != nil {
		return
	}
	log.Printf("  Wrote %d bytes", info.Size())
}

func printStats(data *world.Data, loreResult *lore.Result) {
	fmt.Println("\nWorld Statistics:")
	fmt.Printf("  Dimensions: %dx%d\n", data.Elevation.Width, data.Elevation.Height)
	fmt.Printf("  Plates: %d\n", len(data.Plates))
	fmt.Printf("  Water bodies: %d\n", len(data.WaterBodies))
	if data.Rivers != nil {
		fmt.Printf("  River segments: %d\n", len(data.Rivers.Segments))
	}
	if loreResult != nil {
		fmt.Printf("  Wanderers: %d\n", len(loreResult.Wanderers))
		fmt.Printf("  Landmarks: %d\n", len(loreResult.Landmarks))
		fmt.Printf("  Story seeds: %d\n", len(loreResult.StorySeeds))
	}
}

func printHelp() {
	fmt.Printf("worldgen version %s\n\n", version)
	fmt.Println("A command-line tool for generating deterministic procedural worlds.")
	fmt.Println("\nUsage:")
	fmt.Println("  worldgen [-config <config.yaml>] [options]")
	fmt.Println("\nFlags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file (generation flags set on the command line override its values)")
	fmt.Println("  -seed uint")
	fmt.Println("        Master seed (0 = auto-generate)")
	fmt.Println("  -width, -height int")
	fmt.Println("        World dimensions in tiles")
	fmt.Println("  -style string")
	fmt.Println("        Plate tessellation style (Earthlike, Continents, Archipelago, Pangaea, Inverted)")
	fmt.Println("  -erosion-preset string")
	fmt.Println("        Erosion intensity (None, Light, Normal, Heavy, Extreme)")
	fmt.Println("  -climate-mode string")
	fmt.Println("        Climate latitude profile (Globe, Continental, Tropical, Polar)")
	fmt.Println("  -rainfall string")
	fmt.Println("        Rainfall level (Arid, Normal, Wet)")
	fmt.Println("  -lore-preset string")
	fmt.Println("        Lore engine tuning (Default, Minimal, Detailed)")
	fmt.Println("  -mythology-pack string")
	fmt.Println("        Path to a YAML mythology pack overriding built-in narrative word banks")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, tmj, svg, ascii, or all (default: json)")
	fmt.Println("  -validate bool")
	fmt.Println("        Run the validation suite after generation (default: true)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  worldgen -seed 12345 -width 512 -height 256 -format all -output ./out")
	fmt.Println("  worldgen -config world.yaml -verbose")
}
