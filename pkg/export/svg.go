package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/worldgen/pkg/biome"
	"github.com/dshills/worldgen/pkg/hydrology"
	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/world"
)

// SVGOptions configures terrain map visualization export.
type SVGOptions struct {
	TileSize      int    // Pixels per world tile (default: 4)
	ShowRivers    bool   // Draw river segments
	ShowLandmarks bool   // Draw landmark markers
	ShowLabels    bool   // Label landmarks by name
	ShowLegend    bool   // Show a biome color legend
	Title         string // Optional title for the visualization
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		TileSize:      4,
		ShowRivers:    true,
		ShowLandmarks: true,
		ShowLabels:    true,
		ShowLegend:    true,
		Title:         "Generated World",
	}
}

// ExportSVG renders a biome-tinted terrain map of a generated world,
// optionally overlaying rivers and lore landmarks.
func ExportSVG(data *world.Data, loreResult *lore.Result, opts SVGOptions) ([]byte, error) {
	if data == nil || data.Elevation == nil {
		return nil, fmt.Errorf("world data cannot be nil")
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 4
	}

	width, height := data.Elevation.Width, data.Elevation.Height
	canvasW := width * opts.TileSize
	headerH := 0
	if opts.Title != "" {
		headerH = 30
	}
	legendH := 0
	if opts.ShowLegend {
		legendH = 40
	}
	canvasH := height*opts.TileSize + headerH + legendH

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(canvasW, canvasH)
	canvas.Rect(0, 0, canvasW, canvasH, "fill:#0b1021")

	drawTerrain(canvas, data, opts, headerH)

	if opts.ShowRivers && data.Rivers != nil {
		drawRivers(canvas, data.Rivers, opts, headerH)
	}

	if opts.ShowLandmarks && loreResult != nil {
		drawLandmarks(canvas, loreResult.Landmarks, width, opts, headerH)
	}

	if opts.Title != "" {
		canvas.Text(10, 20, opts.Title, "font-size:16px;font-family:sans-serif;fill:#e2e8f0;font-weight:600")
	}

	if opts.ShowLegend {
		drawBiomeLegend(canvas, canvasH-legendH, canvasW)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders and saves a terrain map to a file.
func SaveSVGToFile(data *world.Data, loreResult *lore.Result, filepath string, opts SVGOptions) error {
	payload, err := ExportSVG(data, loreResult, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, payload, 0644)
}

// drawTerrain paints one rect per tile, tinted by biome.
func drawTerrain(canvas *svg.SVG, data *world.Data, opts SVGOptions, yOffset int) {
	ts := opts.TileSize
	data.Biomes.ForEach(func(x, y int, b biome.Biome) {
		color := biomeColor(b)
		canvas.Rect(x*ts, yOffset+y*ts, ts, ts, fmt.Sprintf("fill:%s", color))
	})
}

// drawRivers strokes each river segment, thicker for higher river class.
func drawRivers(canvas *svg.SVG, network *hydrology.Network, opts SVGOptions, yOffset int) {
	ts := opts.TileSize
	for _, seg := range network.Segments {
		if seg.Class == hydrology.NotRiver {
			continue
		}
		width := 1
		switch seg.Class {
		case hydrology.RiverClassMajor:
			width = 2
		case hydrology.GreatRiver:
			width = 3
		}
		x1, y1 := seg.From.X*ts+ts/2, yOffset+seg.From.Y*ts+ts/2
		x2, y2 := seg.To.X*ts+ts/2, yOffset+seg.To.Y*ts+ts/2
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:#2b6cb0;stroke-width:%d;opacity:0.85", width))
	}
}

// drawLandmarks marks each registered landmark and optionally labels it.
func drawLandmarks(canvas *svg.SVG, landmarks []lore.Landmark, worldWidth int, opts SVGOptions, yOffset int) {
	ts := opts.TileSize
	for _, lm := range landmarks {
		px := lm.Location.Position.X * ts
		py := yOffset + lm.Location.Position.Y*ts
		canvas.Circle(px, py, 4, "fill:#ecc94b;stroke:#1a202c;stroke-width:1")
		if opts.ShowLabels {
			canvas.Text(px+6, py+3, lm.Name, "font-size:9px;font-family:monospace;fill:#f7fafc")
		}
	}
}

// drawBiomeLegend renders a compact swatch row for the most common bands.
func drawBiomeLegend(canvas *svg.SVG, y, canvasW int) {
	entries := []struct {
		label string
		b     biome.Biome
	}{
		{"Ocean", biome.Ocean}, {"Forest", biome.TemperateForest},
		{"Desert", biome.Desert}, {"Tundra", biome.Tundra},
		{"Alpine", biome.Alpine}, {"Rift", biome.RiftValley},
	}
	x := 10
	for _, e := range entries {
		canvas.Rect(x, y+10, 14, 14, fmt.Sprintf("fill:%s", biomeColor(e.b)))
		canvas.Text(x+18, y+21, e.label, "font-size:10px;font-family:monospace;fill:#e2e8f0")
		x += 100
		if x > canvasW-100 {
			break
		}
	}
}

// biomeColor maps a biome to a representative fill color.
func biomeColor(b biome.Biome) string {
	switch b {
	case biome.Ocean, biome.River, biome.Lake:
		return "#2b6cb0"
	case biome.Coastal:
		return "#4299e1"
	case biome.CoralReef:
		return "#38b2ac"
	case biome.KelpForest:
		return "#2c7a7b"
	case biome.IceShelf:
		return "#bee3f8"
	case biome.DeepOcean:
		return "#1a365d"
	case biome.OceanicTrench:
		return "#171f3d"
	case biome.Wetland, biome.Mangrove, biome.Mangle, biome.WhisperingFen:
		return "#285e61"
	case biome.Tundra, biome.Permafrost:
		return "#cbd5e0"
	case biome.Taiga, biome.BorealForest:
		return "#4a5568"
	case biome.Glacier, biome.Glacial, biome.HollowEarth, biome.Cenote:
		return "#e2e8f0"
	case biome.TemperateGrassland, biome.Shrubland, biome.Heath:
		return "#9ae6b4"
	case biome.TemperateForest, biome.DeciduousForest, biome.AncientGrove, biome.MushroomForest:
		return "#2f855a"
	case biome.Desert, biome.SaltFlats, biome.Badlands:
		return "#d69e2e"
	case biome.Oasis:
		return "#68d391"
	case biome.Savanna:
		return "#b7791f"
	case biome.TropicalForest, biome.TropicalRainforest, biome.Jungle:
		return "#22543d"
	case biome.Foothills, biome.CaveEntrance, biome.Sinkhole:
		return "#718096"
	case biome.Alpine:
		return "#a0aec0"
	case biome.Peak, biome.TitanBones, biome.FloatingStones, biome.CrystalFields:
		return "#f7fafc"
	case biome.VolcanicWasteland, biome.Obsidian:
		return "#742a2a"
	case biome.Geothermal:
		return "#dd6b20"
	case biome.RiftValley, biome.VoidScar, biome.VoidMaw:
		return "#44337a"
	default:
		return "#1a202c"
	}
}
