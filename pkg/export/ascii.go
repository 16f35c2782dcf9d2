package export

import (
	"bytes"
	"os"

	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/world"
)

// ExportASCII renders the biome grid as a character raster, one glyph per
// tile and one line per row, with landmarks overlaid as '@' and a legend
// of their names below the map. Cheap to eyeball in a terminal; the SVG
// exporter is the presentable one.
func ExportASCII(data *world.Data, loreResult *lore.Result) []byte {
	width, height := data.Biomes.Width, data.Biomes.Height

	grid := make([][]byte, height)
	for y := 0; y < height; y++ {
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			row[x] = data.Biomes.At(x, y).Glyph()
		}
		grid[y] = row
	}

	var buf bytes.Buffer
	if loreResult != nil {
		for _, lm := range loreResult.Landmarks {
			p := lm.Location.Position
			if p.Y >= 0 && p.Y < height && p.X >= 0 && p.X < width {
				grid[p.Y][p.X] = '@'
			}
		}
	}
	for y := 0; y < height; y++ {
		buf.Write(grid[y])
		buf.WriteByte('\n')
	}

	if loreResult != nil && len(loreResult.Landmarks) > 0 {
		buf.WriteByte('\n')
		for _, lm := range loreResult.Landmarks {
			buf.WriteString("@ ")
			buf.WriteString(lm.Name)
			buf.WriteString(" (")
			buf.WriteString(lm.Feature.Kind.String())
			buf.WriteString(")\n")
		}
	}
	return buf.Bytes()
}

// SaveASCIIToFile renders and saves the character raster to a file.
func SaveASCIIToFile(data *world.Data, loreResult *lore.Result, filepath string) error {
	return os.WriteFile(filepath, ExportASCII(data, loreResult), 0644)
}
