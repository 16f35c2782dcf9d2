package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/worldgen/pkg/lore"
	"github.com/dshills/worldgen/pkg/world"
)

// Snapshot is the JSON-serializable projection of a generation run: the
// world data's fields plus the lore result, flattened into plain slices
// so geo.Field's internal layout stays an implementation detail.
type Snapshot struct {
	Config      world.Config       `json:"config"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Elevation   [][]float64        `json:"elevation"`
	Temperature [][]float64        `json:"temperature"`
	Moisture    [][]float64        `json:"moisture"`
	Biomes      [][]string         `json:"biomes"`
	Rivers      []RiverSegmentJSON `json:"rivers"`
	WaterBodies []WaterBodyJSON    `json:"waterBodies"`
	Landmarks   []lore.Landmark    `json:"landmarks"`
	StorySeeds  []lore.StorySeed   `json:"storySeeds"`
}

// RiverSegmentJSON is the flattened form of a hydrology.Segment.
type RiverSegmentJSON struct {
	FromX int    `json:"fromX"`
	FromY int    `json:"fromY"`
	ToX   int    `json:"toX"`
	ToY   int    `json:"toY"`
	Class string `json:"class"`
}

// WaterBodyJSON is the flattened form of a hydrology.WaterBody.
type WaterBodyJSON struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Area      int     `json:"area"`
	CentroidX int     `json:"centroidX"`
	CentroidY int     `json:"centroidY"`
	AvgDepth  float64 `json:"avgDepth"`
}

// BuildSnapshot flattens a generation run's world data and lore result
// into a Snapshot ready for JSON export.
func BuildSnapshot(data *world.Data, loreResult *lore.Result) *Snapshot {
	width, height := data.Elevation.Width, data.Elevation.Height
	snap := &Snapshot{
		Config: data.Config,
		Width:  width,
		Height: height,
	}

	snap.Elevation = toGrid(data.Elevation.Width, data.Elevation.Height, func(x, y int) float64 { return data.Elevation.At(x, y) })
	snap.Temperature = toGrid(width, height, func(x, y int) float64 { return data.Temperature.At(x, y) })
	snap.Moisture = toGrid(width, height, func(x, y int) float64 { return data.Moisture.At(x, y) })

	snap.Biomes = make([][]string, height)
	for y := 0; y < height; y++ {
		row := make([]string, width)
		for x := 0; x < width; x++ {
			row[x] = data.Biomes.At(x, y).String()
		}
		snap.Biomes[y] = row
	}

	if data.Rivers != nil {
		for _, seg := range data.Rivers.Segments {
			snap.Rivers = append(snap.Rivers, RiverSegmentJSON{
				FromX: seg.From.X, FromY: seg.From.Y,
				ToX: seg.To.X, ToY: seg.To.Y,
				Class: seg.Class.String(),
			})
		}
	}
	for _, wb := range data.WaterBodies {
		snap.WaterBodies = append(snap.WaterBodies, WaterBodyJSON{
			ID: wb.ID.String(), Kind: wb.Kind.String(), Area: wb.Area,
			CentroidX: wb.Centroid.X, CentroidY: wb.Centroid.Y, AvgDepth: wb.AvgDepth,
		})
	}

	if loreResult != nil {
		snap.Landmarks = loreResult.Landmarks
		snap.StorySeeds = loreResult.StorySeeds
	}
	return snap
}

func toGrid(width, height int, at func(x, y int) float64) [][]float64 {
	grid := make([][]float64, height)
	for y := 0; y < height; y++ {
		row := make([]float64, width)
		for x := 0; x < width; x++ {
			row[x] = at(x, y)
		}
		grid[y] = row
	}
	return grid
}

// ExportJSON serializes a generation run's snapshot to JSON with
// indentation.
func ExportJSON(data *world.Data, loreResult *lore.Result) ([]byte, error) {
	return json.MarshalIndent(BuildSnapshot(data, loreResult), "", "  ")
}

// ExportJSONCompact serializes a generation run's snapshot to JSON
// without indentation.
func ExportJSONCompact(data *world.Data, loreResult *lore.Result) ([]byte, error) {
	return json.Marshal(BuildSnapshot(data, loreResult))
}

// SaveJSONToFile exports a generation run to an indented JSON file.
func SaveJSONToFile(data *world.Data, loreResult *lore.Result, filepath string) error {
	payload, err := ExportJSON(data, loreResult)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, payload, 0644)
}

// SaveJSONCompactToFile exports a generation run to a compact JSON file.
func SaveJSONCompactToFile(data *world.Data, loreResult *lore.Result, filepath string) error {
	payload, err := ExportJSONCompact(data, loreResult)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, payload, 0644)
}
