package tectonics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dshills/worldgen/pkg/geo"
	"github.com/dshills/worldgen/pkg/graph"
	"github.com/dshills/worldgen/pkg/rng"
)

// lloydIterations is the fixed small number of relaxation passes run
// after the initial seed placement; assignments stabilize well before
// true convergence and plate shapes stop changing visibly.
const lloydIterations = 4

// Tessellate partitions a width×height cylindrical map into n plates
// using Lloyd relaxation over uniform random seed points, classifies each
// plate as Continental or Oceanic according to style's continental
// fraction, and draws a motion vector per plate. A final
// connected-component sweep reassigns any fragment Lloyd relaxation left
// disconnected from its plate's main body.
func Tessellate(width, height, n int, style Style, r *rng.RNG) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tectonics: invalid dimensions %dx%d", width, height)
	}
	if n <= 0 {
		return nil, fmt.Errorf("tectonics: plate count must be positive, got %d", n)
	}
	if n > width*height {
		return nil, fmt.Errorf("tectonics: plate count %d exceeds map area %d", n, width*height)
	}

	tessellator, err := Get("uniform")
	if err != nil {
		return nil, err
	}

	seeds := tessellator.Seed(width, height, n, r)
	for iter := 0; iter < lloydIterations; iter++ {
		assignment := assignNearest(width, height, seeds)
		seeds = relax(width, height, seeds, assignment)
	}

	plateIDs := assignNearestField(width, height, seeds)
	cleanupDisconnectedFragments(plateIDs)

	plates := buildPlateRecords(plateIDs, seeds, style, r)

	return &Result{PlateIDs: plateIDs, Plates: plates}, nil
}

// cylDist2 returns squared cylindrical Euclidean distance between a tile
// center (x+0.5,y+0.5) and a floating seed point, wrapping the X axis.
func cylDist2(tileX, tileY int, seed Point2D, width int) float64 {
	dx := math.Abs(float64(tileX) + 0.5 - seed.X)
	if wrapped := float64(width) - dx; wrapped < dx {
		dx = wrapped
	}
	dy := float64(tileY) + 0.5 - seed.Y
	return dx*dx + dy*dy
}

func assignNearest(width, height int, seeds []Point2D) []int {
	assignment := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best, bestDist := 0, math.MaxFloat64
			for i, s := range seeds {
				d := cylDist2(x, y, s, width)
				if d < bestDist {
					bestDist, best = d, i
				}
			}
			assignment[y*width+x] = best
		}
	}
	return assignment
}

func assignNearestField(width, height int, seeds []Point2D) *geo.Field[PlateId] {
	field := geo.NewField[PlateId](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best, bestDist := 0, math.MaxFloat64
			for i, s := range seeds {
				d := cylDist2(x, y, s, width)
				if d < bestDist {
					bestDist, best = d, i
				}
			}
			field.Set(x, y, PlateId(best))
		}
	}
	return field
}

// relax moves each seed toward the centroid of its assigned region,
// respecting the cylindrical X wrap when averaging X coordinates near the
// seam (tiles are shifted into the half-open interval centered on the
// seed before averaging, then the result is wrapped back).
func relax(width, height int, seeds []Point2D, assignment []int) []Point2D {
	sumX := make([]float64, len(seeds))
	sumY := make([]float64, len(seeds))
	count := make([]int, len(seeds))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := assignment[y*width+x]
			tx := float64(x) + 0.5
			// shift tx to the representative nearest to seeds[i].X around the wrap seam
			if d := tx - seeds[i].X; d > float64(width)/2 {
				tx -= float64(width)
			} else if d < -float64(width)/2 {
				tx += float64(width)
			}
			sumX[i] += tx
			sumY[i] += float64(y) + 0.5
			count[i]++
		}
	}

	out := make([]Point2D, len(seeds))
	for i := range seeds {
		if count[i] == 0 {
			out[i] = seeds[i]
			continue
		}
		nx := sumX[i] / float64(count[i])
		ny := sumY[i] / float64(count[i])
		nx = math.Mod(nx, float64(width))
		if nx < 0 {
			nx += float64(width)
		}
		out[i] = Point2D{X: nx, Y: math.Max(0, math.Min(float64(height), ny))}
	}
	return out
}

// cleanupDisconnectedFragments reassigns the minority fragments of any
// plate occupying more than one connected region to the majority
// bordering plate.
func cleanupDisconnectedFragments(field *geo.Field[PlateId]) {
	g := graph.New()
	width, height := field.Width, field.Height

	key := func(x, y int) string { return strconv.Itoa(x) + "," + strconv.Itoa(y) }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.AddNode(key(x, y))
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pid := field.At(x, y)
			for _, nb := range field.Neighbors4(geo.Point{X: x, Y: y}) {
				if field.Get(nb) == pid {
					g.AddEdge(key(x, y), key(nb.X, nb.Y), true)
				}
			}
		}
	}

	components := g.ConnectedComponents()

	// Group components by plate id, find each plate's largest component.
	largestSize := make(map[PlateId]int)
	componentPlate := make([]PlateId, len(components))
	for ci, comp := range components {
		x, y := parseKey(comp[0])
		pid := field.At(x, y)
		componentPlate[ci] = pid
		if len(comp) > largestSize[pid] {
			largestSize[pid] = len(comp)
		}
	}

	for ci, comp := range components {
		pid := componentPlate[ci]
		if len(comp) == largestSize[pid] {
			largestSize[pid] = -1 // mark as consumed so equal-size ties don't both get kept
			continue
		}
		// reassign this minority fragment to the majority neighboring plate.
		neighborCounts := make(map[PlateId]int)
		for _, k := range comp {
			x, y := parseKey(k)
			for _, nb := range field.Neighbors4(geo.Point{X: x, Y: y}) {
				np := field.Get(nb)
				if np != pid {
					neighborCounts[np]++
				}
			}
		}
		target := pid
		best := -1
		for np, count := range neighborCounts {
			if count > best {
				best, target = count, np
			}
		}
		if target == pid {
			continue // isolated fragment with no foreign neighbor (whole map is one plate)
		}
		for _, k := range comp {
			x, y := parseKey(k)
			field.Set(x, y, target)
		}
	}
}

func parseKey(k string) (int, int) {
	for i := 0; i < len(k); i++ {
		if k[i] == ',' {
			x, _ := strconv.Atoi(k[:i])
			y, _ := strconv.Atoi(k[i+1:])
			return x, y
		}
	}
	return 0, 0
}

// buildPlateRecords classifies plates Continental/Oceanic by style's
// continental fraction and draws a random motion vector per plate. Most
// styles scatter the continental plates at random; Pangaea instead marks
// the plates nearest a random anchor, so its land congregates into one
// supercontinent rather than separate masses.
func buildPlateRecords(field *geo.Field[PlateId], seeds []Point2D, style Style, r *rng.RNG) []Plate {
	params := ParamsFor(style)
	n := len(seeds)
	width := field.Width

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if style == Pangaea {
		anchor := seeds[r.Intn(n)]
		sortByDistanceTo(order, seeds, anchor, width)
	} else {
		r.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	continentalCount := int(math.Round(float64(n) * params.ContinentalFraction))
	isContinental := make([]bool, n)
	for i := 0; i < continentalCount && i < n; i++ {
		isContinental[order[i]] = true
	}

	plates := make([]Plate, n)
	for i := 0; i < n; i++ {
		plateType := Oceanic
		if isContinental[i] {
			plateType = Continental
		}
		angle := r.Float64Range(0, 2*math.Pi)
		magnitude := r.Float64Range(params.MotionMagnitudeMin, params.MotionMagnitudeMax)

		plates[i] = Plate{
			ID:       PlateId(i),
			Type:     plateType,
			Centroid: geo.Point{X: int(math.Round(seeds[i].X)), Y: int(math.Round(seeds[i].Y))},
			Motion:   Vector{VX: math.Cos(angle) * magnitude, VY: math.Sin(angle) * magnitude},
			Age:      r.Float64Range(0, 500),
			Color:    plateColor(plateType, i),
		}
	}
	return plates
}

// sortByDistanceTo orders plate indices by their seed's cylindrical
// distance to anchor, nearest first, with index as the deterministic
// tiebreaker.
func sortByDistanceTo(order []int, seeds []Point2D, anchor Point2D, width int) {
	dist := func(i int) float64 {
		dx := math.Abs(seeds[i].X - anchor.X)
		if wrapped := float64(width) - dx; wrapped < dx {
			dx = wrapped
		}
		dy := seeds[i].Y - anchor.Y
		return dx*dx + dy*dy
	}
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 {
			a, b := order[j-1], order[j]
			da, db := dist(a), dist(b)
			if da < db || (da == db && a < b) {
				break
			}
			order[j-1], order[j] = b, a
			j--
		}
	}
}

func plateColor(t PlateType, index int) [3]uint8 {
	// Deterministic color distinctness via index hashing, not random draw,
	// so two runs with the same plate ids render consistently regardless
	// of RNG path length taken to reach this point.
	h := uint32(index)*2654435761 + 0x9E3779B9
	if t == Continental {
		return [3]uint8{byte(120 + h%100), byte(140 + (h>>8)%90), byte(60 + (h>>16)%60)}
	}
	return [3]uint8{byte(20 + h%40), byte(60 + (h>>8)%60), byte(120 + (h>>16)%100)}
}
