// Package geo provides the cylindrical grid abstraction shared by every
// stage of the world-generation pipeline: plate ids, stress, elevation,
// temperature, moisture, and biome are all Field[T] values over the same
// W×H equirectangular projection.
package geo

import "fmt"

// Point is an integer grid coordinate. X is taken modulo Width by every
// Field method; Y is never wrapped.
type Point struct {
	X, Y int
}

// Add returns p+q without wrapping; callers that need wrapped coordinates
// should pass the result through Field.Wrap.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ManhattanDistance returns |dx|+|dy| between p and q under a width-W wrap
// on the X axis (the shorter of the direct and wrapped-around distance).
func ManhattanDistance(p, q Point, width int) int {
	dx := absInt(p.X - q.X)
	if width > 0 {
		wrapped := width - dx
		if wrapped < dx {
			dx = wrapped
		}
	}
	dy := absInt(p.Y - q.Y)
	return dx + dy
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Field is a cylindrical W×H grid of T: the X axis wraps modulo Width
// (equirectangular east-west continuity), the Y axis clamps to
// [0,Height). Backed by one flat slice in row-major order.
type Field[T any] struct {
	Width, Height int
	data          []T
}

// NewField allocates a Width×Height field with every cell set to the zero
// value of T.
func NewField[T any](width, height int) *Field[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("geo: invalid field dimensions %dx%d", width, height))
	}
	return &Field[T]{Width: width, Height: height, data: make([]T, width*height)}
}

// NewFieldFilled allocates a field with every cell initialized to fill.
func NewFieldFilled[T any](width, height int, fill T) *Field[T] {
	f := NewField[T](width, height)
	for i := range f.data {
		f.data[i] = fill
	}
	return f
}

// wrapX normalizes x into [0, Width).
func (f *Field[T]) wrapX(x int) int {
	w := f.Width
	x %= w
	if x < 0 {
		x += w
	}
	return x
}

// clampY clamps y into [0, Height).
func (f *Field[T]) clampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= f.Height {
		return f.Height - 1
	}
	return y
}

// Wrap normalizes p's X coordinate modulo Width and clamps Y into range.
func (f *Field[T]) Wrap(p Point) Point {
	return Point{X: f.wrapX(p.X), Y: f.clampY(p.Y)}
}

func (f *Field[T]) index(x, y int) int {
	return f.clampY(y)*f.Width + f.wrapX(x)
}

// At returns the value at (x, y), wrapping x and clamping y.
func (f *Field[T]) At(x, y int) T {
	return f.data[f.index(x, y)]
}

// Get is a Point-based convenience wrapper around At.
func (f *Field[T]) Get(p Point) T {
	return f.At(p.X, p.Y)
}

// Set writes v at (x, y), wrapping x and clamping y.
func (f *Field[T]) Set(x, y int, v T) {
	f.data[f.index(x, y)] = v
}

// Put is a Point-based convenience wrapper around Set.
func (f *Field[T]) Put(p Point, v T) {
	f.Set(p.X, p.Y, v)
}

// InBounds reports whether y lies in [0,Height); X is always in bounds
// because it wraps.
func (f *Field[T]) InBounds(x, y int) bool {
	return y >= 0 && y < f.Height
}

// Fill overwrites every cell with v.
func (f *Field[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// ForEach calls fn for every cell in row-major order with its coordinates.
func (f *Field[T]) ForEach(fn func(x, y int, v T)) {
	for y := 0; y < f.Height; y++ {
		row := y * f.Width
		for x := 0; x < f.Width; x++ {
			fn(x, y, f.data[row+x])
		}
	}
}

// Map applies fn to every cell in place.
func (f *Field[T]) Map(fn func(x, y int, v T) T) {
	for y := 0; y < f.Height; y++ {
		row := y * f.Width
		for x := 0; x < f.Width; x++ {
			f.data[row+x] = fn(x, y, f.data[row+x])
		}
	}
}

// Clone returns a deep copy of the field.
func (f *Field[T]) Clone() *Field[T] {
	out := &Field[T]{Width: f.Width, Height: f.Height, data: make([]T, len(f.data))}
	copy(out.data, f.data)
	return out
}

// Neighbors4 returns the four orthogonal neighbors of p, wrapped/clamped.
// At the top or bottom row, the off-grid neighbor is omitted (Y does not
// wrap) rather than duplicated.
func (f *Field[T]) Neighbors4(p Point) []Point {
	cand := []Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
	}
	out := make([]Point, 0, 4)
	for _, c := range cand {
		if c.Y < 0 || c.Y >= f.Height {
			continue
		}
		out = append(out, f.Wrap(c))
	}
	return out
}

// Neighbors8 returns the eight-connected neighborhood of p, wrapped/clamped,
// in a fixed deterministic order (N, NE, E, SE, S, SW, W, NW), omitting
// rows that fall off the top/bottom edge.
func (f *Field[T]) Neighbors8(p Point) []Point {
	offsets := [8]Point{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
	out := make([]Point, 0, 8)
	for _, o := range offsets {
		c := p.Add(o)
		if c.Y < 0 || c.Y >= f.Height {
			continue
		}
		out = append(out, f.Wrap(c))
	}
	return out
}
