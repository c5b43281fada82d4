// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Position is a point in play-area coordinates.
// The origin is the centre of the arena, X grows east and Y grows north.
type Position struct {
	X, Y int
}

// Pos is shorthand for building a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Heading is a compass direction in degrees, counter-clockwise from east.
// Valid headings are multiples of 45 in [0, 360).
type Heading int

// Cardinal headings.
const (
	HeadingEast  Heading = 0
	HeadingNorth Heading = 90
	HeadingWest  Heading = 180
	HeadingSouth Heading = 270
)

// Valid reports whether h is one of the eight compass headings.
func (h Heading) Valid() bool {
	return h >= 0 && h < 360 && h%45 == 0
}

// Forward returns the position one step of length step along h.
// Diagonal headings move one step on both axes so positions stay on the grid.
// Panics on an invalid heading.
func Forward(p Position, h Heading, step int) Position {
	switch h {
	case 0:
		return p.Add(step, 0)
	case 45:
		return p.Add(step, step)
	case 90:
		return p.Add(0, step)
	case 135:
		return p.Add(-step, step)
	case 180:
		return p.Add(-step, 0)
	case 225:
		return p.Add(-step, -step)
	case 270:
		return p.Add(0, -step)
	case 315:
		return p.Add(step, -step)
	}
	panic(fmt.Sprintf("core: invalid heading %d", h))
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Position) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Bearing returns the angle in degrees in [0, 360) from `from` towards `to`.
// Coincident points have bearing 0.
func Bearing(from, to Position) float64 {
	if from == to {
		return 0
	}
	deg := math.Atan2(float64(to.Y-from.Y), float64(to.X-from.X)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// QuantizeBearing snaps a bearing onto a compass heading.
// The bearing is bucketed into 45° slices; an odd bucket index is rounded up
// to the next even one, so pursuit always follows an axis of the grid.
// Panics if deg is outside [0, 360).
func QuantizeBearing(deg float64) Heading {
	if math.IsNaN(deg) || deg < 0 || deg >= 360 {
		panic(fmt.Sprintf("core: bearing %v out of range", deg))
	}
	bucket := int(math.Floor(deg / 45))
	if bucket%2 == 1 {
		bucket++
	}
	return Heading((bucket * 45) % 360)
}

// Bounds is the play area [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type Bounds struct {
	HalfWidth  int
	HalfHeight int
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Position) bool {
	return Abs(p.X) <= b.HalfWidth && Abs(p.Y) <= b.HalfHeight
}

// GridCols returns how many grid cells of size cell fit horizontally.
func (b Bounds) GridCols(cell int) int {
	return 2*(b.HalfWidth/cell) + 1
}

// GridRows returns how many grid cells of size cell fit vertically.
func (b Bounds) GridRows(cell int) int {
	return 2*(b.HalfHeight/cell) + 1
}

// RandomCell picks a uniformly random grid position inside the bounds.
func (b Bounds) RandomCell(rng *rand.Rand, cell int) Position {
	nx := b.HalfWidth / cell
	ny := b.HalfHeight / cell
	x := (rng.Intn(2*nx+1) - nx) * cell
	y := (rng.Intn(2*ny+1) - ny) * cell
	return Position{X: x, Y: y}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
