// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position on the play field, in field units (multiples of the
// cell size).
type Point struct {
	X, Y int
}

// Add returns p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vec is a movement delta. The zero value means "not moving".
type Vec struct {
	X, Y int
}

// IsZero reports whether the vector has no movement.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Field is a square-celled play area. Positions are multiples of Cell and lie
// in [0, Size) on both axes.
type Field struct {
	Cell int // Cell edge length
	Size int // Field edge length (a multiple of Cell)
}

// Cols returns the number of cells along one edge.
func (f Field) Cols() int {
	if f.Cell <= 0 {
		return 0
	}
	return f.Size / f.Cell
}

// Contains returns true if p lies inside the field.
func (f Field) Contains(p Point) bool {
	return p.X >= 0 && p.X < f.Size && p.Y >= 0 && p.Y < f.Size
}

// Wrap maps an out-of-bounds coordinate to the opposite edge.
// Only a single-cell overshoot is expected.
func (f Field) Wrap(p Point) Point {
	return Point{X: f.wrapCoord(p.X), Y: f.wrapCoord(p.Y)}
}

func (f Field) wrapCoord(c int) int {
	if c < 0 {
		return f.Size - f.Cell
	}
	if c >= f.Size {
		return 0
	}
	return c
}

// CellAt converts a cell index pair into a field position.
func (f Field) CellAt(col, row int) Point {
	return Point{X: col * f.Cell, Y: row * f.Cell}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
