// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an integer coordinate pair in logical canvas units.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Box is an axis-aligned bounding box described by two corners.
// Unlike a width/height rectangle both extents are inclusive, so a box of
// size 10 at x=0 covers [0, 10].
type Box struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewBox creates a box with its top-left corner at (x, y) and the given size.
func NewBox(x, y, size int) Box {
	return Box{X1: x, Y1: y, X2: x + size, Y2: y + size}
}

// Contains returns true if p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return b.X1 <= p.X && p.X <= b.X2 && b.Y1 <= p.Y && p.Y <= b.Y2
}

// Min returns the top-left corner.
func (b Box) Min() Point {
	return Point{X: b.X1, Y: b.Y1}
}

// Max returns the bottom-right corner.
func (b Box) Max() Point {
	return Point{X: b.X2, Y: b.Y2}
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Segment is a short line between two endpoints.
type Segment struct {
	From, To Point
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
