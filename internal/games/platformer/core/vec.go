// Package core contains the platformer simulation: the static level grid,
// the moving actors and the world state that advances them one step at a time.
// It has no terminal or timing dependencies, so every transition is testable
// with plain values.
package core

import "fmt"

// Vec is a 2D point or displacement in tile units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of two vectors.
func (v Vec) Plus(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times returns the vector scaled by f.
func (v Vec) Times(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// String returns a debug representation like "(1.00, 2.50)".
func (v Vec) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
