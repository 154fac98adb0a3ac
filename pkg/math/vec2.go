// Package math provides small vector helpers for the terrain renderer.
package math

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Div returns v / s. Dividing rather than scaling by 1/s keeps the result
// identical to dividing each component.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Floor returns the component-wise floor.
func (v Vec2) Floor() Vec2 {
	return Vec2{math.Floor(v.X), math.Floor(v.Y)}
}

// Fract returns the component-wise fractional part, always in [0, 1).
func (v Vec2) Fract() Vec2 {
	return v.Sub(v.Floor())
}
