package physics

import (
	"fmt"
	"math"
)

// Vector2 is a 2D float vector.
type Vector2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(u Vector2) Vector2   { return Vector2{v.X + u.X, v.Y + u.Y} }
func (v Vector2) Sub(u Vector2) Vector2   { return Vector2{v.X - u.X, v.Y - u.Y} }
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Length() float64         { return math.Hypot(v.X, v.Y) }
func (v Vector2) IsZero() bool            { return v.X == 0 && v.Y == 0 }
func (v Vector2) Equal(u Vector2) bool    { return v.X == u.X && v.Y == u.Y }
func (v Vector2) String() string          { return fmt.Sprintf("{%.2f, %.2f}", v.X, v.Y) }

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	m := v.Length()
	if m == 0 {
		return Vector2{}
	}
	return Vector2{v.X / m, v.Y / m}
}
