// Package vec provides the 2D vector arithmetic used for ball positions
// and velocities. Vectors are immutable values; every operation returns a
// new vector.
package vec

import "math"

type Vec2 struct {
	X float64
	Y float64
}

func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Perp rotates v by +90 degrees (counterclockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Lerp interpolates between a and b; f=0 gives a, f=1 gives b.
func Lerp(a, b Vec2, f float64) Vec2 {
	return Vec2{
		X: a.X + f*(b.X-a.X),
		Y: a.Y + f*(b.Y-a.Y),
	}
}
