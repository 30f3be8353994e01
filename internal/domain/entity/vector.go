package entity

import "math"

// Vec2 is a 2D vector in world units. World Y points up.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a position with a draw-order Z. Physics ignores Z.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp interpolates from v toward o by t (0..1)
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Clamp clamps both components to [lo, hi]
func (v Vec2) Clamp(lo, hi float64) Vec2 {
	return Vec2{clamp(v.X, lo, hi), clamp(v.Y, lo, hi)}
}

// Extend returns v as a Vec3 with the given Z
func (v Vec2) Extend(z float64) Vec3 { return Vec3{v.X, v.Y, z} }

// Truncate drops Z
func (v Vec3) Truncate() Vec2 { return Vec2{v.X, v.Y} }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
