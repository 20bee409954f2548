package gamemath

import (
	"math"
	"math/rand"

	dmath "github.com/yohamta/donburi/features/math"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RandRange returns a uniform value in [lo, hi).
func RandRange(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Jitter returns a uniform value in [-spread/2, spread/2).
func Jitter(r *rand.Rand, spread float64) float64 {
	return (r.Float64() - 0.5) * spread
}

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// WithinX reports whether a and b are closer than dist along the x axis.
func WithinX(a, b, dist float64) bool {
	return math.Abs(a-b) < dist
}

// EaseToward moves v a fixed fraction of the way to target.
func EaseToward(v, target, factor float64) float64 {
	return v + (target-v)*factor
}

// PointInBox reports whether p lies strictly inside the w*h box centred on c.
func PointInBox(p, c dmath.Vec2, w, h float64) bool {
	left, top := c.X-w/2, c.Y-h/2
	return p.X > left && p.X < left+w && p.Y > top && p.Y < top+h
}
