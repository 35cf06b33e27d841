package roomplanner

import "math"

// Vector2 is a point or delta in screen or normalized device space.
type Vector2 struct {
	X float64
	Y float64
}

func (v Vector2) Subtract(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the euclidean distance between two points.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return v.Subtract(o).Length()
}
