package roomplanner

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Subtract returns v - o.
func (v Vector3) Subtract(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross calculates the cross product of two vectors.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector. A zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vector3) DistanceTo(o Vector3) float64 {
	return v.Subtract(o).Length()
}

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func FromVec3(m mgl64.Vec3) Vector3 {
	return Vector3{m[0], m[1], m[2]}
}

// TransformPoint applies the full matrix, including translation and the
// perspective divide when w != 1.
func TransformPoint(m mgl64.Mat4, v Vector3) Vector3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	if r[3] != 0 && r[3] != 1 {
		return Vector3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vector3{r[0], r[1], r[2]}
}

// TransformDirection rotates v by the upper 3x3 of m and ignores translation,
// making it suitable for ray directions and normals of rigid transforms.
func TransformDirection(m mgl64.Mat4, v Vector3) Vector3 {
	r := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return Vector3{r[0], r[1], r[2]}
}
