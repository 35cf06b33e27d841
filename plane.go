package roomplanner

import "math"

// Plane is Ax + By + Cz + D = 0 with a unit normal (A, B, C).
type Plane struct {
	A, B, C, D float64
}

// GroundPlane is the floor, y = 0.
var GroundPlane = Plane{A: 0, B: 1, C: 0, D: 0}

const parallelEpsilon = 1e-9

func NewPlaneFromPoint(point, normal Vector3) Plane {
	n := normal.Normalize()
	return Plane{A: n.X, B: n.Y, C: n.Z, D: -n.Dot(point)}
}

func (p Plane) Normal() Vector3 {
	return Vector3{p.A, p.B, p.C}
}

// PointOnPlane returns the signed distance of the point from the plane.
func (p Plane) PointOnPlane(v Vector3) float64 {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// IntersectRay returns where the ray meets the plane. A ray parallel to the
// plane, or one that only meets it behind its origin, has no intersection.
func (p Plane) IntersectRay(r Ray) (Vector3, bool) {
	denom := p.Normal().Dot(r.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return Vector3{}, false
	}
	t := -p.PointOnPlane(r.Origin) / denom
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return Vector3{}, false
	}
	return r.At(t), true
}
