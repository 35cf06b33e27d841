package roomplanner

import (
	"image"
	"math"

	"github.com/sirupsen/logrus"
)

type Ray struct {
	Origin    Vector3
	Direction Vector3
}

func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Hit is the nearest part struck by a ray.
type Hit struct {
	Part     *Part
	Instance *Instance
	Distance float64
	Point    Vector3
}

// Picker maps pointer coordinates to rays and resolves them against the
// ground plane and the placed furniture. It never mutates the scene.
type Picker struct {
	camera *Camera
	scene  *Scene
	bounds image.Rectangle
	log    *logrus.Entry
}

func NewPicker(camera *Camera, scene *Scene) *Picker {
	return &Picker{
		camera: camera,
		scene:  scene,
		log:    Log.WithField("component", "picking"),
	}
}

// SetBounds sets the surface rectangle pointer coordinates are relative to.
func (p *Picker) SetBounds(bounds image.Rectangle) {
	p.bounds = bounds
}

// NormalizedPointer maps client coordinates to [-1, 1] on both axes with Y
// pointing up. An empty surface has no mapping.
func (p *Picker) NormalizedPointer(x, y float64) (Vector2, bool) {
	w, h := float64(p.bounds.Dx()), float64(p.bounds.Dy())
	if w <= 0 || h <= 0 {
		return Vector2{}, false
	}
	return Vector2{
		X: (x-float64(p.bounds.Min.X))/w*2 - 1,
		Y: -(y-float64(p.bounds.Min.Y))/h*2 + 1,
	}, true
}

// RayFromPointer unprojects the pointer through the camera into a world ray
// starting at the eye.
func (p *Picker) RayFromPointer(x, y float64) (Ray, bool) {
	ndc, ok := p.NormalizedPointer(x, y)
	if !ok {
		return Ray{}, false
	}
	viewProj := p.camera.Projection().Mul4(p.camera.View())
	if viewProj.Det() == 0 {
		return Ray{}, false
	}
	inv := viewProj.Inv()
	far := TransformPoint(inv, Vector3{ndc.X, ndc.Y, 1})
	eye := p.camera.Eye()
	dir := far.Subtract(eye).Normalize()
	if dir.Length() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: eye, Direction: dir}, true
}

// GroundPoint intersects the ray with the floor plane.
func (p *Picker) GroundPoint(r Ray) (Vector3, bool) {
	return GroundPlane.IntersectRay(r)
}

// GroundAt is GroundPoint for a pointer position.
func (p *Picker) GroundAt(x, y float64) (Vector3, bool) {
	r, ok := p.RayFromPointer(x, y)
	if !ok {
		return Vector3{}, false
	}
	return p.GroundPoint(r)
}

// Intersect returns the nearest furniture part hit by the ray.
func (p *Picker) Intersect(r Ray) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, inst := range p.scene.Instances() {
		if inst.Composite == nil {
			continue
		}
		world := inst.World()
		inv := world.Inv()
		local := Ray{
			Origin:    TransformPoint(inv, r.Origin),
			Direction: TransformDirection(inv, r.Direction),
		}
		for _, part := range inst.Composite.Parts {
			t, ok := intersectMesh(local, part.Mesh)
			if ok && t < best.Distance {
				best = Hit{Part: part, Distance: t}
				found = true
			}
		}
	}
	if !found {
		return Hit{}, false
	}
	best.Point = r.At(best.Distance)
	best.Instance = p.scene.FindInstanceOwning(best.Part.ID)
	return best, true
}

// PickInstance resolves the ray to the owning instance of the nearest part.
func (p *Picker) PickInstance(r Ray) *Instance {
	hit, ok := p.Intersect(r)
	if !ok {
		return nil
	}
	p.log.WithFields(logrus.Fields{
		"part":     hit.Part.Name,
		"distance": hit.Distance,
	}).Debug("pick hit")
	return hit.Instance
}

// PickAt is PickInstance for a pointer position.
func (p *Picker) PickAt(x, y float64) *Instance {
	r, ok := p.RayFromPointer(x, y)
	if !ok {
		return nil
	}
	return p.PickInstance(r)
}

func intersectMesh(r Ray, m *Mesh) (float64, bool) {
	nearest := math.Inf(1)
	found := false
	for _, face := range m.Faces {
		p0 := m.Points[face.Indices[0]]
		for i := 1; i < len(face.Indices)-1; i++ {
			p1 := m.Points[face.Indices[i]]
			p2 := m.Points[face.Indices[i+1]]
			if t, ok := intersectTriangle(r, p0, p1, p2); ok && t < nearest {
				nearest = t
				found = true
			}
		}
	}
	return nearest, found
}

const triangleEpsilon = 1e-12

// intersectTriangle is the Möller–Trumbore test, accepting hits from both
// sides of the triangle.
func intersectTriangle(r Ray, a, b, c Vector3) (float64, bool) {
	edge1 := b.Subtract(a)
	edge2 := c.Subtract(a)
	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < triangleEpsilon {
		return 0, false
	}
	invDet := 1 / det
	tvec := r.Origin.Subtract(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}
	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := edge2.Dot(qvec) * invDet
	if t <= 0 {
		return 0, false
	}
	return t, true
}
