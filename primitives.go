package roomplanner

import "math"

const defaultRadialSegments = 16

// NewBoxMesh builds a box of the given size centred on the origin with
// outward facing normals. Inward flips the winding so the faces are visible
// from inside the box.
func NewBoxMesh(width, height, depth float64, inward bool) *Mesh {
	a, b, c := width/2, height/2, depth/2
	quads := [][4]Vector3{
		{{a, -b, c}, {a, -b, -c}, {a, b, -c}, {a, b, c}},     // +X
		{{-a, -b, -c}, {-a, -b, c}, {-a, b, c}, {-a, b, -c}}, // -X
		{{-a, b, c}, {a, b, c}, {a, b, -c}, {-a, b, -c}},     // +Y
		{{-a, -b, -c}, {a, -b, -c}, {a, -b, c}, {-a, -b, c}}, // -Y
		{{-a, -b, c}, {a, -b, c}, {a, b, c}, {-a, b, c}},     // +Z
		{{a, -b, -c}, {-a, -b, -c}, {-a, b, -c}, {a, b, -c}}, // -Z
	}
	m := NewMesh()
	for _, q := range quads {
		if inward {
			m.AddFace(q[3], q[2], q[1], q[0])
		} else {
			m.AddFace(q[0], q[1], q[2], q[3])
		}
	}
	return m
}

func ring(radius, y float64, segments int) []Vector3 {
	pts := make([]Vector3, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vector3{radius * math.Sin(theta), y, radius * math.Cos(theta)}
	}
	return pts
}

func reversed(pts []Vector3) []Vector3 {
	out := make([]Vector3, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// NewCylinderMesh builds a frustum around the Y axis centred on the origin.
// An open ended cylinder has no caps.
func NewCylinderMesh(radiusTop, radiusBottom, height float64, segments int, openEnded bool) *Mesh {
	if segments < 3 {
		segments = 3
	}
	top := ring(radiusTop, height/2, segments)
	bottom := ring(radiusBottom, -height/2, segments)

	m := NewMesh()
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		m.AddFace(bottom[i], bottom[j], top[j], top[i])
	}
	if !openEnded {
		if radiusTop > 0 {
			m.AddFace(top...)
		}
		if radiusBottom > 0 {
			m.AddFace(reversed(bottom)...)
		}
	}
	return m
}

// NewDiscMesh builds a flat circle in the XZ plane facing +Y.
func NewDiscMesh(radius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := NewMesh()
	m.AddFace(ring(radius, 0, segments)...)
	return m
}

// NewGroundPlaneMesh builds a square in the XZ plane facing +Y.
func NewGroundPlaneMesh(size float64) *Mesh {
	h := size / 2
	m := NewMesh()
	m.AddFace(Vector3{-h, 0, h}, Vector3{h, 0, h}, Vector3{h, 0, -h}, Vector3{-h, 0, -h})
	return m
}
