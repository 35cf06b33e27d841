package roomplanner

// MeshFace is a convex polygon referencing mesh points by index, wound
// counter-clockwise when seen from the side its normal points to.
type MeshFace struct {
	Indices []int
	Normal  Vector3
}

type Mesh struct {
	Points     []Vector3
	Faces      []MeshFace
	pointIndex map[Vector3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     make([]Vector3, 0, 16),
		pointIndex: make(map[Vector3]int),
	}
}

// AddPoint uses the map for an average O(1) lookup of duplicate points.
func (m *Mesh) AddPoint(p Vector3) int {
	if index, found := m.pointIndex[p]; found {
		return index
	}
	m.Points = append(m.Points, p)
	index := len(m.Points) - 1
	m.pointIndex[p] = index
	return index
}

// AddFace adds a polygon and derives its normal from the first three points.
func (m *Mesh) AddFace(points ...Vector3) {
	if len(points) < 3 {
		return
	}
	indices := make([]int, len(points))
	for i, p := range points {
		indices[i] = m.AddPoint(p)
	}
	u := points[1].Subtract(points[0])
	v := points[2].Subtract(points[1])
	m.Faces = append(m.Faces, MeshFace{Indices: indices, Normal: u.Cross(v).Normalize()})
}

// Translate moves all points by offset.
func (m *Mesh) Translate(offset Vector3) {
	index := make(map[Vector3]int, len(m.Points))
	for i := range m.Points {
		m.Points[i] = m.Points[i].Add(offset)
		index[m.Points[i]] = i
	}
	m.pointIndex = index
}

// FacePoints returns the points of face i.
func (m *Mesh) FacePoints(i int) []Vector3 {
	face := m.Faces[i]
	pts := make([]Vector3, len(face.Indices))
	for j, idx := range face.Indices {
		pts[j] = m.Points[idx]
	}
	return pts
}

// Copy must also duplicate the pointIndex map.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Points:     append([]Vector3(nil), m.Points...),
		Faces:      make([]MeshFace, len(m.Faces)),
		pointIndex: make(map[Vector3]int, len(m.pointIndex)),
	}
	for key, value := range m.pointIndex {
		c.pointIndex[key] = value
	}
	for i, f := range m.Faces {
		c.Faces[i] = MeshFace{Indices: append([]int(nil), f.Indices...), Normal: f.Normal}
	}
	return c
}

// Bounds returns the axis-aligned extents of the mesh.
func (m *Mesh) Bounds() (min, max Vector3) {
	if len(m.Points) == 0 {
		return Vector3{}, Vector3{}
	}
	min, max = m.Points[0], m.Points[0]
	for _, p := range m.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		} else if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		} else if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		} else if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
