package roomplanner

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// PolygonBatcher receives projected screen-space geometry for one frame.
type PolygonBatcher interface {
	AddPolygon(xp, yp []float32, clr color.RGBA)
	AddLine(x0, y0, x1, y1 float32, clr color.RGBA)
}

const (
	BackgroundColor = Color(0xe8edf2)
	fogNear         = 20
	fogFar          = 40
)

// Renderer draws the scene from the camera with painter's ordering. It only
// reads scene and camera state.
type Renderer struct {
	Background Color
	Fog        Fog
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: BackgroundColor,
		Fog:        Fog{Color: BackgroundColor, Near: fogNear, Far: fogFar},
	}
}

type screenFace struct {
	xp, yp []float32
	col    Color
	depth  float64
}

type frame struct {
	view, proj    mgl64.Mat4
	eye           Vector3
	near          float64
	width, height float64
	lighting      Lighting
	fog           Fog
}

// sortFacesByDistance puts the faces farther away at the start of the slice.
func sortFacesByDistance(faces []screenFace) {
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].depth > faces[j].depth
	})
}

// Render projects the room and the furniture into b for a width x height
// target.
func (r *Renderer) Render(scene *Scene, camera *Camera, width, height int, b PolygonBatcher) {
	if width <= 0 || height <= 0 {
		return
	}
	f := frame{
		view:     camera.View(),
		proj:     camera.Projection(),
		eye:      camera.Eye(),
		near:     camera.Near(),
		width:    float64(width),
		height:   float64(height),
		lighting: scene.Lights(),
		fog:      r.Fog,
	}

	identity := mgl64.Ident4()
	var room []screenFace
	for _, p := range scene.Room.Parts {
		room = f.appendPart(room, p, identity)
	}
	sortFacesByDistance(room)
	emit(b, room)

	for _, seg := range scene.Room.Grid {
		f.drawSegment(b, seg)
	}

	var furniture []screenFace
	for _, inst := range scene.Instances() {
		if inst.Composite == nil {
			continue
		}
		world := inst.World()
		for _, p := range inst.Composite.Parts {
			furniture = f.appendPart(furniture, p, world)
		}
	}
	sortFacesByDistance(furniture)
	emit(b, furniture)
}

func emit(b PolygonBatcher, faces []screenFace) {
	for _, sf := range faces {
		b.AddPolygon(sf.xp, sf.yp, sf.col.RGBA())
	}
}

// toDepth converts a world point to view space with depth in Z.
func (f *frame) toDepth(p Vector3) Vector3 {
	v := TransformPoint(f.view, p)
	v.Z = -v.Z
	return v
}

func (f *frame) project(d Vector3) (float32, float32) {
	ndc := TransformPoint(f.proj, Vector3{d.X, d.Y, -d.Z})
	x := (ndc.X + 1) / 2 * f.width
	y := (1 - ndc.Y) / 2 * f.height
	return float32(x), float32(y)
}

func (f *frame) appendPart(out []screenFace, part *Part, world mgl64.Mat4) []screenFace {
	m := part.Mesh
	for i, face := range m.Faces {
		pts := m.FacePoints(i)
		for j := range pts {
			pts[j] = TransformPoint(world, pts[j])
		}
		normal := TransformDirection(world, face.Normal).Normalize()

		facing := normal.Dot(f.eye.Subtract(pts[0]))
		if facing <= 0 {
			if !part.Material.DoubleSided {
				continue
			}
			normal = normal.Scale(-1)
		}

		depthPts := make([]Vector3, len(pts))
		for j, p := range pts {
			depthPts[j] = f.toDepth(p)
		}
		clipped := clipPolygonAgainstNearPlane(depthPts, f.near)
		if len(clipped) < 3 {
			continue
		}

		xp := make([]float32, len(clipped))
		yp := make([]float32, len(clipped))
		var depth float64
		for j, d := range clipped {
			xp[j], yp[j] = f.project(d)
			depth += d.Z
		}
		depth /= float64(len(clipped))

		col := shade(part.Material, normal, centroid(pts), f.lighting)
		out = append(out, screenFace{xp: xp, yp: yp, col: f.fog.apply(col, depth), depth: depth})
	}
	return out
}

func (f *frame) drawSegment(b PolygonBatcher, seg Segment) {
	a, c, ok := clipSegmentAgainstNearPlane(f.toDepth(seg.From), f.toDepth(seg.To), f.near)
	if !ok {
		return
	}
	x0, y0 := f.project(a)
	x1, y1 := f.project(c)
	b.AddLine(x0, y0, x1, y1, seg.Color.RGBA())
}

func centroid(pts []Vector3) Vector3 {
	var sum Vector3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
