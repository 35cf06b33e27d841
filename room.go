package roomplanner

import "github.com/google/uuid"

const (
	floorColor    = Color(0xc8a46e)
	wallColor     = Color(0xcccccc)
	skirtingColor = Color(0xaaaaaa)
	gridCenter    = Color(0x000022)
	gridLine      = Color(0x000015)
	gridHeight    = 0.01
)

// Segment is a line drawn in world space.
type Segment struct {
	From, To Vector3
	Color    Color
}

// RoomShell is the static floor, walls and skirting. It is built once and
// never changes.
type RoomShell struct {
	Size   float64
	Height float64
	Parts  []*Part
	Grid   []Segment
}

func shellPart(name string, mesh *Mesh, col Color, at Vector3) *Part {
	mesh.Translate(at)
	return &Part{
		ID:            uuid.New(),
		Name:          name,
		Mesh:          mesh,
		Material:      Material{Color: col},
		ReceiveShadow: true,
	}
}

func NewRoomShell(cfg RoomConfig) *RoomShell {
	size, h := cfg.Size, cfg.Height
	r := &RoomShell{Size: size, Height: h}

	// walls are seen from inside the room; the bottom face would sit on the floor
	walls := NewBoxMesh(size, h, size, true)
	kept := walls.Faces[:0]
	for _, f := range walls.Faces {
		if f.Normal.Y <= 0.5 {
			kept = append(kept, f)
		}
	}
	walls.Faces = kept

	r.Parts = append(r.Parts,
		shellPart("floor", NewGroundPlaneMesh(size), floorColor, Vector3{}),
		shellPart("walls", walls, wallColor, Vector3{0, h / 2, 0}),
	)

	half := size / 2
	const inset = 0.025
	r.Parts = append(r.Parts,
		shellPart("skirting", NewBoxMesh(size-0.1, 0.1, 0.05, false), skirtingColor, Vector3{0, 0.05, -half + inset}),
		shellPart("skirting", NewBoxMesh(size-0.1, 0.1, 0.05, false), skirtingColor, Vector3{0, 0.05, half - inset}),
		shellPart("skirting", NewBoxMesh(0.05, 0.1, size-0.1, false), skirtingColor, Vector3{-half + inset, 0.05, 0}),
		shellPart("skirting", NewBoxMesh(0.05, 0.1, size-0.1, false), skirtingColor, Vector3{half - inset, 0.05, 0}),
	)

	divisions := cfg.GridDivisions
	if divisions > 0 {
		step := size / float64(divisions)
		for i := 0; i <= divisions; i++ {
			k := -half + float64(i)*step
			col := gridLine
			if i*2 == divisions {
				col = gridCenter
			}
			r.Grid = append(r.Grid,
				Segment{From: Vector3{-half, gridHeight, k}, To: Vector3{half, gridHeight, k}, Color: col},
				Segment{From: Vector3{k, gridHeight, -half}, To: Vector3{k, gridHeight, half}, Color: col},
			)
		}
	}
	return r
}
