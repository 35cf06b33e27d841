package roomplanner

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Archetype int

const (
	Fallback Archetype = iota
	Sofa
	Table
	Chair
	Bed
	Lamp
	Shelf
)

var archetypeNames = map[Archetype]string{
	Fallback: "default",
	Sofa:     "sofa",
	Table:    "table",
	Chair:    "chair",
	Bed:      "bed",
	Lamp:     "lamp",
	Shelf:    "shelf",
}

// catalog ids, including the spanish ids used by the palette
var archetypeIDs = map[string]Archetype{
	"sofa":       Sofa,
	"table":      Table,
	"mesa":       Table,
	"chair":      Chair,
	"silla":      Chair,
	"bed":        Bed,
	"cama":       Bed,
	"lamp":       Lamp,
	"lampara":    Lamp,
	"shelf":      Shelf,
	"estanteria": Shelf,
}

func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return archetypeNames[Fallback]
}

// ParseArchetype maps a catalog id to an archetype. Unknown ids resolve to
// Fallback.
func ParseArchetype(id string) Archetype {
	if a, ok := archetypeIDs[strings.ToLower(strings.TrimSpace(id))]; ok {
		return a
	}
	return Fallback
}

type PartID = uuid.UUID

type Material struct {
	Color             Color
	Emissive          Color
	EmissiveIntensity float64
	DoubleSided       bool
}

// Part is a single primitive solid of a composite. Its mesh is already
// placed relative to the composite's ground-contact origin.
type Part struct {
	ID            PartID
	Name          string
	Mesh          *Mesh
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

// PointLight is a local light source. Position is relative to the owning
// composite.
type PointLight struct {
	Color     Color
	Intensity float64
	Distance  float64
	Position  Vector3
}

// Composite is the assembled object for one furniture instance.
type Composite struct {
	Parts  []*Part
	Lights []PointLight
}

func (c *Composite) add(name string, mesh *Mesh, col Color, at Vector3) *Part {
	mesh.Translate(at)
	p := &Part{
		ID:       uuid.New(),
		Name:     name,
		Mesh:     mesh,
		Material: Material{Color: col},
	}
	c.Parts = append(c.Parts, p)
	return p
}

const (
	sofaLegColor  = Color(0x4a3728)
	bedFrameColor = Color(0x8b7355)
	bedBoardColor = Color(0x5c4033)
	lampMetal     = Color(0x888888)
	bulbColor     = Color(0xffe4a0)
)

var bookColors = []Color{0xe74c3c, 0x3498db, 0x2ecc71, 0xf39c12, 0x9b59b6}

// Factory builds furniture composites. The random source only affects
// cosmetic book sizes on shelves.
type Factory struct {
	rng *rand.Rand
	log *logrus.Entry
}

func NewFactory(seed uint64) *Factory {
	return &Factory{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log: Log.WithField("component", "factory"),
	}
}

// Build assembles the part list of the archetype in the given base color.
func (f *Factory) Build(a Archetype, base Color) *Composite {
	c := &Composite{}
	switch a {
	case Sofa:
		f.buildSofa(c, base)
	case Table:
		f.buildTable(c, base)
	case Chair:
		f.buildChair(c, base)
	case Bed:
		f.buildBed(c, base)
	case Lamp:
		f.buildLamp(c, base)
	case Shelf:
		f.buildShelf(c, base)
	case Fallback:
		f.buildFallback(c, base)
	default:
		f.log.WithField("archetype", int(a)).Warn("unknown archetype, using fallback")
		f.buildFallback(c, base)
	}

	for _, p := range c.Parts {
		p.CastShadow = true
		p.ReceiveShadow = true
	}
	return c
}

func (f *Factory) buildSofa(c *Composite, base Color) {
	c.add("base", NewBoxMesh(2.0, 0.35, 0.9, false), base, Vector3{0, 0.175, 0})
	c.add("back", NewBoxMesh(2.0, 0.55, 0.15, false), base, Vector3{0, 0.55, -0.37})

	cushion := Lighten(base, 0.3)
	for i := -1; i <= 1; i++ {
		c.add("cushion", NewBoxMesh(0.58, 0.18, 0.7, false), cushion, Vector3{float64(i) * 0.63, 0.44, 0.05})
	}

	for _, xz := range [][2]float64{{-0.88, -0.37}, {0.88, -0.37}, {-0.88, 0.37}, {0.88, 0.37}} {
		leg := NewCylinderMesh(0.04, 0.04, 0.18, defaultRadialSegments, false)
		c.add("leg", leg, sofaLegColor, Vector3{xz[0], 0.09, xz[1]})
	}
}

func (f *Factory) buildTable(c *Composite, base Color) {
	c.add("top", NewBoxMesh(1.2, 0.07, 0.8, false), base, Vector3{0, 0.7, 0})

	legColor := Darken(base, 0.2)
	for _, xz := range [][2]float64{{-0.52, -0.32}, {0.52, -0.32}, {-0.52, 0.32}, {0.52, 0.32}} {
		leg := NewCylinderMesh(0.035, 0.035, 0.66, 8, false)
		c.add("leg", leg, legColor, Vector3{xz[0], 0.33, xz[1]})
	}
}

func (f *Factory) buildChair(c *Composite, base Color) {
	c.add("seat", NewBoxMesh(0.55, 0.06, 0.55, false), base, Vector3{0, 0.45, 0})
	c.add("back", NewBoxMesh(0.55, 0.5, 0.05, false), base, Vector3{0, 0.73, -0.25})

	legColor := Darken(base, 0.2)
	for _, xz := range [][2]float64{{-0.22, -0.22}, {0.22, -0.22}, {-0.22, 0.22}, {0.22, 0.22}} {
		leg := NewCylinderMesh(0.025, 0.025, 0.45, defaultRadialSegments, false)
		c.add("leg", leg, legColor, Vector3{xz[0], 0.225, xz[1]})
	}
}

func (f *Factory) buildBed(c *Composite, base Color) {
	c.add("frame", NewBoxMesh(1.6, 0.25, 2.0, false), bedFrameColor, Vector3{0, 0.15, 0})
	c.add("mattress", NewBoxMesh(1.5, 0.2, 1.85, false), Lighten(base, 0.5), Vector3{0, 0.37, 0})
	for _, x := range []float64{-0.34, 0.34} {
		c.add("pillow", NewBoxMesh(0.55, 0.12, 0.35, false), WhiteColor, Vector3{x, 0.54, -0.72})
	}
	c.add("headboard", NewBoxMesh(1.6, 0.6, 0.1, false), bedBoardColor, Vector3{0, 0.55, -0.98})
	c.add("footboard", NewBoxMesh(1.6, 0.3, 0.1, false), bedBoardColor, Vector3{0, 0.35, 0.98})
}

func (f *Factory) buildLamp(c *Composite, base Color) {
	c.add("base", NewCylinderMesh(0.15, 0.18, 0.06, defaultRadialSegments, false), lampMetal, Vector3{0, 0.03, 0})
	c.add("pole", NewCylinderMesh(0.025, 0.025, 1.5, defaultRadialSegments, false), lampMetal, Vector3{0, 0.78, 0})

	shade := c.add("shade", NewCylinderMesh(0.28, 0.12, 0.32, 12, true), base, Vector3{0, 1.58, 0})
	shade.Material.DoubleSided = true
	c.add("cap", NewDiscMesh(0.28, 12), base, Vector3{0, 1.74, 0})

	c.Lights = append(c.Lights, PointLight{
		Color:     bulbColor,
		Intensity: 0.8,
		Distance:  5,
		Position:  Vector3{0, 1.55, 0},
	})
}

const (
	booksPerRow = 5
	bookStartX  = -0.55
	bookPitch   = 0.115
)

var shelfRows = []float64{0.28, 0.78, 1.28}

// BookSlots returns the x position of every book slot in a shelf row.
func BookSlots() []float64 {
	slots := make([]float64, booksPerRow)
	for i := range slots {
		slots[i] = bookStartX + float64(i)*bookPitch
	}
	return slots
}

func (f *Factory) buildShelf(c *Composite, base Color) {
	for _, x := range []float64{-0.68, 0.68} {
		c.add("side", NewBoxMesh(0.04, 1.8, 0.4, false), base, Vector3{x, 0.9, 0})
	}
	for _, y := range []float64{0.02, 0.5, 1.0, 1.5, 1.78} {
		c.add("board", NewBoxMesh(1.36, 0.04, 0.4, false), base, Vector3{0, y, 0})
	}

	slots := BookSlots()
	for _, y := range shelfRows {
		for i, x := range slots {
			w := 0.07 + f.rng.Float64()*0.04
			h := 0.28 + f.rng.Float64()*0.1
			c.add("book", NewBoxMesh(w, h, 0.3, false), bookColors[i%len(bookColors)], Vector3{x, y, 0.02})
		}
	}
}

func (f *Factory) buildFallback(c *Composite, base Color) {
	c.add("cube", NewBoxMesh(1, 1, 1, false), base, Vector3{0, 0.5, 0})
}
