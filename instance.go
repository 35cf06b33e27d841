package roomplanner

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Instance is one placed piece of furniture. It exclusively owns its
// composite; the composite is released when the instance leaves the scene.
type Instance struct {
	ID        uuid.UUID
	Archetype Archetype
	Label     string
	BaseColor Color
	Composite *Composite

	position Vector3
	turns    int
}

func (i *Instance) Position() Vector3 {
	return i.position
}

// setPosition clamps x and z to [-limit, limit] and pins y to the floor.
func (i *Instance) setPosition(x, z, limit float64) {
	i.position = Vector3{
		X: clampFloat(x, -limit, limit),
		Y: 0,
		Z: clampFloat(z, -limit, limit),
	}
}

// RotateQuarter turns the instance a quarter turn about the vertical axis.
func (i *Instance) RotateQuarter() {
	i.turns = (i.turns + 1) % 4
}

// QuarterTurns returns the rotation as a count of quarter turns in [0, 4).
func (i *Instance) QuarterTurns() int {
	return i.turns
}

func (i *Instance) RotationY() float64 {
	return float64(i.turns) * math.Pi / 2
}

// World returns the local-to-world transform.
func (i *Instance) World() mgl64.Mat4 {
	t := mgl64.Translate3D(i.position.X, i.position.Y, i.position.Z)
	return t.Mul4(mgl64.HomogRotate3DY(i.RotationY()))
}

// Lights returns the composite's point lights in world space.
func (i *Instance) Lights() []PointLight {
	if i.Composite == nil || len(i.Composite.Lights) == 0 {
		return nil
	}
	world := i.World()
	out := make([]PointLight, len(i.Composite.Lights))
	for n, l := range i.Composite.Lights {
		l.Position = TransformPoint(world, l.Position)
		out[n] = l
	}
	return out
}
