package roomplanner

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	highlightEmissive  = Color(0x2244aa)
	highlightIntensity = 0.25
)

type emissiveState struct {
	color     Color
	intensity float64
}

// Scene owns the room shell and the ordered furniture instances. Selection
// and highlight are weak references into the instance list.
type Scene struct {
	Room *RoomShell

	factory   *Factory
	limit     float64
	instances []*Instance
	owners    map[PartID]*Instance
	lighting  Lighting

	highlighted *Instance
	saved       map[PartID]emissiveState

	log *logrus.Entry
}

func NewScene(room RoomConfig, factory *Factory) *Scene {
	return &Scene{
		Room:     NewRoomShell(room),
		factory:  factory,
		limit:    room.PlacementLimit,
		owners:   make(map[PartID]*Instance),
		saved:    make(map[PartID]emissiveState),
		lighting: defaultLighting(),
		log:      Log.WithField("component", "scene"),
	}
}

// PlacementLimit is the half extent of the area furniture may occupy.
func (s *Scene) PlacementLimit() float64 {
	return s.limit
}

// Place builds a new instance at the clamped ground point with no rotation
// and appends it to the scene.
func (s *Scene) Place(a Archetype, label string, base Color, ground Vector3) *Instance {
	inst := &Instance{
		ID:        uuid.New(),
		Archetype: a,
		Label:     label,
		BaseColor: base & colorMask,
		Composite: s.factory.Build(a, base&colorMask),
	}
	inst.setPosition(ground.X, ground.Z, s.limit)

	s.instances = append(s.instances, inst)
	for _, p := range inst.Composite.Parts {
		s.owners[p.ID] = inst
	}

	s.log.WithFields(logrus.Fields{
		"id":        inst.ID,
		"archetype": a.String(),
		"label":     label,
		"x":         inst.position.X,
		"z":         inst.position.Z,
		"count":     len(s.instances),
	}).Info("furniture placed")
	return inst
}

// MoveTo sets the instance position, clamped to the placement area.
func (s *Scene) MoveTo(inst *Instance, ground Vector3) {
	inst.setPosition(ground.X, ground.Z, s.limit)
}

func (s *Scene) indexOf(inst *Instance) int {
	for i, candidate := range s.instances {
		if candidate == inst {
			return i
		}
	}
	return -1
}

func (s *Scene) Contains(inst *Instance) bool {
	return inst != nil && s.indexOf(inst) >= 0
}

// Remove detaches the instance and releases its composite. Removing an
// instance that is not in the scene does nothing and returns false.
func (s *Scene) Remove(inst *Instance) bool {
	if inst == nil {
		return false
	}
	i := s.indexOf(inst)
	if i < 0 {
		return false
	}
	if s.highlighted == inst {
		s.SetHighlighted(nil)
	}
	s.instances = append(s.instances[:i], s.instances[i+1:]...)
	s.release(inst)

	s.log.WithFields(logrus.Fields{
		"id":    inst.ID,
		"count": len(s.instances),
	}).Info("furniture removed")
	return true
}

func (s *Scene) release(inst *Instance) {
	if inst.Composite == nil {
		return
	}
	for _, p := range inst.Composite.Parts {
		delete(s.owners, p.ID)
		delete(s.saved, p.ID)
	}
	inst.Composite = nil
}

// Clear removes every instance and returns the new count, 0.
func (s *Scene) Clear() int {
	removed := len(s.instances)
	for _, inst := range s.instances {
		s.release(inst)
	}
	s.instances = nil
	s.highlighted = nil
	s.owners = make(map[PartID]*Instance)
	s.saved = make(map[PartID]emissiveState)
	s.log.WithField("removed", removed).Info("scene cleared")
	return 0
}

func (s *Scene) Len() int {
	return len(s.instances)
}

// Instances returns the instances in display order.
func (s *Scene) Instances() []*Instance {
	out := make([]*Instance, len(s.instances))
	copy(out, s.instances)
	return out
}

// FindInstanceOwning resolves a leaf part to its instance, or nil when the
// part does not belong to placed furniture.
func (s *Scene) FindInstanceOwning(id PartID) *Instance {
	return s.owners[id]
}

func (s *Scene) Highlighted() *Instance {
	return s.highlighted
}

// SetHighlighted moves the single highlight slot. The previous instance gets
// its captured emissive state back; nil only clears.
func (s *Scene) SetHighlighted(inst *Instance) {
	if s.highlighted == inst {
		return
	}
	if prev := s.highlighted; prev != nil && prev.Composite != nil {
		for _, p := range prev.Composite.Parts {
			if st, ok := s.saved[p.ID]; ok {
				p.Material.Emissive = st.color
				p.Material.EmissiveIntensity = st.intensity
				delete(s.saved, p.ID)
			}
		}
	}
	s.highlighted = nil

	if inst == nil || inst.Composite == nil || !s.Contains(inst) {
		return
	}
	s.highlighted = inst
	for _, p := range inst.Composite.Parts {
		s.saved[p.ID] = emissiveState{color: p.Material.Emissive, intensity: p.Material.EmissiveIntensity}
		p.Material.Emissive = highlightEmissive
		p.Material.EmissiveIntensity = highlightIntensity
	}
}

// Lights returns the room lighting plus every lamp's point light.
func (s *Scene) Lights() Lighting {
	l := s.lighting
	l.Directional = append([]DirectionalLight(nil), s.lighting.Directional...)
	l.Points = nil
	for _, inst := range s.instances {
		l.Points = append(l.Points, inst.Lights()...)
	}
	return l
}
