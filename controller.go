package roomplanner

import (
	"errors"

	"github.com/sirupsen/logrus"
)

type InteractionState int

const (
	Idle InteractionState = iota
	Dragging
	Orbiting
)

func (s InteractionState) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Orbiting:
		return "orbiting"
	}
	return "idle"
}

// Controller turns host input into scene and camera mutations. All calls
// happen on the host's event thread.
type Controller struct {
	scene  *Scene
	camera *Camera
	picker *Picker

	state    InteractionState
	selected *Instance
	button   Button // the button that opened the current gesture
	anchor   Vector2
	cursor   Cursor

	listeners []func(RemovalNotice)
	log       *logrus.Entry
}

func NewController(scene *Scene, camera *Camera, picker *Picker) *Controller {
	return &Controller{
		scene:  scene,
		camera: camera,
		picker: picker,
		log:    Log.WithField("component", "controller"),
	}
}

func (c *Controller) State() InteractionState {
	return c.state
}

// Selected is the instance being dragged, if any.
func (c *Controller) Selected() *Instance {
	return c.selected
}

func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// OnFurnitureRemoved registers a listener for removal notices.
func (c *Controller) OnFurnitureRemoved(fn func(RemovalNotice)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// Handle applies one event and returns the number of placed instances
// afterwards.
func (c *Controller) Handle(ev Event) int {
	switch e := ev.(type) {
	case PointerDown:
		c.pointerDown(e)
	case PointerMove:
		c.pointerMove(e)
	case PointerUp:
		c.pointerUp(e)
	case DoubleClick:
		c.doubleClick(e)
	case Wheel:
		c.camera.ApplyZoomDelta(e.DeltaY)
	case Drop:
		c.drop(e)
	}
	return c.scene.Len()
}

func (c *Controller) pointerDown(e PointerDown) {
	if c.state != Idle {
		c.log.WithFields(logrus.Fields{
			"button": e.Button.String(),
			"state":  c.state.String(),
		}).Debug("ignoring button while a gesture is active")
		return
	}

	switch e.Button {
	case ButtonSecondary:
		if hit := c.picker.PickAt(e.X, e.Y); hit != nil {
			hit.RotateQuarter()
			c.log.WithFields(logrus.Fields{"id": hit.ID, "turns": hit.QuarterTurns()}).Debug("rotated")
			return
		}
		c.startOrbit(e)

	case ButtonPrimary:
		if hit := c.picker.PickAt(e.X, e.Y); hit != nil {
			c.selected = hit
			c.state = Dragging
			c.button = e.Button
			c.cursor = CursorGrabbing
			c.scene.SetHighlighted(hit)
			c.log.WithField("id", hit.ID).Debug("drag started")
			return
		}
		c.scene.SetHighlighted(nil)
		c.startOrbit(e)
	}
}

func (c *Controller) startOrbit(e PointerDown) {
	if c.camera.Mode != ModeExplore {
		return
	}
	c.state = Orbiting
	c.button = e.Button
	c.anchor = Vector2{X: e.X, Y: e.Y}
	c.log.Debug("orbit started")
}

func (c *Controller) pointerMove(e PointerMove) {
	switch c.state {
	case Orbiting:
		c.camera.ApplyOrbitDelta(e.X-c.anchor.X, e.Y-c.anchor.Y)
		c.anchor = Vector2{X: e.X, Y: e.Y}

	case Dragging:
		if c.selected == nil || !c.scene.Contains(c.selected) {
			c.endGesture()
			return
		}
		target, ok := c.picker.GroundAt(e.X, e.Y)
		if !ok {
			// no floor under the pointer this time; keep the last position
			return
		}
		c.scene.MoveTo(c.selected, target)
	}
}

func (c *Controller) pointerUp(e PointerUp) {
	if c.state != Idle && e.Button != c.button {
		return
	}
	c.endGesture()
}

func (c *Controller) endGesture() {
	c.state = Idle
	c.selected = nil
	c.cursor = CursorDefault
}

// CancelOrbit stops an in-progress orbit. Drags are left alone.
func (c *Controller) CancelOrbit() {
	if c.state == Orbiting {
		c.endGesture()
	}
}

// SetCameraMode switches the camera mode and stops any orbit.
func (c *Controller) SetCameraMode(mode CameraMode) {
	c.camera.SetMode(mode)
	c.CancelOrbit()
	c.log.WithField("mode", string(mode)).Info("camera mode")
}

// Reset drops any gesture in progress.
func (c *Controller) Reset() {
	c.endGesture()
}

func (c *Controller) doubleClick(e DoubleClick) {
	hit := c.picker.PickAt(e.X, e.Y)
	if hit == nil {
		return
	}
	c.scene.SetHighlighted(nil)
	if hit == c.selected {
		c.endGesture()
	}
	if !c.scene.Remove(hit) {
		return
	}
	notice := RemovalNotice{Count: c.scene.Len()}
	for _, fn := range c.listeners {
		fn(notice)
	}
}

func (c *Controller) drop(e Drop) {
	if e.Data == nil {
		return
	}
	if _, err := c.PlaceDescriptorPayload(e.Data.GetData(FurnitureFormat), e.X, e.Y); err != nil {
		c.log.WithError(err).Warn("drop ignored")
	}
}

var ErrNoGroundTarget = errors.New("no ground point under pointer")

// PlaceDescriptorPayload parses a serialized descriptor and places it at the
// ground point under the pointer.
func (c *Controller) PlaceDescriptorPayload(data string, x, y float64) (*Instance, error) {
	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, err
	}
	return c.Place(d, x, y)
}

// Place puts a new instance of the descriptor at the ground point under the
// pointer.
func (c *Controller) Place(d Descriptor, x, y float64) (*Instance, error) {
	target, ok := c.picker.GroundAt(x, y)
	if !ok {
		return nil, ErrNoGroundTarget
	}
	return c.scene.Place(d.Archetype(), d.Label, d.Color, target), nil
}
