package roomplanner

import (
	"errors"
	"image"

	"github.com/sirupsen/logrus"
)

// Surface is the drawable the editor binds to. Bounds is in the same client
// space as event coordinates.
type Surface interface {
	Bounds() image.Rectangle
	Subscribe(handler func(Event)) (unsubscribe func())
}

var (
	ErrNoSurface          = errors.New("no surface")
	ErrAlreadyInitialized = errors.New("editor already initialized")
	ErrDestroyed          = errors.New("editor destroyed")
)

// Editor wires the scene, camera, picking, interaction and rendering
// together behind the host-facing operations.
type Editor struct {
	cfg Config

	surface     Surface
	unsubscribe func()
	bounds      image.Rectangle

	factory    *Factory
	scene      *Scene
	camera     *Camera
	picker     *Picker
	controller *Controller
	renderer   *Renderer

	pending   []func(RemovalNotice)
	running   bool
	destroyed bool
	log       *logrus.Entry
}

func NewEditor(cfg Config) *Editor {
	return &Editor{
		cfg: cfg,
		log: Log.WithField("component", "editor"),
	}
}

// Init binds the editor to a surface, builds the room, and starts listening
// for input. It can be called once.
func (e *Editor) Init(surface Surface) error {
	switch {
	case e.destroyed:
		return ErrDestroyed
	case e.running:
		return ErrAlreadyInitialized
	case surface == nil:
		return ErrNoSurface
	}

	e.surface = surface
	e.factory = NewFactory(e.cfg.Seed)
	e.scene = NewScene(e.cfg.Room, e.factory)
	e.camera = NewCamera(e.cfg.Camera)
	e.picker = NewPicker(e.camera, e.scene)
	e.controller = NewController(e.scene, e.camera, e.picker)
	e.renderer = NewRenderer()
	for _, fn := range e.pending {
		e.controller.OnFurnitureRemoved(fn)
	}
	e.pending = nil

	e.OnResize()
	e.unsubscribe = surface.Subscribe(func(ev Event) { e.Handle(ev) })
	e.running = true

	e.log.WithFields(logrus.Fields{
		"width":  e.bounds.Dx(),
		"height": e.bounds.Dy(),
		"mode":   string(e.camera.Mode),
	}).Info("editor started")
	return nil
}

func (e *Editor) active() bool {
	return e.running && !e.destroyed
}

// Handle feeds one input event through the interaction controller and
// returns the furniture count.
func (e *Editor) Handle(ev Event) int {
	if !e.active() {
		return 0
	}
	return e.controller.Handle(ev)
}

// AddFurniture places a descriptor as if it had been dropped at the screen
// point and returns the new count.
func (e *Editor) AddFurniture(d Descriptor, screenX, screenY float64) int {
	if !e.active() {
		return 0
	}
	if _, err := e.controller.Place(d, screenX, screenY); err != nil {
		e.log.WithError(err).WithField("id", d.ID).Warn("furniture not placed")
	}
	return e.scene.Len()
}

func (e *Editor) ClearAll() int {
	if !e.active() {
		return 0
	}
	e.controller.Reset()
	return e.scene.Clear()
}

// Restart clears the scene and puts the camera back at its initial pose.
func (e *Editor) Restart() int {
	if !e.active() {
		return 0
	}
	e.ClearAll()
	e.camera.Reset()
	e.log.Info("editor restarted")
	return 0
}

// OnResize re-reads the surface size. Hosts call it on every resize.
func (e *Editor) OnResize() {
	if e.surface == nil || e.destroyed {
		return
	}
	e.bounds = e.surface.Bounds()
	e.picker.SetBounds(e.bounds)
	if e.bounds.Dy() > 0 {
		e.camera.SetAspect(float64(e.bounds.Dx()) / float64(e.bounds.Dy()))
	}
}

// Destroy stops input and rendering and drops the scene. It is final.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	if e.scene != nil {
		e.scene.Clear()
	}
	e.running = false
	e.surface = nil
	e.log.Info("editor destroyed")
}

func (e *Editor) Destroyed() bool {
	return e.destroyed
}

func (e *Editor) SetCameraMode(mode CameraMode) {
	if !e.active() {
		return
	}
	e.controller.SetCameraMode(mode)
}

// OnFurnitureRemoved registers a listener for removal notices. Listeners
// registered before Init are kept.
func (e *Editor) OnFurnitureRemoved(fn func(RemovalNotice)) {
	if e.controller == nil {
		e.pending = append(e.pending, fn)
		return
	}
	e.controller.OnFurnitureRemoved(fn)
}

// Render draws one frame into b. It returns false once the editor is no
// longer running.
func (e *Editor) Render(b PolygonBatcher) bool {
	if !e.active() {
		return false
	}
	e.renderer.Render(e.scene, e.camera, e.bounds.Dx(), e.bounds.Dy(), b)
	return true
}

func (e *Editor) Count() int {
	if e.scene == nil {
		return 0
	}
	return e.scene.Len()
}

func (e *Editor) Cursor() Cursor {
	if e.controller == nil {
		return CursorDefault
	}
	return e.controller.Cursor()
}

func (e *Editor) Scene() *Scene {
	return e.scene
}

func (e *Editor) Camera() *Camera {
	return e.camera
}

func (e *Editor) Controller() *Controller {
	return e.controller
}

func (e *Editor) Picker() *Picker {
	return e.picker
}

func (e *Editor) Background() Color {
	if e.renderer == nil {
		return BackgroundColor
	}
	return e.renderer.Background
}
