package roomplanner

import (
	"errors"
	"image"
	"testing"
)

func TestEditorInitErrors(t *testing.T) {
	e := NewEditor(DefaultConfig())
	if err := e.Init(nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("Init(nil) = %v, want ErrNoSurface", err)
	}
	s := newFakeSurface(800, 600)
	if err := e.Init(s); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if err := e.Init(s); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init() = %v, want ErrAlreadyInitialized", err)
	}
	e.Destroy()
	if err := e.Init(s); !errors.Is(err, ErrDestroyed) {
		t.Errorf("Init() after Destroy = %v, want ErrDestroyed", err)
	}
}

func TestEditorBeforeInit(t *testing.T) {
	e := NewEditor(DefaultConfig())
	d := Descriptor{ID: "sofa", Label: "Sofa", Color: 0x6b8e9e}
	if e.AddFurniture(d, 400, 300) != 0 || e.ClearAll() != 0 || e.Restart() != 0 || e.Count() != 0 {
		t.Errorf("operations before Init did something")
	}
	e.OnResize()
	e.SetCameraMode(ModeExplore)
	if e.Render(&recordingBatcher{}) {
		t.Errorf("Render() before Init = true")
	}
	if e.Cursor() != CursorDefault {
		t.Errorf("Cursor() before Init = %v", e.Cursor())
	}
}

func TestEditorAddFurniture(t *testing.T) {
	e, _ := newTestEditor(t)
	x, y := editorScreenOf(e, Vector3{1.0, 0, -0.5})
	if got := e.AddFurniture(Descriptor{ID: "sofa", Label: "Sofa", Color: 0x6b8e9e}, x, y); got != 1 {
		t.Fatalf("AddFurniture() = %d, want 1", got)
	}
	inst := e.Scene().Instances()[0]
	if p := inst.Position(); !withinTolerance(p.X, 1, 1e-6) || !withinTolerance(p.Z, -0.5, 1e-6) {
		t.Errorf("sofa at %v, want (1, 0, -0.5)", p)
	}

	// stacking is allowed
	if got := e.AddFurniture(Descriptor{ID: "sofa", Label: "Sofa", Color: 0x6b8e9e}, x, y); got != 2 {
		t.Errorf("second AddFurniture() = %d, want 2", got)
	}
}

func TestEditorClearAll(t *testing.T) {
	e, _ := newTestEditor(t)
	x, y := editorScreenOf(e, Vector3{})
	var parts []*Part
	for _, id := range []string{"bed", "lamp", "shelf"} {
		e.AddFurniture(Descriptor{ID: id, Label: id, Color: 0x808080}, x, y)
	}
	for _, inst := range e.Scene().Instances() {
		parts = append(parts, inst.Composite.Parts...)
	}
	if got := e.ClearAll(); got != 0 {
		t.Errorf("ClearAll() = %d", got)
	}
	if e.Count() != 0 || len(e.Scene().Lights().Points) != 0 {
		t.Errorf("scene not empty")
	}
	for _, p := range parts {
		if e.Scene().FindInstanceOwning(p.ID) != nil {
			t.Fatalf("index still holds cleared parts")
		}
	}
}

func TestEditorRestart(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetCameraMode(ModeExplore)
	x, y := editorScreenOf(e, Vector3{})
	e.AddFurniture(Descriptor{ID: "table", Label: "Table", Color: 0x8b5a2b}, x, y)
	e.Handle(Wheel{DeltaY: 400})
	e.Handle(PointerDown{Button: ButtonPrimary, X: 10, Y: 10})
	e.Handle(PointerMove{X: 90, Y: 60})

	if got := e.Restart(); got != 0 {
		t.Errorf("Restart() = %d", got)
	}
	c := e.Camera()
	if c.Azimuth != 0.8 || c.Polar != 0.55 || c.Radius != 14 {
		t.Errorf("camera after Restart = %v %v %v", c.Azimuth, c.Polar, c.Radius)
	}
	if c.Mode != ModeExplore {
		t.Errorf("Restart changed the camera mode")
	}
	if e.Count() != 0 || e.Controller().State() != Idle {
		t.Errorf("Restart left furniture or a gesture behind")
	}
}

func TestEditorOnResize(t *testing.T) {
	e, s := newTestEditor(t)
	if !almostEqual(e.Camera().Aspect(), 800.0/600.0) {
		t.Fatalf("initial aspect = %v", e.Camera().Aspect())
	}
	s.bounds = image.Rect(0, 0, 400, 200)
	e.OnResize()
	if e.Camera().Aspect() != 2 {
		t.Errorf("aspect after resize = %v, want 2", e.Camera().Aspect())
	}

	x, y := screenOf(e.Camera(), 400, 200, Vector3{-2, 0, 1})
	got, ok := e.Picker().GroundAt(x, y)
	if !ok || !withinTolerance(got.X, -2, 1e-6) || !withinTolerance(got.Z, 1, 1e-6) {
		t.Errorf("picking after resize = %v, %v", got, ok)
	}

	s.bounds = image.Rectangle{}
	e.OnResize()
	if e.Camera().Aspect() != 2 {
		t.Errorf("empty surface changed aspect to %v", e.Camera().Aspect())
	}
}

func TestEditorSubscription(t *testing.T) {
	e, s := newTestEditor(t)
	x, y := editorScreenOf(e, Vector3{})
	payload := Descriptor{ID: "chair", Label: "Chair", Color: 0xa0522d}.Encode()

	s.emit(Drop{X: x, Y: y, Data: TransferData{FurnitureFormat: payload}})
	if e.Count() != 1 {
		t.Fatalf("surface event not delivered")
	}

	e.Destroy()
	if s.handler != nil {
		t.Errorf("Destroy did not unsubscribe")
	}
	if !e.Destroyed() || e.Count() != 0 {
		t.Errorf("Destroy left state behind")
	}
	if e.Handle(Drop{X: x, Y: y, Data: TransferData{FurnitureFormat: payload}}) != 0 {
		t.Errorf("destroyed editor handled a drop")
	}
	if e.Render(&recordingBatcher{}) {
		t.Errorf("Render() after Destroy = true")
	}
	e.Destroy()
}

func TestEditorRemovalListenerBeforeInit(t *testing.T) {
	e := NewEditor(DefaultConfig())
	var got []int
	e.OnFurnitureRemoved(func(n RemovalNotice) { got = append(got, n.Count) })
	if err := e.Init(newFakeSurface(800, 600)); err != nil {
		t.Fatal(err)
	}
	e.Scene().Place(Fallback, "Box", 0x999999, Vector3{})
	x, y := editorScreenOf(e, Vector3{0.1, 0.4, 0.1})
	e.Handle(DoubleClick{X: x, Y: y})
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("notices = %v, want [0]", got)
	}
}

func TestEditorRender(t *testing.T) {
	e, _ := newTestEditor(t)
	empty := &recordingBatcher{}
	if !e.Render(empty) {
		t.Fatal("Render() = false")
	}
	if len(empty.polygons) == 0 || len(empty.lines) != 2*(DefaultConfig().Room.GridDivisions+1) {
		t.Errorf("empty room: %d polygons, %d lines", len(empty.polygons), len(empty.lines))
	}

	x, y := editorScreenOf(e, Vector3{})
	e.AddFurniture(Descriptor{ID: "box", Label: "Box", Color: 0x999999}, x, y)
	withBox := &recordingBatcher{}
	e.Render(withBox)
	if n := len(withBox.polygons) - len(empty.polygons); n < 1 || n > 3 {
		t.Errorf("cube added %d visible faces, want 1 to 3", n)
	}
}
