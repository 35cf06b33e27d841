package main

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/smasonuk/roomplanner"
)

const (
	doubleClickInterval = 300 * time.Millisecond
	doubleClickSlop     = 4
	wheelScale          = 100
)

var paletteKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

type Game struct {
	editor  *roomplanner.Editor
	surface *windowSurface
	batcher screenBatcher

	lastX, lastY  int
	lastClick     time.Time
	lastClickX    int
	lastClickY    int
	lastRemoved   int
	removedNotice bool

	log *logrus.Entry
}

func NewGame(editor *roomplanner.Editor, width, height int) *Game {
	g := &Game{
		editor:  editor,
		surface: &windowSurface{width: width, height: height},
		batcher: screenBatcher{lineWidth: 1},
		log:     roomplanner.Log.WithField("component", "host"),
	}
	editor.OnFurnitureRemoved(func(n roomplanner.RemovalNotice) {
		g.lastRemoved = n.Count
		g.removedNotice = true
		g.log.WithField("count", n.Count).Info("furniture removed")
	})
	return g
}

func (g *Game) Start() error {
	return g.editor.Init(g.surface)
}

func (g *Game) Update() error {
	if g.editor.Destroyed() {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if x != g.lastX || y != g.lastY {
		g.surface.dispatch(roomplanner.PointerMove{X: fx, Y: fy})
		g.lastX, g.lastY = x, y
	}

	g.pollButton(ebiten.MouseButtonLeft, roomplanner.ButtonPrimary, fx, fy)
	g.pollButton(ebiten.MouseButtonRight, roomplanner.ButtonSecondary, fx, fy)

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		now := time.Now()
		dx, dy := x-g.lastClickX, y-g.lastClickY
		if now.Sub(g.lastClick) <= doubleClickInterval &&
			dx*dx+dy*dy <= doubleClickSlop*doubleClickSlop {
			g.surface.dispatch(roomplanner.DoubleClick{X: fx, Y: fy})
			g.lastClick = time.Time{}
		} else {
			g.lastClick = now
			g.lastClickX, g.lastClickY = x, y
		}
	}

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		g.surface.dispatch(roomplanner.Wheel{DeltaY: -yoff * wheelScale})
	}

	if files := ebiten.DroppedFiles(); files != nil {
		g.dropFiles(files, fx, fy)
	}

	g.pollKeys(fx, fy)
	if g.editor.Destroyed() {
		return ebiten.Termination
	}

	switch g.editor.Cursor() {
	case roomplanner.CursorGrabbing:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	return nil
}

func (g *Game) pollButton(mb ebiten.MouseButton, b roomplanner.Button, x, y float64) {
	if inpututil.IsMouseButtonJustPressed(mb) {
		g.surface.dispatch(roomplanner.PointerDown{Button: b, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(mb) {
		g.surface.dispatch(roomplanner.PointerUp{Button: b, X: x, Y: y})
	}
}

// dropFiles turns each dropped file into a furniture drop at the cursor.
func (g *Game) dropFiles(files fs.FS, x, y float64) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		g.log.WithError(err).Warn("reading dropped files")
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			g.log.WithError(err).WithField("file", entry.Name()).Warn("reading dropped file")
			continue
		}
		g.surface.dispatch(roomplanner.Drop{
			X:    x,
			Y:    y,
			Data: roomplanner.TransferData{roomplanner.FurnitureFormat: string(data)},
		})
	}
}

func (g *Game) pollKeys(x, y float64) {
	for i, key := range paletteKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(catalog) {
			g.editor.AddFurniture(catalog[i], x, y)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.editor.ClearAll()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.editor.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		mode := roomplanner.ModeExplore
		if g.editor.Camera().Mode == roomplanner.ModeExplore {
			mode = roomplanner.ModeFixed
		}
		g.editor.SetCameraMode(mode)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.editor.Destroy()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.editor.Background().RGBA())
	g.batcher.screen = screen
	if !g.editor.Render(&g.batcher) {
		return
	}

	hud := fmt.Sprintf("FPS: %0.2f  items: %d  mode: %s", ebiten.ActualFPS(), g.editor.Count(), g.editor.Camera().Mode)
	if g.removedNotice {
		hud += fmt.Sprintf("\nremoved, %d left", g.lastRemoved)
	}
	hud += "\n1-6 add  C clear  R restart  M camera  Esc quit"
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.surface.resize(outsideWidth, outsideHeight) {
		g.editor.OnResize()
	}
	return outsideWidth, outsideHeight
}
