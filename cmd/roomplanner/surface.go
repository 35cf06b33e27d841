package main

import (
	"image"

	"github.com/smasonuk/roomplanner"
)

// windowSurface is the ebiten window as seen by the editor. The game loop
// pushes events into it.
type windowSurface struct {
	width, height int
	handler       func(roomplanner.Event)
}

func (s *windowSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *windowSurface) Subscribe(handler func(roomplanner.Event)) func() {
	s.handler = handler
	return func() { s.handler = nil }
}

func (s *windowSurface) dispatch(ev roomplanner.Event) {
	if s.handler != nil {
		s.handler(ev)
	}
}

// resize reports whether the size changed.
func (s *windowSurface) resize(width, height int) bool {
	if width == s.width && height == s.height {
		return false
	}
	s.width, s.height = width, height
	return true
}
