package roomplanner

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type CameraMode string

const (
	ModeFixed   CameraMode = "fixed"
	ModeExplore CameraMode = "explore"
)

func ParseCameraMode(s string) (CameraMode, error) {
	switch CameraMode(s) {
	case ModeFixed, ModeExplore:
		return CameraMode(s), nil
	}
	return ModeFixed, fmt.Errorf("unknown camera mode %q", s)
}

// LookAtTarget is the fixed focal point slightly above the floor centre.
var LookAtTarget = Vector3{0, 1, 0}

// Camera is an orbit camera on a sphere around LookAtTarget. Polar is the
// elevation above the floor plane.
type Camera struct {
	Azimuth float64
	Polar   float64
	Radius  float64
	Mode    CameraMode

	cfg    CameraConfig
	aspect float64
	eye    Vector3
	view   mgl64.Mat4
}

func NewCamera(cfg CameraConfig) *Camera {
	mode, _ := ParseCameraMode(cfg.Mode)
	c := &Camera{
		Mode:   mode,
		cfg:    cfg,
		aspect: 1,
	}
	c.Reset()
	return c
}

// Reset restores the initial spherical state and recomputes the pose.
// The mode is left alone.
func (c *Camera) Reset() {
	c.Azimuth = c.cfg.Azimuth
	c.Polar = clampFloat(c.cfg.Polar, c.cfg.MinPolar, c.cfg.MaxPolar)
	c.Radius = clampFloat(c.cfg.Radius, c.cfg.MinRadius, c.cfg.MaxRadius)
	c.UpdatePose()
}

func (c *Camera) UpdatePose() {
	cosPolar := math.Cos(c.Polar)
	c.eye = Vector3{
		X: c.Radius * math.Sin(c.Azimuth) * cosPolar,
		Y: c.Radius * math.Sin(c.Polar),
		Z: c.Radius * math.Cos(c.Azimuth) * cosPolar,
	}
	c.view = mgl64.LookAtV(c.eye.Vec3(), LookAtTarget.Vec3(), mgl64.Vec3{0, 1, 0})
}

func (c *Camera) ApplyOrbitDelta(dx, dy float64) {
	c.Azimuth -= dx * c.cfg.OrbitSpeed
	c.Polar = clampFloat(c.Polar+dy*c.cfg.OrbitSpeed, c.cfg.MinPolar, c.cfg.MaxPolar)
	c.UpdatePose()
}

func (c *Camera) ApplyZoomDelta(deltaY float64) {
	c.Radius = clampFloat(c.Radius+deltaY*c.cfg.ZoomSpeed, c.cfg.MinRadius, c.cfg.MaxRadius)
	c.UpdatePose()
}

func (c *Camera) SetMode(mode CameraMode) {
	c.Mode = mode
}

// SetAspect updates the projection aspect ratio. Degenerate sizes are ignored.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return
	}
	c.aspect = aspect
}

func (c *Camera) Aspect() float64 {
	return c.aspect
}

func (c *Camera) Eye() Vector3 {
	return c.eye
}

func (c *Camera) View() mgl64.Mat4 {
	return c.view
}

func (c *Camera) Near() float64 {
	return c.cfg.Near
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.cfg.FieldOfView), c.aspect, c.cfg.Near, c.cfg.Far)
}
