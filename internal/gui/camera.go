package gui

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	cameraFovy        = 40
	cameraMinDistance = 15
	cameraMaxDistance = 35
	cameraMinPitch    = -0.2
	cameraMaxPitch    = 1.3
	orbitSensitivity  = 0.005
	zoomStep          = 1.5
)

// orbitCamera circles a target. Azimuth 0 looks down -z from +z.
type orbitCamera struct {
	target   mgl32.Vec3
	distance float32
	azimuth  float32
	pitch    float32
}

// newOrbitCamera starts at (0, 4, 20) looking at the origin.
func newOrbitCamera() orbitCamera {
	start := mgl32.Vec3{0, 4, 20}
	d := start.Len()
	return orbitCamera{
		distance: clampf(d, cameraMinDistance, cameraMaxDistance),
		pitch:    math32.Asin(start[1] / d),
	}
}

func (c orbitCamera) position() mgl32.Vec3 {
	cp := math32.Cos(c.pitch)
	return c.target.Add(mgl32.Vec3{
		c.distance * cp * math32.Sin(c.azimuth),
		c.distance * math32.Sin(c.pitch),
		c.distance * cp * math32.Cos(c.azimuth),
	})
}

// drag rotates by a mouse delta in pixels.
func (c *orbitCamera) drag(dx, dy float32) {
	c.azimuth = math32.Mod(c.azimuth-dx*orbitSensitivity, 2*math32.Pi)
	c.pitch = clampf(c.pitch+dy*orbitSensitivity, cameraMinPitch, cameraMaxPitch)
}

// zoom moves closer for positive wheel steps.
func (c *orbitCamera) zoom(steps float32) {
	c.distance = clampf(c.distance-steps*zoomStep, cameraMinDistance, cameraMaxDistance)
}

func (c orbitCamera) camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.position()),
		Target:     toVector3(c.target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cameraFovy,
		Projection: rl.CameraPerspective,
	}
}

func clampf(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
