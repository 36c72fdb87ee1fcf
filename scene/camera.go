package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the view the renderer draws from. Nothing in the simulation reads it.
type Camera struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat

	FovY   float64 // radians
	Aspect float64
	Near   float64
	Far    float64
}

func NewCamera() Camera {
	return Camera{
		Rotation: mgl64.QuatIdent(),
		FovY:     60.0 / 180.0 * math.Pi,
		Aspect:   1,
		Near:     0.01,
		Far:      1000,
	}
}

// Follow places the camera at the given eye, looking down its local -z
func (c *Camera) Follow(position mgl64.Vec3, rotation mgl64.Quat) {
	c.Position = position
	c.Rotation = rotation
}

// View returns the world to camera matrix
func (c Camera) View() mgl64.Mat4 {
	return c.Rotation.Conjugate().Mat4().Mul4(mgl64.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2]))
}

func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}
