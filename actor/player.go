package actor

import (
	"math"

	"github.com/akmonengine/bubbles/collide"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxElevation is how far the view can tilt up or down
const MaxElevation = 89.0 / 180.0 * math.Pi

// Controls is the input state sampled at every tick
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Fire     bool
	Pause    bool
}

// Player is the shooter. It walks on the arena floor and looks around freely.
type Player struct {
	Transform Transform
	Velocity  mgl64.Vec3 // per tick
	Controls  Controls

	// Azimuth turns around +z, in [-pi, pi). A positive Elevation looks down.
	Azimuth   float64
	Elevation float64

	// Cooldown is the time left before the gun can fire again
	Cooldown float64
}

func NewPlayer(position mgl64.Vec3) *Player {
	p := &Player{Transform: NewTransform()}
	p.Transform.Position = position
	p.Transform.Rotation = p.Frame()
	return p
}

// Look turns the view by the given angles, in radians
func (p *Player) Look(dAzimuth, dElevation float64) {
	az := (p.Azimuth + dAzimuth) / (2 * math.Pi)
	az -= math.Round(az)
	p.Azimuth = az * 2 * math.Pi
	if p.Azimuth >= math.Pi {
		p.Azimuth -= 2 * math.Pi
	}

	p.Elevation = mgl64.Clamp(p.Elevation+dElevation, -MaxElevation, MaxElevation)
}

// Frame returns the view rotation. The view looks down its local -z.
func (p *Player) Frame() mgl64.Quat {
	return mgl64.QuatRotate(p.Azimuth, mgl64.Vec3{0, 0, 1}).
		Mul(mgl64.QuatRotate(-p.Elevation+0.5*math.Pi, mgl64.Vec3{1, 0, 0}))
}

// Forward returns the unit view direction
func (p *Player) Forward() mgl64.Vec3 {
	return p.Frame().Rotate(mgl64.Vec3{0, 0, -1})
}

// Accelerate adds accel along the horizontal direction the controls ask for,
// relative to where the player looks.
func (p *Player) Accelerate(accel float64) {
	var dir mgl64.Vec3
	if p.Controls.Left {
		dir[0] -= 1
	}
	if p.Controls.Right {
		dir[0] += 1
	}
	if p.Controls.Backward {
		dir[1] -= 1
	}
	if p.Controls.Forward {
		dir[1] += 1
	}
	if dir == (mgl64.Vec3{}) {
		return
	}
	dir = dir.Normalize()

	ca, sa := math.Cos(p.Azimuth), math.Sin(p.Azimuth)
	right := mgl64.Vec3{ca, sa, 0}
	ahead := mgl64.Vec3{-sa, ca, 0}
	p.Velocity = p.Velocity.Add(right.Mul(dir[0]).Add(ahead.Mul(dir[1])).Mul(accel))
}

// Friction halves the velocity every halfLife seconds
func (p *Player) Friction(elapsed, halfLife float64) {
	p.Velocity = p.Velocity.Mul(math.Pow(0.5, elapsed/halfLife))
}

// Move integrates the velocity, keeps the player inside the x/y extent of
// the arena and turns the transform to the view.
func (p *Player) Move(arena collide.AABB) {
	pos := p.Transform.Position.Add(p.Velocity)
	pos[0] = mgl64.Clamp(pos[0], arena.Min[0], arena.Max[0])
	pos[1] = mgl64.Clamp(pos[1], arena.Min[1], arena.Max[1])
	p.Transform.Position = pos
	p.Transform.Rotation = p.Frame()
}
