package actor

import (
	"github.com/akmonengine/bubbles/collide"
	"github.com/akmonengine/bubbles/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// MinMass is the mass of the smallest bubble. It does not split.
const MinMass = 1

// Bubble is a bouncing sphere that splits in two when shot
type Bubble struct {
	destroyable

	ID        uuid.UUID
	Transform Transform
	Velocity  mgl64.Vec3 // per tick
	Mass      int
	Handle    scene.Handle

	radius float64
}

// NewBubble creates a bubble whose radius is mass * radiusPerMass.
// The radius is mirrored into the transform scale.
func NewBubble(position, velocity mgl64.Vec3, mass int, radiusPerMass float64) *Bubble {
	b := &Bubble{
		ID:        uuid.New(),
		Transform: NewTransform(),
		Velocity:  velocity,
		Mass:      mass,
		radius:    float64(mass) * radiusPerMass,
	}
	b.Transform.Position = position
	b.Transform.SetUniformScale(b.radius)
	return b
}

func (b *Bubble) Radius() float64 {
	return b.radius
}

// Sweep returns the segment covered by the centre during the next tick
func (b *Bubble) Sweep() (from, to mgl64.Vec3) {
	return b.Transform.Position, b.Transform.Position.Add(b.Velocity)
}

// Bounds returns the box around the bubble over the next tick
func (b *Bubble) Bounds() collide.AABB {
	from, to := b.Sweep()
	return collide.SweptSphereBounds(from, to, b.radius)
}

// CanSplit reports whether a hit produces children
func (b *Bubble) CanSplit() bool {
	return b.Mass > MinMass
}

// Split returns the positions and velocities of the two children spawned when
// the bubble is hit with contact normal out. The children are pushed apart
// horizontally, perpendicular to the hit, by the child radius.
func (b *Bubble) Split(out mgl64.Vec3, radiusPerMass, speed float64) (positions, velocities [2]mgl64.Vec3) {
	childRadius := float64(b.Mass-1) * radiusPerMass

	flat := collide.SafeNormalize(mgl64.Vec3{out[0], out[1], 0}).Mul(childRadius)
	offset := mgl64.Vec3{-flat[1], flat[0], 0}

	for i, side := range [2]float64{1, -1} {
		o := offset.Mul(side)
		positions[i] = b.Transform.Position.Add(o)
		velocities[i] = mix(o, out, 0.1).Mul(speed)
	}
	return positions, velocities
}

// Reflect removes the velocity component going into a surface of normal n
// and sends it back scaled by restitution
func (b *Bubble) Reflect(n mgl64.Vec3, restitution float64) bool {
	into := b.Velocity.Dot(n)
	if into >= 0 {
		return false
	}
	b.Velocity = b.Velocity.Sub(n.Mul((1 + restitution) * into))
	return true
}

func mix(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
