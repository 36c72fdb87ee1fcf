package actor

import (
	"github.com/akmonengine/bubbles/collide"
	"github.com/akmonengine/bubbles/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Bullet flies in a straight line until it hits a bubble or leaves the arena
type Bullet struct {
	destroyable

	ID        uuid.UUID
	Transform Transform
	Velocity  mgl64.Vec3 // per tick
	Handle    scene.Handle

	radius float64
}

func NewBullet(position, velocity mgl64.Vec3, radius float64) *Bullet {
	b := &Bullet{
		ID:        uuid.New(),
		Transform: NewTransform(),
		Velocity:  velocity,
		radius:    radius,
	}
	b.Transform.Position = position
	b.Transform.SetUniformScale(radius)
	return b
}

func (b *Bullet) Radius() float64 {
	return b.radius
}

func (b *Bullet) Sweep() (from, to mgl64.Vec3) {
	return b.Transform.Position, b.Transform.Position.Add(b.Velocity)
}

func (b *Bullet) Bounds() collide.AABB {
	from, to := b.Sweep()
	return collide.SweptSphereBounds(from, to, b.radius)
}
