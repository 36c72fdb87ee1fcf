package bubbles

import (
	"github.com/akmonengine/bubbles/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Entities and their drawables are created and released together.
// destroyBubble and destroyBullet are the only ways to remove an entity;
// the slices are compacted once the current scan is over.

func (w *World) spawnBubble(position, velocity mgl64.Vec3, mass int) *actor.Bubble {
	b := actor.NewBubble(position, velocity, mass, w.Physics.BubbleRadiusPerMass)
	b.Handle = w.draw.Add(&b.Transform, BubbleMesh)
	w.Bubbles = append(w.Bubbles, b)
	return b
}

func (w *World) spawnBullet(position, velocity mgl64.Vec3) *actor.Bullet {
	b := actor.NewBullet(position, velocity, w.Physics.BulletRadius)
	b.Handle = w.draw.Add(&b.Transform, BulletMesh)
	w.Bullets = append(w.Bullets, b)
	return b
}

func (w *World) destroyBubble(b *actor.Bubble) {
	if b.IsDestroyed() {
		return
	}
	b.MarkDestroyed()
	if !w.draw.Remove(b.Handle) {
		w.logger.Warn("bubble drawable already released", zap.Stringer("bubble", b.ID))
	}
	b.Handle = 0
}

func (w *World) destroyBullet(b *actor.Bullet) {
	if b.IsDestroyed() {
		return
	}
	b.MarkDestroyed()
	if !w.draw.Remove(b.Handle) {
		w.logger.Warn("bullet drawable already released", zap.Stringer("bullet", b.ID))
	}
	b.Handle = 0
}

func (w *World) compact() {
	w.Bubbles = actor.Compact(w.Bubbles)
	w.Bullets = actor.Compact(w.Bullets)
}
