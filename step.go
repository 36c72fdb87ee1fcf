package bubbles

import (
	"context"

	"github.com/akmonengine/bubbles/actor"
	"github.com/akmonengine/bubbles/collide"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step advances the game by one tick of elapsed seconds.
// Velocities are per tick: elapsed only drives the gun cooldown, friction
// and gravity.
func (w *World) Step(elapsed float64) {
	// Phase 1: nothing moves while paused
	if w.Player.Controls.Pause {
		return
	}

	// Phase 2: gun
	w.fire(elapsed)

	// Phase 3: player velocity
	w.Player.Accelerate(w.Physics.PlayerAccel)
	w.Player.Friction(elapsed, w.Physics.FrictionHalfLife)

	// Phase 4: gravity
	dv := w.Physics.Gravity * elapsed
	task(w.Workers, w.Bubbles, func(b *actor.Bubble) {
		b.Velocity[2] += dv
	})

	// Phase 5: bubble-wall, tested on the position after this tick
	w.bounceWalls()

	// Phase 6: bubble-mesh
	w.bounceColliders()

	// Phase 7: bullet-bubble
	w.shootBubbles()

	// Phase 8: player position
	w.Player.Move(w.Arena)

	// Phase 9: bubble positions
	task(w.Workers, w.Bubbles, func(b *actor.Bubble) {
		if !b.IsDestroyed() {
			b.Transform.Position = b.Transform.Position.Add(b.Velocity)
		}
	})

	// Phase 10: bullet-wall and bullet positions
	w.moveBullets()

	// Phase 11: drop destroyed entities, then report
	w.compact()
	w.ticks++
	if !w.cleared && w.Won() {
		w.cleared = true
		w.Events.emit(LevelClearedEvent{Level: w.Level.Name, Restart: w.restarts, Ticks: w.ticks})
		w.logger.Info("level cleared", zap.Uint64("ticks", w.ticks))
	}
	w.Events.flush()
}

func (w *World) fire(elapsed float64) {
	p := w.Player
	if p.Cooldown > 0 {
		p.Cooldown -= elapsed
	}
	if !p.Controls.Fire || p.Cooldown > 0 {
		return
	}

	b := w.spawnBullet(p.Transform.Position, p.Forward().Mul(w.Physics.BulletSpeed))
	p.Cooldown += w.Physics.GunCooldown

	w.Events.emit(BulletFiredEvent{Bullet: b.ID, Position: b.Transform.Position, Velocity: b.Velocity})
}

// bounceWalls reflects, axis by axis, the velocity of bubbles that would end
// the tick outside the arena shrunk by their radius.
func (w *World) bounceWalls() {
	for _, b := range w.Bubbles {
		inner := w.Arena.Shrink(b.Radius())
		next := b.Transform.Position.Add(b.Velocity)

		for axis := range 3 {
			var normal mgl64.Vec3
			switch {
			case next[axis] < inner.Min[axis]:
				normal[axis] = 1
			case next[axis] > inner.Max[axis]:
				normal[axis] = -1
			default:
				continue
			}
			b.Velocity[axis] = -w.Physics.WallRestitution * b.Velocity[axis]
			w.Events.emit(BubbleBounceEvent{Bubble: b.ID, Surface: SURFACE_WALL, Normal: normal})
		}
	}
}

// bounceColliders sweeps every bubble against the static meshes and reflects
// its velocity on the earliest contact.
func (w *World) bounceColliders() {
	if len(w.Colliders) == 0 {
		return
	}

	for _, b := range w.Bubbles {
		from, to := b.Sweep()
		hit := collide.NewHit()
		found := false
		for _, mesh := range w.Colliders {
			if w.sweepMesh(mesh, from, to, b.Radius(), &hit) {
				found = true
			}
		}
		if !found {
			continue
		}

		if b.Reflect(hit.Out, w.Physics.WallRestitution) {
			w.Events.emit(BubbleBounceEvent{Bubble: b.ID, Surface: SURFACE_MESH, Normal: hit.Out})
		}
	}
}

func (w *World) sweepMesh(mesh *collide.Mesh, from, to mgl64.Vec3, radius float64, hit *collide.Hit) bool {
	if w.Workers <= 1 {
		return mesh.Sweep(from, to, radius, hit)
	}
	found, err := mesh.SweepParallel(context.Background(), from, to, radius, w.Workers, hit)
	if err != nil {
		w.logger.Error("collider sweep failed", zap.Error(err))
		return false
	}
	return found
}

// shootBubbles pops the first bubble each bullet touches during the tick.
// Children spawned here are appended to the scan, so later bullets can hit
// them in the same tick.
func (w *World) shootBubbles() {
	for _, bullet := range w.Bullets {
		if bullet.IsDestroyed() {
			continue
		}
		bulletBounds := bullet.Bounds()
		bulletFrom, bulletTo := bullet.Sweep()

		for i := 0; i < len(w.Bubbles); i++ {
			b := w.Bubbles[i]
			if b.IsDestroyed() || !b.Bounds().Overlaps(bulletBounds) {
				continue
			}

			from, to := b.Sweep()
			hit := collide.NewHit()
			if !collide.SweptSphereVsSweptSphere(from, to, b.Radius(), bulletFrom, bulletTo, bullet.Radius(), &hit) {
				continue
			}

			w.popBubble(b, bullet, hit)
			break
		}
	}
}

func (w *World) popBubble(b *actor.Bubble, bullet *actor.Bullet, hit collide.Hit) {
	w.Events.emit(BubbleHitEvent{
		Bubble: b.ID,
		Bullet: bullet.ID,
		Mass:   b.Mass,
		T:      hit.T,
		At:     hit.At,
		Out:    hit.Out,
	})
	w.logger.Debug("bubble hit",
		zap.Stringer("bubble", b.ID),
		zap.Stringer("bullet", bullet.ID),
		zap.Int("mass", b.Mass),
		zap.Float64("t", hit.T),
	)

	if b.CanSplit() {
		positions, velocities := b.Split(hit.Out, w.Physics.BubbleRadiusPerMass, w.Physics.SplitSpeed)
		first := w.spawnBubble(positions[0], velocities[0], b.Mass-1)
		second := w.spawnBubble(positions[1], velocities[1], b.Mass-1)

		w.Events.emit(BubbleSplitEvent{Parent: b.ID, Children: [2]uuid.UUID{first.ID, second.ID}, Mass: b.Mass - 1})
		w.logger.Debug("bubble split", zap.Stringer("bubble", b.ID), zap.Int("mass", b.Mass-1))
	}

	w.destroyBubble(b)
	w.destroyBullet(bullet)
}

// moveBullets despawns bullets that would leave the x/y extent of the arena
// and moves the others.
func (w *World) moveBullets() {
	for _, b := range w.Bullets {
		if b.IsDestroyed() {
			continue
		}
		next := b.Transform.Position.Add(b.Velocity)
		if next[0] < w.Arena.Min[0] || next[0] > w.Arena.Max[0] ||
			next[1] < w.Arena.Min[1] || next[1] > w.Arena.Max[1] {
			w.Events.emit(BulletDespawnEvent{Bullet: b.ID, Position: b.Transform.Position})
			w.logger.Debug("bullet left the arena", zap.Stringer("bullet", b.ID))
			w.destroyBullet(b)
			continue
		}
		b.Transform.Position = next
	}
}
