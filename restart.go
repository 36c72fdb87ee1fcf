package bubbles

import (
	"math/rand/v2"

	"github.com/akmonengine/bubbles/actor"
	"github.com/akmonengine/bubbles/level"
	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Restart puts the level back to its starting state. Hand placed bubbles come
// back as they are, random ones are rolled again from the level seed and the
// restart count, so a given restart always produces the same layout.
func (w *World) Restart() {
	for _, b := range w.Bubbles {
		w.destroyBubble(b)
	}
	for _, b := range w.Bullets {
		w.destroyBullet(b)
	}
	w.compact()
	w.Events.drop()

	var controls actor.Controls
	if w.Player != nil {
		controls = w.Player.Controls
	}
	w.Player = actor.NewPlayer(w.Level.Player.Position)
	w.Player.Look(w.Level.Player.Azimuth, w.Level.Player.Elevation)
	w.Player.Transform.Rotation = w.Player.Frame()
	w.Player.Controls = controls

	for _, spawn := range w.Level.Bubbles {
		w.spawnBubble(spawn.Position, spawn.Velocity, spawn.Mass)
	}

	rng := rand.New(rand.NewPCG(w.seed(), w.restarts))
	random := w.Level.Random
	count := 0
	if random.MaxCount > 0 {
		count = random.MinCount + rng.IntN(random.MaxCount-random.MinCount+1)
	}
	for range count {
		position := mgl64.Vec3{uniform(rng, random.XY), uniform(rng, random.XY), uniform(rng, random.Z)}
		velocity := mgl64.Vec3{uniform(rng, random.Speed), uniform(rng, random.Speed), 0}
		w.spawnBubble(position, velocity, random.Mass)
	}

	w.ticks = 0
	w.cleared = false
	w.restarts++

	w.logger.Info("level restarted",
		zap.Uint64("restart", w.restarts),
		zap.Int("bubbles", len(w.Bubbles)),
		zap.Int("random", count),
	)
}

// seed is the level seed, or a hash of its name when it has none
func (w *World) seed() uint64 {
	if w.Level.Seed != 0 {
		return w.Level.Seed
	}
	return xxhash.Sum64String(w.Level.Name)
}

func uniform(rng *rand.Rand, r level.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
