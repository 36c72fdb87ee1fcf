package main

import (
	"context"
	"embed"
	"io/fs"
	"math"
	"os"
	"os/signal"

	"github.com/akmonengine/bubbles"
	"github.com/akmonengine/bubbles/actor"
	"github.com/akmonengine/bubbles/internal/config"
	"github.com/akmonengine/bubbles/level"
	"github.com/akmonengine/bubbles/scene"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const tick = 1.0 / 60

//go:embed levels/*.yaml
var builtinLevels embed.FS

func main() {
	logger := newLogger(config.GetEnv("BUBBLES_LOG_LEVEL", "info"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fsys, names, err := levelFiles(config.GetEnv("BUBBLES_LEVEL_DIR", ""))
	if err != nil {
		logger.Fatal("listing levels", zap.Error(err))
	}

	levels, err := level.LoadAll(ctx, fsys, names...)
	if err != nil {
		logger.Fatal("loading levels", zap.Error(err))
	}

	maxTicks := config.GetEnvInt("BUBBLES_TICKS", 60*60)
	for _, lvl := range levels {
		if ctx.Err() != nil {
			break
		}
		if err := play(ctx, lvl, maxTicks, logger); err != nil {
			logger.Fatal("starting level", zap.String("level", lvl.Name), zap.Error(err))
		}
	}
}

func newLogger(name string) *zap.Logger {
	zapLevel, err := zapcore.ParseLevel(name)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// levelFiles lists the yaml files of dir, or the embedded levels when dir is empty
func levelFiles(dir string) (fs.FS, []string, error) {
	var fsys fs.FS = builtinLevels
	pattern := "levels/*.yaml"
	if dir != "" {
		fsys = os.DirFS(dir)
		pattern = "*.yaml"
	}

	names, err := fs.Glob(fsys, pattern)
	return fsys, names, err
}

// play runs a level with a player that turns towards the nearest bubble and
// keeps the trigger pressed, until the level is cleared or maxTicks ran out.
func play(ctx context.Context, lvl *level.Level, maxTicks int, logger *zap.Logger) error {
	draw := scene.NewDrawList()
	world, err := bubbles.NewWorld(lvl, draw, bubbles.WithLogger(logger))
	if err != nil {
		return err
	}

	stats := make(map[bubbles.EventType]int)
	count := func(e bubbles.Event) { stats[e.Type()]++ }
	for _, t := range []bubbles.EventType{
		bubbles.BULLET_FIRED,
		bubbles.BUBBLE_HIT,
		bubbles.BUBBLE_SPLIT,
		bubbles.BUBBLE_BOUNCE,
		bubbles.BULLET_DESPAWN,
	} {
		world.Events.Subscribe(t, count)
	}
	world.Events.Subscribe(bubbles.LEVEL_CLEARED, func(e bubbles.Event) {
		cleared := e.(bubbles.LevelClearedEvent)
		logger.Info("cleared", zap.String("level", cleared.Level), zap.Uint64("ticks", cleared.Ticks))
	})

	camera := scene.NewCamera()
	world.Player.Controls.Fire = true
	for range maxTicks {
		if world.Won() || ctx.Err() != nil {
			break
		}
		aim(world.Player, world.Bubbles)
		world.Step(tick)
		camera.Follow(world.Player.Transform.Position, world.Player.Transform.Rotation)
	}

	logger.Info("level finished",
		zap.String("level", lvl.Name),
		zap.Bool("won", world.Won()),
		zap.Uint64("ticks", world.Ticks()),
		zap.Int("bubbles_left", len(world.Bubbles)),
		zap.Int("drawables", draw.Len()),
		zap.Int("fired", stats[bubbles.BULLET_FIRED]),
		zap.Int("hits", stats[bubbles.BUBBLE_HIT]),
		zap.Int("splits", stats[bubbles.BUBBLE_SPLIT]),
		zap.Int("bounces", stats[bubbles.BUBBLE_BOUNCE]),
		zap.Int("misses", stats[bubbles.BULLET_DESPAWN]),
		zap.Float64s("eye", camera.Position[:]),
	)
	return nil
}

// aim turns the view towards the bubble closest to the player
func aim(p *actor.Player, targets []*actor.Bubble) {
	var best mgl64.Vec3
	bestDist := math.Inf(1)
	for _, b := range targets {
		d := b.Transform.Position.Sub(p.Transform.Position)
		if l := d.Len(); l < bestDist {
			best, bestDist = d, l
		}
	}
	if math.IsInf(bestDist, 1) || bestDist == 0 {
		return
	}

	dir := best.Mul(1 / bestDist)
	azimuth := math.Atan2(-dir.X(), dir.Y())
	elevation := -math.Asin(dir.Z())
	p.Look(azimuth-p.Azimuth, elevation-p.Elevation)
}
