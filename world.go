package bubbles

import (
	"fmt"

	"github.com/akmonengine/bubbles/actor"
	"github.com/akmonengine/bubbles/collide"
	"github.com/akmonengine/bubbles/level"
	"github.com/akmonengine/bubbles/scene"
	"go.uber.org/zap"
)

const DEFAULT_WORKERS = 1

// Mesh names the entities register in the DrawList
const (
	BubbleMesh = "Bubble"
	BulletMesh = "Bullet"
)

// DrawList is the render registry the world keeps in sync with its entities.
// scene.DrawList implements it.
type DrawList interface {
	Add(p scene.Placement, mesh string) scene.Handle
	Remove(h scene.Handle) bool
}

type World struct {
	Level   *level.Level
	Physics level.Physics
	Arena   collide.AABB

	Player  *actor.Player
	Bubbles []*actor.Bubble
	Bullets []*actor.Bullet

	// Static meshes the bubbles bounce on
	Colliders []*collide.Mesh
	// Workers splits collider sweeps when above 1
	Workers int

	Events Events

	draw     DrawList
	catalog  *scene.Catalog
	logger   *zap.Logger
	restarts uint64
	ticks    uint64
	cleared  bool
}

type Option func(*World)

func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithCatalog sets the meshes level files can use on top of their own.
// The default is scene.Builtin.
func WithCatalog(catalog *scene.Catalog) Option {
	return func(w *World) {
		w.catalog = catalog
	}
}

func WithWorkers(workers int) Option {
	return func(w *World) {
		w.Workers = workers
	}
}

// NewWorld builds the world for lvl and runs the first Restart.
// A nil draw list gets a scene.DrawList.
func NewWorld(lvl *level.Level, draw DrawList, opts ...Option) (*World, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Level:   lvl,
		Physics: lvl.Physics,
		Arena:   lvl.Arena.AABB(),
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
		draw:    draw,
		catalog: scene.Builtin(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.draw == nil {
		w.draw = scene.NewDrawList()
	}

	catalog, err := lvl.Catalog(w.catalog)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}
	w.catalog = catalog

	w.Colliders, err = lvl.BuildColliders(catalog)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	w.logger = w.logger.With(zap.String("level", lvl.Name))
	w.Restart()
	return w, nil
}

// Catalog returns the meshes visible to the level
func (w *World) Catalog() *scene.Catalog {
	return w.catalog
}

// Won reports whether every bubble has been popped
func (w *World) Won() bool {
	return len(w.Bubbles) == 0
}

// Restarts counts the calls to Restart, including the one made by NewWorld
func (w *World) Restarts() uint64 {
	return w.restarts
}

// Ticks counts the steps run since the last restart. Paused steps are not counted.
func (w *World) Ticks() uint64 {
	return w.ticks
}
