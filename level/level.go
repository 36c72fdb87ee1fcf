package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/bubbles/collide"
	"github.com/akmonengine/bubbles/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// Level is the starting state of a game, as stored in a level file.
// Vectors are written as [x, y, z] sequences.
type Level struct {
	Name string `yaml:"name"`
	// Seed drives the random bubbles. Zero derives one from the name.
	Seed uint64 `yaml:"seed,omitempty"`

	Arena     Arena         `yaml:"arena"`
	Player    PlayerStart   `yaml:"player"`
	Bubbles   []BubbleSpawn `yaml:"bubbles,omitempty"`
	Random    RandomBubbles `yaml:"random_bubbles"`
	Meshes    []Mesh        `yaml:"meshes,omitempty"`
	Colliders []Collider    `yaml:"colliders,omitempty"`
	Physics   Physics       `yaml:"physics"`
}

type Arena struct {
	Min mgl64.Vec3 `yaml:"min"`
	Max mgl64.Vec3 `yaml:"max"`
}

func (a Arena) AABB() collide.AABB {
	return collide.AABB{Min: a.Min, Max: a.Max}
}

type PlayerStart struct {
	Position  mgl64.Vec3 `yaml:"position"`
	Azimuth   float64    `yaml:"azimuth"`
	Elevation float64    `yaml:"elevation"`
}

// BubbleSpawn is a bubble placed by hand
type BubbleSpawn struct {
	Position mgl64.Vec3 `yaml:"position"`
	Velocity mgl64.Vec3 `yaml:"velocity"`
	Mass     int        `yaml:"mass"`
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) valid() bool {
	return r.Min <= r.Max && !math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

// RandomBubbles describes the bubbles rolled at every restart.
// Velocities only get a horizontal component, both drawn from Speed.
type RandomBubbles struct {
	MinCount int   `yaml:"min_count"`
	MaxCount int   `yaml:"max_count"`
	Mass     int   `yaml:"mass"`
	XY       Range `yaml:"xy"`
	Z        Range `yaml:"z"`
	Speed    Range `yaml:"speed"`
}

// Mesh is collision geometry in mesh-local space
type Mesh struct {
	Name      string          `yaml:"name"`
	Triangles [][3]mgl64.Vec3 `yaml:"triangles"`
}

// Collider places a named mesh in the arena. Rotation is in degrees around x, y then z.
type Collider struct {
	Mesh     string     `yaml:"mesh"`
	Position mgl64.Vec3 `yaml:"position"`
	Rotation mgl64.Vec3 `yaml:"rotation"`
	Scale    mgl64.Vec3 `yaml:"scale"`
}

func (c Collider) Matrix() mgl64.Mat4 {
	rot := mgl64.AnglesToQuat(
		mgl64.DegToRad(c.Rotation[0]),
		mgl64.DegToRad(c.Rotation[1]),
		mgl64.DegToRad(c.Rotation[2]),
		mgl64.XYZ,
	)
	scale := c.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	return mgl64.Translate3D(c.Position[0], c.Position[1], c.Position[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// Default returns the values a level file starts from: a 40 by 40 arena 15 high,
// the player in its middle and one to four random bubbles of mass 3.
func Default() Level {
	return Level{
		Arena: Arena{
			Min: mgl64.Vec3{-20, -20, 0},
			Max: mgl64.Vec3{20, 20, 15},
		},
		Player: PlayerStart{
			Position: mgl64.Vec3{0, 0, 1.5},
		},
		Random: RandomBubbles{
			MinCount: 1,
			MaxCount: 4,
			Mass:     3,
			XY:       Range{Min: -10, Max: 10},
			Z:        Range{Min: 6, Max: 10},
			Speed:    Range{Min: 0.05, Max: 0.2},
		},
		Physics: DefaultPhysics(),
	}
}

// Validate checks the level and its physics. Every problem found is reported.
func (l *Level) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(l.Name != "", "name is empty")

	arena := l.Arena.AABB()
	for axis := range 3 {
		check(l.Arena.Min[axis] < l.Arena.Max[axis], "arena is empty on axis %d", axis)
	}

	for i, b := range l.Bubbles {
		check(b.Mass >= 1, "bubble %d: mass %d below 1", i, b.Mass)
		check(arena.ContainsPoint(b.Position), "bubble %d: %v outside the arena", i, b.Position)
	}

	r := l.Random
	check(r.MinCount >= 0 && r.MinCount <= r.MaxCount, "random_bubbles: count range [%d,%d] is invalid", r.MinCount, r.MaxCount)
	if r.MaxCount > 0 {
		check(r.Mass >= 1, "random_bubbles: mass %d below 1", r.Mass)
		check(r.XY.valid() && r.Z.valid() && r.Speed.valid(), "random_bubbles: a range has min above max")
	}

	names := make(map[string]struct{}, len(l.Meshes))
	for i, m := range l.Meshes {
		check(m.Name != "", "mesh %d: name is empty", i)
		check(len(m.Triangles) > 0, "mesh %q has no triangles", m.Name)
		_, dup := names[m.Name]
		check(!dup, "mesh %q declared twice", m.Name)
		names[m.Name] = struct{}{}
	}
	for i, c := range l.Colliders {
		check(c.Mesh != "", "collider %d: mesh is empty", i)
	}

	if err := l.Physics.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.Name, errors.Join(errs...))
	}
	return nil
}

// Catalog registers the level meshes on top of parent
func (l *Level) Catalog(parent *scene.Catalog) (*scene.Catalog, error) {
	meshes := make([]scene.MeshData, 0, len(l.Meshes))
	for _, m := range l.Meshes {
		tris := make([]collide.Triangle, len(m.Triangles))
		for i, t := range m.Triangles {
			tris[i] = collide.Triangle{A: t[0], B: t[1], C: t[2]}
		}
		meshes = append(meshes, scene.MeshData{Name: m.Name, Triangles: tris})
	}
	return scene.NewCatalog(parent, meshes...)
}

// BuildColliders places every collider of the level, looking meshes up in catalog
func (l *Level) BuildColliders(catalog *scene.Catalog) ([]*collide.Mesh, error) {
	out := make([]*collide.Mesh, 0, len(l.Colliders))
	for i, c := range l.Colliders {
		mesh, err := catalog.Collider(c.Mesh, c.Matrix(), l.Physics.ColliderCellSize)
		if err != nil {
			return nil, fmt.Errorf("collider %d: %w", i, err)
		}
		out = append(out, mesh)
	}
	return out, nil
}
