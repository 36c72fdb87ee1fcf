package scene

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/akmonengine/bubbles/collide"
	"github.com/go-gl/mathgl/mgl64"
)

// MeshData is a named triangle list in mesh-local space
type MeshData struct {
	Name      string
	Triangles []collide.Triangle
}

// Catalog maps mesh names to geometry.
// It is filled once by NewCatalog and is read-only afterwards, so it can be
// shared between worlds. Lookups that miss fall through to the parent.
type Catalog struct {
	parent *Catalog
	meshes map[string][]collide.Triangle
}

// NewCatalog builds a catalog on top of parent, which may be nil.
// A name may only appear once, including in the parent chain.
func NewCatalog(parent *Catalog, meshes ...MeshData) (*Catalog, error) {
	c := &Catalog{
		parent: parent,
		meshes: make(map[string][]collide.Triangle, len(meshes)),
	}
	for _, m := range meshes {
		if _, err := c.Lookup(m.Name); err == nil {
			return nil, fmt.Errorf("%w: %q", ErrMeshExists, m.Name)
		}
		c.meshes[m.Name] = slices.Clone(m.Triangles)
	}
	return c, nil
}

// Lookup returns the triangles registered under name. The slice must not be modified.
func (c *Catalog) Lookup(name string) ([]collide.Triangle, error) {
	for cat := c; cat != nil; cat = cat.parent {
		if tris, ok := cat.meshes[name]; ok {
			return tris, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMeshNotFound, name)
}

// Names lists every name visible from c, sorted
func (c *Catalog) Names() []string {
	seen := make(map[string]struct{})
	for cat := c; cat != nil; cat = cat.parent {
		for name := range cat.meshes {
			seen[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Collider returns the mesh registered under name placed by m, ready for sweeps
func (c *Catalog) Collider(name string, m mgl64.Mat4, cellSize float64) (*collide.Mesh, error) {
	tris, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	placed := make([]collide.Triangle, len(tris))
	for i, tri := range tris {
		placed[i] = tri.Transform(m)
	}
	return collide.NewMesh(placed, cellSize), nil
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the catalog of primitive meshes every level can use:
// "Quad" is the square [-1,1]x[-1,1] at z=0 and "Box" the cube [-1,1]^3.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		builtin = &Catalog{
			meshes: map[string][]collide.Triangle{
				"Quad": quad(),
				"Box":  box(),
			},
		}
	})
	return builtin
}

func quad() []collide.Triangle {
	return []collide.Triangle{
		{A: mgl64.Vec3{-1, -1, 0}, B: mgl64.Vec3{1, -1, 0}, C: mgl64.Vec3{1, 1, 0}},
		{A: mgl64.Vec3{-1, -1, 0}, B: mgl64.Vec3{1, 1, 0}, C: mgl64.Vec3{-1, 1, 0}},
	}
}

func box() []collide.Triangle {
	// corner i has x = bit 0, y = bit 1, z = bit 2
	var c [8]mgl64.Vec3
	for i := range c {
		c[i] = mgl64.Vec3{float64(i&1)*2 - 1, float64(i>>1&1)*2 - 1, float64(i>>2&1)*2 - 1}
	}
	faces := [6][4]int{
		{0, 2, 3, 1}, // -z
		{4, 5, 7, 6}, // +z
		{0, 1, 5, 4}, // -y
		{2, 6, 7, 3}, // +y
		{0, 4, 6, 2}, // -x
		{1, 3, 7, 5}, // +x
	}

	tris := make([]collide.Triangle, 0, 12)
	for _, f := range faces {
		tris = append(tris,
			collide.Triangle{A: c[f[0]], B: c[f[1]], C: c[f[2]]},
			collide.Triangle{A: c[f[0]], B: c[f[2]], C: c[f[3]]},
		)
	}
	return tris
}
