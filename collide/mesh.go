package collide

import (
	"context"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// Mesh is a static triangle soup ready for swept-sphere queries.
// It is immutable once built and safe for concurrent queries.
type Mesh struct {
	triangles []Triangle
	bounds    AABB
	grid      *SpatialGrid
}

// NewMesh builds a mesh and its broad phase grid.
// A cellSize <= 0 picks the mean triangle extent.
func NewMesh(triangles []Triangle, cellSize float64) *Mesh {
	m := &Mesh{triangles: append([]Triangle(nil), triangles...)}
	if len(m.triangles) == 0 {
		m.grid = NewSpatialGrid(1, 1)
		return m
	}

	m.bounds = m.triangles[0].AABB()
	extent := 0.0
	for _, tri := range m.triangles {
		b := tri.AABB()
		m.bounds = m.bounds.Union(b)
		size := b.Max.Sub(b.Min)
		extent += math.Max(size[0], math.Max(size[1], size[2]))
	}
	if cellSize <= 0 {
		cellSize = extent / float64(len(m.triangles))
		if cellSize <= 0 {
			cellSize = 1
		}
	}

	m.grid = NewSpatialGrid(cellSize, 4*len(m.triangles))
	for i, tri := range m.triangles {
		m.grid.Insert(i, tri.AABB())
	}
	return m
}

// Triangles returns the triangles of the mesh. The slice must not be modified.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// Bounds returns the box around every triangle
func (m *Mesh) Bounds() AABB {
	return m.bounds
}

// candidates returns, without duplicates, the triangles whose cells overlap bounds.
func (m *Mesh) candidates(bounds AABB) []int {
	if len(m.triangles) == 0 || !bounds.Overlaps(m.bounds) {
		return nil
	}

	seen := make([]bool, len(m.triangles))
	out := make([]int, 0, 16)
	ok := m.grid.Query(bounds, func(idx int) {
		if seen[idx] {
			return
		}
		seen[idx] = true
		out = append(out, idx)
	})
	if !ok {
		out = out[:0]
		for i := range m.triangles {
			out = append(out, i)
		}
	}
	return out
}

// Sweep finds the earliest contact between the moving sphere and any triangle of the mesh.
func (m *Mesh) Sweep(from, to mgl64.Vec3, radius float64, hit *Hit) bool {
	local := hit
	if local == nil {
		scratch := NewHit()
		local = &scratch
	}

	collided := false
	for _, idx := range m.candidates(SweptSphereBounds(from, to, radius)) {
		if SweptSphereVsTriangle(from, to, radius, m.triangles[idx], local) {
			collided = true
		}
	}
	return collided
}

// SweepParallel is Sweep with the candidate triangles split across workers.
// Each worker folds its share into its own Hit and the earliest one wins,
// so the result is the same as Sweep. It only fails when ctx is cancelled.
func (m *Mesh) SweepParallel(ctx context.Context, from, to mgl64.Vec3, radius float64, workers int, hit *Hit) (bool, error) {
	workers = max(1, workers)
	candidates := m.candidates(SweptSphereBounds(from, to, radius))
	if len(candidates) == 0 {
		return false, ctx.Err()
	}

	seed := NewHit()
	if hit != nil {
		seed = *hit
	}

	chunkSize := (len(candidates) + workers - 1) / workers
	results := make([]Hit, workers)
	found := make([]bool, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, len(candidates))
		if start >= end {
			break
		}
		results[w] = seed
		g.Go(func() error {
			for _, idx := range candidates[start:end] {
				if err := ctx.Err(); err != nil {
					return err
				}
				if SweptSphereVsTriangle(from, to, radius, m.triangles[idx], &results[w]) {
					found[w] = true
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	best := -1
	for w := range results {
		if found[w] && (best == -1 || results[w].T < results[best].T) {
			best = w
		}
	}
	if best == -1 {
		return false, nil
	}
	if hit != nil {
		*hit = results[best]
	}
	return true, nil
}
