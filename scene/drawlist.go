package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle identifies an entry of a DrawList. The zero Handle is never issued.
type Handle uint64

// Placement is anything that can place a mesh in the world
type Placement interface {
	Matrix() mgl64.Mat4
}

// Drawable is a mesh drawn where its placement says
type Drawable struct {
	Handle    Handle
	Placement Placement
	Mesh      string
}

// DrawList is the registry of everything the renderer draws.
// Entries are kept in insertion order.
type DrawList struct {
	next    Handle
	entries []Drawable
}

func NewDrawList() *DrawList {
	return &DrawList{
		entries: make([]Drawable, 0, 32),
	}
}

// Add registers a drawable and returns the handle that removes it
func (d *DrawList) Add(p Placement, mesh string) Handle {
	d.next++
	d.entries = append(d.entries, Drawable{
		Handle:    d.next,
		Placement: p,
		Mesh:      mesh,
	})
	return d.next
}

// Remove drops the entry for h. It returns false if h is unknown or already removed.
func (d *DrawList) Remove(h Handle) bool {
	i := d.find(h)
	if i < 0 {
		return false
	}
	d.entries = slices.Delete(d.entries, i, i+1)
	return true
}

func (d *DrawList) Get(h Handle) (Drawable, bool) {
	i := d.find(h)
	if i < 0 {
		return Drawable{}, false
	}
	return d.entries[i], true
}

func (d *DrawList) Len() int {
	return len(d.entries)
}

// Each calls fn for every entry, in insertion order
func (d *DrawList) Each(fn func(Drawable)) {
	for _, e := range d.entries {
		fn(e)
	}
}

// handles are issued in increasing order and entries keep that order
func (d *DrawList) find(h Handle) int {
	i, ok := slices.BinarySearchFunc(d.entries, h, func(e Drawable, target Handle) int {
		switch {
		case e.Handle < target:
			return -1
		case e.Handle > target:
			return 1
		}
		return 0
	})
	if !ok {
		return -1
	}
	return i
}
