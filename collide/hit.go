package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is the result of a swept query and, through T, the bound for the next one.
//
// Every test in this package receives a *Hit. A test only accepts a contact
// strictly earlier than the current T and then overwrites all three fields,
// so running many tests against the same Hit yields the earliest contact.
// A nil *Hit asks for the boolean answer only.
type Hit struct {
	// T is the fraction of the sweep at which contact happens, in [0,1].
	T float64
	// At is the world-space contact point.
	At mgl64.Vec3
	// Out is the unit normal pointing from the touched surface towards the moving sphere.
	Out mgl64.Vec3
}

// NewHit returns an accumulator that accepts any contact in [0,1]
func NewHit() Hit {
	return Hit{T: math.Inf(1)}
}

// Found reports whether T lies in [0,1]. On an accumulator made by NewHit
// this means a test recorded a contact. A Hit seeded with its own bound,
// such as Hit{T: 0.5}, reports true before any test runs: callers seeding a
// bound use the boolean returned by each test instead.
func (h Hit) Found() bool {
	return h.T >= 0 && h.T <= 1
}

// bound returns the exclusive upper limit a test must beat.
func (h *Hit) bound() float64 {
	if h == nil {
		return math.Inf(1)
	}
	return h.T
}

func (h *Hit) record(t float64, at, out mgl64.Vec3) {
	if h == nil {
		return
	}
	h.T = t
	h.At = at
	h.Out = out
}
