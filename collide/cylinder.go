package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RayVsCylinder finds when the point start + t*direction, t in [0,1], enters
// the capped cylinder of the given radius around segment a-b.
//
// The ray interval is first clipped to the slab between the two caps, then
// the axial components are removed and the remaining radial problem is a
// RayVsSphere against the axis. Out points from the axis to the ray point at
// impact and At is that point moved back by radius along Out, which is on the
// axis when the tube is entered through its side.
func RayVsCylinder(start, direction, a, b mgl64.Vec3, radius float64, hit *Hit) bool {
	limit := hit.bound()
	if limit <= 0 {
		return false
	}

	along := b.Sub(a)
	axisLenSqr := along.Dot(along)
	if axisLenSqr < degenerateLenSqr {
		return false
	}

	// ========== Clip to the axial slab ==========
	t0 := 0.0
	t1 := 1.0

	dotFrom := start.Sub(a).Dot(along)
	dotTo := start.Add(direction).Sub(a).Dot(along)

	if dotFrom < 0 {
		if dotTo <= dotFrom {
			return false
		}
		t0 = (0 - dotFrom) / (dotTo - dotFrom)
	}
	if dotFrom > axisLenSqr {
		if dotTo >= dotFrom {
			return false
		}
		t0 = (axisLenSqr - dotFrom) / (dotTo - dotFrom)
	}
	if dotTo < 0 {
		if dotFrom <= dotTo {
			return false
		}
		t1 = (0 - dotFrom) / (dotTo - dotFrom)
	}
	if dotTo > axisLenSqr {
		if dotFrom >= dotTo {
			return false
		}
		t1 = (axisLenSqr - dotFrom) / (dotTo - dotFrom)
	}

	if t0 >= t1 || t0 > 1 || t1 < 0 {
		return false
	}
	if t0 >= limit {
		return false
	}

	// ========== Radial problem ==========
	relStart := start.Sub(a)
	radialStart := relStart.Sub(along.Mul(relStart.Dot(along) / axisLenSqr))
	radialDir := direction.Sub(along.Mul(direction.Dot(along) / axisLenSqr))

	// local time runs from the lower clip bound, so the span and the caller's
	// bound both shift by t0
	local := Hit{T: math.Min(t1-t0, limit-t0)}
	if !RayVsSphere(radialStart.Add(radialDir.Mul(t0)), radialDir, mgl64.Vec3{}, radius, &local) {
		return false
	}

	t := t0 + local.T
	out := SafeNormalize(radialStart.Add(radialDir.Mul(t)))
	at := start.Add(direction.Mul(t)).Sub(out.Mul(radius))
	hit.record(t, at, out)
	return true
}
