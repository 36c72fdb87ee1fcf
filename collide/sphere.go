package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateLenSqr is the squared length under which a direction is treated as zero.
const degenerateLenSqr = 1e-18

var fallbackNormal = mgl64.Vec3{1, 0, 0}

// SafeNormalize normalizes v, falling back to +X when v has no direction.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallbackNormal
	}
	out := v.Mul(1.0 / l)
	if !isFinite(out) {
		return fallbackNormal
	}
	return out
}

func isFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// RayVsSphere finds when the point start + t*direction, t in [0,1], enters the
// sphere (center, radius).
//
// A ray that starts inside the sphere collides at T=0 with At=start, not at
// its exit point. Otherwise At is the point at the entry time and Out the
// outward normal of the sphere there.
func RayVsSphere(start, direction, center mgl64.Vec3, radius float64, hit *Hit) bool {
	limit := hit.bound()
	if limit <= 0 {
		return false
	}

	rel := start.Sub(center)
	c := rel.Dot(rel) - radius*radius

	// when is |rel + t*direction|^2 <= radius^2 ?
	a := direction.Dot(direction)
	if a < degenerateLenSqr {
		// stationary point: inside or not
		if c > 0 {
			return false
		}
		hit.record(0, start, SafeNormalize(rel))
		return true
	}
	b := 2.0 * rel.Dot(direction)

	d := b*b - 4.0*a*c
	if d < 0 {
		return false
	}
	d = math.Sqrt(d)

	t0 := (-b - d) / (2.0 * a)
	t1 := (-b + d) / (2.0 * a)

	if t1 < 0 || t0 > 1 {
		return false
	}
	if t0 >= limit {
		return false
	}

	if t0 <= 0 {
		// already touching at start
		hit.record(0, start, SafeNormalize(rel))
		return true
	}

	at := start.Add(direction.Mul(t0))
	hit.record(t0, at, SafeNormalize(at.Sub(center)))
	return true
}

// SweptSphereVsPoint finds when a sphere moving from `from` to `to` first
// touches point. At is the point itself.
func SweptSphereVsPoint(from, to mgl64.Vec3, radius float64, point mgl64.Vec3, hit *Hit) bool {
	if !RayVsSphere(from, to.Sub(from), point, radius, hit) {
		return false
	}
	if hit != nil {
		hit.At = point
	}
	return true
}

// SweptSphereVsSweptSphere finds when two spheres, both moving during the
// step, first touch.
//
// The test runs in the frame of sphere 1: sphere 0 follows the relative
// motion against a fixed sphere of radius r0+r1 at from1. At is sphere 0's
// centre at impact in world space and Out points from sphere 1 to sphere 0.
func SweptSphereVsSweptSphere(from0, to0 mgl64.Vec3, radius0 float64, from1, to1 mgl64.Vec3, radius1 float64, hit *Hit) bool {
	move1 := to1.Sub(from1)
	relative := to0.Sub(from0).Sub(move1)

	if !RayVsSphere(from0, relative, from1, radius0+radius1, hit) {
		return false
	}
	if hit != nil {
		hit.At = hit.At.Add(move1.Mul(hit.T))
	}
	return true
}
