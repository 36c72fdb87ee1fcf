package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is three points in world space. Winding order is not significant.
type Triangle struct {
	A, B, C mgl64.Vec3
}

// AABB returns the bounds of the triangle
func (tri Triangle) AABB() AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(tri.A[0], math.Min(tri.B[0], tri.C[0])),
			math.Min(tri.A[1], math.Min(tri.B[1], tri.C[1])),
			math.Min(tri.A[2], math.Min(tri.B[2], tri.C[2])),
		},
		Max: mgl64.Vec3{
			math.Max(tri.A[0], math.Max(tri.B[0], tri.C[0])),
			math.Max(tri.A[1], math.Max(tri.B[1], tri.C[1])),
			math.Max(tri.A[2], math.Max(tri.B[2], tri.C[2])),
		},
	}
}

// Normal returns the unit plane normal following the A, B, C winding and
// whether the triangle has a non-zero area.
func (tri Triangle) Normal() (mgl64.Vec3, bool) {
	perp := tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
	if perp.Dot(perp) < degenerateLenSqr {
		return fallbackNormal, false
	}
	return SafeNormalize(perp), true
}

// Transform maps the three points through m
func (tri Triangle) Transform(m mgl64.Mat4) Triangle {
	return Triangle{
		A: mgl64.TransformCoordinate(tri.A, m),
		B: mgl64.TransformCoordinate(tri.B, m),
		C: mgl64.TransformCoordinate(tri.C, m),
	}
}

// containsProjected checks if p, assumed on the triangle plane, is inside the
// triangle. Both windings are accepted: the three edge tests only have to agree in sign.
func (tri Triangle) containsProjected(p, normal mgl64.Vec3) bool {
	ab := tri.A.Sub(tri.B).Cross(tri.A.Sub(p)).Dot(normal)
	ca := tri.C.Sub(tri.A).Cross(tri.C.Sub(p)).Dot(normal)
	bc := tri.B.Sub(tri.C).Cross(tri.B.Sub(p)).Dot(normal)

	return (ab >= 0 && ca >= 0 && bc >= 0) || (ab <= 0 && ca <= 0 && bc <= 0)
}

// SweptSphereVsTriangle finds when a sphere moving from `from` to `to` first
// touches the triangle.
//
// The sphere can only touch the triangle while its centre is within radius
// of the plane. At the start of that interval, a contact inside the face
// wins outright. Otherwise the first contact is on the boundary: the three
// vertices and the three edges are tested against the shared bound and the
// earliest one is kept.
func SweptSphereVsTriangle(from, to mgl64.Vec3, radius float64, tri Triangle, hit *Hit) bool {
	limit := hit.bound()
	if limit <= 0 {
		return false
	}

	normal, hasArea := tri.Normal()
	if hasArea {
		dotFrom := normal.Dot(from.Sub(tri.A))
		dotTo := normal.Dot(to.Sub(tri.A))

		// ========== Plane slab interval ==========
		var t0, t1 float64
		if denom := dotTo - dotFrom; math.Abs(denom) < 1e-12 {
			// no motion along the normal
			if math.Abs(dotFrom) > radius {
				return false
			}
			t0, t1 = math.Inf(-1), math.Inf(1)
		} else {
			ta := (radius - dotFrom) / denom
			tb := (-radius - dotFrom) / denom
			t0, t1 = math.Min(ta, tb), math.Max(ta, tb)
		}

		// the boundary can't be reached outside the slab either
		if t1 < 0 || t0 > 1 || t0 >= limit {
			return false
		}

		// ========== Face ==========
		atT := math.Max(0, t0)
		center := from.Add(to.Sub(from).Mul(atT))
		onPlane := center.Add(normal.Mul(tri.A.Sub(center).Dot(normal)))

		if tri.containsProjected(onPlane, normal) {
			out := center.Sub(onPlane)
			if out.Dot(out) < degenerateLenSqr {
				// centre on the plane: push back towards the side it came from
				out = normal
				if dotFrom < 0 {
					out = normal.Mul(-1)
				}
			}
			hit.record(atT, onPlane, SafeNormalize(out))
			return true
		}
	}

	// ========== Vertices and edges ==========
	// A nil hit still needs a shared bound for the fold.
	local := hit
	if local == nil {
		scratch := NewHit()
		local = &scratch
	}

	direction := to.Sub(from)
	collided := false
	for _, v := range [3]mgl64.Vec3{tri.A, tri.B, tri.C} {
		if SweptSphereVsPoint(from, to, radius, v, local) {
			collided = true
		}
	}
	for _, edge := range [3][2]mgl64.Vec3{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}} {
		if RayVsCylinder(from, direction, edge[0], edge[1], radius, local) {
			collided = true
		}
	}

	return collided
}
