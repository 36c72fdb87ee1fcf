package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Overlap checks if the boxes [aMin,aMax] and [bMin,bMax] intersect or touch.
// Intervals are closed on every axis.
func Overlap(aMin, aMax, bMin, bMax mgl64.Vec3) bool {
	return !(aMin.X() > bMax.X() || bMin.X() > aMax.X() ||
		aMin.Y() > bMax.Y() || bMin.Y() > aMax.Y() ||
		aMin.Z() > bMax.Z() || bMin.Z() > aMax.Z())
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	return Overlap(a.Min, a.Max, other.Min, other.Max)
}

// Union returns the smallest AABB containing both boxes
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min[0], other.Min[0]),
			math.Min(a.Min[1], other.Min[1]),
			math.Min(a.Min[2], other.Min[2]),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max[0], other.Max[0]),
			math.Max(a.Max[1], other.Max[1]),
			math.Max(a.Max[2], other.Max[2]),
		},
	}
}

// Shrink moves every face of the box inward by margin
func (a AABB) Shrink(margin float64) AABB {
	m := mgl64.Vec3{margin, margin, margin}
	return AABB{Min: a.Min.Add(m), Max: a.Max.Sub(m)}
}

// SphereBounds returns the box around a sphere at rest
func SphereBounds(center mgl64.Vec3, radius float64) AABB {
	r := mgl64.Vec3{radius, radius, radius}
	return AABB{Min: center.Sub(r), Max: center.Add(r)}
}

// SweptSphereBounds returns the box around every position a sphere takes
// while its centre moves from `from` to `to`. Broad phases must use this
// rather than the start box, otherwise fast objects are culled.
func SweptSphereBounds(from, to mgl64.Vec3, radius float64) AABB {
	return SphereBounds(from, radius).Union(SphereBounds(to, radius))
}
