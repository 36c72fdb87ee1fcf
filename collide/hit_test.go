package collide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHitFound(t *testing.T) {
	start := mgl64.Vec3{0, 0, -5}
	center := mgl64.Vec3{}

	hit := NewHit()
	if hit.Found() {
		t.Fatal("a new accumulator should not report a contact")
	}

	if RayVsSphere(start, mgl64.Vec3{10, 0, 0}, center, 1, &hit) {
		t.Fatal("a ray passing 5 away should miss a unit sphere")
	}
	if hit.Found() {
		t.Error("a miss should leave the accumulator empty")
	}

	if !RayVsSphere(start, mgl64.Vec3{0, 0, 10}, center, 1, &hit) {
		t.Fatal("a ray through the centre should hit")
	}
	if !hit.Found() || !approx(hit.T, 0.4) {
		t.Errorf("Found() = %v, T = %v, want a contact at 0.4", hit.Found(), hit.T)
	}
}

func TestHitSeededBound(t *testing.T) {
	// a seeded bound reads as found, only the boolean of each test tells
	// whether it accepted a contact
	hit := Hit{T: 0.3}
	if !hit.Found() {
		t.Fatal("a Hit seeded inside [0,1] should report Found")
	}

	if RayVsSphere(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, 1, &hit) {
		t.Error("a contact at 0.4 should not beat a bound of 0.3")
	}
	if hit.T != 0.3 || hit.At != (mgl64.Vec3{}) {
		t.Errorf("rejected contact changed the hit: %+v", hit)
	}
}
