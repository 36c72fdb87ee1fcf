package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl64.Vec3{1, 2, 3}
	tr.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	tr.SetUniformScale(2)

	tests := []struct {
		name  string
		local mgl64.Vec3
		world mgl64.Vec3
	}{
		{"origin", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3}},
		{"x axis", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 4, 3}},
		{"z axis", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 2, 5}},
	}

	m := tr.Matrix()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mgl64.TransformCoordinate(tt.local, m)
			if !got.ApproxEqualThreshold(tt.world, 1e-9) {
				t.Errorf("Matrix() maps %v to %v, want %v", tt.local, got, tt.world)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	bubbles := []*Bubble{
		NewBubble(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, 1, 1),
		NewBubble(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, 2, 1),
		NewBubble(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{}, 3, 1),
		NewBubble(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{}, 1, 1),
	}
	keep := []*Bubble{bubbles[1], bubbles[3]}
	bubbles[0].MarkDestroyed()
	bubbles[2].MarkDestroyed()

	full := bubbles
	bubbles = Compact(bubbles)

	if len(bubbles) != len(keep) {
		t.Fatalf("Compact() left %d entities, want %d", len(bubbles), len(keep))
	}
	for i := range keep {
		if bubbles[i] != keep[i] {
			t.Errorf("Compact()[%d] = %v, want %v", i, bubbles[i].ID, keep[i].ID)
		}
	}
	for i := len(keep); i < len(full); i++ {
		if full[i] != nil {
			t.Errorf("slot %d past the end still holds an entity", i)
		}
	}
}
