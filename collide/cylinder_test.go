package collide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRayVsCylinder(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{0, 0, 10}
	radius := 1.0

	tests := []struct {
		name      string
		start     mgl64.Vec3
		direction mgl64.Vec3
		wantHit   bool
		wantT     float64
		wantOut   mgl64.Vec3
		wantAt    mgl64.Vec3
	}{
		{
			name:      "radial approach",
			start:     mgl64.Vec3{-5, 0, 5},
			direction: mgl64.Vec3{10, 0, 0},
			wantHit:   true,
			wantT:     0.4,
			wantOut:   mgl64.Vec3{-1, 0, 0},
			wantAt:    mgl64.Vec3{0, 0, 5},
		},
		{
			name:      "beyond the top cap",
			start:     mgl64.Vec3{-5, 0, 12},
			direction: mgl64.Vec3{10, 0, 0},
		},
		{
			name:      "below the bottom cap",
			start:     mgl64.Vec3{-5, 0, -1},
			direction: mgl64.Vec3{10, 0, 0},
		},
		{
			name:      "passes beside",
			start:     mgl64.Vec3{-5, 2, 5},
			direction: mgl64.Vec3{10, 0, 0},
		},
		{
			name:      "enters through the cap along the axis",
			start:     mgl64.Vec3{0.5, 0, -5},
			direction: mgl64.Vec3{0, 0, 10},
			wantHit:   true,
			wantT:     0.5,
			wantOut:   mgl64.Vec3{1, 0, 0},
			wantAt:    mgl64.Vec3{-0.5, 0, 0},
		},
		{
			name:      "diagonal entry into the slab",
			start:     mgl64.Vec3{-5.5, 0, -5},
			direction: mgl64.Vec3{10, 0, 10},
			wantHit:   true,
			// radially inside from t=0.45, the slab only starts at t=0.5
			wantT:   0.5,
			wantOut: mgl64.Vec3{-1, 0, 0},
			wantAt:  mgl64.Vec3{0.5, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := NewHit()
			got := RayVsCylinder(tt.start, tt.direction, a, b, radius, &hit)
			if got != tt.wantHit {
				t.Fatalf("RayVsCylinder = %v, want %v", got, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if !approx(hit.T, tt.wantT) {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
			if !vecApprox(hit.Out, tt.wantOut) {
				t.Errorf("Out = %v, want %v", hit.Out, tt.wantOut)
			}
			if !vecApprox(hit.At, tt.wantAt) {
				t.Errorf("At = %v, want %v", hit.At, tt.wantAt)
			}
		})
	}
}

func TestRayVsCylinder_Bound(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{0, 0, 10}

	hit := Hit{T: 0.3}
	if RayVsCylinder(mgl64.Vec3{-5, 0, 5}, mgl64.Vec3{10, 0, 0}, a, b, 1, &hit) {
		t.Fatal("contact at 0.4 should not beat bound 0.3")
	}
	if hit.T != 0.3 {
		t.Errorf("bound modified: %v", hit.T)
	}

	// clipped interval starting at 0.5 must respect a bound of 0.45
	hit = Hit{T: 0.45}
	if RayVsCylinder(mgl64.Vec3{0.5, 0, -5}, mgl64.Vec3{0, 0, 10}, a, b, 1, &hit) {
		t.Fatal("contact at 0.5 should not beat bound 0.45")
	}
}

func TestRayVsCylinder_DegenerateAxis(t *testing.T) {
	p := mgl64.Vec3{1, 1, 1}
	if RayVsCylinder(mgl64.Vec3{-5, 1, 1}, mgl64.Vec3{10, 0, 0}, p, p, 1, nil) {
		t.Fatal("a zero-length axis has no tube")
	}
}
