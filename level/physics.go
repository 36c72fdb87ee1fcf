package level

import (
	"errors"
	"fmt"
	"math"
)

// Physics holds the tuning values of the simulation.
// Velocities are in units per tick, durations in seconds.
type Physics struct {
	Gravity             float64 `yaml:"gravity"`
	WallRestitution     float64 `yaml:"wall_restitution"`
	FrictionHalfLife    float64 `yaml:"friction_half_life"`
	PlayerAccel         float64 `yaml:"player_accel"`
	GunCooldown         float64 `yaml:"gun_cooldown"`
	BulletSpeed         float64 `yaml:"bullet_speed"`
	BulletRadius        float64 `yaml:"bullet_radius"`
	BubbleRadiusPerMass float64 `yaml:"bubble_radius_per_mass"`
	SplitSpeed          float64 `yaml:"split_speed"`
	// ColliderCellSize is the broad phase cell of mesh colliders, 0 picks one per mesh
	ColliderCellSize float64 `yaml:"collider_cell_size"`
}

func DefaultPhysics() Physics {
	return Physics{
		Gravity:             -0.1,
		WallRestitution:     0.98,
		FrictionHalfLife:    0.05,
		PlayerAccel:         0.03,
		GunCooldown:         0.25,
		BulletSpeed:         1.0,
		BulletRadius:        0.4,
		BubbleRadiusPerMass: 1.0,
		SplitSpeed:          0.1,
	}
}

// Validate reports every value out of range, wrapped in ErrInvalidPhysics
func (p Physics) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"gravity", p.Gravity},
		{"wall_restitution", p.WallRestitution},
		{"friction_half_life", p.FrictionHalfLife},
		{"player_accel", p.PlayerAccel},
		{"gun_cooldown", p.GunCooldown},
		{"bullet_speed", p.BulletSpeed},
		{"bullet_radius", p.BulletRadius},
		{"bubble_radius_per_mass", p.BubbleRadiusPerMass},
		{"split_speed", p.SplitSpeed},
		{"collider_cell_size", p.ColliderCellSize},
	} {
		check(!math.IsNaN(f.value) && !math.IsInf(f.value, 0), "%s is not finite", f.name)
	}

	check(p.WallRestitution >= 0 && p.WallRestitution <= 1, "wall_restitution %v not in [0,1]", p.WallRestitution)
	check(p.FrictionHalfLife > 0, "friction_half_life %v must be positive", p.FrictionHalfLife)
	check(p.PlayerAccel >= 0, "player_accel %v is negative", p.PlayerAccel)
	check(p.GunCooldown >= 0, "gun_cooldown %v is negative", p.GunCooldown)
	check(p.BulletSpeed > 0, "bullet_speed %v must be positive", p.BulletSpeed)
	check(p.BulletRadius > 0, "bullet_radius %v must be positive", p.BulletRadius)
	check(p.BubbleRadiusPerMass > 0, "bubble_radius_per_mass %v must be positive", p.BubbleRadiusPerMass)
	check(p.SplitSpeed >= 0, "split_speed %v is negative", p.SplitSpeed)
	check(p.ColliderCellSize >= 0, "collider_cell_size %v is negative", p.ColliderCellSize)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPhysics, errors.Join(errs...))
	}
	return nil
}
