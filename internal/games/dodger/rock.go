package dodger

import (
	"math/rand"

	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// Rock is a falling obstacle. Pos is the top-center point.
// Size and speed are fixed at creation.
type Rock struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64
}

// newRock creates a rock just above the visible area. Its fall speed is
// scaled by multiplier once, here.
func newRock(rng *rand.Rand, cfg config.RockConfig, worldW float64, multiplier float64) Rock {
	w := cfg.Widths[rng.Intn(len(cfg.Widths))]
	h := cfg.Heights[rng.Intn(len(cfg.Heights))]
	x := randRange(rng, w/2, int(worldW)-w/2)
	speed := randRange(rng, cfg.MinSpeed, cfg.MaxSpeed)

	return Rock{
		Pos:    core.V(float64(x), -float64(h)),
		Width:  float64(w),
		Height: float64(h),
		Speed:  float64(speed) * multiplier,
	}
}

// Update moves the rock down.
func (r *Rock) Update(dt float64) {
	r.Pos.Y += r.Speed * dt
}

// Rect returns the collision rectangle for this rock.
func (r *Rock) Rect() core.Rect {
	return core.NewRect(r.Pos.X-r.Width/2, r.Pos.Y, r.Width, r.Height)
}

// OffScreen reports whether the rock fell more than its height past the bottom.
func (r *Rock) OffScreen(worldH float64) bool {
	return r.Pos.Y > worldH+r.Height
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
