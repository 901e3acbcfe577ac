package dodger

import (
	"math/rand"

	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// Star is a decorative background particle. Stars are recycled, never removed.
type Star struct {
	Pos   core.Vec2
	Speed float64
	Size  int
}

func newStar(rng *rand.Rand, cfg config.StarConfig, worldW, worldH float64) Star {
	return Star{
		Pos:   core.V(float64(randRange(rng, 0, int(worldW))), float64(randRange(rng, 0, int(worldH)))),
		Speed: cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
		Size:  randRange(rng, cfg.MinSize, cfg.MaxSize),
	}
}

// Update moves the star down, wrapping it to the top at a new random column
// once it leaves the bottom edge.
func (s *Star) Update(dt float64, rng *rand.Rand, worldW, worldH float64) {
	s.Pos.Y += s.Speed * dt
	if s.Pos.Y > worldH {
		s.Pos.Y = 0
		s.Pos.X = float64(randRange(rng, 0, int(worldW)))
	}
}
