package dodger

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// Kind identifies a power-up effect.
type Kind int

const (
	KindBoost      Kind = iota // Doubles movement speed for a while
	KindWrench                 // Repairs the ship: one extra life
	KindInvincible             // Shield against rocks
	kindCount                  // Sentinel for counting kinds
)

// String returns the name of the power-up kind.
func (k Kind) String() string {
	switch k {
	case KindBoost:
		return "boost"
	case KindWrench:
		return "wrench"
	case KindInvincible:
		return "invincible"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Glyph returns the display character for a power-up kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindBoost:
		return '»'
	case KindWrench:
		return '+'
	case KindInvincible:
		return '◊'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindBoost:
		return core.ColorOrange
	case KindWrench:
		return core.ColorBlue
	case KindInvincible:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	Kind   Kind
	Pos    core.Vec2 // Center
	Radius float64
	Speed  float64
}

// newPowerUp creates a power-up of a uniformly random kind above the visible area.
func newPowerUp(rng *rand.Rand, cfg config.PowerUpConfig, worldW float64) PowerUp {
	kind := Kind(rng.Intn(int(kindCount)))
	radius := cfg.Radius
	if kind == KindWrench {
		radius = cfg.WrenchRadius
	}
	x := randRange(rng, cfg.SpawnMargin, int(worldW)-cfg.SpawnMargin)

	return PowerUp{
		Kind:   kind,
		Pos:    core.V(float64(x), -float64(cfg.SpawnMargin)),
		Radius: radius,
		Speed:  cfg.Speed,
	}
}

// Update moves the power-up down.
func (p *PowerUp) Update(dt float64) {
	p.Pos.Y += p.Speed * dt
}

// OffScreen reports whether the center fell more than the radius past the bottom.
func (p *PowerUp) OffScreen(worldH float64) bool {
	return p.Pos.Y > worldH+p.Radius
}
