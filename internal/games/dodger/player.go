package dodger

import (
	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Pos            core.Vec2
	Radius         float64
	Speed          float64 // Base speed in pixels per second
	Invincible     bool
	InvincibleTime float64 // Seconds of invincibility left
	BoostTime      float64 // Seconds of boost left

	runFactor   float64
	boostFactor float64
}

// NewPlayer places a player at the bottom center of the world.
func NewPlayer(cfg config.DodgerConfig) Player {
	return Player{
		Pos:         core.V(float64(int(cfg.World.Width)/2), cfg.World.Height-cfg.Player.StartOffsetY),
		Radius:      cfg.Player.Radius,
		Speed:       cfg.Player.Speed,
		runFactor:   cfg.Player.RunMultiplier,
		boostFactor: cfg.PowerUps.BoostMultiplier,
	}
}

// Boosted reports whether a speed boost is active.
func (p *Player) Boosted() bool {
	return p.BoostTime > 0
}

// CurrentSpeed returns the movement speed for this frame.
func (p *Player) CurrentSpeed(running bool) float64 {
	speed := p.Speed
	if p.Boosted() {
		speed *= p.boostFactor
	}
	if running {
		speed *= p.runFactor
	}
	return speed
}

// Move applies held directions for dt seconds and keeps the whole ship
// inside a width x height field. Axes are independent: diagonal movement is
// not normalized.
func (p *Player) Move(dt float64, in core.InputFrame, width, height float64) {
	step := p.CurrentSpeed(in.Has(core.ActionRun)) * dt

	if in.Has(core.ActionLeft) {
		p.Pos.X -= step
	}
	if in.Has(core.ActionRight) {
		p.Pos.X += step
	}
	if in.Has(core.ActionUp) {
		p.Pos.Y -= step
	}
	if in.Has(core.ActionDown) {
		p.Pos.Y += step
	}

	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, width-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, height-p.Radius)
}

// UpdateInvincibility counts the invincibility window down.
func (p *Player) UpdateInvincibility(dt float64) {
	if !p.Invincible {
		return
	}
	p.InvincibleTime -= dt
	if p.InvincibleTime <= 0 {
		p.InvincibleTime = 0
		p.Invincible = false
	}
}

// GrantInvincibility makes the player invincible for at least d seconds.
// A longer remaining window is kept.
func (p *Player) GrantInvincibility(d float64) {
	p.Invincible = true
	p.InvincibleTime = max(p.InvincibleTime, d)
}

// ActivateBoost starts a boost of d seconds, or extends the running one by d.
// The speed factor never compounds.
func (p *Player) ActivateBoost(d float64) {
	if p.Boosted() {
		p.BoostTime += d
		return
	}
	p.BoostTime = d
}

// UpdateBoost counts the boost down; speed reverts once it reaches zero.
func (p *Player) UpdateBoost(dt float64) {
	if p.BoostTime <= 0 {
		return
	}
	p.BoostTime -= dt
	if p.BoostTime < 0 {
		p.BoostTime = 0
	}
}

// Bounds returns the collision square of the ship (side 2*Radius).
func (p *Player) Bounds() core.Rect {
	return core.SquareAround(p.Pos, p.Radius)
}
