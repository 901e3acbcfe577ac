package dodger

import (
	"fmt"

	"github.com/vovakirdan/space-dodger/internal/core"
)

// resolveCollisions runs the rock pass and then the power-up pass.
func (w *World) resolveCollisions(ev *Events) {
	w.collideRocks(ev)
	w.collidePowerUps(ev)
}

// collideRocks damages the player once per invincibility window. Rocks are
// checked in stored order and the shield is re-checked before every hit, so
// overlapping several rocks in one frame costs a single life.
func (w *World) collideRocks(ev *Events) {
	box := w.Player.Bounds()
	for i := range w.Rocks {
		if !box.Intersects(w.Rocks[i].Rect()) {
			continue
		}
		if w.Player.Invincible {
			continue
		}
		w.Progress.Lives -= w.cfg.Rocks.DamagePerHit
		w.Player.GrantInvincibility(w.cfg.Rocks.HitInvincibility)
		ev.Hits++
	}
}

// collidePowerUps applies and removes every power-up touching the player.
func (w *World) collidePowerUps(ev *Events) {
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if core.CirclesOverlap(w.Player.Pos, w.Player.Radius, p.Pos, p.Radius) {
			w.apply(p.Kind)
			ev.Collected = append(ev.Collected, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	clear(w.PowerUps[len(kept):])
	w.PowerUps = kept
}

// apply performs the effect of a collected power-up.
func (w *World) apply(k Kind) {
	switch k {
	case KindBoost:
		w.Player.ActivateBoost(w.cfg.PowerUps.BoostDuration)
	case KindWrench:
		w.Progress.Lives++
	case KindInvincible:
		w.Player.GrantInvincibility(w.cfg.PowerUps.InvincibleDuration)
	default:
		panic(fmt.Sprintf("dodger: unknown power-up %v", k))
	}
}
