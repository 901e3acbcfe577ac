package dodger

import (
	"math/rand"

	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// World is the complete simulation state of one run.
type World struct {
	Width    float64
	Height   float64
	Player   Player
	Rocks    []Rock
	PowerUps []PowerUp
	Stars    []Star
	Progress Progress
	Spawner  Spawner

	cfg        config.DodgerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// Events summarizes what happened during one frame.
type Events struct {
	RocksSpawned    int
	PowerUpsSpawned []Kind
	Hits            int
	Collected       []Kind
}

// NewWorld creates the starting state for cfg, seeding every random choice from seed.
// cfg must already be validated.
func NewWorld(cfg config.DodgerConfig, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	w := &World{
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		Player:     NewPlayer(cfg),
		Rocks:      make([]Rock, 0, cfg.Difficulty.MaxCap),
		PowerUps:   make([]PowerUp, 0, 4),
		Stars:      make([]Star, cfg.Stars.Count),
		Progress:   NewProgress(cfg.Progress.InitialLives, difficulty.ObstacleCap(0), cfg.Progress.LightyearsPerSec),
		Spawner:    NewSpawner(cfg.Rocks.SpawnInterval, cfg.PowerUps.SpawnInterval),
		cfg:        cfg,
		difficulty: difficulty,
		rng:        rng,
	}
	for i := range w.Stars {
		w.Stars[i] = newStar(rng, cfg.Stars, w.Width, w.Height)
	}
	return w
}

// Step advances the simulation by dt seconds of input-driven play.
func (w *World) Step(dt float64, in core.InputFrame) Events {
	var ev Events
	if dt < 0 {
		dt = 0
	}

	w.Player.Move(dt, in, w.Width, w.Height)
	w.Player.UpdateInvincibility(dt)
	w.Player.UpdateBoost(dt)

	for i := range w.Stars {
		w.Stars[i].Update(dt, w.rng, w.Width, w.Height)
	}

	for i := range w.Rocks {
		w.Rocks[i].Update(dt)
	}
	w.cullRocks()
	if w.Spawner.TickRocks(dt) && len(w.Rocks) < w.Progress.ObstacleCap {
		mult := w.difficulty.SpeedMultiplier(w.Progress.Lightyears)
		w.Rocks = append(w.Rocks, newRock(w.rng, w.cfg.Rocks, w.Width, mult))
		ev.RocksSpawned++
	}

	for i := range w.PowerUps {
		w.PowerUps[i].Update(dt)
	}
	w.cullPowerUps()
	if w.Spawner.TickPowerUps(dt) {
		pu := newPowerUp(w.rng, w.cfg.PowerUps, w.Width)
		w.PowerUps = append(w.PowerUps, pu)
		ev.PowerUpsSpawned = append(ev.PowerUpsSpawned, pu.Kind)
	}

	w.resolveCollisions(&ev)

	w.Progress.Advance(dt)
	w.Progress.ObstacleCap = w.difficulty.ObstacleCap(w.Progress.Lightyears)

	return ev
}

// cullRocks drops rocks that left the field, compacting in place and
// preserving order.
func (w *World) cullRocks() {
	kept := w.Rocks[:0]
	for _, r := range w.Rocks {
		if !r.OffScreen(w.Height) {
			kept = append(kept, r)
		}
	}
	clear(w.Rocks[len(kept):])
	w.Rocks = kept
}

// cullPowerUps drops power-ups that left the field, compacting in place.
func (w *World) cullPowerUps() {
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if !p.OffScreen(w.Height) {
			kept = append(kept, p)
		}
	}
	clear(w.PowerUps[len(kept):])
	w.PowerUps = kept
}
