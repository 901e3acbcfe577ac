package dodger

import (
	"strings"

	"github.com/vovakirdan/space-dodger/internal/config"
	"github.com/vovakirdan/space-dodger/internal/core"
)

// newTestWorld builds a world from the default config after applying mutate.
func newTestWorld(mutate func(*config.DodgerConfig)) *World {
	cfg := config.DefaultDodgerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewWorld(cfg, 1)
}

// rockOn returns a motionless rock whose rectangle is centered on p.
func rockOn(p core.Vec2, width, height float64) Rock {
	return Rock{Pos: core.V(p.X, p.Y-height/2), Width: width, Height: height}
}

var noInput = core.NewInputFrame()

// rowText returns row y of s as plain text.
func rowText(s *core.Screen, y int) string {
	var sb strings.Builder
	for x, w := 0, s.Width(); x < w; x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
