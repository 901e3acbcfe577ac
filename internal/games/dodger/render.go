package dodger

import (
	"math"

	"github.com/vovakirdan/space-dodger/internal/core"
)

// Visual characters for rendering
const (
	ShipChar = '█'
	RockChar = '▓'
)

var starGlyphs = [...]rune{'.', '·', '+', '*'}

// viewport maps world coordinates onto the terminal cell grid.
type viewport struct {
	sx, sy float64 // Cells per world pixel
}

func newViewport(worldW, worldH float64, cols, rows int) viewport {
	return viewport{
		sx: float64(cols) / worldW,
		sy: float64(rows) / worldH,
	}
}

func (v viewport) cell(p core.Vec2) (float64, float64) {
	return p.X * v.sx, p.Y * v.sy
}

func (v viewport) drawStar(dst *core.Screen, s Star) {
	x, y := v.cell(s.Pos)
	glyph := starGlyphs[core.Clamp(s.Size, 0, len(starGlyphs)-1)]
	color := core.ColorYellow
	if s.Size <= 1 {
		color = core.ColorDim
	}
	dst.SetCell(int(x), int(y), glyph, color)
}

func (v viewport) drawRock(dst *core.Screen, r *Rock) {
	rect := r.Rect()
	x0 := int(math.Floor(rect.X * v.sx))
	y0 := int(math.Floor(rect.Y * v.sy))
	x1 := int(math.Ceil(rect.Right() * v.sx))
	y1 := int(math.Ceil(rect.Bottom() * v.sy))
	dst.FillRect(x0, y0, max(1, x1-x0), max(1, y1-y0), RockChar, core.ColorGray)
}

func (v viewport) drawPowerUp(dst *core.Screen, p PowerUp) {
	x, y := v.cell(p.Pos)
	dst.FillEllipse(x, y, p.Radius*v.sx, p.Radius*v.sy, p.Kind.Glyph(), p.Kind.Color())
}

// drawPlayer colors the ship by its shield state only.
func (v viewport) drawPlayer(dst *core.Screen, p *Player) {
	color := core.ColorWhite
	if p.Invincible {
		color = core.ColorOrange
	}
	x, y := v.cell(p.Pos)
	dst.FillEllipse(x, y, p.Radius*v.sx, p.Radius*v.sy, ShipChar, color)
}
