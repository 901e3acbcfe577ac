package dodger

import "math"

// Progress tracks distance, lives and the current obstacle cap.
type Progress struct {
	Lightyears  int
	Lives       int
	ObstacleCap int

	rate  float64 // Light-years per second
	carry float64 // Fraction of a light-year not yet counted
}

// NewProgress creates a tracker with the starting lives and cap.
func NewProgress(lives, baseCap int, rate float64) Progress {
	return Progress{
		Lives:       lives,
		ObstacleCap: baseCap,
		rate:        rate,
	}
}

// Advance accrues distance for dt seconds and returns how many whole
// light-years were added. The fractional remainder carries over to the next
// frame so short frames do not lose distance.
func (p *Progress) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	p.carry += p.rate * dt
	whole := math.Floor(p.carry)
	p.carry -= whole
	p.Lightyears += int(whole)
	return int(whole)
}

// GameOver reports whether the player ran out of lives.
func (p *Progress) GameOver() bool {
	return p.Lives <= 0
}
