package config

// DifficultyManager derives difficulty parameters from distance traveled.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SpeedMultiplier returns the factor applied to a new rock's fall speed:
// 1 + distance/speed_distance, or 1 when progression is off.
func (d *DifficultyManager) SpeedMultiplier(distance int) float64 {
	if !d.cfg.Enabled || d.cfg.SpeedDistance <= 0 {
		return 1
	}
	return 1 + float64(distance)/float64(d.cfg.SpeedDistance)
}

// ObstacleCap returns the maximum number of live rocks:
// min(max_cap, base_cap + floor(distance/cap_step)).
func (d *DifficultyManager) ObstacleCap(distance int) int {
	if !d.cfg.Enabled || d.cfg.CapStep <= 0 || distance < 0 {
		return d.cfg.BaseCap
	}
	return min(d.cfg.MaxCap, d.cfg.BaseCap+distance/d.cfg.CapStep)
}
