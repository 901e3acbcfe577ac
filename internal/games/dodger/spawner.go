package dodger

// Spawner holds the two periodic spawn triggers. Each trigger accumulates
// frame time and fires once its interval has elapsed, then restarts from zero.
type Spawner struct {
	RockTimer    float64
	PowerUpTimer float64

	rockInterval    float64
	powerUpInterval float64
}

// NewSpawner creates a spawner with the given intervals in seconds.
// Panics on non-positive intervals.
func NewSpawner(rockInterval, powerUpInterval float64) Spawner {
	if rockInterval <= 0 || powerUpInterval <= 0 {
		panic("dodger: spawn intervals must be positive")
	}
	return Spawner{
		rockInterval:    rockInterval,
		powerUpInterval: powerUpInterval,
	}
}

// TickRocks advances the rock trigger and reports whether it fired.
func (s *Spawner) TickRocks(dt float64) bool {
	return tick(&s.RockTimer, s.rockInterval, dt)
}

// TickPowerUps advances the power-up trigger and reports whether it fired.
func (s *Spawner) TickPowerUps(dt float64) bool {
	return tick(&s.PowerUpTimer, s.powerUpInterval, dt)
}

func tick(timer *float64, interval, dt float64) bool {
	*timer += dt
	if *timer >= interval {
		*timer = 0
		return true
	}
	return false
}
