package system

// GameClock advances with scaled game time. It stands still while the round
// is not running.
type GameClock struct {
	fixed float64
	delta float64
	now   float64
}

func NewGameClock(fixedDeltaTime float64) *GameClock {
	return &GameClock{fixed: fixedDeltaTime}
}

// Tick starts a new frame of length dt.
func (c *GameClock) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.delta = dt
	c.now += dt
}

func (c *GameClock) DeltaTime() float64 { return c.delta }

func (c *GameClock) FixedDeltaTime() float64 { return c.fixed }

func (c *GameClock) Now() float64 { return c.now }
