// internal/scene/clock.go
package scene

import "math"

// Clock turns per-frame timestamps into scene time. Timestamps never move
// backwards: an earlier one is clamped to the last seen.
type Clock struct {
	last float64
	dt   float64
}

// Tick advances the clock to now (seconds since the loop started) and
// returns the scene time and the delta since the previous tick. A delta that
// is negative, NaN or infinite counts as 0.
func (c *Clock) Tick(now float64) (t, dt float64) {
	if math.IsNaN(now) || math.IsInf(now, 0) || now < c.last {
		now = c.last
	}
	dt = now - c.last
	if !(dt >= 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	c.last, c.dt = now, dt
	return now, dt
}

// Now is the time of the last tick.
func (c *Clock) Now() float64 { return c.last }

// Delta is the delta of the last tick.
func (c *Clock) Delta() float64 { return c.dt }
