package config

import "time"

// Curve calculates per-level game parameters.
type Curve struct {
	cfg WordSnakeConfig
}

// NewCurve creates a curve over a normalized configuration.
func NewCurve(cfg WordSnakeConfig) Curve {
	return Curve{cfg: cfg}
}

// StartInterval returns the tick interval of a fresh game.
func (c Curve) StartInterval() time.Duration {
	return ms(c.cfg.Speed.StartMS)
}

// NextInterval returns the interval after one level advance.
func (c Curve) NextInterval(current time.Duration) time.Duration {
	next := current - ms(c.cfg.Speed.StepMS)
	floor := ms(c.cfg.Speed.FloorMS)
	if next < floor {
		return floor
	}
	return next
}

// Interval returns the tick interval reached at level, starting from level 1.
func (c Curve) Interval(level int) time.Duration {
	d := c.StartInterval()
	for l := 1; l < level; l++ {
		d = c.NextInterval(d)
	}
	return d
}

// TileTarget returns how many tiles the field is topped up to at level.
func (c Curve) TileTarget(level int) int {
	t := c.cfg.Tiles
	return min(t.Base+level/max(t.PerLevelDivisor, 1), t.Max)
}

// ObstacleCount returns the number of obstacles at level (missions only).
func (c Curve) ObstacleCount(level int) int {
	o := c.cfg.Obstacles
	return min(o.Base+level/max(o.PerLevelDivisor, 1), o.Max)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
