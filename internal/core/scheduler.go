package core

import "time"

// maxCatchUp bounds how many logical ticks a single frame may run after a
// stall (suspended terminal, slow SSH link, debugger).
const maxCatchUp = 4

// Scheduler converts elapsed wall time into logical game ticks.
// It accumulates time and releases one tick per interval, carrying the
// remainder forward so cadence does not drift. The interval may change
// between calls (levels speed the game up).
type Scheduler struct {
	acc time.Duration
}

// Advance adds elapsed time and returns how many ticks are due at the given
// interval.
func (s *Scheduler) Advance(elapsed, interval time.Duration) int {
	if interval <= 0 || elapsed < 0 {
		return 0
	}
	s.acc += elapsed

	n := 0
	for s.acc >= interval {
		s.acc -= interval
		n++
		if n == maxCatchUp {
			s.acc = 0
			break
		}
	}
	return n
}

// Reset drops any accumulated time.
func (s *Scheduler) Reset() {
	s.acc = 0
}

// Pending returns the accumulated time not yet converted into ticks.
func (s *Scheduler) Pending() time.Duration {
	return s.acc
}
