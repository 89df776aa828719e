// Package progression tracks score, streak and level, and decides when the
// game speeds up.
package progression

import (
	"time"

	"github.com/vovakirdan/wordsnake/internal/config"
)

// State is a snapshot of progression values.
type State struct {
	Score      int
	Words      int
	Level      int
	Streak     int
	BestStreak int
	Interval   time.Duration
}

// Engine owns progression state for one game.
type Engine struct {
	curve         config.Curve
	wordsPerLevel int
	st            State
}

// NewEngine creates an engine at level 1.
func NewEngine(cfg config.WordSnakeConfig) *Engine {
	e := &Engine{
		curve:         config.NewCurve(cfg),
		wordsPerLevel: max(cfg.Words.WordsPerLevel, 1),
	}
	e.Reset()
	return e
}

// Reset returns to a fresh game: level 1, zero score, zero streaks.
func (e *Engine) Reset() {
	e.st = State{
		Level:    1,
		Interval: e.curve.StartInterval(),
	}
}

// State returns current values.
func (e *Engine) State() State {
	return e.st
}

// Curve returns the per-level parameter curve.
func (e *Engine) Curve() config.Curve {
	return e.curve
}

// Pickup scores a collected tile.
func (e *Engine) Pickup() {
	e.st.Score++
}

// CompleteWord scores a consumed word and returns the score gained.
func (e *Engine) CompleteWord(word string) int {
	gain := len(word) * e.st.Level
	e.st.Score += gain
	e.st.Words++
	e.st.Streak++
	e.st.BestStreak = max(e.st.BestStreak, e.st.Streak)
	return gain
}

// WordQuotaReached reports whether the classic rule calls for a level
// advance: every wordsPerLevel-th completed word.
func (e *Engine) WordQuotaReached() bool {
	return e.st.Words > 0 && e.st.Words%e.wordsPerLevel == 0
}

// Advance moves to the next level and speeds up the tick interval.
func (e *Engine) Advance() {
	e.st.Level++
	e.st.Interval = e.curve.NextInterval(e.st.Interval)
}

// EndRun clears the streak on game over. BestStreak is kept.
func (e *Engine) EndRun() {
	e.st.Streak = 0
}
