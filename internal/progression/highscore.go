package progression

import (
	"github.com/charmbracelet/log"
)

// HighScoreKey is the settings key of the persisted best score.
const HighScoreKey = "snake_high_score"

// HighScoreStore persists best values by key.
type HighScoreStore interface {
	Best(key string) (int, error)
	SetBest(key string, value int) error
}

// Tracker compares scores with the persisted best and fires a celebration
// at most once per play session. A session runs from NewSession (or
// creation) to the next NewSession.
type Tracker struct {
	store      HighScoreStore
	key        string
	logger     *log.Logger
	best       int
	celebrated bool
}

// NewTracker creates a tracker over store. A nil store keeps the best in
// memory only.
func NewTracker(store HighScoreStore, key string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	t := &Tracker{store: store, key: key, logger: logger}
	t.best = t.read()
	return t
}

// NewSession re-arms the celebration and refreshes the known best.
func (t *Tracker) NewSession() {
	t.celebrated = false
	t.best = t.read()
}

// Best returns the last known best score.
func (t *Tracker) Best() int {
	return t.best
}

// Observe is called on every score update. When score beats the stored best
// the new value is persisted. celebrate is true only the first time this
// happens; previous is the best that was beaten.
func (t *Tracker) Observe(score int) (celebrate bool, previous int) {
	stored := t.read()
	if stored > t.best {
		t.best = stored
	}
	if score <= t.best {
		return false, t.best
	}

	previous = t.best
	t.best = score
	if t.store != nil {
		if err := t.store.SetBest(t.key, score); err != nil {
			t.logger.Warn("cannot persist high score", "score", score, "error", err)
		}
	}

	if t.celebrated {
		return false, previous
	}
	t.celebrated = true
	return true, previous
}

func (t *Tracker) read() int {
	if t.store == nil {
		return t.best
	}
	v, err := t.store.Best(t.key)
	if err != nil {
		t.logger.Warn("cannot read high score", "error", err)
		return t.best
	}
	return v
}
