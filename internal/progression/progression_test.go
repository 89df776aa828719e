package progression

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/wordsnake/internal/config"
)

func TestScoring(t *testing.T) {
	e := NewEngine(config.DefaultWordSnakeConfig())
	e.Advance() // level 2

	e.Pickup()
	e.Pickup()
	e.Pickup()
	gain := e.CompleteWord("CAT")

	st := e.State()
	if gain != 6 {
		t.Errorf("gain = %d, want 6", gain)
	}
	if st.Score != 9 {
		t.Errorf("score = %d, want 9 (3 pickups + 3*2)", st.Score)
	}
	if st.Words != 1 || st.Streak != 1 || st.BestStreak != 1 {
		t.Errorf("unexpected counters: %+v", st)
	}
}

func TestLevelEveryFifthWord(t *testing.T) {
	e := NewEngine(config.DefaultWordSnakeConfig())

	want := []time.Duration{175, 150, 125, 100, 80, 80}
	for i, w := range want {
		for n := 0; n < 5; n++ {
			e.CompleteWord("DOG")
			if n < 4 && e.WordQuotaReached() {
				t.Fatalf("quota reached early at word %d", e.State().Words)
			}
		}
		if !e.WordQuotaReached() {
			t.Fatalf("quota not reached after %d words", e.State().Words)
		}
		e.Advance()

		st := e.State()
		if st.Level != i+2 {
			t.Errorf("level = %d, want %d", st.Level, i+2)
		}
		if st.Interval != w*time.Millisecond {
			t.Errorf("level %d interval = %v, want %v", st.Level, st.Interval, w*time.Millisecond)
		}
	}
}

func TestStreakSurvivesLevelsAndEndsOnGameOver(t *testing.T) {
	e := NewEngine(config.DefaultWordSnakeConfig())
	e.CompleteWord("ONE")
	e.CompleteWord("TWO")
	e.Advance()
	e.CompleteWord("SIX")

	if e.State().Streak != 3 {
		t.Fatalf("streak = %d, want 3", e.State().Streak)
	}

	e.EndRun()
	st := e.State()
	if st.Streak != 0 || st.BestStreak != 3 {
		t.Errorf("after game over: streak=%d best=%d", st.Streak, st.BestStreak)
	}

	e.Reset()
	if st := e.State(); st.Level != 1 || st.Score != 0 || st.BestStreak != 0 || st.Interval != 200*time.Millisecond {
		t.Errorf("Reset left state %+v", st)
	}
}

type memStore struct {
	values map[string]int
	sets   int
	err    error
}

func (m *memStore) Best(key string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.values[key], nil
}

func (m *memStore) SetBest(key string, v int) error {
	if m.err != nil {
		return m.err
	}
	m.sets++
	m.values[key] = v
	return nil
}

func TestHighScoreCelebratesOnce(t *testing.T) {
	store := &memStore{values: map[string]int{HighScoreKey: 10}}
	tr := NewTracker(store, HighScoreKey, log.New(io.Discard))

	if c, _ := tr.Observe(5); c {
		t.Fatal("score below best must not celebrate")
	}
	if c, _ := tr.Observe(10); c {
		t.Fatal("tying the best must not celebrate")
	}

	c, prev := tr.Observe(11)
	if !c || prev != 10 {
		t.Fatalf("expected celebration over 10, got %v prev=%d", c, prev)
	}
	if store.values[HighScoreKey] != 11 {
		t.Errorf("stored best = %d, want 11", store.values[HighScoreKey])
	}

	for s := 12; s < 20; s++ {
		if c, _ := tr.Observe(s); c {
			t.Fatalf("celebrated again at %d", s)
		}
	}
	if store.values[HighScoreKey] != 19 || tr.Best() != 19 {
		t.Errorf("best not kept current: store=%d tracker=%d", store.values[HighScoreKey], tr.Best())
	}

	// A restart starts a new session
	tr.NewSession()
	if c, _ := tr.Observe(19); c {
		t.Error("tying the best must not celebrate in a new session")
	}
	if c, prev := tr.Observe(20); !c || prev != 19 {
		t.Errorf("new session should celebrate again, got %v prev=%d", c, prev)
	}
}

func TestHighScoreReadsStoreEachUpdate(t *testing.T) {
	store := &memStore{values: map[string]int{}}
	tr := NewTracker(store, HighScoreKey, log.New(io.Discard))

	// Another session raised the best meanwhile
	store.values[HighScoreKey] = 50
	if c, _ := tr.Observe(30); c {
		t.Error("30 does not beat the externally updated best of 50")
	}
	if tr.Best() != 50 {
		t.Errorf("Best() = %d, want 50", tr.Best())
	}
}

func TestHighScoreStoreFailure(t *testing.T) {
	store := &memStore{values: map[string]int{}, err: errors.New("disk gone")}
	tr := NewTracker(store, HighScoreKey, log.New(io.Discard))

	c, _ := tr.Observe(3)
	if !c {
		t.Error("store failures must not suppress the celebration")
	}
	if tr.Best() != 3 {
		t.Errorf("Best() = %d, want 3", tr.Best())
	}
}
