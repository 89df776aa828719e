package wordsnake

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Variant    string
	Level      int
	Score      int
	Words      int
	Streak     int
	BestStreak int
	Length     int
	HeadX      int
	HeadY      int
	DirX       int
	DirY       int
	Buffer     string
	Tiles      string // Tile letters in spawn order
	Obstacles  int
	IntervalMS int
	Dictionary string // Word list state
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.body) > 0 {
		headX = g.body[0].X
		headY = g.body[0].Y
	}

	var tiles strings.Builder
	for _, t := range g.tiles {
		tiles.WriteRune(t.Letter)
	}

	dict := ""
	if g.dict != nil {
		dict = g.dict.State().String()
	}

	st := g.prog.State()
	return Snapshot{
		Tick:       g.tick,
		Variant:    g.variant.String(),
		Level:      st.Level,
		Score:      st.Score,
		Words:      st.Words,
		Streak:     st.Streak,
		BestStreak: st.BestStreak,
		Length:     len(g.body),
		HeadX:      headX,
		HeadY:      headY,
		DirX:       g.dir.X,
		DirY:       g.dir.Y,
		Buffer:     g.buf.String(),
		Tiles:      tiles.String(),
		Obstacles:  len(g.obstacles),
		IntervalMS: int(st.Interval.Milliseconds()),
		Dictionary: dict,
		State:      state,
	}
}
