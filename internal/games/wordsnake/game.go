// Package wordsnake implements the word snake game in two variants: classic
// (walls are fatal, a level every five words) and missions (screen wrap,
// obstacles, per-level objectives with their own word lists).
package wordsnake

import (
	"context"
	"io/fs"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/dictionary"
	"github.com/vovakirdan/wordsnake/internal/events"
	"github.com/vovakirdan/wordsnake/internal/letters"
	"github.com/vovakirdan/wordsnake/internal/mission"
	"github.com/vovakirdan/wordsnake/internal/progression"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/wordbuf"
)

// Game IDs used by the registry and score storage.
const (
	IDClassic  = "wordsnake"
	IDMissions = "wordsnake_missions"
)

// bannerTicks is how long a transient message stays on screen.
const bannerTicks = 12

// Variant selects the rule set.
type Variant int

const (
	VariantClassic Variant = iota
	VariantMissions
)

func (v Variant) String() string {
	if v == VariantMissions {
		return "missions"
	}
	return "classic"
}

// Tile is a collectible letter on the field.
type Tile struct {
	Pos    core.Point
	Letter rune
	Color  core.Color
}

type banner struct {
	text  string
	color core.Color
	ttl   int
}

// Game is the single owner of all word snake state. It is driven from one
// goroutine; only dictionary loads run elsewhere.
type Game struct {
	variant Variant
	cfg     config.WordSnakeConfig
	field   core.Field
	loader  *dictionary.Loader
	notify  events.Notifier
	logger  *log.Logger
	best    *progression.Tracker
	texts   mission.Texts

	rng     *rand.Rand
	gen     *letters.Generator
	screenW int
	screenH int
	tick    uint64

	// Creature, head first
	body []core.Point
	dir  core.Vec

	tiles     []Tile
	obstacles []core.Point

	buf       wordbuf.Buffer
	prog      *progression.Engine
	objective mission.Objective
	progress  *mission.Progress

	dict       *dictionary.Dictionary
	dictDone   chan struct{}
	dictWarned bool

	lastWord  string
	banner    banner
	cheer     int // Ticks left on the high score banner
	gameOver  bool
	endReason string
	paused    bool
}

func init() {
	registry.Register(IDClassic, "Word Snake", func(env registry.Env) registry.Game {
		return New(env)
	})
	registry.Register(IDMissions, "Word Snake: Missions", func(env registry.Env) registry.Game {
		return NewMissions(env)
	})
}

// New creates a classic word snake game.
func New(env registry.Env) *Game {
	return newGame(VariantClassic, env)
}

// NewMissions creates a missions word snake game.
func NewMissions(env registry.Env) *Game {
	return newGame(VariantMissions, env)
}

func newGame(v Variant, env registry.Env) *Game {
	cfg := env.Config
	cfg.Normalize()

	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	notifier := env.Notifier
	if notifier == nil {
		notifier = events.Discard
	}

	g := &Game{
		variant:  v,
		cfg:      cfg,
		field:    core.Field{Cell: cfg.Grid.CellSize, Size: cfg.Grid.FieldSize},
		loader:   dictionary.NewLoader(env.Words, logger),
		notify:   notifier,
		logger:   logger,
		best:     progression.NewTracker(env.Best, progression.HighScoreKey, logger),
		texts:    loadTexts(env.Words, logger),
		prog:     progression.NewEngine(cfg),
		progress: mission.NewProgress(),
	}
	return g
}

// loadTexts layers missions.yaml from the word list directory over the
// built-in texts.
func loadTexts(fsys fs.FS, logger *log.Logger) mission.Texts {
	texts, err := mission.LoadTexts(fsys)
	if err != nil {
		logger.Warn("ignoring mission texts", "error", err)
	}
	return texts
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantMissions {
		return IDMissions
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMissions {
		return "Word Snake: Missions"
	}
	return "Word Snake"
}

// Variant returns the rule set of this game.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset initializes/restarts the game. Mission progress is discarded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.gen = letters.New(g.rng)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0

	g.body = []core.Point{{X: g.cfg.Grid.StartX, Y: g.cfg.Grid.StartY}}
	g.dir = core.Vec{}
	g.tiles = nil
	g.obstacles = nil
	g.buf.Reset()
	g.prog.Reset()
	g.progress.Reset()
	g.objective = mission.Objective{}
	if g.variant == VariantMissions {
		g.objective = mission.ForLevel(1)
	}

	g.lastWord = ""
	g.banner = banner{}
	g.cheer = 0
	g.gameOver = false
	g.endReason = ""
	g.paused = false
	g.best.NewSession()

	g.loadWords()
	if g.variant == VariantMissions {
		g.generateObstacles()
	}
	for range g.cfg.Tiles.Initial {
		if !g.spawnTile() {
			break
		}
	}
}

// Handle applies a player action immediately.
func (g *Game) Handle(a core.Action) {
	switch {
	case a == core.ActionRestart:
		if g.gameOver {
			g.Reset(core.RuntimeConfig{
				Seed:    g.rng.Int63(),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
		}
	case a == core.ActionPause:
		if g.variant == VariantMissions && !g.gameOver {
			g.paused = !g.paused
		}
	case a.IsTurn():
		if g.gameOver || g.paused {
			return
		}
		g.turn(a.Unit())
	}
}

// turn changes direction only when the new axis is currently idle, which
// rules out reversing into the neck.
func (g *Game) turn(u core.Vec) {
	if u.X != 0 && g.dir.X == 0 {
		g.dir = u
	}
	if u.Y != 0 && g.dir.Y == 0 {
		g.dir = u
	}
}

// Step advances the game by one logical tick. A panic inside the tick ends
// the game instead of taking the program down.
func (g *Game) Step() (res core.StepResult) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("tick fault", "game", g.ID(), "tick", g.tick, "panic", r)
			g.endGame("fault")
			res = core.StepResult{State: g.State()}
		}
	}()

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.checkDictionary()
	g.ageBanners()
	g.topUpTiles()
	moved := g.move()

	return core.StepResult{State: g.State(), Moved: moved}
}

// TickInterval returns the current logical tick duration.
func (g *Game) TickInterval() time.Duration {
	return g.prog.State().Interval
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.prog.State()
	return core.GameState{
		Score:      st.Score,
		Words:      st.Words,
		Level:      st.Level,
		BestStreak: st.BestStreak,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}

// WaitWords blocks until the current word list finished loading or failed.
func (g *Game) WaitWords(ctx context.Context) error {
	done := g.dictDone
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// endGame is the terminal transition. Only the first call counts.
func (g *Game) endGame(reason string) {
	if g.gameOver {
		return
	}
	st := g.prog.State()
	g.gameOver = true
	g.endReason = reason
	g.paused = false
	g.prog.EndRun()

	g.logger.Info("game over", "game", g.ID(), "reason", reason,
		"score", st.Score, "words", st.Words, "level", st.Level)
	g.notify.Notify(events.GameOver{
		Reason:     reason,
		Score:      st.Score,
		Words:      st.Words,
		BestStreak: st.BestStreak,
	})
}

func (g *Game) setBanner(text string, c core.Color) {
	g.banner = banner{text: text, color: c, ttl: bannerTicks}
}

func (g *Game) ageBanners() {
	if g.banner.ttl > 0 {
		g.banner.ttl--
	}
	if g.cheer > 0 {
		g.cheer--
	}
}
