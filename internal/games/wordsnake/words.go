package wordsnake

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/dictionary"
	"github.com/vovakirdan/wordsnake/internal/events"
	"github.com/vovakirdan/wordsnake/internal/mission"
	"github.com/vovakirdan/wordsnake/internal/wordbuf"
)

// listName returns the word list and minimum word length for the current
// level.
func (g *Game) listName() (string, int) {
	if g.variant == VariantMissions {
		return dictionary.MissionList(g.prog.State().Level), g.cfg.Words.MinLenMissions
	}
	return dictionary.ClassicList, g.cfg.Words.MinLenClassic
}

// loadWords starts loading the list for the current level. A list that is
// already loaded or loading is kept.
func (g *Game) loadWords() {
	name, minLen := g.listName()
	if g.dict != nil && g.dict.Name() == name && g.dict.State() != dictionary.StateFailed {
		return
	}

	done := make(chan struct{})
	g.dictDone = done
	g.dictWarned = false
	g.dict = g.loader.LoadAsync(context.Background(), name, minLen, func(*dictionary.Dictionary) {
		close(done)
	})
}

// checkDictionary reports a failed load once per list.
func (g *Game) checkDictionary() {
	if g.dictWarned || g.dict == nil || g.dict.State() != dictionary.StateFailed {
		return
	}
	g.dictWarned = true
	g.notify.Notify(events.DictionaryUnavailable{
		Source: g.dict.Name(),
		Err:    g.dict.Err(),
	})
}

// alphabet restricts tile letters in the missions variant.
func (g *Game) alphabet() []rune {
	if g.variant != VariantMissions || g.dict == nil {
		return nil
	}
	return g.dict.Alphabet()
}

func (g *Game) triggerLen() (trigger, minLen int) {
	if g.variant == VariantMissions {
		return g.cfg.Words.TriggerLenMissions, g.cfg.Words.MinLenMissions
	}
	return g.cfg.Words.TriggerLenClassic, g.cfg.Words.MinLenClassic
}

// detectWord runs after every pickup and consumes at most one word.
func (g *Game) detectWord() {
	trigger, minLen := g.triggerLen()
	m, ok := g.buf.Detect(g.dict, trigger, minLen)
	if !ok {
		return
	}
	g.completeWord(m)
}

// completeWord scores a match, shrinks the creature and checks for a level
// advance.
func (g *Game) completeWord(m wordbuf.Match) {
	gain := g.prog.CompleteWord(m.Word)
	g.shrink(len(m.Word))
	g.buf.Consume(m)
	g.lastWord = m.Word

	st := g.prog.State()
	g.logger.Debug("word completed", "word", m.Word, "gain", gain, "streak", st.Streak)
	g.notify.Notify(events.WordCompleted{
		Word:   m.Word,
		Bonus:  len(m.Word),
		Level:  st.Level,
		Streak: st.Streak,
	})
	g.setBanner(fmt.Sprintf("%s +%d BONUS!", m.Word, len(m.Word)), core.ColorBrightGreen)
	g.observeScore()

	advance := false
	if g.variant == VariantMissions {
		advance = g.objective.Evaluate(m.Word, g.progress)
	} else {
		advance = g.prog.WordQuotaReached()
	}
	if advance {
		g.levelUp()
	}
}

// levelUp advances the level. In missions it also swaps the word list,
// objective and obstacles.
func (g *Game) levelUp() {
	g.prog.Advance()
	st := g.prog.State()

	text := ""
	if g.variant == VariantMissions {
		g.progress.Reset()
		g.objective = mission.ForLevel(st.Level)
		text = g.texts.Describe(st.Level)
		g.loadWords()
		g.generateObstacles()
	}

	g.logger.Info("level up", "game", g.ID(), "level", st.Level, "interval", st.Interval)
	g.notify.Notify(events.LevelUp{
		Level:        st.Level,
		TickInterval: int(st.Interval / time.Millisecond),
		Mission:      text,
	})
	g.setBanner(fmt.Sprintf("LEVEL %d!", st.Level), core.ColorBrightYellow)
}

// observeScore compares the score with the persisted best.
func (g *Game) observeScore() {
	score := g.prog.State().Score
	celebrate, previous := g.best.Observe(score)
	if !celebrate {
		return
	}
	g.cheer = bannerTicks * 2
	g.notify.Notify(events.NewHighScore{Score: score, Previous: previous})
}

// Suggestions lists words that extend the current buffer.
func (g *Game) Suggestions() []string {
	if g.dict == nil {
		return nil
	}
	return g.dict.Suggestions(g.buf.String(), g.cfg.Words.SuggestionLimit)
}

// MissionText returns the objective description for the current level, or
// "" in the classic variant.
func (g *Game) MissionText() string {
	if g.variant != VariantMissions {
		return ""
	}
	return g.texts.Describe(g.prog.State().Level)
}
