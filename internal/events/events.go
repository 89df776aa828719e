// Package events defines the notifications a game emits to its presentation
// collaborators (renderer banners, audio). Notifications carry the data needed
// for presentation and never feed back into game state.
package events

// Event is the closed set of game notifications.
type Event interface {
	gameEvent()
}

// LetterPicked is sent when the creature collects a tile.
type LetterPicked struct {
	Letter rune
	Points int
	Buffer string // Word buffer after the pickup
}

func (LetterPicked) gameEvent() {}

// WordCompleted is sent when a dictionary word is consumed from the buffer.
type WordCompleted struct {
	Word   string
	Bonus  int // Word length; the score gain is Bonus * Level
	Level  int
	Streak int
}

func (WordCompleted) gameEvent() {}

// LevelUp is sent after the level advances.
type LevelUp struct {
	Level        int
	TickInterval int    // Milliseconds
	Mission      string // Objective text for the new level (missions only)
}

func (LevelUp) gameEvent() {}

// NewHighScore fires at most once per play session, the first time the
// score passes the persisted best.
type NewHighScore struct {
	Score    int
	Previous int
}

func (NewHighScore) gameEvent() {}

// GameOver is sent on the terminal transition.
type GameOver struct {
	Reason     string
	Score      int
	Words      int
	BestStreak int
}

func (GameOver) gameEvent() {}

// DictionaryUnavailable is sent when a word list failed to load and the game
// continues in degraded mode.
type DictionaryUnavailable struct {
	Source string
	Err    error
}

func (DictionaryUnavailable) gameEvent() {}

// Notifier receives game events.
type Notifier interface {
	Notify(evt Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(evt Event)

// Notify calls f(evt).
func (f NotifierFunc) Notify(evt Event) {
	f(evt)
}

// Fanout delivers each event to every non-nil notifier in order.
type Fanout []Notifier

// Notify implements Notifier.
func (f Fanout) Notify(evt Event) {
	for _, n := range f {
		if n != nil {
			n.Notify(evt)
		}
	}
}

// Discard drops every event.
var Discard Notifier = NotifierFunc(func(Event) {})

// Recorder keeps every event it receives. Used by tests and replays.
type Recorder struct {
	Events []Event
}

// Notify implements Notifier.
func (r *Recorder) Notify(evt Event) {
	r.Events = append(r.Events, evt)
}

// Count returns how many recorded events have type T.
func Count[T Event](r *Recorder) int {
	n := 0
	for _, e := range r.Events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
