package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/wordsnake/internal/events"
)

// Player turns game events into sound. It implements events.Notifier and is
// silent until Init succeeds.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	logger *log.Logger
	ready  bool
}

// NewPlayer creates a player. Call Init to open the audio device.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Ready reports whether sound output is active.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Notify implements events.Notifier.
func (p *Player) Notify(evt events.Event) {
	tones := Cue(evt)
	if len(tones) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	speaker.Lock()
	p.mixer.Add(Stream(tones, SampleRate))
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.ready = false
}
