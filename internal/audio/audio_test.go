package audio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/wordsnake/internal/events"
)

func TestCue(t *testing.T) {
	tests := []struct {
		name   string
		evt    events.Event
		tones  int
		length time.Duration
	}{
		{"pickup", events.LetterPicked{Letter: 'A'}, 1, 100 * time.Millisecond},
		{"word", events.WordCompleted{Word: "CAT"}, 4, 390 * time.Millisecond},
		{"level", events.LevelUp{Level: 2}, 3, 450 * time.Millisecond},
		{"game over", events.GameOver{}, 1, 600 * time.Millisecond},
		{"high score", events.NewHighScore{Score: 10}, 4, 650 * time.Millisecond},
		{"dictionary", events.DictionaryUnavailable{Err: errors.New("x")}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tones := Cue(tc.evt)
			if len(tones) != tc.tones {
				t.Fatalf("got %d tones, expected %d", len(tones), tc.tones)
			}
			if got := Length(tones); got != tc.length {
				t.Errorf("length = %v, expected %v", got, tc.length)
			}
		})
	}
}

func TestCueFrequencies(t *testing.T) {
	word := Cue(events.WordCompleted{})
	want := []float64{523, 659, 784, 1047}
	for i, tone := range word {
		if tone.Freq != want[i] {
			t.Errorf("word tone %d = %vHz, expected %vHz", i, tone.Freq, want[i])
		}
	}

	over := Cue(events.GameOver{})
	if over[0].Freq != 200 || over[0].Wave != WaveSaw {
		t.Errorf("game over tone = %+v", over[0])
	}
}

func TestStreamLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	tones := Cue(events.LevelUp{})
	s := Stream(tones, rate)

	buf := make([][2]float64, 512)
	total := 0
	for range 1000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.5 || buf[i][0] > 1.5 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}

	// Per-voice rounding may lose a sample or two
	if want := rate.N(Length(tones)); total < want-2 || total > want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
}

func TestWaveShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	for _, wave := range []WaveType{WaveSine, WaveSaw, WaveTriangle} {
		osc := newOscillator(100, 50*time.Millisecond, wave, rate)
		buf := make([][2]float64, 100)
		n, _ := osc.Stream(buf)
		if n != 50 {
			t.Errorf("wave %d streamed %d samples, expected 50", wave, n)
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Errorf("wave %d sample %d out of range: %f", wave, i, buf[i][0])
			}
		}
	}
}

func TestPlayerSilentBeforeInit(t *testing.T) {
	p := NewPlayer(log.New(io.Discard))
	if p.Ready() {
		t.Fatal("player should not be ready before Init")
	}
	// Must not touch the speaker
	p.Notify(events.LetterPicked{Letter: 'Q'})
	p.Close()
}
