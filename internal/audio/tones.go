// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/wordsnake/internal/events"
)

// SampleRate used for every cue.
const SampleRate = beep.SampleRate(44100)

// attack is the fade-in applied to every tone to avoid clicks.
const attack = 5 * time.Millisecond

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveTriangle
)

// Tone is one note of a cue. Offset is measured from the start of the cue.
type Tone struct {
	Freq   float64
	Dur    time.Duration
	Offset time.Duration
	Wave   WaveType
	Volume float64 // 0..1
}

// Cue returns the tones played for evt, or nil when the event is silent.
func Cue(evt events.Event) []Tone {
	switch evt.(type) {
	case events.LetterPicked:
		return []Tone{{Freq: 550, Dur: 100 * time.Millisecond, Volume: 0.4}}
	case events.WordCompleted:
		return arpeggio([]float64{523, 659, 784, 1047}, 80*time.Millisecond, 150*time.Millisecond, WaveSine, 0.3)
	case events.LevelUp:
		return arpeggio([]float64{400, 500, 600}, 150*time.Millisecond, 150*time.Millisecond, WaveSine, 0.5)
	case events.GameOver:
		return []Tone{{Freq: 200, Dur: 600 * time.Millisecond, Wave: WaveSaw, Volume: 0.4}}
	case events.NewHighScore:
		return []Tone{
			{Freq: 523.25, Dur: 150 * time.Millisecond, Wave: WaveTriangle, Volume: 0.3},
			{Freq: 659.25, Dur: 150 * time.Millisecond, Offset: 150 * time.Millisecond, Wave: WaveTriangle, Volume: 0.3},
			{Freq: 783.99, Dur: 150 * time.Millisecond, Offset: 300 * time.Millisecond, Wave: WaveTriangle, Volume: 0.3},
			{Freq: 1046.5, Dur: 200 * time.Millisecond, Offset: 450 * time.Millisecond, Wave: WaveTriangle, Volume: 0.3},
		}
	default:
		return nil
	}
}

func arpeggio(freqs []float64, spacing, dur time.Duration, wave WaveType, vol float64) []Tone {
	tones := make([]Tone, len(freqs))
	for i, f := range freqs {
		tones[i] = Tone{
			Freq:   f,
			Dur:    dur,
			Offset: time.Duration(i) * spacing,
			Wave:   wave,
			Volume: vol,
		}
	}
	return tones
}

// Length returns the total duration of a cue.
func Length(tones []Tone) time.Duration {
	var d time.Duration
	for _, t := range tones {
		d = max(d, t.Offset+t.Dur)
	}
	return d
}

// Stream renders tones into a single streamer of exactly Length(tones).
func Stream(tones []Tone, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := newOscillator(t.Freq, t.Dur, t.Wave, rate)
		shaped := newEnvelope(osc, t.Dur, attack, rate)
		voice := newVolume(shaped, t.Volume)
		if t.Offset > 0 {
			voice = beep.Seq(beep.Silence(rate.N(t.Offset)), voice)
		}
		voices = append(voices, voice)
	}
	return beep.Take(rate.N(Length(tones)), beep.Mix(voices...))
}

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4.0*math.Abs(o.phase-0.5) - 1.0
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades in over the attack and then decays linearly to silence at
// the end of the tone.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if e.total > e.attack {
			vol = 1.0 - float64(e.position-e.attack)/float64(e.total-e.attack)
		}
		vol = max(vol, 0)

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear 0..1 volume onto a base-2 volume effect.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
