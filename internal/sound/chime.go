package sound

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"tomato/internal/core/timekeeper"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate     = beep.SampleRate(44100)
	toneLength     = 400 * time.Millisecond
	workFrequency  = 880.0
	breakFrequency = 523.25
)

// Chime plays a short tone when a session begins.
type Chime struct {
	mu      sync.Mutex
	once    sync.Once
	ready   bool
	enabled bool
	volume  float64
}

// New creates a chime. The speaker is opened lazily on first use.
func New(enabled bool) *Chime {
	return &Chime{enabled: enabled, volume: -1}
}

// SetEnabled toggles playback.
func (chime *Chime) SetEnabled(enabled bool) {
	chime.mu.Lock()
	chime.enabled = enabled
	chime.mu.Unlock()
}

// Play plays the tone for session.
func (chime *Chime) Play(session timekeeper.SessionType) {
	chime.mu.Lock()
	enabled := chime.enabled
	volume := chime.volume
	chime.mu.Unlock()
	if !enabled || !chime.init() {
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: Tone(sampleRate, Frequency(session), toneLength),
		Base:     2,
		Volume:   volume,
	})
}

// Listen plays a chime for every session start after the first one, until
// events is closed.
func (chime *Chime) Listen(events <-chan timekeeper.Event) {
	for event := range events {
		if event.Type == timekeeper.EventSessionStart && event.Repetition > 1 {
			chime.Play(event.Session)
		}
	}
}

func (chime *Chime) init() bool {
	chime.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Printf("sound: %v", fmt.Errorf("init speaker: %w", err))
			return
		}
		chime.mu.Lock()
		chime.ready = true
		chime.mu.Unlock()
	})

	chime.mu.Lock()
	defer chime.mu.Unlock()
	return chime.ready
}

// Frequency returns the tone pitch for a session type.
func Frequency(session timekeeper.SessionType) float64 {
	if session == timekeeper.SessionWork {
		return workFrequency
	}
	return breakFrequency
}

// Tone returns a sine wave of the given frequency and length with a short
// linear fade out.
func Tone(rate beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := rate.N(length)
	fade := rate.N(length / 4)
	step := frequency / float64(rate)
	phase := 0.0
	position := 0

	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			amplitude := 0.5
			if left := total - position; fade > 0 && left < fade {
				amplitude *= float64(left) / float64(fade)
			}
			value := math.Sin(2*math.Pi*phase) * amplitude
			samples[i][0] = value
			samples[i][1] = value
			_, phase = math.Modf(phase + step)
			position++
		}
		return len(samples), true
	})
	return beep.Take(total, sine)
}
