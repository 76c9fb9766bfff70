// Package audio turns engine events into short feedback tones.
package audio

import (
	"math"
	"time"

	"chosenoffset.com/serpent/internal/engine"
)

// SampleRate is the PCM rate used for every tone.
const SampleRate = 44100

// Tone is a sine beep whose gain decays exponentially from StartGain to EndGain.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	StartGain float64
	EndGain   float64
}

// Tones per event; the frequency tells the player what happened.
var (
	TurnTone     = Tone{Frequency: 200, Duration: 100 * time.Millisecond, StartGain: 0.1, EndGain: 0.01}
	FoodTone     = Tone{Frequency: 300, Duration: 100 * time.Millisecond, StartGain: 0.1, EndGain: 0.01}
	GameOverTone = Tone{Frequency: 100, Duration: 100 * time.Millisecond, StartGain: 0.1, EndGain: 0.01}
)

// Synthesize renders t as signed 16-bit little-endian stereo PCM.
func Synthesize(t Tone, sampleRate int) []byte {
	n := int(math.Round(float64(sampleRate) * t.Duration.Seconds()))
	buf := make([]byte, n*4)
	if n == 0 || t.StartGain <= 0 {
		return buf
	}

	ratio := t.EndGain / t.StartGain
	for i := 0; i < n; i++ {
		secs := float64(i) / float64(sampleRate)
		gain := t.StartGain * math.Pow(ratio, float64(i)/float64(n))
		v := int16(math.Sin(2*math.Pi*t.Frequency*secs) * gain * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// Player plays a tone without blocking.
type Player interface {
	Play(t Tone)
}

// Silent is a Player that drops every tone.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Tone) {}

// Cues plays one tone per turn, food and game-over event.
type Cues struct {
	player Player
}

// NewCues creates cues backed by player.
func NewCues(player Player) *Cues {
	return &Cues{player: player}
}

// Listen is an engine.Listener.
func (c *Cues) Listen(ev engine.Event) {
	switch ev.Kind {
	case engine.EventTurned:
		c.player.Play(TurnTone)
	case engine.EventFoodEaten:
		c.player.Play(FoodTone)
	case engine.EventGameOver:
		c.player.Play(GameOverTone)
	}
}
