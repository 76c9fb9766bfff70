package audio

import (
	"io"
	"log"
	"slices"
)

// Bell is a Player for terminals: it writes BEL to out for the tones it was given
// and stays quiet for the rest.
type Bell struct {
	out   io.Writer
	tones []Tone
}

// NewBell rings on out for each of tones. With no tones it rings for every tone.
func NewBell(out io.Writer, tones ...Tone) *Bell {
	return &Bell{out: out, tones: tones}
}

// Play rings once if t is one of the bell's tones.
func (b *Bell) Play(t Tone) {
	if len(b.tones) > 0 && !slices.Contains(b.tones, t) {
		return
	}
	if _, err := b.out.Write([]byte{'\a'}); err != nil {
		log.Printf("Warning: failed to ring bell: %v", err)
	}
}
