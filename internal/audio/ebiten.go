package audio

import (
	"log"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenPlayer plays tones through an ebiten audio context. Each distinct tone is
// synthesized once and its player is rewound on replay.
type EbitenPlayer struct {
	ctx     *ebitenaudio.Context
	players map[Tone]*ebitenaudio.Player
}

// NewEbitenPlayer creates the process-wide audio context. Ebiten allows only one
// context per process, so call this once.
func NewEbitenPlayer() *EbitenPlayer {
	return &EbitenPlayer{
		ctx:     ebitenaudio.NewContext(SampleRate),
		players: make(map[Tone]*ebitenaudio.Player),
	}
}

// Play starts t from the beginning.
func (p *EbitenPlayer) Play(t Tone) {
	player, ok := p.players[t]
	if !ok {
		player = p.ctx.NewPlayerFromBytes(Synthesize(t, SampleRate))
		p.players[t] = player
	}
	if err := player.Rewind(); err != nil {
		log.Printf("Warning: failed to rewind %.0f Hz tone: %v", t.Frequency, err)
		return
	}
	player.Play()
}
