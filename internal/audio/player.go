package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mkostin/wingshot/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player consumes the cue events a simulation step emits. Implementations
// must tolerate being called every frame and must never block the caller.
type Player interface {
	Handle(events []core.Event)
	Close()
}

// NewNop returns a player that discards everything. Used with --mute and
// as the fallback when the output device can't be opened.
func NewNop() Player {
	return nopPlayer{}
}

type nopPlayer struct{}

func (nopPlayer) Handle([]core.Event) {}
func (nopPlayer) Close()              {}

// speakerPlayer synthesizes a short cue per event and feeds it to the
// system mixer.
type speakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
}

// NewSpeaker opens the audio device and returns a playing mixer. The error
// is non-fatal to the caller: the game runs fine with a Nop player.
func NewSpeaker() (Player, error) {
	p := &speakerPlayer{
		mixer:  &beep.Mixer{},
		volume: 0.8,
	}
	if err := speaker.Init(sampleRate, sampleRate.N(60*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	p.open = true
	return p, nil
}

func (p *speakerPlayer) Handle(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}

	for _, e := range events {
		if s := p.cue(e); s != nil {
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

func (p *speakerPlayer) cue(e core.Event) beep.Streamer {
	switch e {
	case core.EventFlap:
		return flapCue(sampleRate, p.volume)
	case core.EventEnemyDown:
		return enemyDownCue(sampleRate, p.volume)
	case core.EventEnemyContact:
		return contactCue(sampleRate, p.volume)
	case core.EventGameOver:
		return gameOverCue(sampleRate, p.volume)
	default:
		return nil
	}
}

func (p *speakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.open = false
}
