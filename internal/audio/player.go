// Package audio synthesizes short sound cues for game events and plays them
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/logastroids/internal/loop"
)

// SampleRate is the speaker rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// maxVoices caps how many cues may sound at once.
const maxVoices = 16

// Player mixes cues into the speaker. The zero value is not usable; create
// one with NewPlayer.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
}

// NewPlayer creates a player at the given volume in [0,1].
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. Call once before Play.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play starts the cues for one frame of events. Repeated events of the same
// cue in a frame sound once.
func (p *Player) Play(events []loop.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || len(events) == 0 {
		return
	}
	cues := cuesFor(events)
	if len(cues) == 0 {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if p.mixer.Len() >= maxVoices {
			return
		}
		if s := Build(c, SampleRate, p.volume); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
