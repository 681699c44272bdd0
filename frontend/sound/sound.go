// Package sound plays short tones when tiles merge.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/wricardo/game2048/game/engine"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneLength = 60 * time.Millisecond
	baseFreq   = 220.0 // pitch of a merge into 4
)

// Player plays merge cues through the system speaker
type Player struct {
	mu     sync.Mutex
	closed bool
}

// NewPlayer opens the speaker. Callers treat an error as "no sound".
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{}, nil
}

// Merge plays one tone for the highest merge of a turn
func (p *Player) Merge(merges []engine.MergeEvent) {
	if len(merges) == 0 {
		return
	}

	best := merges[0].Value
	for _, m := range merges[1:] {
		if m.Value > best {
			best = m.Value
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	tone, err := generators.SineTone(sampleRate, Pitch(best))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLength), tone))
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Close()
}

// Pitch returns the tone frequency for a merged value, rising a whole tone per doubling
// and capped below half the sample rate.
func Pitch(v engine.Tile) float64 {
	steps := v.Rank() - 2
	if steps < 0 {
		steps = 0
	}
	freq := baseFreq * math.Pow(2, float64(steps)/6)
	if limit := float64(sampleRate) / 2; freq >= limit {
		freq = limit - 1
	}
	return freq
}
