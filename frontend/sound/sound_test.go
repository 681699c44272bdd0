package sound

import (
	"testing"

	"github.com/wricardo/game2048/game/engine"
)

func TestPitch(t *testing.T) {
	if got := Pitch(4); got != baseFreq {
		t.Errorf("Expected %v for 4, got %v", baseFreq, got)
	}
	if got := Pitch(2); got != baseFreq {
		t.Errorf("Expected %v for 2, got %v", baseFreq, got)
	}

	prev := Pitch(4)
	for v := engine.Tile(8); v <= 2048; v *= 2 {
		p := Pitch(v)
		if p <= prev {
			t.Errorf("Expected pitch to rise at %d: %v <= %v", v, p, prev)
		}
		prev = p
	}

	if got := Pitch(engine.MaxTileValue); got >= float64(sampleRate)/2 {
		t.Errorf("Expected pitch below Nyquist, got %v", got)
	}
}

func TestMergeWithoutMergesIsNoop(t *testing.T) {
	var p Player
	p.Merge(nil)
}
