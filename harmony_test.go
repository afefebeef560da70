package aurea_test

import (
	"testing"

	"github.com/aureamidi/aurea"
)

func TestGenerateHarmonyBass(t *testing.T) {
	melody := identicalNotes(8, 60, 480, 80)
	bass, _ := aurea.GenerateHarmony(melody)
	if len(bass) != len(melody) {
		t.Fatalf("bass has %v notes, expected one per melody note (%v)", len(bass), len(melody))
	}
	for i, n := range bass {
		// an octave plus floor(φ·7) mod 12 = 11 semitones below the melody
		if n.Key != 60-23 {
			t.Errorf("bass note %v key %v, expected %v", i, n.Key, 37)
		}
		if n.Duration != 960 {
			t.Errorf("bass note %v duration %v, expected doubled 960", i, n.Duration)
		}
		if n.Velocity != 56 {
			t.Errorf("bass note %v velocity %v, expected 56", i, n.Velocity)
		}
	}
}

func TestGenerateHarmonyBassFloorsAtPianoRange(t *testing.T) {
	bass, _ := aurea.GenerateHarmony(identicalNotes(3, 30, 480, 80))
	for _, n := range bass {
		if n.Key != aurea.MinKey {
			t.Errorf("bass key %v, expected floor at %v", n.Key, aurea.MinKey)
		}
	}
}

func TestGenerateHarmonyMiddleVoiceTriggers(t *testing.T) {
	// the trigger cursor starts at 0 with step φ, the step shrinking by 1/φ
	// per trigger: indices 0, 2, 3, 4, ... fire, index 1 does not
	melody := identicalNotes(8, 60, 480, 80)
	_, middle := aurea.GenerateHarmony(melody)
	if len(middle) != 7 {
		t.Fatalf("middle voice has %v notes, expected 7", len(middle))
	}
	// interval per trigger is {4,7}[floor(i·φ) mod 2]
	wantKeys := []int{64, 67, 64, 64, 64, 67, 67}
	for i, n := range middle {
		if n.Key != wantKeys[i] {
			t.Errorf("middle note %v key %v, expected %v", i, n.Key, wantKeys[i])
		}
		if n.Velocity != 64 {
			t.Errorf("middle note %v velocity %v, expected 64", i, n.Velocity)
		}
		if n.Duration != 480 {
			t.Errorf("middle note %v duration %v, expected 480", i, n.Duration)
		}
	}
}

func TestGenerateHarmonyMiddleVoiceSkipsAboveRange(t *testing.T) {
	_, middle := aurea.GenerateHarmony(identicalNotes(8, 108, 480, 80))
	if len(middle) != 0 {
		t.Fatalf("middle voice should skip notes above the piano range, got %v", len(middle))
	}
}

func TestGenerateHarmonyNeverLongerThanMelody(t *testing.T) {
	melody := identicalNotes(50, 72, 296, 90)
	bass, middle := aurea.GenerateHarmony(melody)
	if len(bass) > len(melody) || len(middle) > len(melody) {
		t.Fatalf("harmony voices longer than melody: bass %v, middle %v", len(bass), len(middle))
	}
}
