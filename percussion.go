package aurea

import (
	"math"
	"math/rand"
)

// General MIDI drum keys on channel 10.
var drumKeys = map[string]int{
	"kick":       36,
	"snare":      38,
	"hihat":      42,
	"open_hihat": 46,
	"crash":      49,
	"ride":       51,
}

type drumStroke struct {
	voice    string
	offset   int // ticks from the running cursor
	velocity int
}

// beatPatterns are the per-measure drum figures of the three drummed rhythm
// styles. Unknown styles fall back to straight.
var beatPatterns = map[string][]drumStroke{
	"straight": {
		{"kick", 0, 100}, {"hihat", 240, 60}, {"snare", 480, 90}, {"hihat", 720, 60},
	},
	"swing": {
		{"kick", 0, 100}, {"hihat", 160, 60}, {"snare", 480, 90}, {"hihat", 640, 60},
	},
	"syncopated": {
		{"kick", 0, 100}, {"hihat", 120, 60}, {"snare", 360, 90}, {"kick", 600, 80}, {"hihat", 720, 60},
	},
}

const (
	ticksPerMeasure = TicksPerQuarter * 4 // 4/4 throughout
	drumGate        = 120                 // short fixed gate per hit
)

// GeneratePercussion produces the drum hits for a melody of melodyLength
// notes, one pattern repetition per measure with measures estimated as
// melodyLength/8 (at least one). Each stroke is skipped with 10% probability
// and has its velocity scaled by 1 + 0.2·sin(m·φ), clamped to 30..127. Hits
// are placed at a running cursor that advances past each hit's gate and
// jumps to the next measure boundary if the pattern finished early, so
// measures never overlap.
func GeneratePercussion(rnd *rand.Rand, melodyLength int, rhythmName string) []Hit {
	pattern, ok := beatPatterns[rhythmName]
	if !ok {
		pattern = beatPatterns[DefaultRhythm]
	}
	measures := melodyLength / 8
	if measures < 1 {
		measures = 1
	}
	hits := make([]Hit, 0, measures*len(pattern))
	cursor := 0
	for m := 0; m < measures; m++ {
		for _, stroke := range pattern {
			if rnd.Float64() < 0.1 {
				continue
			}
			velocity := int(float64(stroke.velocity) * (1 + 0.2*math.Sin(float64(m)*Phi)))
			if velocity < 30 {
				velocity = 30
			} else if velocity > 127 {
				velocity = 127
			}
			tick := cursor + stroke.offset
			hits = append(hits, Hit{
				Key:      drumKeys[stroke.voice],
				Tick:     tick,
				Duration: drumGate,
				Velocity: velocity,
			})
			cursor = tick + drumGate
		}
		if next := (m + 1) * ticksPerMeasure; next > cursor {
			cursor = next
		}
	}
	return hits
}
