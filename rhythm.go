package aurea

import (
	"math"
	"sort"
)

// DefaultRhythm is used when a caller asks for a rhythm pattern the catalog
// does not know.
const DefaultRhythm = "straight"

// rhythmPatterns are on/off grids in sixteenth notes.
var rhythmPatterns = map[string][]int{
	"straight":   {1, 0, 1, 0, 1, 0, 1, 0},
	"swing":      {1, 0, 0, 1, 1, 0, 0, 1},
	"syncopated": {1, 0, 1, 1, 0, 1, 0, 1},
	"latin":      {1, 0, 1, 0, 0, 1, 1, 0},
	"funk":       {1, 0, 0, 1, 0, 1, 0, 0},
	"waltz":      {1, 0, 0, 1, 0, 0}, // 3/4
}

// accentInterval spaces the velocity accents roughly every φ·2 ≈ 3rd note.
var accentInterval = int(phi * 2)

// RhythmPattern returns the on/off grid of a named pattern and whether the
// name is known.
func RhythmPattern(name string) ([]int, bool) {
	p, ok := rhythmPatterns[name]
	return p, ok
}

// RhythmNames returns all rhythm pattern names, sorted.
func RhythmNames() []string {
	names := make([]string, 0, len(rhythmPatterns))
	for name := range rhythmPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyRhythm reshapes seq with the named pattern. Notes falling on an off
// beat are merged into the previously emitted note, extending it by half the
// merged note's duration (a leading off-beat note is dropped). Notes on an
// on beat get their duration scaled by 1 + 0.3·sin(i·φ) and every
// accentInterval-th note a 1.2× velocity boost, capped at 127. The result is
// never longer than the input. An unknown pattern name falls back to
// straight.
func ApplyRhythm(seq Sequence, patternName string) Sequence {
	pattern, ok := rhythmPatterns[patternName]
	if !ok {
		pattern = rhythmPatterns[DefaultRhythm]
	}
	out := make(Sequence, 0, len(seq))
	for i, n := range seq {
		if pattern[i%len(pattern)] == 0 {
			if len(out) > 0 {
				out[len(out)-1].Duration += n.Duration / 2
			}
			continue
		}
		n.Duration = int(float64(n.Duration) * (1 + 0.3*math.Sin(float64(i)*Phi)))
		if i%accentInterval == 0 {
			if v := int(float64(n.Velocity) * 1.2); v > 127 {
				n.Velocity = 127
			} else {
				n.Velocity = v
			}
		}
		out = append(out, n)
	}
	return out
}
