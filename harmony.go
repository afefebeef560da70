package aurea

import "math"

// bassInterval is the fixed offset of the bass voice below the melody's
// lower octave: floor(φ·7) mod 12 = 11 semitones.
var bassInterval = int(phi*7) % 12

// harmonyIntervals are the middle voice's choices above the melody: a major
// third or a perfect fifth.
var harmonyIntervals = [2]int{4, 7}

// GenerateHarmony derives two voices from a melody.
//
// The bass doubles every melody note an octave plus bassInterval lower
// (floored at the piano range), twice as long and at 0.7× velocity.
//
// The middle voice triggers at melody indices i ≥ pos, where pos starts at 0
// and advances by a step that starts at φ and shrinks by 1/φ on every
// trigger, so the voice gets denser over time. Each trigger adds a third or
// a fifth above the melody note - indexed by floor(i·φ) mod 2 - at the same
// duration and 0.8× velocity, skipped when the result would leave the piano
// range. The middle voice is therefore at most as long as the melody.
func GenerateHarmony(melody Sequence) (bass, middle Sequence) {
	bass = make(Sequence, 0, len(melody))
	for _, n := range melody {
		key := n.Key - 12 - bassInterval
		if key < MinKey {
			key = MinKey
		}
		bass = append(bass, Note{
			Key:      key,
			Duration: n.Duration * 2,
			Velocity: int(float64(n.Velocity) * 0.7),
		})
	}

	pos := 0.0
	step := float64(Phi)
	for i, n := range melody {
		if float64(i) < pos {
			continue
		}
		interval := harmonyIntervals[int(math.Mod(float64(i)*Phi, 2))]
		if key := n.Key + interval; key <= MaxKey {
			middle = append(middle, Note{
				Key:      key,
				Duration: n.Duration,
				Velocity: int(float64(n.Velocity) * 0.8),
			})
		}
		pos += step
		step *= PhiInverse
	}
	return bass, middle
}
