// Package aurea generates musical note sequences shaped by the golden ratio
// and the Fibonacci sequence: a melody, derived harmony voices and a
// percussion pattern, plus an analysis of how closely the result follows
// golden proportions. The gomidi subpackage serializes compositions into
// standard MIDI files.
package aurea

// Timing and range conventions shared by all voices.
const (
	// TicksPerQuarter is the tick resolution of all durations; one quarter
	// note is 480 ticks, matching the usual sequencer resolution.
	TicksPerQuarter = 480

	// MinKey and MaxKey bound every emitted pitch to the standard 88-key
	// piano range.
	MinKey = 21
	MaxKey = 108
)

type (
	// Note is a single sounding event in a voice: a MIDI key, a gate length
	// in ticks and a velocity in 1..127. Velocity 0 is reserved for note-off
	// and is never emitted as a sounding value.
	Note struct {
		Key      int
		Duration int
		Velocity int
	}

	// Sequence is an ordered list of notes played back to back; each note
	// starts immediately after the previous one ends, so there are no
	// explicit start times.
	Sequence []Note

	// Hit is a percussion event. Unlike melodic notes, drum hits are placed
	// at an absolute tick so that the gaps inside a measure survive
	// serialization.
	Hit struct {
		Key      int
		Tick     int
		Duration int
		Velocity int
	}

	// Composition is the aggregate output of one generation request. It is
	// produced once and not modified afterwards.
	Composition struct {
		Style      Style // resolved style template driving instrumentation
		Tempo      int   // beats per minute
		Root       int   // root note as a MIDI key
		Melody     Sequence
		Harmony    []Sequence // bass voice first, then the middle voice
		Percussion []Hit      // empty unless the style calls for a drum track
		Metadata   Metadata
	}
)

func (s Sequence) Copy() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

func clampKey(key int) int {
	if key < MinKey {
		return MinKey
	}
	if key > MaxKey {
		return MaxKey
	}
	return key
}
