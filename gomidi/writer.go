// Package gomidi serializes compositions into standard MIDI files using
// gitlab.com/gomidi/midi.
package gomidi

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/aureamidi/aurea"
)

// drumChannel is MIDI channel 10 (0-based 9), reserved for percussion.
const drumChannel = 9

// Encode builds a type-1 MIDI file from a composition: one melody track
// carrying the tempo, key and meter metas, one track per harmony voice on
// channels 1.. at reduced channel volume, and a drum track on channel 10
// when the composition has percussion.
func Encode(c aurea.Composition) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(aurea.TicksPerQuarter)
	s.Add(melodyTrack(c))
	for i, voice := range c.Harmony {
		s.Add(harmonyTrack(voice, c.Style, i))
	}
	if len(c.Percussion) > 0 {
		s.Add(drumTrack(c.Percussion))
	}
	return s
}

// Write encodes the composition and writes it to w.
func Write(c aurea.Composition, w io.Writer) error {
	if _, err := Encode(c).WriteTo(w); err != nil {
		return fmt.Errorf("writing MIDI file failed: %v", err)
	}
	return nil
}

// WriteFile encodes the composition and writes it to path.
func WriteFile(c aurea.Composition, path string) error {
	if err := Encode(c).WriteFile(path); err != nil {
		return fmt.Errorf("writing %v failed: %v", path, err)
	}
	return nil
}

func melodyTrack(c aurea.Composition) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("Melody"))
	tr.Add(0, smf.MetaTempo(float64(c.Tempo)))
	key, accidentals, flat := keySignature(c.Root)
	tr.Add(0, smf.MetaKey(key, true, accidentals, flat))
	tr.Add(0, smf.MetaMeter(4, 4))
	if len(c.Style.Instruments) > 0 {
		tr.Add(0, midi.ProgramChange(0, program(c.Style.Instruments[0])))
	}
	appendNotes(&tr, 0, c.Melody, 1)
	tr.Close(0)
	return tr
}

func harmonyTrack(voice aurea.Sequence, style aurea.Style, index int) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(fmt.Sprintf("Harmony%d", index+1)))
	channel := uint8(index + 1)
	if patch, ok := harmonyInstrument(style, index); ok {
		tr.Add(0, midi.ProgramChange(channel, program(patch)))
	}
	tr.Add(0, midi.ControlChange(channel, 7, 80)) // channel volume; harmony sits behind the melody
	appendNotes(&tr, channel, voice, 0.7)
	tr.Close(0)
	return tr
}

func drumTrack(hits []aurea.Hit) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("Drums"))
	last := 0
	for _, h := range hits {
		delta := h.Tick - last
		if delta < 0 {
			delta = 0
		}
		tr.Add(uint32(delta), midi.NoteOn(drumChannel, uint8(h.Key), uint8(h.Velocity)))
		tr.Add(uint32(h.Duration), midi.NoteOff(drumChannel, uint8(h.Key)))
		last = h.Tick + h.Duration
	}
	tr.Close(0)
	return tr
}

func appendNotes(tr *smf.Track, channel uint8, seq aurea.Sequence, velocityScale float64) {
	for _, n := range seq {
		velocity := int(float64(n.Velocity) * velocityScale)
		if velocity < 1 {
			velocity = 1
		} else if velocity > 127 {
			velocity = 127
		}
		tr.Add(0, midi.NoteOn(channel, uint8(n.Key), uint8(velocity)))
		tr.Add(uint32(n.Duration), midi.NoteOff(channel, uint8(n.Key)))
	}
}

// harmonyInstrument picks the patch for the index-th harmony voice: the
// style's instruments after the melody one, repeating the last when there
// are more voices than instruments.
func harmonyInstrument(style aurea.Style, index int) (int, bool) {
	if len(style.Instruments) == 0 {
		return 0, false
	}
	if index+1 < len(style.Instruments) {
		return style.Instruments[index+1], true
	}
	return style.Instruments[len(style.Instruments)-1], true
}

// program converts a 1-based General MIDI patch number to the 0-based wire
// value.
func program(patch int) uint8 {
	if patch < 1 {
		patch = 1
	} else if patch > 128 {
		patch = 128
	}
	return uint8(patch - 1)
}

// keySignature maps the root note to a major key signature: the pitch class
// plus the accidental count on the circle of fifths.
func keySignature(root int) (key uint8, accidentals uint8, flat bool) {
	type sig struct {
		num  uint8
		flat bool
	}
	signatures := [12]sig{
		{0, false}, // C
		{7, false}, // C#
		{2, false}, // D
		{3, true},  // Eb
		{4, false}, // E
		{1, true},  // F
		{6, false}, // F#
		{1, false}, // G
		{4, true},  // Ab
		{3, false}, // A
		{2, true},  // Bb
		{5, false}, // B
	}
	class := ((root % 12) + 12) % 12
	return uint8(class), signatures[class].num, signatures[class].flat
}
