package cmd

import "github.com/aureamidi/aurea"

// Player previews a composition by sending its melody to a MIDI output
// device in real time.
type Player interface {
	// Play sends the melody to the first output whose name starts with
	// portPrefix; an empty prefix takes the first output available.
	Play(comp aurea.Composition, portPrefix string) error
	Close()
}

// errPlayer reports why playback is unavailable.
type errPlayer struct{ err error }

func (p errPlayer) Play(aurea.Composition, string) error { return p.err }
func (p errPlayer) Close()                               {}
