//go:build !cgo

package cmd

import "errors"

// NewPlayer returns a null player; without cgo there is no MIDI driver.
func NewPlayer() Player {
	return errPlayer{errors.New("MIDI playback requires cgo; rebuild with CGO_ENABLED=1")}
}
