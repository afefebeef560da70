//go:build cgo

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/aureamidi/aurea"
)

// NewPlayer opens the rtmidi driver for live preview.
func NewPlayer() Player {
	driver, err := rtmididrv.New()
	if err != nil {
		return errPlayer{fmt.Errorf("opening MIDI driver failed: %v", err)}
	}
	return &rtmidiPlayer{driver: driver}
}

type rtmidiPlayer struct {
	driver *rtmididrv.Driver
}

func (p *rtmidiPlayer) Play(comp aurea.Composition, portPrefix string) error {
	outs, err := p.driver.Outs()
	if err != nil {
		return fmt.Errorf("listing MIDI outputs failed: %v", err)
	}
	var out drivers.Out
	for _, o := range outs {
		if portPrefix == "" || strings.HasPrefix(o.String(), portPrefix) {
			out = o
			break
		}
	}
	if out == nil {
		return errors.New("no matching MIDI output found")
	}
	if err := out.Open(); err != nil {
		return fmt.Errorf("opening MIDI output failed: %v", err)
	}
	defer out.Close()
	send, err := midi.SendTo(out)
	if err != nil {
		return fmt.Errorf("attaching sender failed: %v", err)
	}
	tick := time.Duration(60_000_000_000 / (comp.Tempo * aurea.TicksPerQuarter)) // ns per tick
	for _, n := range comp.Melody {
		if err := send(midi.NoteOn(0, uint8(n.Key), uint8(n.Velocity))); err != nil {
			return err
		}
		time.Sleep(time.Duration(n.Duration) * tick)
		if err := send(midi.NoteOff(0, uint8(n.Key))); err != nil {
			return err
		}
	}
	return nil
}

func (p *rtmidiPlayer) Close() {
	p.driver.Close()
}
