package midifile

import (
	"errors"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/pentascale/chord"
	"github.com/jsphweid/pentascale/scale"
)

var ErrNothingToExport = errors.New("no playable chords in progression")

const ticksPerQuarter = 96

// middle C carries pitch class 0
const middleC = 60

// Build renders a progression as a single-track MIDI file: each chord's
// pentatonic scale as ascending quarter notes around middle C. Invalid and
// empty chord slots are skipped; sounding pitch, no transposition.
func Build(measures [][]string) (*smf.SMF, error) {
	var tr smf.Track
	wrote := false

	for _, measure := range measures {
		for _, symbol := range measure {
			symbol = strings.TrimSpace(symbol)
			if symbol == "" {
				continue
			}
			parsed, err := chord.Parse(symbol)
			if err != nil {
				continue
			}
			for _, pc := range scale.Pentatonic(parsed.Root, parsed.IsMinor) {
				key := uint8(middleC + pc)
				tr.Add(0, midi.NoteOn(0, key, 96))
				tr.Add(ticksPerQuarter, midi.NoteOff(0, key))
				wrote = true
			}
		}
	}

	if !wrote {
		return nil, ErrNothingToExport
	}

	tr.Close(0)
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	s.Add(tr)
	return s, nil
}
