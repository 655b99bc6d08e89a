package transpose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/pentascale/model"
)

var ErrUnknownKey = errors.New("unknown instrument key")

// Notated pitch = sounding pitch + offset. Keys are uppercased and the
// flat glyph is accepted alongside ASCII 'b'.
var offsets = map[string]model.PitchClass{
	"C":  0,
	"BB": 2,
	"B♭": 2,
	"EB": 9,
	"E♭": 9,
	"F":  7,
}

// SupportedKeys lists the selectable instrument keys in display form.
var SupportedKeys = []string{"C", "Bb", "Eb", "F"}

// Semitones returns the semitone offset from sounding to notated pitch
// for an instrument key. Unknown keys are an error: a silently wrong
// transposition is worse than refusing to analyze.
func Semitones(instrumentKey string) (model.PitchClass, error) {
	key := strings.ToUpper(strings.TrimSpace(instrumentKey))
	offset, ok := offsets[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, instrumentKey)
	}
	return offset, nil
}

// Apply shifts a pitch class by a semitone offset.
func Apply(pc model.PitchClass, offset model.PitchClass) model.PitchClass {
	return (pc + offset) % 12
}
