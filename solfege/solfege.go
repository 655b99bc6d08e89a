package solfege

import (
	"strings"

	"github.com/jsphweid/pentascale/model"
	"github.com/jsphweid/pentascale/pitch"
)

// Movable-do alphabets, indexed by semitone distance from the reference.
var solfegeSharp = [12]string{"Do", "Do#", "Re", "Re#", "Mi", "Fa", "Fa#", "So", "So#", "La", "La#", "Si"}
var solfegeFlat = [12]string{"Do", "Reb", "Re", "Mib", "Mi", "Fa", "Sob", "So", "Lab", "La", "Sib", "Si"}

// referencePitch anchors "Do". Fixed at C.
const referencePitch model.PitchClass = 0

// Minor pentatonics are conventionally spelled with flats; these three
// spellings are forced even if the general equivalence lookup is bypassed.
var minorFlats = map[string]string{
	"D#": "Eb",
	"G#": "Ab",
	"A#": "Bb",
}

// PreferFlat decides whether a note should be spelled flat: when the chord
// symbol itself was written flat, or when a natural-rooted chord is minor.
// A heuristic, not a law of harmony; kept as its own function so it can be
// revisited without touching parsing or transposition.
func PreferFlat(style model.NotationStyle, isMinor bool) bool {
	return style == model.NotationFlat || (style == model.NotationNatural && isMinor)
}

// Render converts a (transposed) pitch class into a movable-do syllable,
// spelled sharp or flat per the originating chord's notation style and
// quality. Pitch classes are normalized mod 12, so rendering is total.
func Render(pc model.PitchClass, style model.NotationStyle, isMinor bool) string {
	pc %= 12

	name := pitch.Name(pc)
	if PreferFlat(style, isMinor) {
		if flat, ok := pitch.FlatName(pc); ok {
			name = flat
		}
		if isMinor {
			if forced, ok := minorFlats[pitch.Name(pc)]; ok {
				name = forced
			}
		}
	}

	idx := (pc - referencePitch + 12) % 12
	if strings.Contains(name, "b") || strings.Contains(name, "♭") {
		return solfegeFlat[idx]
	}
	return solfegeSharp[idx]
}
