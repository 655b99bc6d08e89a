package pitch

import "github.com/jsphweid/pentascale/model"

// NotesSharp is the canonical spelling for each pitch class. All internal
// arithmetic happens against this table; flats exist only as alternate
// spellings of the five black keys.
var NotesSharp = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// EnharmonicEquivalents maps each black-key spelling to its other spelling.
// Natural notes have no entry.
var EnharmonicEquivalents = map[string]string{
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
	"A#": "Bb", "Bb": "A#",
}

var noteToInt map[string]model.PitchClass

func init() {
	noteToInt = make(map[string]model.PitchClass)
	for i, note := range NotesSharp {
		noteToInt[note] = model.PitchClass(i)
	}
}

// Name returns the canonical sharp spelling of a pitch class.
func Name(pc model.PitchClass) string {
	return NotesSharp[pc%12]
}

// FlatName returns the flat spelling of a pitch class, if it has one.
func FlatName(pc model.PitchClass) (string, bool) {
	flat, ok := EnharmonicEquivalents[Name(pc)]
	return flat, ok
}

// FromName resolves a note spelling, sharp or flat, to its pitch class.
func FromName(name string) (model.PitchClass, bool) {
	if pc, ok := noteToInt[name]; ok {
		return pc, true
	}
	if sharp, ok := EnharmonicEquivalents[name]; ok {
		if pc, ok := noteToInt[sharp]; ok {
			return pc, true
		}
	}
	return 0, false
}
