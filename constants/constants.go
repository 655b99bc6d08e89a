package constants

const MaxMeasures = 24
const DefaultMeasureCount = 8

const DefaultAddr = ":8080"

// ChordOptions is the selectable chord list offered by the interactive
// form, the empty slot first. Free-form symbols are still accepted by the
// parser; this list just keeps the form simple.
var ChordOptions = []string{
	"",
	"C", "Cm", "C#", "C#m", "Db", "Dbm", "D", "Dm", "D#", "D#m", "Eb", "Ebm",
	"E", "Em", "F", "Fm", "F#", "F#m", "Gb", "Gbm", "G", "Gm", "G#", "G#m",
	"Ab", "Abm", "A", "Am", "A#", "A#m", "Bb", "Bbm", "B", "Bm",
}
