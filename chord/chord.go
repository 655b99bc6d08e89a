package chord

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jsphweid/pentascale/model"
	"github.com/jsphweid/pentascale/pitch"
)

var ErrUnrecognizedChord = errors.New("unrecognized chord")

// minorMarkerIndex scans a chord symbol for the lone 'm' that marks a
// minor quality. The first 'm' decides: it counts only when it appears
// after the first character (the root letter can never be it) and is
// either the last character or followed by a non-letter. That keeps
// quality words like the 'm' in "Cmaj7" from reading as minor.
func minorMarkerIndex(symbol []rune) int {
	for i, r := range symbol {
		if r != 'm' {
			continue
		}
		if i == 0 {
			return -1
		}
		if i+1 == len(symbol) || !unicode.IsLetter(symbol[i+1]) {
			return i
		}
		return -1
	}
	return -1
}

func classifyNotation(root string) model.NotationStyle {
	switch {
	case strings.Contains(root, "#"):
		return model.NotationSharp
	case strings.Contains(root, "b") || strings.Contains(root, "♭"):
		return model.NotationFlat
	default:
		return model.NotationNatural
	}
}

// Parse resolves a raw chord symbol like "C#m7" or "Ebmaj9" into its root
// pitch class, minor flag and the notation style it was written in.
// A bare root is a major chord. Extensions beyond root and quality are
// ignored.
func Parse(symbol string) (model.ParsedChord, error) {
	var parsed model.ParsedChord

	runes := []rune(symbol)
	if len(runes) == 0 {
		return parsed, fmt.Errorf("%w: empty symbol", ErrUnrecognizedChord)
	}

	rootCandidate := runes
	if i := minorMarkerIndex(runes); i > 0 {
		parsed.IsMinor = true
		rootCandidate = runes[:i]
	}

	// Longest prefix wins so accidentals beat naturals, e.g. "C#" before "C".
	for i := len(rootCandidate); i >= 1; i-- {
		name := string(rootCandidate[:i])
		pc, ok := pitch.FromName(name)
		if !ok {
			continue
		}
		parsed.Root = pc
		parsed.Notation = classifyNotation(name)
		return parsed, nil
	}

	// A valid natural first letter still makes a root, e.g. the C in "Csus4".
	if pc, ok := pitch.FromName(string(rootCandidate[0])); ok {
		parsed.Root = pc
		parsed.Notation = model.NotationNatural
		return parsed, nil
	}

	return model.ParsedChord{}, fmt.Errorf("%w: %q", ErrUnrecognizedChord, symbol)
}
