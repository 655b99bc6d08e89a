package model

// PitchClass is one of the twelve chromatic semitones, 0 (C) through 11 (B),
// independent of octave. Canonically spelled with sharps.
type PitchClass = uint8

// NotationStyle records which accidental spelling a chord symbol was
// written with. It propagates from parsing through solfege rendering.
type NotationStyle string

const (
	NotationSharp   NotationStyle = "sharp"
	NotationFlat    NotationStyle = "flat"
	NotationNatural NotationStyle = "natural"
)

type ParsedChord struct {
	Root     PitchClass    `json:"root"`
	IsMinor  bool          `json:"is_minor"`
	Notation NotationStyle `json:"notation"`
}
