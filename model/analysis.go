package model

// ChordAnalysis is the result of running one chord symbol through the
// pipeline. Invalid marks symbols that failed to parse; the rest of the
// progression still gets analyzed.
type ChordAnalysis struct {
	Symbol    string       `json:"symbol"`
	Parsed    *ParsedChord `json:"parsed,omitempty"`
	Invalid   bool         `json:"invalid,omitempty"`
	Syllables []string     `json:"syllables,omitempty"`
}

type MeasureAnalysis struct {
	Number int             `json:"number"`
	Chords []ChordAnalysis `json:"chords"`
}

type SyllableCount struct {
	Syllable string `json:"syllable"`
	Count    int    `json:"count"`
}

type AnalysisResult struct {
	InstrumentKey string            `json:"instrument_key"`
	Measures      []MeasureAnalysis `json:"measures"`

	// Top holds the up-to-3 most frequent syllables across the whole
	// progression, for highlighting.
	Top []SyllableCount `json:"top"`
}
