package analysis

import (
	"errors"
	"sort"
	"strings"

	"github.com/jsphweid/pentascale/chord"
	"github.com/jsphweid/pentascale/model"
	"github.com/jsphweid/pentascale/scale"
	"github.com/jsphweid/pentascale/solfege"
	"github.com/jsphweid/pentascale/transpose"
	"github.com/jsphweid/pentascale/util"
)

// ErrEmptyProgression means no measure contained a chord. A normal idle
// state, reported so callers can show guidance instead of an empty result.
var ErrEmptyProgression = errors.New("no chords in progression")

// Rank tallies syllables across a whole progression and returns the up-to-3
// most frequent, ties broken by first-encountered order.
func Rank(syllables []string) []model.SyllableCount {
	counts := make(map[string]int)
	var order []string
	for _, s := range syllables {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	res := make([]model.SyllableCount, 0, len(order))
	for _, s := range order {
		res = append(res, model.SyllableCount{Syllable: s, Count: counts[s]})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Count > res[j].Count
	})
	return res[:util.Min(3, len(res))]
}

func analyzeChord(symbol string, offset model.PitchClass) model.ChordAnalysis {
	parsed, err := chord.Parse(symbol)
	if err != nil {
		return model.ChordAnalysis{Symbol: symbol, Invalid: true}
	}

	pcs := scale.Pentatonic(parsed.Root, parsed.IsMinor)
	syllables := make([]string, 0, len(pcs))
	for _, pc := range pcs {
		notated := transpose.Apply(pc, offset)
		syllables = append(syllables, solfege.Render(notated, parsed.Notation, parsed.IsMinor))
	}
	return model.ChordAnalysis{Symbol: symbol, Parsed: &parsed, Syllables: syllables}
}

// AnalyzeProgression runs every chord of every measure through the full
// pipeline: parse, pentatonic, transpose, solfege, rank. Unparseable
// chords are marked invalid and skipped; an unknown instrument key fails
// the whole call, since every note would be notated wrong.
func AnalyzeProgression(measures [][]string, instrumentKey string) (model.AnalysisResult, error) {
	var res model.AnalysisResult

	offset, err := transpose.Semitones(instrumentKey)
	if err != nil {
		return res, err
	}

	res.InstrumentKey = instrumentKey
	var all []string
	hasChord := false
	for i, measure := range measures {
		ma := model.MeasureAnalysis{Number: i + 1}
		for _, symbol := range measure {
			symbol = strings.TrimSpace(symbol)
			if symbol == "" {
				continue
			}
			hasChord = true
			ca := analyzeChord(symbol, offset)
			all = append(all, ca.Syllables...)
			ma.Chords = append(ma.Chords, ca)
		}
		res.Measures = append(res.Measures, ma)
	}

	if !hasChord {
		return model.AnalysisResult{}, ErrEmptyProgression
	}

	res.Top = Rank(all)
	return res, nil
}
