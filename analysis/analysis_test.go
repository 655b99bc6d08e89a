package analysis

import (
	"errors"
	"testing"

	"github.com/jsphweid/pentascale/model"
	"github.com/jsphweid/pentascale/transpose"
	"github.com/stretchr/testify/assert"
)

func TestCmOnBbHornEndToEnd(t *testing.T) {
	res, err := AnalyzeProgression([][]string{{"Cm"}}, "Bb")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res.Measures, 1)
	assert.Len(res.Measures[0].Chords, 1)

	ca := res.Measures[0].Chords[0]
	assert.False(ca.Invalid)
	assert.True(ca.Parsed.IsMinor)
	assert.Equal(model.NotationNatural, ca.Parsed.Notation)

	// C minor pentatonic {C,Eb,F,G,Bb} transposed up 2 lands on naturals
	assert.Equal([]string{"Re", "Fa", "So", "La", "Do"}, ca.Syllables)

	// five distinct notes, no majority
	assert.Len(res.Top, 3)
	for _, tc := range res.Top {
		assert.Equal(1, tc.Count)
	}
	assert.Equal("Re", res.Top[0].Syllable)
}

func TestFlatNotationSurvivesTransposition(t *testing.T) {
	res, err := AnalyzeProgression([][]string{{"Ebm"}}, "C")

	assert := assert.New(t)
	assert.NoError(err)

	ca := res.Measures[0].Chords[0]
	assert.Equal(model.NotationFlat, ca.Parsed.Notation)
	// Eb minor pentatonic {Eb,Gb,Ab,Bb,Db}, flat-styled syllables
	assert.Equal([]string{"Mib", "Sob", "Lab", "Sib", "Reb"}, ca.Syllables)
}

func TestInvalidChordIsMarkedAndAnalysisContinues(t *testing.T) {
	res, err := AnalyzeProgression([][]string{{"H7", "C"}, {"G"}}, "C")

	assert := assert.New(t)
	assert.NoError(err)

	first := res.Measures[0].Chords[0]
	assert.True(first.Invalid)
	assert.Nil(first.Parsed)
	assert.Empty(first.Syllables)

	second := res.Measures[0].Chords[1]
	assert.False(second.Invalid)
	assert.Equal([]string{"Do", "Re", "Mi", "So", "La"}, second.Syllables)

	assert.Len(res.Measures[1].Chords, 1)
	assert.NotEmpty(res.Top)
}

func TestUnknownInstrumentKeyFailsWholeAnalysis(t *testing.T) {
	res, err := AnalyzeProgression([][]string{{"C"}}, "G")

	assert := assert.New(t)
	assert.True(errors.Is(err, transpose.ErrUnknownKey))
	assert.Empty(res.Measures)
}

func TestEmptyProgressionIsDistinctFromParseFailure(t *testing.T) {
	assert := assert.New(t)

	_, err := AnalyzeProgression([][]string{{}, {""}, nil}, "C")
	assert.True(errors.Is(err, ErrEmptyProgression))

	// an invalid chord is still a chord, not an empty progression
	_, err = AnalyzeProgression([][]string{{"H7"}}, "C")
	assert.NoError(err)
}

func TestEmptyMeasuresKeepTheirSlots(t *testing.T) {
	res, err := AnalyzeProgression([][]string{{}, {"C"}}, "C")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(res.Measures, 2)
	assert.Empty(res.Measures[0].Chords)
	assert.Equal(1, res.Measures[0].Number)
	assert.Equal(2, res.Measures[1].Number)
}

func TestRankTopThreeWithFirstEncounteredTieBreak(t *testing.T) {
	ranked := Rank([]string{"Do", "Re", "Do", "Mi", "Re", "Fa"})

	assert := assert.New(t)
	assert.Equal([]model.SyllableCount{
		{Syllable: "Do", Count: 2},
		{Syllable: "Re", Count: 2},
		{Syllable: "Mi", Count: 1},
	}, ranked)
}

func TestRankWithFewerThanThreeSyllables(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Rank(nil))
	assert.Equal([]model.SyllableCount{{Syllable: "So", Count: 3}}, Rank([]string{"So", "So", "So"}))
}
