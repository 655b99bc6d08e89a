package solfege

import (
	"fmt"
	"testing"

	"github.com/jsphweid/pentascale/model"
	"github.com/stretchr/testify/assert"
)

func TestPreferFlatBranches(t *testing.T) {
	cases := []struct {
		style  model.NotationStyle
		minor  bool
		expect bool
	}{
		{model.NotationFlat, false, true},
		{model.NotationFlat, true, true},
		{model.NotationNatural, true, true},
		{model.NotationNatural, false, false},
		{model.NotationSharp, false, false},
		{model.NotationSharp, true, false},
	}

	for _, c := range cases {
		name := fmt.Sprintf("test prefer flat for %v minor=%v", c.style, c.minor)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.expect, PreferFlat(c.style, c.minor))
		})
	}
}

func TestRendersSharpStyledSyllables(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Do", Render(0, model.NotationSharp, false))
	assert.Equal("Do#", Render(1, model.NotationSharp, false))
	assert.Equal("Fa#", Render(6, model.NotationSharp, true))
	assert.Equal("La#", Render(10, model.NotationNatural, false))
}

func TestRendersFlatStyledSyllables(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Reb", Render(1, model.NotationFlat, false))
	assert.Equal("Sob", Render(6, model.NotationFlat, false))
	assert.Equal("Sib", Render(10, model.NotationFlat, true))
}

func TestMinorChordsForceFlatSpellings(t *testing.T) {
	assert := assert.New(t)
	// D#, G#, A# read as Eb, Ab, Bb in a minor context
	assert.Equal("Mib", Render(3, model.NotationNatural, true))
	assert.Equal("Lab", Render(8, model.NotationNatural, true))
	assert.Equal("Sib", Render(10, model.NotationNatural, true))
}

func TestNaturalsRenderTheSameUnderEitherPreference(t *testing.T) {
	assert := assert.New(t)
	// natural pitches have no flat spelling to switch to
	assert.Equal("Do", Render(0, model.NotationFlat, true))
	assert.Equal("Fa", Render(5, model.NotationNatural, true))
	assert.Equal("So", Render(7, model.NotationFlat, false))
}

func TestRenderNormalizesOutOfRangePitchClasses(t *testing.T) {
	assert.Equal(t, "Re", Render(14, model.NotationNatural, false))
}
