package scale

import "github.com/jsphweid/pentascale/model"

// Semitone intervals from the root, ascending.
var majorPentatonic = [5]model.PitchClass{0, 2, 4, 7, 9}
var minorPentatonic = [5]model.PitchClass{0, 3, 5, 7, 10}

// Pentatonic returns the five pitch classes of the major or minor
// pentatonic scale on root, ascending from the root, in canonical sharp
// form. Total over all inputs.
func Pentatonic(root model.PitchClass, minor bool) [5]model.PitchClass {
	intervals := majorPentatonic
	if minor {
		intervals = minorPentatonic
	}

	var res [5]model.PitchClass
	for i, interval := range intervals {
		res[i] = (root + interval) % 12
	}
	return res
}
