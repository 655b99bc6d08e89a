package cmd

import (
	"strings"

	"github.com/jsphweid/pentascale/util"
)

// parseProgressionArgs turns CLI args into measures: one arg per measure,
// chords separated by commas, "-" or "" for an empty measure. A measure
// holds at most two chords; extras are ignored.
func parseProgressionArgs(args []string) [][]string {
	var measures [][]string
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" || arg == "-" {
			measures = append(measures, nil)
			continue
		}

		var chords []string
		for _, c := range strings.Split(arg, ",") {
			c = strings.TrimSpace(c)
			if c != "" {
				chords = append(chords, c)
			}
		}
		measures = append(measures, chords[:util.Min(2, len(chords))])
	}
	return measures
}
