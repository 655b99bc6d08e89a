package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pentascale/midifile"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path (default: random name)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [measure]...",
	Short: "Exports a progression's pentatonic scales as a MIDI file",
	Long: `Exports a progression's pentatonic scales as a MIDI file, one quarter
note per scale degree at sounding pitch. Measures are written as for analyze.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := midifile.Build(parseProgressionArgs(args))
		cobra.CheckErr(err)

		out := exportOut
		if out == "" {
			out = uuid.New().String() + ".mid"
		}

		f, err := os.Create(out)
		cobra.CheckErr(err)
		defer f.Close()

		_, err = s.WriteTo(f)
		cobra.CheckErr(err)
		fmt.Printf("Wrote %v\n", out)
	},
}
