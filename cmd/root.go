package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pentascale",
	Short: "Pentatonic scales for wind players",
	Long: `Turns a chord progression into pentatonic scales rendered as solfege
syllables, notated for your instrument's key (C, Bb, Eb or F).`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
