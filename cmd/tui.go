package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pentascale/debug"
	"github.com/jsphweid/pentascale/tui"
)

var tuiDebug bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiDebug, "debug", false, "log to ~/.config/pentascale/debug.log")
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive progression editor",
	Long:  `Interactive progression editor`,
	Run: func(cmd *cobra.Command, args []string) {
		if tuiDebug {
			cobra.CheckErr(debug.Enable())
			defer debug.Disable()
		}

		p := tea.NewProgram(tui.New(), tea.WithAltScreen())
		cobra.CheckErr(p.Start())
	},
}
