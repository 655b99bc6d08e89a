package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pentascale/analysis"
	"github.com/jsphweid/pentascale/model"
)

var analyzeKey string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeKey, "key", "k", "C", "instrument key (C, Bb, Eb, F)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [measure]...",
	Short: "Analyzes a chord progression",
	Long: `Analyzes a chord progression. Each argument is one measure with up to
two chords separated by a comma; use "-" for an empty measure.

  pentascale analyze --key Bb "Cm,F" "G" - "Bb"`,
	Run: func(cmd *cobra.Command, args []string) {
		res, err := analysis.AnalyzeProgression(parseProgressionArgs(args), analyzeKey)
		if errors.Is(err, analysis.ErrEmptyProgression) {
			fmt.Println("No chords in progression.")
			return
		}
		cobra.CheckErr(err)
		printResult(res)
	},
}

// red, blue, green for the 1st, 2nd, 3rd most frequent syllable
var highlightStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
}

func highlight(top []model.SyllableCount, syllable string) string {
	for i, tc := range top {
		if tc.Syllable == syllable && i < len(highlightStyles) {
			return highlightStyles[i].Render(syllable)
		}
	}
	return syllable
}

func printResult(res model.AnalysisResult) {
	fmt.Printf("--- Pentatonic scales --- notated pitch (%v instrument)\n\n", res.InstrumentKey)

	for _, m := range res.Measures {
		fmt.Printf(" measure %2d:\n", m.Number)
		if len(m.Chords) == 0 {
			fmt.Println("   (no chords)")
			continue
		}
		for _, ca := range m.Chords {
			if ca.Invalid {
				fmt.Printf("   %v: invalid chord\n", ca.Symbol)
				continue
			}
			parts := make([]string, 0, len(ca.Syllables))
			for _, s := range ca.Syllables {
				parts = append(parts, highlight(res.Top, s))
			}
			fmt.Printf("   %v: %v\n", ca.Symbol, strings.Join(parts, " "))
		}
	}

	if len(res.Top) > 0 {
		fmt.Println("\nMost frequent notated syllables:")
		for i, tc := range res.Top {
			if i >= len(highlightStyles) {
				break
			}
			fmt.Printf("   * %v (%vx)\n", highlightStyles[i].Render(tc.Syllable), tc.Count)
		}
	}
}
