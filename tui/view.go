package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsphweid/pentascale/constants"
	"github.com/jsphweid/pentascale/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// red, blue, green for the top three syllables
	topStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
)

const welcome = `Welcome!

Pick chords with +/- and the pentatonic scale
for each appears here as solfege syllables, at
your instrument's notated pitch.

The three most frequent notes of the whole
progression are highlighted - good candidates
for starting an improvised line.`

func slotLabel(opt int) string {
	symbol := constants.ChordOptions[opt]
	if symbol == "" {
		symbol = "--"
	}
	return fmt.Sprintf(" %-4s", symbol)
}

func (m Model) formView() string {
	var b strings.Builder
	for i := 0; i < m.measureCount; i++ {
		fmt.Fprintf(&b, "%2d|", i+1)
		for col := 0; col < 2; col++ {
			label := slotLabel(m.slots[i][col])
			if i == m.cursorRow && col == m.cursorCol {
				label = cursorStyle.Render(label)
			}
			b.WriteString(label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func highlightSyllable(top []model.SyllableCount, syllable string) string {
	for i, tc := range top {
		if tc.Syllable == syllable && i < len(topStyles) {
			return topStyles[i].Render(syllable)
		}
	}
	return syllable
}

func (m Model) resultView() string {
	if m.result == nil {
		return dimStyle.Render(welcome)
	}

	var b strings.Builder
	for _, measure := range m.result.Measures {
		fmt.Fprintf(&b, "%2d: ", measure.Number)
		if len(measure.Chords) == 0 {
			b.WriteString(dimStyle.Render("(no chords)"))
			b.WriteString("\n")
			continue
		}
		for i, ca := range measure.Chords {
			if i > 0 {
				b.WriteString("    ")
			}
			if ca.Invalid {
				fmt.Fprintf(&b, "%v: %v\n", ca.Symbol, invalidStyle.Render("invalid chord"))
				continue
			}
			parts := make([]string, 0, len(ca.Syllables))
			for _, s := range ca.Syllables {
				parts = append(parts, highlightSyllable(m.result.Top, s))
			}
			fmt.Fprintf(&b, "%v: %v\n", ca.Symbol, strings.Join(parts, " "))
		}
	}

	if len(m.result.Top) > 0 {
		b.WriteString("\nmost frequent: ")
		for i, tc := range m.result.Top {
			if i >= len(topStyles) {
				break
			}
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%v (%vx)", topStyles[i].Render(tc.Syllable), tc.Count)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(fmt.Sprintf("pentascale  key:%-2s  measures:%02d", m.instrumentKey(), m.measureCount))
	help := dimStyle.Render("arrows:move  +/-:chord  x:clear  [ ]:measures  tab:key  enter:analyze  q:quit")

	form := lipgloss.NewStyle().MarginRight(3).Render(m.formView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, m.resultView())

	return "\n" + header + "\n\n" + body + "\n" + help + "\n"
}
