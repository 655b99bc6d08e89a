package tui

import (
	"errors"
	"time"

	"github.com/bep/debounce"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsphweid/pentascale/analysis"
	"github.com/jsphweid/pentascale/constants"
	"github.com/jsphweid/pentascale/debug"
	"github.com/jsphweid/pentascale/model"
	"github.com/jsphweid/pentascale/transpose"
	"github.com/jsphweid/pentascale/util"
)

type analysisMsg struct {
	result model.AnalysisResult
	err    error
}

// Model is the interactive progression editor: a grid of measures with two
// chord slots each, an instrument key selector, and a live results pane.
// Edits trigger a debounced re-analysis off the update loop; results come
// back in as messages.
type Model struct {
	keyIdx       int
	measureCount int
	slots        [constants.MaxMeasures][2]int // indexes into constants.ChordOptions
	cursorRow    int
	cursorCol    int

	result   *model.AnalysisResult
	quitting bool

	debounced func(func())
	results   chan analysisMsg
}

func New() Model {
	return Model{
		measureCount: constants.DefaultMeasureCount,
		debounced:    debounce.New(300 * time.Millisecond),
		results:      make(chan analysisMsg, 8),
	}
}

func listenForResults(results chan analysisMsg) tea.Cmd {
	return func() tea.Msg {
		return <-results
	}
}

func (m Model) Init() tea.Cmd {
	return listenForResults(m.results)
}

func (m Model) instrumentKey() string {
	return transpose.SupportedKeys[m.keyIdx]
}

func (m Model) measures() [][]string {
	res := make([][]string, m.measureCount)
	for i := 0; i < m.measureCount; i++ {
		var chords []string
		for _, opt := range m.slots[i] {
			if symbol := constants.ChordOptions[opt]; symbol != "" {
				chords = append(chords, symbol)
			}
		}
		res[i] = chords
	}
	return res
}

func (m *Model) cycleChord(dir int) {
	n := len(constants.ChordOptions)
	slot := &m.slots[m.cursorRow][m.cursorCol]
	*slot = (*slot + dir + n) % n
}

// scheduleAnalysis snapshots the form and recomputes after the edits
// settle. The result lands back in the update loop as an analysisMsg.
func (m *Model) scheduleAnalysis() {
	measures := m.measures()
	key := m.instrumentKey()
	results := m.results
	m.debounced(func() {
		debug.Log("tui", "analyzing %v measures in %v", len(measures), key)
		result, err := analysis.AnalyzeProgression(measures, key)
		results <- analysisMsg{result: result, err: err}
	})
}

func (m *Model) apply(msg analysisMsg) {
	switch {
	case errors.Is(msg.err, analysis.ErrEmptyProgression):
		m.result = nil
	case msg.err != nil:
		// key selector is closed, so this should never happen
		debug.Log("tui", "analysis failed: %v", msg.err)
	default:
		r := msg.result
		m.result = &r
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
			}
		case "down", "j":
			if m.cursorRow < m.measureCount-1 {
				m.cursorRow++
			}
		case "left", "h":
			m.cursorCol = 0
		case "right", "l":
			m.cursorCol = 1

		case "+", "=":
			m.cycleChord(1)
			m.scheduleAnalysis()
		case "-", "_":
			m.cycleChord(-1)
			m.scheduleAnalysis()
		case "x", "backspace":
			m.slots[m.cursorRow][m.cursorCol] = 0
			m.scheduleAnalysis()

		case "]":
			m.measureCount = util.Clamp(m.measureCount+1, 1, constants.MaxMeasures)
			m.scheduleAnalysis()
		case "[":
			m.measureCount = util.Clamp(m.measureCount-1, 1, constants.MaxMeasures)
			m.cursorRow = util.Min(m.cursorRow, m.measureCount-1)
			m.scheduleAnalysis()

		case "tab":
			m.keyIdx = (m.keyIdx + 1) % len(transpose.SupportedKeys)
			m.scheduleAnalysis()

		case "enter", "a":
			m.apply(runNow(m.measures(), m.instrumentKey()))
		}

	case analysisMsg:
		m.apply(msg)
		return m, listenForResults(m.results)
	}

	return m, nil
}

func runNow(measures [][]string, key string) analysisMsg {
	result, err := analysis.AnalyzeProgression(measures, key)
	return analysisMsg{result: result, err: err}
}
