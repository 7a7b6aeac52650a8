package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// replModel is the interactive prompt. Each entered line is evaluated by a
// command and appended with its result to the transcript.
type replModel struct {
	input      textinput.Model
	eval       EvalFunc
	prompt     string
	transcript []string
	history    []string
	limit      int
	// recall is the history index shown in the input, len(history) while
	// editing a fresh line.
	recall   int
	draft    string
	height   int
	quitting bool
}

func newReplModel(eval EvalFunc, cfg ReplConfig) replModel {
	input := textinput.New()
	input.Prompt = cfg.prompt
	input.PromptStyle = arrowStyle
	input.Placeholder = "1 + 2 * 3"
	input.CharLimit = 0
	input.Focus()

	return replModel{
		input:      input,
		eval:       eval,
		prompt:     cfg.prompt,
		transcript: []string{titleStyle.Render(replBanner)},
		limit:      cfg.historySize,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - lipgloss.Width(m.prompt) - 1

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m.quit()
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				return m.quit()
			}
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m = m.recallLine(-1)
			return m, nil
		case tea.KeyDown:
			m = m.recallLine(1)
			return m, nil
		}

	case evaluatedMsg:
		m.transcript = append(m.transcript, m.prompt+msg.line, renderResult(msg))
		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.draft = ""

	switch strings.TrimSpace(line) {
	case QuitCommand:
		return m.quit()
	case "":
		m.recall = len(m.history)
		m.transcript = append(m.transcript, m.prompt)

		return m, nil
	}

	m = m.remember(line)
	eval := m.eval

	return m, func() tea.Msg {
		return evaluatedMsg{line: line, report: eval(line)}
	}
}

func (m replModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// remember appends line to the history, dropping the oldest entries past the
// limit and consecutive duplicates.
func (m replModel) remember(line string) replModel {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}

	if m.limit > 0 && len(m.history) > m.limit {
		m.history = m.history[len(m.history)-m.limit:]
	}

	m.recall = len(m.history)

	return m
}

// recallLine moves through the history by delta, restoring the draft when
// moving past the newest entry.
func (m replModel) recallLine(delta int) replModel {
	next := m.recall + delta
	if next < 0 || next > len(m.history) {
		return m
	}

	if m.recall == len(m.history) {
		m.draft = m.input.Value()
	}

	m.recall = next

	if next == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[next])
	}

	m.input.CursorEnd()

	return m
}

func (m replModel) View() string {
	lines := m.transcript
	if m.height > 1 && len(lines) > m.height-1 {
		lines = lines[len(lines)-(m.height-1):]
	}

	view := strings.Join(lines, "\n")
	if m.quitting {
		return view + "\n"
	}

	return view + "\n" + m.input.View()
}

func renderResult(msg evaluatedMsg) string {
	if msg.report.Diagnosis != nil {
		return renderStyledDiagnosis(*msg.report.Diagnosis)
	}

	return renderValue(msg.report)
}
