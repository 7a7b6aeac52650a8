package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/lox/internal/model"
)

const statusWidth = 8

// reportDelegate renders one report per line: status then source path.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	ri, ok := item.(reportItem)
	if !ok {
		return
	}

	status := "ok"
	statusColor := lipgloss.Color("2")

	if ri.report.Failed() {
		status = "failed"
		statusColor = lipgloss.Color("1")
	}

	width := l.Width() - statusWidth - 2
	path := string(ri.report.Source)

	var statusStyle, pathStyle lipgloss.Style

	var displayPath string

	if index == l.Index() {
		statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(statusWidth)
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		displayPath = animateScroll(path, width, d.offset)
	} else {
		statusStyle = lipgloss.NewStyle().
			Foreground(statusColor).
			Bold(true).
			Width(statusWidth)
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayPath = truncateToWidth(path, width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", statusStyle.Render(status), pathStyle.Render(displayPath))
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// viewModel browses the reports of saved runs, newest run first, and shows
// the outcome of the selected one.
type viewModel struct {
	width        int
	height       int
	reportList   list.Model
	delegate     reportDelegate
	runs         int
	failed       int
	animOffset   int
	lastSelected int
}

func newViewModel(runs []m.Run) viewModel {
	delegate := reportDelegate{}
	reportList := list.New(nil, delegate, 80, 20)
	reportList.SetShowPagination(false)
	reportList.SetShowFilter(true)
	reportList.SetShowHelp(false)
	reportList.SetShowTitle(false)
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by path…"

	model := viewModel{
		width:        80,
		height:       24,
		reportList:   reportList,
		delegate:     delegate,
		runs:         len(runs),
		lastSelected: 0,
	}

	var items []list.Item

	for i := len(runs) - 1; i >= 0; i-- {
		for _, report := range runs[i].Reports {
			if report.Failed() {
				model.failed++
			}

			items = append(items, reportItem{run: runs[i].ID, report: report})
		}
	}

	model.reportList.SetItems(items)

	return model
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m viewModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reportList.SetWidth(m.width)

	case tickMsg:
		if m.reportList.FilterState() == list.Filtering {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.reportList.SetDelegate(m.delegate)

		return m, tick(time.Millisecond * 150)

	case tea.KeyMsg:
		if m.reportList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		m.reportList, cmd = m.reportList.Update(msg)

		if m.reportList.Index() != m.lastSelected {
			m.lastSelected = m.reportList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.reportList.SetDelegate(m.delegate)
		}

		return m, cmd
	}

	return m, cmd
}

func (m viewModel) View() string {
	title := titleStyle.Padding(1, 0, 0, 2).Render("Lox Reports")

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summary := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf("Runs: %s   Reports: %s   Failed: %s",
			accent.Render(fmt.Sprintf("%d", m.runs)),
			accent.Render(fmt.Sprintf("%d", len(m.reportList.Items()))),
			accent.Render(fmt.Sprintf("%d", m.failed)),
		))

	footer := footerStyle.
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		m.renderDetail(),
		footer,
	)
}

func (m viewModel) renderTable() string {
	// Title, summary, footer, borders, header and the detail pane.
	listHeight := m.height - 14
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.reportList.SetHeight(listHeight)
	m.reportList.SetWidth(listWidth)

	headers := headerStyle.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-*s  %s", statusWidth, "Status", "Source"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.reportList.View()))
}

func (m viewModel) renderDetail() string {
	style := lipgloss.NewStyle().Padding(0, 2)

	item, ok := m.reportList.SelectedItem().(reportItem)
	if !ok {
		return style.Render(footerStyle.Render("no report selected"))
	}

	header := locationStyle.Render(fmt.Sprintf("run %s • %s • %s", item.run, item.report.ID, item.report.Elapsed))

	if item.report.Diagnosis != nil {
		return style.Render(header + "\n" + renderStyledDiagnosis(*item.report.Diagnosis))
	}

	return style.Render(header + "\n" + renderValue(item.report))
}
