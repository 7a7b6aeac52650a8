package controller

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/lox/internal/model"
	"github.com/spf13/cobra"
)

var (
	arrowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI with lipgloss styling and Bubble Tea programs for the
// interactive parts.
type TUI struct {
	cmd     *cobra.Command
	options []tea.ProgramOption
}

// NewTUI creates a new TUI bound to the command's streams.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// DisplayValue prints the value and its type.
func (t *TUI) DisplayValue(report m.Report) {
	t.println(renderValue(report))
}

// DisplayDiagnosis prints the styled diagnosis on the error stream.
func (t *TUI) DisplayDiagnosis(diagnosis m.Diagnosis) {
	_, _ = fmt.Fprintln(t.cmd.ErrOrStderr(), renderStyledDiagnosis(diagnosis))
}

// DisplayTokens prints the tokens in aligned columns.
func (t *TUI) DisplayTokens(tokens []m.Token) {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s %-16s %s", "Location", "Kind", "Token")))
	b.WriteString("\n")

	for _, token := range tokens {
		kind := kindStyle
		if token.Kind.IsError() {
			kind = errorStyle
		}

		fmt.Fprintf(&b, "%-10s %s %s\n",
			locationStyle.Render(fmt.Sprintf("%d+%d", token.Location.Offset, token.Location.Length)),
			kind.Render(fmt.Sprintf("%-16s", token.Kind.JloxName())),
			token.Describe(),
		)
	}

	t.printf("%s", b.String())
}

// DisplayTree prints the rendered tree.
func (t *TUI) DisplayTree(tree string) {
	t.println(valueStyle.Render(tree))
}

// DisplayReports prints a styled summary of the run.
func (t *TUI) DisplayReports(run m.Run) error {
	t.println(renderRun(run))

	for _, report := range run.Reports {
		if report.Diagnosis != nil {
			t.DisplayDiagnosis(*report.Diagnosis)
		}
	}

	return nil
}

// BrowseReports opens an interactive list of the saved reports.
func (t *TUI) BrowseReports(runs []m.Run) error {
	if len(runs) == 0 {
		t.println(footerStyle.Render("no reports found"))
		return nil
	}

	return t.run(newViewModel(runs))
}

// Repl runs the interactive prompt until the user quits.
func (t *TUI) Repl(eval EvalFunc, options ...ReplOption) error {
	return t.run(newReplModel(eval, newReplConfig(options...)))
}

func (t *TUI) run(model tea.Model) error {
	options := append([]tea.ProgramOption{
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	}, t.options...)

	_, err := tea.NewProgram(model, options...).Run()

	return err
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.cmd.OutOrStdout(), s)
}

func renderValue(report m.Report) string {
	return fmt.Sprintf("%s %s %s",
		arrowStyle.Render("=>"),
		valueStyle.Render(report.Value),
		typeStyle.Render("("+report.Type+")"),
	)
}

func renderStyledDiagnosis(d m.Diagnosis) string {
	lines := strings.Split(RenderDiagnosis(d), "\n")
	last := len(lines) - 1
	lines[last] = errorStyle.Render(lines[last])

	return locationStyle.Render(RenderLocation(d)) + "\n" + strings.Join(lines, "\n")
}

func renderRun(run m.Run) string {
	var b strings.Builder

	failed := 0

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-10s %s", "Status", "Elapsed", "Source")))
	b.WriteString("\n")

	for _, report := range run.Reports {
		status := okStyle.Render(fmt.Sprintf("%-8s", "ok"))
		if report.Failed() {
			failed++
			status = errorStyle.Render(fmt.Sprintf("%-8s", "failed"))
		}

		fmt.Fprintf(&b, "%s %-10s %s\n", status, report.Elapsed.Round(time.Microsecond).String(), report.Source)
	}

	summary := fmt.Sprintf("%d file(s), %d failed", len(run.Reports), failed)
	if failed > 0 {
		b.WriteString(errorStyle.Render(summary))
	} else {
		b.WriteString(okStyle.Render(summary))
	}

	return b.String()
}
