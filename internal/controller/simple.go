package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/lox/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text on the command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayValue prints "=> value" with the value in its debug form.
func (s *SimpleUI) DisplayValue(report m.Report) {
	s.printf("=> %s\n", report.Value)
}

// DisplayDiagnosis prints the diagnosis on the error stream.
func (s *SimpleUI) DisplayDiagnosis(diagnosis m.Diagnosis) {
	s.errorf("%s\n%s\n", RenderLocation(diagnosis), RenderDiagnosis(diagnosis))
}

// DisplayTokens prints one token per line in jlox form.
func (s *SimpleUI) DisplayTokens(tokens []m.Token) {
	for _, token := range tokens {
		s.printf("%s\n", token.Jlox())
	}

	s.printf("EOF  null\n")
}

// DisplayTree prints the rendered tree.
func (s *SimpleUI) DisplayTree(tree string) {
	s.printf("%s\n", tree)
}

// DisplayReports prints a table of the run and a failure count footer.
func (s *SimpleUI) DisplayReports(run m.Run) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Status", "Result", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	failed := 0

	for _, report := range run.Reports {
		status, result := reportStatus(report)
		if report.Failed() {
			failed++
		}

		table.Append([]string{string(report.Source), status, result, report.Elapsed.String()})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(run.Reports)),
		fmt.Sprintf("Failed %d", failed),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, report := range run.Reports {
		if report.Diagnosis != nil {
			s.DisplayDiagnosis(*report.Diagnosis)
		}
	}

	return nil
}

// BrowseReports prints every saved run one after the other.
func (s *SimpleUI) BrowseReports(runs []m.Run) error {
	if len(runs) == 0 {
		s.printf("no reports found\n")
		return nil
	}

	for _, run := range runs {
		s.printf("run %s (%s)\n", run.ID, run.Started.Format("2006-01-02 15:04:05"))

		if err := s.DisplayReports(run); err != nil {
			return err
		}
	}

	return nil
}

// Repl reads the command input line by line.
func (s *SimpleUI) Repl(eval EvalFunc, options ...ReplOption) error {
	cfg := newReplConfig(options...)

	s.printf("%s\n", replBanner)

	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	for {
		s.printf("%s", cfg.prompt)

		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}

		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case QuitCommand:
			return nil
		case "":
			continue
		}

		report := eval(line)
		if report.Diagnosis != nil {
			s.DisplayDiagnosis(*report.Diagnosis)
			continue
		}

		s.DisplayValue(report)
	}
}

func reportStatus(report m.Report) (status, result string) {
	if report.Diagnosis != nil {
		return "failed", fmt.Sprintf("%s error", report.Diagnosis.Kind)
	}

	return "ok", report.Value
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
