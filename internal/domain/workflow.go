package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mouse-blink/lox/internal/adapter"
	"github.com/mouse-blink/lox/internal/controller"
	m "github.com/mouse-blink/lox/internal/model"
	"golang.org/x/sync/errgroup"
)

// Exit statuses reported for failed evaluations, following sysexits.h.
const (
	ExitDataErr  = 65
	ExitSoftware = 70
)

// InputArgs names a single source: a file, or the inline expression Expr
// when HasExpr is set. An empty Expr is still an expression.
type InputArgs struct {
	Path    m.Path
	Expr    string
	HasExpr bool
}

// RunArgs configures a batch evaluation.
type RunArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
	// Reports is the directory the run is saved to, nothing is saved when
	// empty.
	Reports m.Path
}

// ReplArgs configures the interactive prompt.
type ReplArgs struct {
	Prompt      string
	HistorySize int
}

// ViewArgs names the directory of saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow ties the interpreter to the file system, the report store and the
// user interface.
type Workflow interface {
	Eval(args InputArgs) error
	Run(args RunArgs) error
	Tokens(args InputArgs) error
	Parse(args InputArgs) error
	Repl(args ReplArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	logger      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters. A
// nil logger discards the logs.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		logger:      logger,
	}
}

// Eval evaluates one source and displays its value or diagnosis.
func (w *workflow) Eval(args InputArgs) error {
	src, err := w.load(args)
	if err != nil {
		return err
	}

	report := w.evaluate(src)
	if report.Failed() {
		w.ui.DisplayDiagnosis(*report.Diagnosis)
		return &EvaluationError{Kind: report.Diagnosis.Kind}
	}

	w.ui.DisplayValue(report)

	return nil
}

// Tokens displays every token of the source, then the diagnoses of the
// lexical errors among them.
func (w *workflow) Tokens(args InputArgs) error {
	src, err := w.load(args)
	if err != nil {
		return err
	}

	tokens := Scan(src)
	w.ui.DisplayTokens(tokens)

	errs := LexErrors(tokens)
	for _, lexErr := range errs {
		if diagnosis, ok := Diagnose(lexErr); ok {
			w.ui.DisplayDiagnosis(diagnosis)
		}
	}

	if len(errs) > 0 {
		return &EvaluationError{Kind: m.DiagnosisLexing}
	}

	return nil
}

// Parse displays the tree of the source in prefix form.
func (w *workflow) Parse(args InputArgs) error {
	src, err := w.load(args)
	if err != nil {
		return err
	}

	expr, err := Parse(src)
	if err != nil {
		diagnosis := w.diagnose(src, err)
		w.ui.DisplayDiagnosis(diagnosis)

		return &EvaluationError{Kind: diagnosis.Kind}
	}

	w.ui.DisplayTree(m.Sexpr(expr))

	return nil
}

// Run evaluates every lox file under the given paths concurrently, displays
// the reports in input order and saves them when a directory is given.
func (w *workflow) Run(args RunArgs) error {
	paths, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	w.logger.Debug("sources found", "count", len(paths))

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	run := m.Run{
		ID:      uuid.NewString(),
		Started: time.Now(),
		Reports: make([]m.Report, len(paths)),
	}

	g := new(errgroup.Group)
	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			report, err := w.evaluateFile(path)
			if err != nil {
				return err
			}

			run.Reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.ui.DisplayReports(run); err != nil {
		return fmt.Errorf("display reports: %w", err)
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, run); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
			return fmt.Errorf("regenerate index: %w", err)
		}
	}

	return firstFailure(run.Reports)
}

// Repl starts the interactive prompt. Every line is a new source named
// m.ReplSourceID.
func (w *workflow) Repl(args ReplArgs) error {
	eval := func(line string) m.Report {
		return w.evaluate(m.NewSource(m.ReplSourceID, line))
	}

	return w.ui.Repl(eval,
		controller.WithPrompt(args.Prompt),
		controller.WithHistorySize(args.HistorySize),
	)
}

// View browses the runs saved in the reports directory.
func (w *workflow) View(args ViewArgs) error {
	runs, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.ui.BrowseReports(runs)
}

func (w *workflow) load(args InputArgs) (*m.Source, error) {
	if args.HasExpr {
		return m.NewSource(m.ExprSourceID, args.Expr), nil
	}

	src, err := w.fsAdapter.ReadSource(args.Path)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	return src, nil
}

func (w *workflow) evaluateFile(path m.Path) (m.Report, error) {
	src, err := w.fsAdapter.ReadSource(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("load source: %w", err)
	}

	hash, err := w.fsAdapter.HashFile(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	report := w.evaluate(src)
	report.Source = path
	report.Hash = hash

	return report, nil
}

// evaluate interprets src and records the outcome.
func (w *workflow) evaluate(src *m.Source) m.Report {
	start := time.Now()
	value, err := Interpret(src.ID(), src.Content())

	report := m.Report{
		ID:      uuid.NewString(),
		Source:  m.Path(src.ID()),
		Elapsed: time.Since(start),
	}

	if err != nil {
		diagnosis := w.diagnose(src, err)
		report.Diagnosis = &diagnosis
	} else {
		report.Value = value.String()
		report.Type = value.Type()
	}

	w.logger.Debug("evaluated",
		"source", src.ID(),
		"elapsed", report.Elapsed,
		"failed", report.Failed(),
	)

	return report
}

func (w *workflow) diagnose(src *m.Source, err error) m.Diagnosis {
	if diagnosis, ok := Diagnose(err); ok {
		return diagnosis
	}

	w.logger.Warn("undiagnosable error", "source", src.ID(), "error", err)

	return m.Diagnosis{Kind: m.DiagnosisRuntime, Message: err.Error(), SourceID: src.ID()}
}

func firstFailure(reports []m.Report) error {
	for _, report := range reports {
		if report.Failed() {
			return &EvaluationError{Kind: report.Diagnosis.Kind}
		}
	}

	return nil
}

// ExitCode maps an error returned by a Workflow to the process exit status:
// 65 for lexing and parsing failures, 70 for runtime failures and 1 for
// anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		return 1
	}

	if evalErr.Kind == m.DiagnosisRuntime {
		return ExitSoftware
	}

	return ExitDataErr
}
