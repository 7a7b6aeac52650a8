// Package cmd provides the root command and CLI setup for lox.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mouse-blink/lox/internal/adapter"
	"github.com/mouse-blink/lox/internal/config"
	"github.com/mouse-blink/lox/internal/controller"
	"github.com/mouse-blink/lox/internal/domain"
	m "github.com/mouse-blink/lox/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI
var logger *slog.Logger
var logLevel = new(slog.LevelVar)
var settings = config.DefaultSettings()

func init() {
	logLevel.Set(slog.LevelWarn)

	logger = newLogger(os.Stderr, logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, logger)
}

var exprFlag string
var configFlag string
var verboseFlag bool
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lox [file]",
		Short: "Lox expression interpreter",
		Long: `Lox evaluates single Lox expressions.

Without arguments it starts an interactive prompt. With a file argument it
evaluates the expression in the file, and with --expr the expression given
on the command line.

  lox                 start the REPL
  lox answer.lox      evaluate a file
  lox -e '1 + 2 * 3'  evaluate an inline expression`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadSettings(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			hasExpr := cmd.Flags().Changed("expr")
			if !hasExpr && len(args) == 0 {
				return workflow.Repl(domain.ReplArgs{
					Prompt:      settings.Prompt,
					HistorySize: settings.HistorySize,
				})
			}

			input, err := parseInput(exprFlag, hasExpr, args)
			if err != nil {
				return err
			}

			return workflow.Eval(input)
		},
	}
	cmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "evaluate the given expression instead of a file")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "settings file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug information to stderr")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "output", "o", config.DefaultReportsDir, "reports directory")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Failed evaluations exit with 65 or 70, every other error with 1.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// Evaluation failures were already explained by their diagnosis.
	if !errors.Is(err, domain.ErrEvaluationFailed) {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	os.Exit(domain.ExitCode(err))
}

// loadSettings reads the settings file and applies it to the flags the user
// did not set explicitly.
func loadSettings(cmd *cobra.Command) error {
	if verboseFlag {
		logLevel.Set(slog.LevelDebug)
	}

	loaded, err := config.LoadSettings(configFlag)
	if err != nil {
		return err
	}

	settings = loaded

	if !cmd.Flags().Changed("output") {
		reportsOutputDirFlag = settings.Reports
	}

	logger.Debug("settings loaded", "reports", reportsOutputDirFlag, "parallel", settings.Parallel)

	return nil
}

func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseInput picks the single source named by an --expr flag or a file
// argument. hasExpr tells an explicitly empty expression from a missing flag.
func parseInput(expr string, hasExpr bool, args []string) (domain.InputArgs, error) {
	switch {
	case hasExpr && len(args) > 0:
		return domain.InputArgs{}, errors.New("--expr cannot be combined with a file argument")
	case hasExpr:
		return domain.InputArgs{Expr: expr, HasExpr: true}, nil
	case len(args) == 1:
		return domain.InputArgs{Path: m.Path(args[0])}, nil
	default:
		return domain.InputArgs{}, errors.New("a file argument or --expr is required")
	}
}

// parsePaths converts the arguments to paths, defaulting to the current
// directory tree.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
