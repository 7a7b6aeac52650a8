package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lox/internal/domain"
	m "github.com/mouse-blink/lox/internal/model"
)

var runParallelFlag int
var runExcludeFlags []string
var runNoReportsFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Evaluate every .lox file under the given paths.

Each file holds one expression. Files are evaluated concurrently and the
results are printed in the order the files were found, then saved to the
reports directory (see --output) for "lox view".

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./exprs/...    recursively scan the exprs directory
  - ./a ./b        scan multiple directories
  - one.lox        evaluate a single file`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Evaluate lox files",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := runParallelFlag
			if !cmd.Flags().Changed("parallel") {
				threads = settings.Parallel
			}

			exclude := runExcludeFlags
			if !cmd.Flags().Changed("exclude") {
				exclude = settings.Exclude
			}

			reports := m.Path(reportsOutputDirFlag)
			if runNoReportsFlag {
				reports = ""
			}

			return workflow.Run(domain.RunArgs{
				Paths:   parsePaths(args),
				Exclude: exclude,
				Threads: threads,
				Reports: reports,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&runNoReportsFlag, "no-reports", false, "do not save the reports")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
