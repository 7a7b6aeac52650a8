package cmd

import (
	"github.com/mouse-blink/lox/internal/domain"
	m "github.com/mouse-blink/lox/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved evaluation reports",
		Long:  "View the evaluation reports saved by \"lox run\" in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
