package cmd

import (
	"github.com/spf13/cobra"
)

var parseExprFlag string

// parseCmd represents the parse command.
var parseCmd = newParseCmd()

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the expression tree of a source",
		Long: `Print the expression tree of a file or of an inline expression in
parenthesized prefix form, e.g. (+ 1 (* 2 (group 3))).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(parseExprFlag, cmd.Flags().Changed("expr"), args)
			if err != nil {
				return err
			}

			return workflow.Parse(input)
		},
	}
	cmd.Flags().StringVarP(&parseExprFlag, "expr", "e", "", "parse the given expression instead of a file")

	return cmd
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
