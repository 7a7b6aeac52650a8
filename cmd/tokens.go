package cmd

import (
	"github.com/spf13/cobra"
)

var tokensExprFlag string

// tokensCmd represents the tokens command.
var tokensCmd = newTokensCmd()

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a source",
		Long: `Print the tokens of a file or of an inline expression, one per line,
as "KIND lexeme literal". Lexical errors are reported after the list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseInput(tokensExprFlag, cmd.Flags().Changed("expr"), args)
			if err != nil {
				return err
			}

			return workflow.Tokens(input)
		},
	}
	cmd.Flags().StringVarP(&tokensExprFlag, "expr", "e", "", "scan the given expression instead of a file")

	return cmd
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
