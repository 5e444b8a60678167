package cmd

import (
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [expression...]",
	Short: "Prints the token count and the tokens of one line",
	Long: `Tokenizes one line by maximal munch and prints the number of tokens
followed by the token list. Whitespace tokens are included.`,
	Args: cobra.ArbitraryArgs,
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return current.report(cmd, err)
	}

	tokens, err := current.engine.Lex(input)
	if err != nil {
		return current.report(cmd, err)
	}

	return current.printer(cmd).Tokens(tokens)
}
