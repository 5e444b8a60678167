package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/summa/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Info())
		fmt.Fprintf(out, "  Lexer:  %s\n", version.ComponentVersion("lexer"))
		fmt.Fprintf(out, "  Parser: %s\n", version.ComponentVersion("parser"))
		fmt.Fprintf(out, "  REPL:   %s\n", version.ComponentVersion("repl"))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
