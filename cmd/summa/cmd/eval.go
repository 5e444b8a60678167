package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	mdwast "github.com/msto63/summa/foundation/summa/ast"
	"github.com/msto63/summa/pkg/core/config"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Parses one line and prints the tree and the sum",
	Long: `Parses one line like the root command and additionally prints the sum
of all terms. The sum is computed in 64 bits and cannot overflow.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// evalOutput is the JSON form of an evaluation
type evalOutput struct {
	Tree *mdwast.TreeNode `json:"tree"`
	Sum  int64            `json:"sum"`
}

func runEval(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return current.report(cmd, err)
	}

	sum, result, err := current.engine.Evaluate(input)
	if err != nil {
		return current.report(cmd, err)
	}

	if current.cfg.Output.Mode == config.ModeJSON {
		data, err := json.MarshalIndent(evalOutput{Tree: mdwast.ToTree(result.Expr), Sum: sum}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	p := current.printer(cmd)
	if err := p.Tree(result.Expr); err != nil {
		return err
	}
	return p.Sum(current.messages.T("output.sum", map[string]interface{}{"sum": sum}))
}
