package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/summa/internal/printer"
	"github.com/msto63/summa/pkg/core/config"
)

var (
	cfgFile    string
	locale     string
	outputMode string
	logLevel   string
	color      bool
	outline    bool
)

// errDiagnostic signals that a diagnostic was already printed; main only
// turns it into the exit status
var errDiagnostic = errors.New("diagnostic reported")

var rootCmd = &cobra.Command{
	Use:   "summa [expression...]",
	Short: "summa - parses sums of non-negative integers",
	Long: `summa reads one line and parses it as a sum of non-negative integers
joined by '+', printing the syntax tree.

Without arguments the line is read from standard input after printing the
prompt to standard error. Arguments are joined with spaces and used instead.

Grammar:
  E := T '+' E | T
  T := NUMBER

Examples:
  echo "1 + 2 + 3" | summa
  summa 1+2+3 --outline
  summa lex "12 + 34"
  summa eval -o json 4+5`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runParse,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $SUMMA_CONFIG or ./summa.toml)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "message locale: en, de or auto")
	rootCmd.PersistentFlags().StringVarP(&outputMode, "output", "o", "", "output mode: tree, tokens or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "colored output")
	rootCmd.Flags().BoolVar(&outline, "outline", false, "print the tree as an indented outline")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return current.report(cmd, err)
	}

	p := current.printer(cmd)
	if current.cfg.Output.Mode == config.ModeTokens {
		return runTokens(cmd, p, input)
	}

	result, err := current.engine.Parse(input)
	if err != nil {
		return current.report(cmd, err)
	}

	if current.cfg.Output.Mode == config.ModeJSON {
		return p.JSON(result.Expr)
	}
	if outline {
		return p.Outline(result.Expr)
	}
	return p.Tree(result.Expr)
}

// runTokens prints the token list only. The tokens are printed before
// parsing, so a grammar diagnostic still follows the list.
func runTokens(cmd *cobra.Command, p *printer.Printer, input string) error {
	tokens, err := current.engine.Lex(input)
	if err != nil {
		return current.report(cmd, err)
	}
	if err := p.Tokens(tokens); err != nil {
		return err
	}
	if _, err := current.engine.ParseTokens(tokens); err != nil {
		return current.report(cmd, err)
	}
	return nil
}

// readInput joins the arguments or reads one line from stdin, keeping the
// trailing newline
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), current.cfg.Output.Prompt)

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", ioFailure(err)
	}
	return line, nil
}
