// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive summa REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/summa/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"interactive", "i"},
	Short:   "Starts the interactive REPL",
	Long: `Starts the interactive summa REPL.

Every entered line is parsed and shown as tree, outline and sum.

Keys:
  Enter       Parse the line
  Up/Down     Browse history
  Esc         Clear the input
  PgUp/PgDn   Scroll
  Ctrl+C      Quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	err := repl.Run(repl.Config{
		Engine:      current.engine,
		Messages:    current.messages,
		Logger:      current.logger.WithName("summa-repl"),
		Prompt:      current.cfg.Output.Prompt,
		HistorySize: current.cfg.REPL.HistorySize,
	})
	if err != nil {
		current.logger.ErrorWithErr("repl terminated", err)
	}
	return err
}
