// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     repl
// Description: Transcript entries of the REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	mdwast "github.com/msto63/summa/foundation/summa/ast"
)

// Entry is one evaluated input line
type Entry struct {
	Input   string
	Expr    mdwast.Expr // nil on failure
	Sum     int64
	Message string // localized diagnostic when Failed
	Failed  bool
}
