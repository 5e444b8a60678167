// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     version
// Description: Central version management for the summa components
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for summa components
const (
	// Application version
	Application = "0.1.0"

	// Component versions
	Lexer  = "0.1.0"
	Parser = "0.1.0"
	REPL   = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/summa/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "repl":
		return REPL
	default:
		return Application
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("summa %s (commit %s, built %s, %s %s/%s)",
		Application, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
