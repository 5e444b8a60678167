// Package error provides structured error handling for summa.
//
// Package: error
// Title: summa Error Handling
// Description: Structured errors with codes, severity, details and an i18n
//              message key. The lexer and parser report fatal input problems
//              through this type; the CLI renders them as localized
//              diagnostics and logs them with a level derived from severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with codes for the pipeline
//
// Usage:
//
//	err := mdwerror.New("unable to lex").
//		WithCode(mdwerror.CodeLexError).
//		WithDetail("fragment", "a").
//		WithOperation("lexer.Lex")
//
//	if mdwerror.HasCode(err, mdwerror.CodeLexError) {
//		// abort processing of the line
//	}
//
// The package is named error, so importers alias it (conventionally mdwerror).
package error
