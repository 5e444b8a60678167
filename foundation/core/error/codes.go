// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by summa to classify lexing,
//              parsing and harness failures. Codes drive severity, log
//              level selection and the localized diagnostic shown to users.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set for the summa pipeline

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Pipeline codes
	CodeLexError        Code = "LEX_ERROR"
	CodeNoParse         Code = "NO_PARSE"
	CodeIncompleteParse Code = "INCOMPLETE_PARSE"
	CodeNumericOverflow Code = "NUMERIC_OVERFLOW"
	CodeInputTooLong    Code = "INPUT_TOO_LONG"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeIOError       Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexError, CodeNoParse, CodeIncompleteParse, CodeNumericOverflow, CodeInputTooLong,
		CodeConfigError, CodeInvalidConfig, CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexError:
		return "lexing"
	case CodeNoParse, CodeIncompleteParse, CodeNumericOverflow:
		return "parsing"
	case CodeInputTooLong, CodeInvalidInput:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}

// IsFatal reports whether the code aborts processing of the whole input
// line rather than describing an ordinary grammar mismatch.
func (c Code) IsFatal() bool {
	return c == CodeLexError || c == CodeNumericOverflow
}

// MessageKey returns the i18n catalog key for the code
func (c Code) MessageKey() string {
	switch c {
	case CodeLexError:
		return "diagnostic.lex"
	case CodeNoParse:
		return "diagnostic.no_parse"
	case CodeIncompleteParse:
		return "diagnostic.incomplete"
	case CodeNumericOverflow:
		return "diagnostic.overflow"
	case CodeInputTooLong:
		return "diagnostic.too_long"
	case CodeConfigError, CodeInvalidConfig:
		return "diagnostic.config"
	case CodeIOError:
		return "diagnostic.io"
	default:
		return "diagnostic.internal"
	}
}
