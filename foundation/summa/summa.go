// File: summa.go
// Title: summa High-Level Engine
// Description: Runs the full pipeline on one input line: lexing, whitespace
//              filtering, parsing from position 0 and the full-consumption
//              check. Grammar mismatches, lex failures and overflow are
//              reported as structured errors carrying a request ID.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package summa

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/summa/foundation/core/error"
	mdwlog "github.com/msto63/summa/foundation/core/log"
	mdwast "github.com/msto63/summa/foundation/summa/ast"
	"github.com/msto63/summa/foundation/summa/lexer"
	mdwparser "github.com/msto63/summa/foundation/summa/parser"
)

// DefaultMaxInputLength is the input limit used when Options leaves it unset
const DefaultMaxInputLength = 4096

// Result is the outcome of parsing one input line
type Result = mdwparser.Result

// Engine runs the lexer and parser over complete input lines. It holds only
// immutable configuration and is safe for concurrent use.
type Engine struct {
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
	SlowThreshold  time.Duration // Parses slower than this are logged as warnings; 0 disables
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "summa-engine")

	return &Engine{
		parser:  mdwparser.New(mdwparser.Options{Logger: opts.Logger}),
		logger:  logger,
		options: opts,
	}
}

// MaxInputLength returns the configured input limit in bytes
func (e *Engine) MaxInputLength() int {
	return e.options.MaxInputLength
}

// Lex tokenizes the input, whitespace included
func (e *Engine) Lex(input string) ([]lexer.Token, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)
	timer := logger.StartTimer("lex")

	tokens, err := e.lex(input, requestID)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("tokens", len(tokens)).Stop()
	return tokens, nil
}

// Parse lexes and parses the input. When the parser stops before the last
// token, the partial result is returned together with an INCOMPLETE_PARSE
// error.
func (e *Engine) Parse(input string) (*Result, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)
	timer := logger.StartTimer("parse")

	result, err := e.parse(input, requestID)
	return e.finish(logger, timer, len(input), result, err)
}

// ParseTokens parses tokens previously returned by Lex. Whitespace tokens
// are dropped before parsing; the checks are the same as for Parse.
func (e *Engine) ParseTokens(tokens []lexer.Token) (*Result, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)
	timer := logger.StartTimer("parse")

	result, err := e.parseTokens(tokens, requestID)
	return e.finish(logger, timer, len(lexer.Join(tokens)), result, err)
}

func (e *Engine) finish(logger *mdwlog.Logger, timer *mdwlog.Timer, length int, result *Result, err error) (*Result, error) {
	if err != nil {
		timer.StopWithError(err)
		return result, err
	}

	elapsed := timer.WithField("tokens", result.Total).Stop()
	if e.options.SlowThreshold > 0 && elapsed > e.options.SlowThreshold {
		logger.Warn("slow parse", mdwlog.Fields{
			"duration":  elapsed.String(),
			"threshold": e.options.SlowThreshold.String(),
			"length":    length,
		})
	}
	return result, nil
}

// Evaluate parses the input and sums its terms
func (e *Engine) Evaluate(input string) (int64, *Result, error) {
	result, err := e.Parse(input)
	if err != nil {
		return 0, result, err
	}
	return mdwast.Evaluate(result.Expr), result, nil
}

func (e *Engine) lex(input, requestID string) ([]lexer.Token, error) {
	if len(input) > e.options.MaxInputLength {
		return nil, mdwerror.Newf("input too long: %d bytes, limit %d", len(input), e.options.MaxInputLength).
			WithCode(mdwerror.CodeInputTooLong).
			WithOperation("summa.Lex").
			WithRequestID(requestID).
			WithDetail("length", len(input)).
			WithDetail("limit", e.options.MaxInputLength)
	}

	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, lexFailure(err, requestID)
	}
	return tokens, nil
}

func (e *Engine) parse(input, requestID string) (*Result, error) {
	tokens, err := e.lex(input, requestID)
	if err != nil {
		return nil, err
	}
	return e.parseTokens(tokens, requestID)
}

func (e *Engine) parseTokens(tokens []lexer.Token, requestID string) (*Result, error) {
	tokens = lexer.WithoutWhitespace(tokens)

	result, err := e.parser.Parse(tokens)
	if err != nil {
		if mdwErr, ok := mdwerror.As(err); ok {
			mdwErr.WithRequestID(requestID)
		}
		return nil, err
	}

	if result.Expr == nil {
		return result, mdwerror.New("failed to parse").
			WithCode(mdwerror.CodeNoParse).
			WithOperation("summa.Parse").
			WithRequestID(requestID).
			WithDetail("total", result.Total)
	}

	if result.Consumed != result.Total {
		return result, mdwerror.Newf("failed to parse full input: consumed %d of %d tokens", result.Consumed, result.Total).
			WithCode(mdwerror.CodeIncompleteParse).
			WithOperation("summa.Parse").
			WithRequestID(requestID).
			WithDetails(map[string]interface{}{
				"consumed": result.Consumed,
				"total":    result.Total,
			})
	}

	return result, nil
}

func lexFailure(err error, requestID string) error {
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		return mdwerror.Wrap(err, "lexing failed").
			WithCode(mdwerror.CodeInternal).
			WithRequestID(requestID)
	}

	return mdwerror.Wrap(err, fmt.Sprintf("unable to lex: %q", lexErr.Fragment)).
		WithCode(mdwerror.CodeLexError).
		WithOperation("summa.Lex").
		WithRequestID(requestID).
		WithDetail("fragment", lexErr.Fragment).
		WithDetail("offset", lexErr.Offset).
		WithDetail("line", lexErr.Line).
		WithDetail("column", lexErr.Column)
}
