// File: parser.go
// Title: summa Recursive Descent Parser
// Description: Parses a whitespace-free token slice with the grammar
//              E := T '+' E | T and T := NUMBER. Alternatives are tried by
//              explicit backtracking: the binary form first, and on any
//              failure the unary form from the original position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	mdwerror "github.com/msto63/summa/foundation/core/error"
	mdwlog "github.com/msto63/summa/foundation/core/log"
	mdwast "github.com/msto63/summa/foundation/summa/ast"
	"github.com/msto63/summa/foundation/summa/lexer"
)

// ParseTerm succeeds iff tokens[pos] is a Number, returning the term and
// pos+1. On any mismatch, including pos out of range, it returns nil and
// pos unchanged. The error is non-nil only when the number does not fit
// in an int32.
func ParseTerm(tokens []lexer.Token, pos int) (*mdwast.Term, int, error) {
	if pos < 0 || pos >= len(tokens) || tokens[pos].Kind != lexer.KindNumber {
		return nil, pos, nil
	}

	tok := tokens[pos]
	value, err := strconv.ParseInt(tok.Text, 10, 32)
	if err != nil {
		return nil, pos, mdwerror.Wrap(err, fmt.Sprintf("number out of range: %s", tok.Text)).
			WithCode(mdwerror.CodeNumericOverflow).
			WithOperation("parser.ParseTerm").
			WithDetail("text", tok.Text).
			WithDetail("offset", tok.Offset).
			WithDetail("position", pos)
	}

	return &mdwast.Term{Value: int32(value), Token: tok}, pos + 1, nil
}

// ParseOp succeeds iff tokens[pos] is an Add token
func ParseOp(tokens []lexer.Token, pos int) (*mdwast.Op, int) {
	if pos < 0 || pos >= len(tokens) || tokens[pos].Kind != lexer.KindAdd {
		return nil, pos
	}
	return &mdwast.Op{Token: tokens[pos]}, pos + 1
}

// ParseExpression parses E starting at pos. A nil expression means no
// expression starts at pos; the returned position is then pos itself.
// Callers check that the returned position equals len(tokens) to know the
// whole input was consumed.
func ParseExpression(tokens []lexer.Token, pos int) (mdwast.Expr, int, error) {
	return newWalker(nil).expression(tokens, pos)
}

// walker carries the optional trace logger through the recursion. It has no
// parse state of its own: every attempt is a function of (tokens, pos).
type walker struct {
	logger *mdwlog.Logger
	trace  bool
}

func newWalker(logger *mdwlog.Logger) walker {
	return walker{logger: logger, trace: logger != nil && logger.IsLevelEnabled(mdwlog.LevelTrace)}
}

func (w walker) expression(tokens []lexer.Token, pos int) (mdwast.Expr, int, error) {
	if binary, next, err := w.binary(tokens, pos); err != nil || binary != nil {
		return binary, next, err
	}

	w.step("binary form failed, retrying unary", pos)

	term, next, err := ParseTerm(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	if term == nil {
		w.step("no expression", pos)
		return nil, pos, nil
	}
	return &mdwast.Unary{Term: term}, next, nil
}

// binary attempts T '+' E at pos. Any partial progress is dropped by
// returning nil; the caller retries from the same pos.
func (w walker) binary(tokens []lexer.Token, pos int) (mdwast.Expr, int, error) {
	left, p1, err := ParseTerm(tokens, pos)
	if err != nil || left == nil {
		return nil, pos, err
	}

	op, p2 := ParseOp(tokens, p1)
	if op == nil {
		return nil, pos, nil
	}

	right, p3, err := w.expression(tokens, p2)
	if err != nil || right == nil {
		return nil, pos, err
	}

	return &mdwast.Binary{Left: left, Op: op, Right: right}, p3, nil
}

func (w walker) step(message string, pos int) {
	if w.trace {
		w.logger.Trace(message, mdwlog.Fields{"position": pos})
	}
}

// Result is the outcome of parsing a whole token slice
type Result struct {
	Expr     mdwast.Expr // nil when nothing parsed
	Consumed int         // tokens consumed from the start
	Total    int         // tokens available
}

// Complete reports whether an expression was found and every token consumed
func (r *Result) Complete() bool {
	return r.Expr != nil && r.Consumed == r.Total
}

// Parser parses whitespace-free token slices and logs its steps
type Parser struct {
	logger *mdwlog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{logger: opts.Logger.WithField("component", "summa-parser")}
}

// Parse parses tokens from position 0. It never fails on grammar
// mismatches; those are described by the Result. The error is non-nil
// only for numeric overflow, which aborts processing of the input.
func (p *Parser) Parse(tokens []lexer.Token) (*Result, error) {
	expr, consumed, err := newWalker(p.logger).expression(tokens, 0)
	if err != nil {
		return nil, err
	}

	result := &Result{Expr: expr, Consumed: consumed, Total: len(tokens)}

	p.logger.Debug("parsed tokens", mdwlog.Fields{
		"consumed": result.Consumed,
		"total":    result.Total,
		"complete": result.Complete(),
	})

	return result, nil
}
