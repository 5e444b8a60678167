// File: doc.go
// Title: summa Parser Package Documentation
// Description: Recursive descent parser for sums of integers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser builds an expression tree from whitespace-free tokens.

The grammar is

	E := T '+' E | T
	T := NUMBER

ParseExpression tries the binary production first. If any step of it fails
(no term, no operator, or no right-hand expression) all progress is
discarded and the unary production is tried from the original position.
Chains therefore nest to the right.

A missing parse is not an error. The only error is a Number that does not
fit in an int32 (code NUMERIC_OVERFLOW), which aborts the whole parse.
*/
package parser
