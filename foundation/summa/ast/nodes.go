// File: nodes.go
// Title: summa AST Node Definitions
// Description: Defines the expression tree produced by the parser: terms,
//              operators and the binary and unary expression forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"

	"github.com/msto63/summa/foundation/summa/lexer"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// PositionOf returns the position of a token
func PositionOf(tok lexer.Token) Position {
	return Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset}
}

// Expr is an expression: either *Binary or *Unary. A failed parse is a nil
// Expr, never an empty node.
type Expr interface {
	Node
	exprNode() // marker method
}

// Term is a single integer operand
type Term struct {
	Value int32
	Token lexer.Token
}

// Op is the operator between two operands. Only Add exists.
type Op struct {
	Token lexer.Token
}

// Binary is one term, an operator and the rest of the chain. Chains nest to
// the right, so 1+2+3 is Binary(1, +, Binary(2, +, Unary(3))).
type Binary struct {
	Left  *Term
	Op    *Op
	Right Expr
}

// Unary is a lone terminal term
type Unary struct {
	Term *Term
}

func (*Binary) exprNode() {}
func (*Unary) exprNode()  {}

// String implementations

func (t *Term) String() string {
	return fmt.Sprintf("T(%d)", t.Value)
}

func (o *Op) String() string {
	return o.Token.Kind.String()
}

func (b *Binary) String() string {
	return fmt.Sprintf("Binary(%s, %s, %s)", b.Left, b.Op, b.Right)
}

func (u *Unary) String() string {
	return fmt.Sprintf("Unary(%s)", u.Term)
}

// Position implementations

func (t *Term) Position() Position   { return PositionOf(t.Token) }
func (o *Op) Position() Position     { return PositionOf(o.Token) }
func (b *Binary) Position() Position { return b.Left.Position() }
func (u *Unary) Position() Position  { return u.Term.Position() }

// Accept implementations

func (t *Term) Accept(v Visitor) interface{}   { return v.VisitTerm(t) }
func (o *Op) Accept(v Visitor) interface{}     { return v.VisitOp(o) }
func (b *Binary) Accept(v Visitor) interface{} { return v.VisitBinary(b) }
func (u *Unary) Accept(v Visitor) interface{}  { return v.VisitUnary(u) }
