// File: visitor.go
// Title: summa AST Visitor Pattern Implementation
// Description: Visitor interface for traversing expression trees plus the
//              visitors used by the engine and the printers: evaluation,
//              term collection, depth, and a JSON-friendly tree builder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor pattern implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitBinary(expr *Binary) interface{}
	VisitUnary(expr *Unary) interface{}
	VisitTerm(term *Term) interface{}
	VisitOp(op *Op) interface{}
}

// BaseVisitor walks the whole tree and returns nil everywhere.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitBinary(expr *Binary) interface{} {
	expr.Left.Accept(bv)
	expr.Op.Accept(bv)
	expr.Right.Accept(bv)
	return nil
}

func (bv *BaseVisitor) VisitUnary(expr *Unary) interface{} {
	return expr.Term.Accept(bv)
}

func (bv *BaseVisitor) VisitTerm(term *Term) interface{} { return nil }
func (bv *BaseVisitor) VisitOp(op *Op) interface{}       { return nil }

// EvalVisitor sums the terms of an expression as int64, so a chain of
// int32 terms cannot overflow for any realistic input length.
type EvalVisitor struct{}

func (EvalVisitor) VisitBinary(expr *Binary) interface{} {
	return int64(expr.Left.Value) + expr.Right.Accept(EvalVisitor{}).(int64)
}

func (EvalVisitor) VisitUnary(expr *Unary) interface{} {
	return int64(expr.Term.Value)
}

func (EvalVisitor) VisitTerm(term *Term) interface{} { return int64(term.Value) }
func (EvalVisitor) VisitOp(op *Op) interface{}       { return int64(0) }

// Evaluate returns the sum of all terms in expr
func Evaluate(expr Expr) int64 {
	if expr == nil {
		return 0
	}
	return expr.Accept(EvalVisitor{}).(int64)
}

// termCollector gathers terms left to right
type termCollector struct {
	BaseVisitor
	terms []*Term
}

func (c *termCollector) VisitBinary(expr *Binary) interface{} {
	c.terms = append(c.terms, expr.Left)
	return expr.Right.Accept(c)
}

func (c *termCollector) VisitUnary(expr *Unary) interface{} {
	c.terms = append(c.terms, expr.Term)
	return nil
}

// Terms returns the terms of expr in source order
func Terms(expr Expr) []*Term {
	if expr == nil {
		return nil
	}
	c := &termCollector{}
	expr.Accept(c)
	return c.terms
}

// Depth returns the number of nested Binary nodes, which equals the number
// of operators in the parsed chain
func Depth(expr Expr) int {
	depth := 0
	for {
		b, ok := expr.(*Binary)
		if !ok {
			return depth
		}
		depth++
		expr = b.Right
	}
}

// TreeNode is a plain representation of an expression for JSON output
type TreeNode struct {
	Type  string    `json:"type"`
	Value *int32    `json:"value,omitempty"`
	Op    string    `json:"op,omitempty"`
	Left  *TreeNode `json:"left,omitempty"`
	Right *TreeNode `json:"right,omitempty"`
	Term  *TreeNode `json:"term,omitempty"`
	Line  int       `json:"line"`
	Col   int       `json:"column"`
}

// treeBuilder converts nodes to TreeNode values
type treeBuilder struct{}

func (treeBuilder) VisitBinary(expr *Binary) interface{} {
	pos := expr.Position()
	return &TreeNode{
		Type:  "binary",
		Op:    expr.Op.String(),
		Left:  expr.Left.Accept(treeBuilder{}).(*TreeNode),
		Right: expr.Right.Accept(treeBuilder{}).(*TreeNode),
		Line:  pos.Line,
		Col:   pos.Column,
	}
}

func (treeBuilder) VisitUnary(expr *Unary) interface{} {
	pos := expr.Position()
	return &TreeNode{
		Type: "unary",
		Term: expr.Term.Accept(treeBuilder{}).(*TreeNode),
		Line: pos.Line,
		Col:  pos.Column,
	}
}

func (treeBuilder) VisitTerm(term *Term) interface{} {
	v := term.Value
	pos := term.Position()
	return &TreeNode{Type: "term", Value: &v, Line: pos.Line, Col: pos.Column}
}

func (treeBuilder) VisitOp(op *Op) interface{} {
	pos := op.Position()
	return &TreeNode{Type: "op", Op: op.String(), Line: pos.Line, Col: pos.Column}
}

// ToTree converts an expression into TreeNode form
func ToTree(expr Expr) *TreeNode {
	if expr == nil {
		return nil
	}
	return expr.Accept(treeBuilder{}).(*TreeNode)
}
