// File: doc.go
// Title: summa AST Package Documentation
// Description: Expression tree for sums of integers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST definitions

/*
Package ast defines the expression tree built by the parser.

An expression is either a Binary node (one Term, an Op and a nested Expr) or a
Unary node (a single Term). Nodes form a strict tree: the parser allocates
fresh nodes for each recursive call and never shares them.

Visitors traverse the tree; Evaluate, Terms, Depth and ToTree are built on
them.
*/
package ast
