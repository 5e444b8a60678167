// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     printer
// Description: Renders tokens and expression trees as text, outline or JSON
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwast "github.com/msto63/summa/foundation/summa/ast"
	"github.com/msto63/summa/foundation/summa/lexer"
)

// Printer writes results to an output stream
type Printer struct {
	out   io.Writer
	color bool
}

// New creates a printer. With color set, output is styled with lipgloss.
func New(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Tokens prints the token count on one line and the token list on the next
func (p *Printer) Tokens(tokens []lexer.Token) error {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = p.style(TokenStyle(tok.Kind), tok.String())
	}
	_, err := fmt.Fprintf(p.out, "%d\n[%s]\n", len(tokens), strings.Join(parts, ", "))
	return err
}

// Tree prints the expression in its one-line form
func (p *Printer) Tree(expr mdwast.Expr) error {
	text := "<none>"
	if expr != nil {
		text = expr.String()
	}
	_, err := fmt.Fprintln(p.out, p.style(NodeStyle, text))
	return err
}

// Outline prints the expression as an indented tree
func (p *Printer) Outline(expr mdwast.Expr) error {
	_, err := io.WriteString(p.out, p.FormatOutline(expr))
	return err
}

// JSON prints the expression as indented JSON
func (p *Printer) JSON(expr mdwast.Expr) error {
	data, err := json.MarshalIndent(mdwast.ToTree(expr), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

// Sum prints a labeled sum
func (p *Printer) Sum(label string) error {
	_, err := fmt.Fprintln(p.out, p.style(SumStyle, label))
	return err
}

// Error prints a diagnostic line
func (p *Printer) Error(message string) error {
	_, err := fmt.Fprintln(p.out, p.style(ErrorStyle, message))
	return err
}

// FormatOutline renders the expression as a multi-line tree
func (p *Printer) FormatOutline(expr mdwast.Expr) string {
	if expr == nil {
		return "<none>\n"
	}
	var b strings.Builder
	p.outline(&b, expr, "", "")
	return b.String()
}

func (p *Printer) outline(b *strings.Builder, node mdwast.Node, lead, indent string) {
	b.WriteString(p.style(BranchStyle, lead))

	var children []mdwast.Node
	switch n := node.(type) {
	case *mdwast.Binary:
		b.WriteString(p.style(NodeStyle, "Binary"))
		children = []mdwast.Node{n.Left, n.Op, n.Right}
	case *mdwast.Unary:
		b.WriteString(p.style(NodeStyle, "Unary"))
		children = []mdwast.Node{n.Term}
	case *mdwast.Term:
		b.WriteString(p.style(NumberStyle, "T("+strconv.Itoa(int(n.Value))+")"))
	case *mdwast.Op:
		b.WriteString(p.style(AddStyle, n.String()))
	}
	b.WriteByte('\n')

	for i, child := range children {
		if i == len(children)-1 {
			p.outline(b, child, indent+"└─ ", indent+"   ")
		} else {
			p.outline(b, child, indent+"├─ ", indent+"│  ")
		}
	}
}
