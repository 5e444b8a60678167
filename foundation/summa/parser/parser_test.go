// File: parser_test.go
// Title: summa Parser Unit Tests
// Description: Tests for term and operator parsing, right-associative
//              chains, backtracking, partial consumption and overflow.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	mdwerror "github.com/msto63/summa/foundation/core/error"
	mdwlog "github.com/msto63/summa/foundation/core/log"
	mdwast "github.com/msto63/summa/foundation/summa/ast"
	"github.com/msto63/summa/foundation/summa/lexer"
)

func tokensOf(t *testing.T, input string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) error = %v", input, err)
	}
	return lexer.WithoutWhitespace(tokens)
}

func TestParseTerm(t *testing.T) {
	tokens := tokensOf(t, "42+")

	term, next, err := ParseTerm(tokens, 0)
	if err != nil || term == nil {
		t.Fatalf("ParseTerm(0) = %v, %v", term, err)
	}
	if term.Value != 42 || next != 1 {
		t.Errorf("ParseTerm(0) = %d at %d, want 42 at 1", term.Value, next)
	}

	for _, pos := range []int{1, 2, -1, 99} {
		term, next, err := ParseTerm(tokens, pos)
		if term != nil || next != pos || err != nil {
			t.Errorf("ParseTerm(%d) = %v, %d, %v; want nil, %d, nil", pos, term, next, err, pos)
		}
	}
}

func TestParseOp(t *testing.T) {
	tokens := tokensOf(t, "1+")

	if op, next := ParseOp(tokens, 1); op == nil || next != 2 || op.String() != "Add" {
		t.Errorf("ParseOp(1) = %v, %d", op, next)
	}
	for _, pos := range []int{0, 2, -1} {
		if op, next := ParseOp(tokens, pos); op != nil || next != pos {
			t.Errorf("ParseOp(%d) = %v, %d", pos, op, next)
		}
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantNext int
		total    int
	}{
		{
			name:     "right associative chain",
			input:    "1+2+3",
			want:     "Binary(T(1), Add, Binary(T(2), Add, Unary(T(3))))",
			wantNext: 5,
			total:    5,
		},
		{
			name:     "single number",
			input:    "42",
			want:     "Unary(T(42))",
			wantNext: 1,
			total:    1,
		},
		{
			name:     "whitespace is filtered",
			input:    " 10 +\t20\n",
			want:     "Binary(T(10), Add, Unary(T(20)))",
			wantNext: 3,
			total:    3,
		},
		{
			name:     "trailing operator falls back to unary",
			input:    "1+",
			want:     "Unary(T(1))",
			wantNext: 1,
			total:    2,
		},
		{
			name:     "trailing operator after chain",
			input:    "1+2+",
			want:     "Binary(T(1), Add, Unary(T(2)))",
			wantNext: 3,
			total:    4,
		},
		{
			name:     "double operator",
			input:    "1++2",
			want:     "Unary(T(1))",
			wantNext: 1,
			total:    4,
		},
		{
			name:     "two numbers",
			input:    "1 2",
			want:     "Unary(T(1))",
			wantNext: 1,
			total:    2,
		},
		{
			name:     "leading zeros",
			input:    "007+0",
			want:     "Binary(T(7), Add, Unary(T(0)))",
			wantNext: 3,
			total:    3,
		},
		{
			name:     "int32 maximum",
			input:    "2147483647",
			want:     "Unary(T(2147483647))",
			wantNext: 1,
			total:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokensOf(t, tt.input)
			if len(tokens) != tt.total {
				t.Fatalf("token count = %d, want %d", len(tokens), tt.total)
			}

			expr, next, err := ParseExpression(tokens, 0)
			if err != nil {
				t.Fatalf("ParseExpression() error = %v", err)
			}
			if expr == nil {
				t.Fatal("ParseExpression() returned no expression")
			}
			if got := expr.String(); got != tt.want {
				t.Errorf("tree = %s, want %s", got, tt.want)
			}
			if next != tt.wantNext {
				t.Errorf("next = %d, want %d", next, tt.wantNext)
			}
		})
	}
}

func TestParseExpression_NoParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"leading operator", "+1", 0},
		{"past the end", "1", 1},
		{"starting at operator", "1+2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokensOf(t, tt.input)
			expr, next, err := ParseExpression(tokens, tt.pos)
			if err != nil {
				t.Fatalf("ParseExpression() error = %v", err)
			}
			if expr != nil {
				t.Errorf("ParseExpression() = %s, want nil", expr)
			}
			if next != tt.pos {
				t.Errorf("next = %d, want unchanged %d", next, tt.pos)
			}
		})
	}
}

func TestParseExpression_FromMiddle(t *testing.T) {
	tokens := tokensOf(t, "1+2+3")
	expr, next, err := ParseExpression(tokens, 2)
	if err != nil || expr == nil {
		t.Fatalf("ParseExpression(2) = %v, %v", expr, err)
	}
	if expr.String() != "Binary(T(2), Add, Unary(T(3)))" || next != 5 {
		t.Errorf("ParseExpression(2) = %s at %d", expr, next)
	}
}

func TestParseExpression_Overflow(t *testing.T) {
	tests := []string{"2147483648", "1+99999999999", "99999999999+1", "1+2+3000000000+"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens := tokensOf(t, input)
			expr, next, err := ParseExpression(tokens, 0)
			if err == nil {
				t.Fatalf("ParseExpression(%q) = %v, want overflow error", input, expr)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeNumericOverflow) {
				t.Errorf("code = %v, want NUMERIC_OVERFLOW", mdwerror.GetCode(err))
			}
			if expr != nil || next != 0 {
				t.Errorf("overflow must yield nil at 0, got %v at %d", expr, next)
			}
		})
	}
}

// randomSum builds n terms joined by '+' with optional whitespace
func randomSum(r *rand.Rand, n int) string {
	ws := []string{"", " ", "\t", "\n"}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(ws[r.Intn(len(ws))])
			b.WriteString("+")
			b.WriteString(ws[r.Intn(len(ws))])
		}
		b.WriteString(strings.Repeat("9", 1+r.Intn(5)))
	}
	return b.String()
}

func TestParseExpression_TermCountProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		input := randomSum(r, 1+r.Intn(12))
		tokens := tokensOf(t, input)

		expr, next, err := ParseExpression(tokens, 0)
		if err != nil || expr == nil {
			t.Fatalf("ParseExpression(%q) = %v, %v", input, expr, err)
		}
		if next != len(tokens) {
			t.Fatalf("%q consumed %d of %d", input, next, len(tokens))
		}

		numbers := lexer.Count(tokens, lexer.KindNumber)
		adds := lexer.Count(tokens, lexer.KindAdd)
		depth := mdwast.Depth(expr)

		// every Binary contributes one left term; the innermost Unary adds one
		if depth+1 != numbers {
			t.Errorf("%q: binary left terms + 1 = %d, numbers = %d", input, depth+1, numbers)
		}
		if depth != adds {
			t.Errorf("%q: depth = %d, operators = %d", input, depth, adds)
		}
		if len(mdwast.Terms(expr)) != numbers {
			t.Errorf("%q: terms = %d, numbers = %d", input, len(mdwast.Terms(expr)), numbers)
		}
	}
}

func TestParser_Parse(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelTrace,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})
	p := New(Options{Logger: logger})

	result, err := p.Parse(tokensOf(t, "1+"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Complete() {
		t.Error("1+ must not be complete")
	}
	if result.Consumed != 1 || result.Total != 2 {
		t.Errorf("consumed %d of %d, want 1 of 2", result.Consumed, result.Total)
	}
	if !strings.Contains(buf.String(), "retrying unary") {
		t.Errorf("trace log missing backtracking step:\n%s", buf.String())
	}

	result, err = p.Parse(tokensOf(t, "5 + 6"))
	if err != nil || !result.Complete() {
		t.Fatalf("Parse(5 + 6) = %+v, %v", result, err)
	}
	if mdwast.Evaluate(result.Expr) != 11 {
		t.Errorf("Evaluate() = %d", mdwast.Evaluate(result.Expr))
	}

	result, err = p.Parse(nil)
	if err != nil || result.Expr != nil || result.Complete() {
		t.Errorf("Parse(nil) = %+v, %v", result, err)
	}
}

func TestParser_DefaultLogger(t *testing.T) {
	p := New(Options{})
	if p.logger == nil {
		t.Fatal("parser without logger option should fall back to the default")
	}
}

func BenchmarkParseExpression(b *testing.B) {
	tokens, _ := lexer.Lex(strings.Repeat("123+", 500) + "4")
	tokens = lexer.WithoutWhitespace(tokens)
	for i := 0; i < b.N; i++ {
		if _, _, err := ParseExpression(tokens, 0); err != nil {
			b.Fatal(err)
		}
	}
}
