// File: summa_test.go
// Title: summa Engine Unit Tests
// Description: Tests for the full pipeline including the full-consumption
//              check, error codes, request IDs and the input limit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package summa

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/summa/foundation/core/error"
	mdwlog "github.com/msto63/summa/foundation/core/log"
	"github.com/msto63/summa/foundation/summa/lexer"
)

func newTestEngine(buf *bytes.Buffer) *Engine {
	return New(Options{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{
			Level:  mdwlog.LevelDebug,
			Format: mdwlog.FormatJSON,
			Output: buf,
		}),
	})
}

func TestEngine_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"chain", "1+2+3", "Binary(T(1), Add, Binary(T(2), Add, Unary(T(3))))"},
		{"single", "42", "Unary(T(42))"},
		{"trailing newline", "12 + 34\n", "Binary(T(12), Add, Unary(T(34)))"},
		{"tabs and newlines", "\t1\n+\n2\t", "Binary(T(1), Add, Unary(T(2)))"},
	}

	engine := New(Options{Logger: mdwlog.NewNop()})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !result.Complete() {
				t.Errorf("Parse(%q) consumed %d of %d", tt.input, result.Consumed, result.Total)
			}
			if got := result.Expr.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEngine_ParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCode    mdwerror.Code
		wantMessage string
		wantResult  bool
	}{
		{"empty", "", mdwerror.CodeNoParse, "failed to parse", true},
		{"whitespace only", " \n", mdwerror.CodeNoParse, "failed to parse", true},
		{"leading operator", "+1", mdwerror.CodeNoParse, "failed to parse", true},
		{"trailing operator", "1+", mdwerror.CodeIncompleteParse, "failed to parse full input: consumed 1 of 2 tokens", true},
		{"two numbers", "1 2", mdwerror.CodeIncompleteParse, "failed to parse full input: consumed 1 of 2 tokens", true},
		{"letter", "1a", mdwerror.CodeLexError, `unable to lex: "a"`, false},
		{"carriage return", "1+2\r\n", mdwerror.CodeLexError, `unable to lex: "\r"`, false},
		{"minus", "3-1", mdwerror.CodeLexError, `unable to lex: "-"`, false},
		{"overflow", "1+2147483648", mdwerror.CodeNumericOverflow, "number out of range: 2147483648", false},
	}

	engine := New(Options{Logger: mdwlog.NewNop()})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, result.Expr)
			}
			if code := mdwerror.GetCode(err); code != tt.wantCode {
				t.Errorf("code = %s, want %s", code, tt.wantCode)
			}
			if !strings.HasPrefix(err.Error(), tt.wantMessage) {
				t.Errorf("message = %q, want prefix %q", err.Error(), tt.wantMessage)
			}
			if (result != nil) != tt.wantResult {
				t.Errorf("result present = %v, want %v", result != nil, tt.wantResult)
			}

			mdwErr, ok := mdwerror.As(err)
			if !ok {
				t.Fatal("error is not a structured error")
			}
			if _, perr := uuid.Parse(mdwErr.RequestID()); perr != nil {
				t.Errorf("request ID %q is not a uuid: %v", mdwErr.RequestID(), perr)
			}
		})
	}
}

func TestEngine_IncompleteDetails(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop()})

	result, err := engine.Parse("1+")
	mdwErr, ok := mdwerror.As(err)
	if !ok {
		t.Fatalf("Parse(1+) error = %v", err)
	}
	if v, _ := mdwErr.Detail("consumed"); v != 1 {
		t.Errorf("consumed detail = %v, want 1", v)
	}
	if v, _ := mdwErr.Detail("total"); v != 2 {
		t.Errorf("total detail = %v, want 2", v)
	}
	if result.Expr == nil || result.Expr.String() != "Unary(T(1))" {
		t.Errorf("partial result = %v", result.Expr)
	}
}

func TestEngine_LexErrorDetails(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop()})

	_, err := engine.Lex("12\n3x")
	mdwErr, ok := mdwerror.As(err)
	if !ok || mdwErr.Code() != mdwerror.CodeLexError {
		t.Fatalf("Lex() error = %v", err)
	}

	want := map[string]interface{}{"fragment": "x", "offset": 4, "line": 2, "column": 2}
	for key, value := range want {
		if got, _ := mdwErr.Detail(key); got != value {
			t.Errorf("detail %s = %v, want %v", key, got, value)
		}
	}

	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Error("lexer error should stay reachable through the chain")
	}
}

func TestEngine_Lex(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop()})

	tokens, err := engine.Lex("12 + 34\n")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if len(tokens) != 6 {
		t.Fatalf("Lex() returned %d tokens, want 6", len(tokens))
	}
	if lexer.Join(tokens) != "12 + 34\n" {
		t.Errorf("Join() = %q", lexer.Join(tokens))
	}

	tokens, err = engine.Lex("")
	if err != nil || tokens == nil || len(tokens) != 0 {
		t.Errorf("Lex(\"\") = %v, %v; want empty non-nil slice", tokens, err)
	}
}

func TestEngine_ParseTokens(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop()})

	tokens, err := engine.Lex("1 + 2\n")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	result, err := engine.ParseTokens(tokens)
	if err != nil {
		t.Fatalf("ParseTokens() error = %v", err)
	}
	if result.Expr.String() != "Binary(T(1), Add, Unary(T(2)))" || result.Total != 3 {
		t.Errorf("ParseTokens() = %v, total %d", result.Expr, result.Total)
	}

	tokens, err = engine.Lex("1+")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	result, err = engine.ParseTokens(tokens)
	if !mdwerror.HasCode(err, mdwerror.CodeIncompleteParse) {
		t.Fatalf("ParseTokens(1+) error = %v, want INCOMPLETE_PARSE", err)
	}
	if result == nil || result.Consumed != 1 {
		t.Errorf("partial result = %+v", result)
	}
}

func TestEngine_Evaluate(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop()})

	sum, result, err := engine.Evaluate("2147483647 + 2147483647 + 1")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if sum != 4294967295 {
		t.Errorf("sum = %d, want 4294967295", sum)
	}
	if !result.Complete() {
		t.Error("result should be complete")
	}

	if _, _, err := engine.Evaluate("1+"); !mdwerror.HasCode(err, mdwerror.CodeIncompleteParse) {
		t.Errorf("Evaluate(1+) error = %v", err)
	}
}

func TestEngine_InputTooLong(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop(), MaxInputLength: 8})

	if engine.MaxInputLength() != 8 {
		t.Errorf("MaxInputLength() = %d", engine.MaxInputLength())
	}
	if _, err := engine.Parse("1+2+3+4+5"); !mdwerror.HasCode(err, mdwerror.CodeInputTooLong) {
		t.Errorf("Parse() error = %v, want INPUT_TOO_LONG", err)
	}
	if _, err := engine.Parse("1+2+3+44"); err != nil {
		t.Errorf("input at the limit should parse: %v", err)
	}

	if New(Options{}).MaxInputLength() != DefaultMaxInputLength {
		t.Error("zero limit should fall back to the default")
	}
}

func TestEngine_LogsTimingWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(&buf)

	if _, err := engine.Parse("1+2"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"parse completed", "duration_ms", "request_id", "summa-engine"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	_, _ = engine.Parse("1+")
	if !strings.Contains(buf.String(), "parse failed") {
		t.Errorf("failed parse not logged:\n%s", buf.String())
	}
}

func TestEngine_Concurrent(t *testing.T) {
	engine := New(Options{Logger: mdwlog.NewNop()})
	done := make(chan error, 16)

	for i := 0; i < cap(done); i++ {
		go func() {
			sum, _, err := engine.Evaluate("1+2+3+4")
			if err == nil && sum != 10 {
				err = errors.New("wrong sum")
			}
			done <- err
		}()
	}
	for i := 0; i < cap(done); i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}

func TestEngine_SlowThreshold(t *testing.T) {
	var buf bytes.Buffer
	engine := New(Options{
		Logger:        mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Output: &buf}),
		SlowThreshold: time.Nanosecond,
	})

	if _, err := engine.Parse(strings.Repeat("1+", 200) + "1"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !strings.Contains(buf.String(), "slow parse") {
		t.Errorf("expected slow parse warning, got:\n%s", buf.String())
	}
}
