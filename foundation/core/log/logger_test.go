// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formatters,
//              error logging and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/summa/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")
	logger.Audit("always")

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %s", len(lines), buf.String())
	}
	if lines[2]["level"] != "audit" {
		t.Errorf("last level = %v, want audit", lines[2]["level"])
	}
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelTrace, FormatJSON)
	logger := base.WithField("component", "lexer").WithRequestID("req-42")

	logger.Info("lexed", Fields{"tokens": 3})
	base.Info("plain")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["component"] != "lexer" || lines[0]["request_id"] != "req-42" {
		t.Errorf("context missing: %v", lines[0])
	}
	if lines[0]["tokens"] != float64(3) {
		t.Errorf("tokens = %v", lines[0]["tokens"])
	}
	if _, ok := lines[1]["component"]; ok {
		t.Error("WithField must not modify the parent logger")
	}
	if lines[1]["logger"] != "test" {
		t.Errorf("logger = %v", lines[1]["logger"])
	}
}

func TestLogger_NameAndFields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelTrace, FormatJSON)
	logger := base.WithName("summa-repl").WithFields(Fields{"component": "repl", "command": "repl"})

	logger.Info("started")
	base.Info("plain")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["logger"] != "summa-repl" {
		t.Errorf("logger = %v, want summa-repl", lines[0]["logger"])
	}
	if lines[0]["component"] != "repl" || lines[0]["command"] != "repl" {
		t.Errorf("fields missing: %v", lines[0])
	}
	if lines[1]["logger"] != "test" {
		t.Errorf("WithName must not modify the parent logger: %v", lines[1]["logger"])
	}
	if _, ok := lines[1]["command"]; ok {
		t.Error("WithFields must not modify the parent logger")
	}
}

func TestLogger_WithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace, FormatJSON)

	logger.WarnWithErr("locale not available", errors.New("no catalog"), Fields{"locale": "fr"})
	logger.ErrorWithErr("repl terminated", errors.New("no tty"))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[0]["error"] != "no catalog" || lines[0]["locale"] != "fr" {
		t.Errorf("warn line = %v", lines[0])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "no tty" {
		t.Errorf("error line = %v", lines[1])
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("no parse").WithCode(mdwerror.CodeNoParse), "info"},
		{"high severity", mdwerror.New("bad char").WithCode(mdwerror.CodeLexError), "error"},
		{"medium severity", mdwerror.New("odd"), "warn"},
		{"plain error", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogger_LogErrorDetails(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace, FormatJSON)

	logger.LogError(mdwerror.New("incomplete").
		WithCode(mdwerror.CodeIncompleteParse).
		WithDetail("consumed", 1).
		WithRequestID("r1"))

	line := decodeLines(t, &buf)[0]
	if line["error_code"] != "INCOMPLETE_PARSE" {
		t.Errorf("error_code = %v", line["error_code"])
	}
	if line["error_consumed"] != float64(1) {
		t.Errorf("error_consumed = %v", line["error_consumed"])
	}
	if line["request_id"] != "r1" {
		t.Errorf("request_id = %v", line["request_id"])
	}

	logger.LogError(nil)
	if n := len(decodeLines(t, &buf)); n != 1 {
		t.Errorf("LogError(nil) wrote output, lines = %d", n)
	}
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{FormatText, []string{"[INF]", "test: parsed", "terms=2"}},
		{FormatLogfmt, []string{"level=info", "msg=parsed", "terms=2", "logger=test"}},
		{FormatConsole, []string{"INF", "parsed", "terms=2"}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, LevelInfo, tt.format)
			logger.Info("parsed", Fields{"terms": 2})

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
		})
	}
}

func TestLogfmtQuoting(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatLogfmt)
	logger.Info("two words", Fields{"input": "1 + 2"})

	out := buf.String()
	if !strings.Contains(out, `msg="two words"`) || !strings.Contains(out, `input="1 + 2"`) {
		t.Errorf("values with spaces must be quoted: %q", out)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if lvl, err := ParseLevel("WARNING"); err != nil || lvl != LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
	if f, err := ParseFormat("logfmt"); err != nil || f != FormatLogfmt {
		t.Errorf("ParseFormat(logfmt) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("tokens", 3)
	if !timer.IsRunning() {
		t.Error("timer should be running")
	}
	timer.Stop()
	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}

	failed := logger.StartTimer("lex")
	failed.StopWithError(errors.New("bad"))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["message"] != "parse completed" || lines[0]["tokens"] != float64(3) {
		t.Errorf("completion line = %v", lines[0])
	}
	if _, ok := lines[0]["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
	if lines[1]["message"] != "lex failed" || lines[1]["error"] != "bad" {
		t.Errorf("failure line = %v", lines[1])
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("nop logger should not enable fatal")
	}
	logger.Error("ignored")
}
