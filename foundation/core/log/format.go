// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages: JSON for machine
//              consumption, text and logfmt for plain terminals, and a
//              lipgloss-styled console format for interactive use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with multiple output formats

package log

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored console logs
	FormatConsole

	// FormatLogfmt outputs logfmt structured logs (key=value pairs)
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for a format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as single human-readable lines
type TextFormatter struct {
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "2006-01-02 15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("] ")
	if entry.Logger != "" {
		b.WriteString(entry.Logger)
		b.WriteString(": ")
	}
	b.WriteString(entry.Message)
	writeTextFields(&b, entry)
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// ConsoleFormatter formats log entries with lipgloss level colors
type ConsoleFormatter struct {
	TimestampFormat string
	levelStyles     map[Level]lipgloss.Style
	dimStyle        lipgloss.Style
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	bold := lipgloss.NewStyle().Bold(true)
	return &ConsoleFormatter{
		TimestampFormat: "15:04:05",
		levelStyles: map[Level]lipgloss.Style{
			LevelTrace: bold.Foreground(lipgloss.Color("#94A3B8")),
			LevelDebug: bold.Foreground(lipgloss.Color("#06B6D4")),
			LevelInfo:  bold.Foreground(lipgloss.Color("#10B981")),
			LevelWarn:  bold.Foreground(lipgloss.Color("#F59E0B")),
			LevelError: bold.Foreground(lipgloss.Color("#EF4444")),
			LevelFatal: bold.Foreground(lipgloss.Color("#DC2626")),
			LevelAudit: bold.Foreground(lipgloss.Color("#8B5CF6")),
		},
		dimStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")),
	}
}

// Format formats a log entry for an interactive console
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(f.dimStyle.Render(entry.Timestamp.Format(f.TimestampFormat)))
	b.WriteByte(' ')
	b.WriteString(f.levelStyles[entry.Level].Render(entry.Level.ShortString()))
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	var rest strings.Builder
	writeTextFields(&rest, entry)
	if rest.Len() > 0 {
		b.WriteString(f.dimStyle.Render(rest.String()))
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// LogfmtFormatter formats log entries as logfmt key=value pairs
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as logfmt
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	writePair(&b, "ts", entry.Timestamp.Format(f.TimestampFormat))
	writePair(&b, "level", entry.Level.String())
	writePair(&b, "msg", entry.Message)
	if entry.Logger != "" {
		writePair(&b, "logger", entry.Logger)
	}
	if entry.RequestID != "" {
		writePair(&b, "request_id", entry.RequestID)
	}
	if entry.Error != nil {
		writePair(&b, "error", entry.Error.Error())
	}
	for _, k := range entry.Fields.SortedKeys() {
		writePair(&b, k, fmt.Sprint(entry.Fields[k]))
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// writeTextFields appends request id, fields and error as " key=value"
func writeTextFields(b *strings.Builder, entry *Entry) {
	if entry.RequestID != "" {
		fmt.Fprintf(b, " request_id=%s", entry.RequestID)
	}
	for _, k := range entry.Fields.SortedKeys() {
		fmt.Fprintf(b, " %s=%v", k, entry.Fields[k])
	}
	if entry.Error != nil {
		fmt.Fprintf(b, " error=%q", entry.Error.Error())
	}
}

func writePair(b *strings.Builder, key, value string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(key)
	b.WriteByte('=')
	if value == "" || strings.ContainsAny(value, " =\"\t\n") {
		b.WriteString(strconv.Quote(value))
		return
	}
	b.WriteString(value)
}
