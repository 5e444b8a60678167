// Package log provides structured logging for summa.
//
// Package: log
// Title: summa Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              request IDs, JSON/text/logfmt/console formatters and timers.
//              Loggers are immutable: With* methods return copies.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Name:   "summa",
//	})
//	logger.WithRequestID(id).Debug("lexed input", mdwlog.Fields{"tokens": 5})
package log
