// Package log provides structured logging for texunc.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with JSON and text formatters, persistent
//              context fields, correlation IDs and integration with the
//              error package (LogError picks the level from the error
//              severity). Diagnostics are written to an io.Writer chosen by
//              the caller; the CLI uses stderr so stdout carries only LaTeX.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Usage:
//
//	import mdwlog "github.com/texunc/texunc/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelInfo,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "texunc",
//	}).WithCorrelationID(runID)
//
//	logger.Info("table rendered", mdwlog.Int("rows", n))
//	logger.LogError(err)
package log
