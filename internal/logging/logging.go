// Package logging configures the logrus logger shared by the CLI and server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Standard field names, so import diagnostics can be filtered uniformly.
const (
	FieldFile          = "file_path"
	FieldParser        = "parser"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldReason        = "reason"
	FieldRow           = "row"
	FieldCount         = "count"
	FieldSkipped       = "skipped"
	FieldDelimiter     = "delimiter"
	FieldDate          = "date"
	FieldOperation     = "operation"
)

// New creates a logger writing to stderr at the given level ("debug",
// "info", ...) in "text" or "json" format. An invalid level falls back to info.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// Discard returns a logger that drops everything. Used when callers pass nil.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
