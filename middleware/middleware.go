// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/prioritisation-matrix/models"
)

// HandlerFunc handles one parsed command, writing user-facing output to w
type HandlerFunc func(w io.Writer, cmd models.Command)

// WithLogging wraps a handler with command logging
func WithLogging(next HandlerFunc) HandlerFunc {
	return func(w io.Writer, cmd models.Command) {
		start := time.Now()

		slog.Debug("command started",
			"command", cmd.Name,
			"args", len(cmd.Args),
		)

		next(w, cmd)

		duration := time.Since(start)
		slog.Info("command completed",
			"command", cmd.Name,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// TextResponse writes a formatted line of output
func TextResponse(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// JSONResponse writes data as indented JSON
func JSONResponse(w io.Writer, data any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a user-visible error notice
func ErrorResponse(w io.Writer, message string) {
	TextResponse(w, "Error: %s", message)
}

// ParseCommand splits an input line into a command name and arguments.
// Blank lines report ok=false.
func ParseCommand(line string) (cmd models.Command, ok bool) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return models.Command{}, false
	}

	return models.Command{
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
		Raw:  line,
	}, true
}

// Rest returns everything after the command name with inner spacing kept
func Rest(cmd models.Command) string {
	rest := strings.TrimSpace(cmd.Raw)
	if i := strings.IndexFunc(rest, isSpace); i >= 0 {
		return strings.TrimSpace(rest[i:])
	}
	return ""
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
