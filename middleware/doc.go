// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides command middleware and output helpers.

# Command Logging

Wrap handlers with command logging:

	r.Handle("add", middleware.WithLogging(itemHandler.Add))

Logs command start at debug level and completion (duration_ms) at info.

# Output Helpers

Write text, JSON, and error output:

	middleware.TextResponse(w, "Added %s: %s", item.ID, item.Name)
	middleware.JSONResponse(w, state)
	middleware.ErrorResponse(w, "Maximum of 10 items allowed.")

# Parsing

Split an input line into a command:

	cmd, ok := middleware.ParseCommand("add  Task Alpha")
	// cmd.Name == "add", cmd.Args == ["Task", "Alpha"]
	name := middleware.Rest(cmd) // "Task Alpha"

Command names are case-insensitive.
*/
package middleware
