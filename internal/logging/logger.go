// Package logging defines the structured-logging interface used by the bot.
// The engine, services and adapters only see Logger; the process wires the
// slog-backed implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key/value pairs, e.g.:
//
//	log.Info(ctx, "application submitted", "application_id", id, "user_id", uid)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs best-effort failures, e.g. a notification that could not be delivered.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures. Inconsistencies between stored and user-visible
	// state are logged here with severity=fatal.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key/value pairs.
	With(args ...any) Logger
}
