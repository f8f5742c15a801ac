// Package logging defines the structured logger handed to every
// component, plus its log/slog implementation.
package logging

import "context"

// Logger takes a message and alternating key/value pairs:
//
//	log.Info(ctx, "asset created", "guid", guid, "owner", owner)
//
// Components derive their own with With("module", name).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
