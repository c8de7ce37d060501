package logger

import "log/slog"

// NewNope creates a no-op logger that discards all output.
// Library code uses this as the default when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
