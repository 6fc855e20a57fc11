package logger

import (
	"log/slog"
	"os"
)

// Init installs a JSON slog handler as the default logger.
// User-facing output goes to stdout; logs stay on stderr.
func Init() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
