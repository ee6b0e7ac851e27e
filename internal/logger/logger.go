package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates the service-wide structured logger. Records are emitted as
// JSON lines on stdout at info level and above.
func New() *slog.Logger {
	return newWithWriter(os.Stdout)
}

func newWithWriter(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
