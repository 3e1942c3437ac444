package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fuse-labs/fuse/internal/config"
)

// newRunLogger builds the logger for one scaffold run: a text handler on
// stderr, optionally teeing into the file named by log.file. The logger is
// scoped to the run; nothing process-wide is reconfigured.
func newRunLogger() (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}

	if path := config.Get(config.KeyLogFile); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { f.Close() }
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(config.Get(config.KeyLogLevel)),
	})
	return slog.New(handler), closeLog, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
