package observability

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// The TUI owns stdout, so diagnostics go to a JSON log file under the data
// directory. Until Init is called (or if it fails) everything is discarded.
var logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Init points the global logger at a log file. Best effort: on failure the
// logger stays on the discard handler and the app runs without diagnostics.
func Init(dataDir string) {
	if dataDir == "" {
		return
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "dot.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	logger = slog.New(slog.NewJSONHandler(f, nil))
}

func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}
