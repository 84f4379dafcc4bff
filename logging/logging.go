// Package logging sets up the zerolog logger. The terminal belongs to the UI,
// so log output goes to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var logFile = "numgrid/debug.log"

// Path returns the default log file location, creating its directory.
func Path() (string, error) {
	return xdg.StateFile(logFile)
}

// New returns a logger writing JSON lines to w at the given level.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Open creates a logger appending to path. The returned closer must be called on exit.
// If the file cannot be opened, a no-op logger is returned along with the error.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	logger.Info().Time("started", time.Now()).Msg("numgrid starting")
	return logger, f, nil
}
