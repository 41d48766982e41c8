// Package logger holds the process-wide slog logger used by plistkit.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards everything until Init is
// called.
var L = discard()

// Options configures the logger.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Output  io.Writer  // Destination. Default: os.Stderr
	Level   slog.Level // Minimum level. Default: LevelInfo
	JSON    bool       // Emit JSON records instead of text
}

// Init replaces L according to opts.
func Init(opts Options) {
	if !opts.Enabled {
		L = discard()
		return
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(out, hopts))
		return
	}
	L = slog.New(slog.NewTextHandler(out, hopts))
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
