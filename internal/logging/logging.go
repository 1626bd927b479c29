// Package logging builds the pslog loggers used by spliminal. The TUI owns
// the terminal while it runs, so the session logger writes structured lines
// to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"
)

// New returns a structured logger writing to w at the given minimum level
// (trace, debug, info or error).
func New(w io.Writer, level string) (pslog.Logger, error) {
	opts := pslog.Options{Mode: pslog.ModeStructured, NoColor: true, VerboseFields: true}
	switch strings.ToLower(level) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "info", "":
		opts.MinLevel = pslog.InfoLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return pslog.NewWithOptions(w, opts), nil
}

// Open appends to the log file at path, creating it and its directory if
// needed. Output of the standard library log package is redirected to the
// returned logger until the closer is called.
func Open(path, level string) (pslog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)
	return logger, closerFunc(func() error {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }
