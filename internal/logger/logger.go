// Package logger configures the process-wide leveled logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/labstack/gommon/log"
)

const textHeader = "${time_rfc3339} ${level} ${prefix} ${short_file}:${line}"

// Setup builds a logger from cfg. The returned cleanup closes the log file, if any.
func Setup(prefix string, cfg config.LogConfig) (*log.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	l := log.New(prefix)
	l.SetLevel(level)
	l.DisableColor()
	if !strings.EqualFold(cfg.Format, "json") {
		l.SetHeader(textHeader)
	}

	cleanup := func() error { return nil }
	if cfg.Path == "" {
		l.SetOutput(os.Stdout)
		return l, cleanup, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	l.SetOutput(f)
	return l, f.Close, nil
}

func ParseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	l.SetLevel(log.OFF)
	return l
}
