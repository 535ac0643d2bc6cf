// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-zombie-survival/internal/config"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

const appName = "zombie"

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogFilePath returns the per-session log file name inside dir.
func LogFilePath(dir, name string, start time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s.log", name, start.Format("20060102_150405")))
}

// Setup builds a logger writing to console, plus a log file when
// logsDir is set and Graylog when enabled. The returned closer releases
// the file and the Graylog connection.
func Setup(cfg *config.Config, console io.Writer, start time.Time) (zerolog.Logger, io.Closer, error) {
	level := ParseLevel(cfg.LogLevel)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var closers multiCloser
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339},
	}

	if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create logs dir: %w", err)
		}
		path := LogFilePath(cfg.LogsDir, appName, start)
		file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
		}
		closers = append(closers, file)
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true})
	}

	if cfg.Graylog.Enabled {
		gw, err := gelf.NewWriter(cfg.Graylog.Address)
		if err != nil {
			closers.Close()
			return zerolog.Nop(), nil, fmt.Errorf("failed to connect to graylog: %w", err)
		}
		gw.Facility = appName
		closers = append(closers, gw)
		writers = append(writers, gw)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	logger.Info().Str("loglevel", level.String()).Msg("Logging set up")
	return logger, closers, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
