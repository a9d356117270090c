// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel names the environment variable consulted when Options.Level is
// empty.
const EnvLevel = "KICK_PRESENCE_LOG_LEVEL"

// DefaultLevel is used when neither Options.Level nor EnvLevel is set, or
// when the requested level is unknown.
const DefaultLevel = "INFO"

// DefaultFormat is the console part order used when Options.Format is empty.
const DefaultFormat = "time name level message"

// Options controls Setup.
type Options struct {
	// Level is a level name such as DEBUG, INFO, WARNING, ERROR or CRITICAL.
	Level string
	// File, when non-empty, adds a JSON lines sink appending to that path.
	File string
	// Format is a space separated part order for the console sink, built
	// from time, name, level, message and caller.
	Format string

	// Console receives human readable output. Defaults to os.Stdout.
	Console io.Writer
	// Diagnostics receives problems with the logging setup itself.
	// Defaults to os.Stderr.
	Diagnostics io.Writer
}

var parts = map[string]string{
	"time":    zerolog.TimestampFieldName,
	"name":    NameFieldName,
	"level":   zerolog.LevelFieldName,
	"message": zerolog.MessageFieldName,
	"caller":  zerolog.CallerFieldName,
}

var (
	mu       sync.Mutex
	sink     = &swapWriter{w: zerolog.LevelWriterAdapter{Writer: io.Discard}}
	fileSink io.Closer
)

// Setup configures process-wide logging and returns the root *Logger.
//
// A console sink is always installed. When opts.File is set a file sink is
// added as well; failing to open it is reported on opts.Diagnostics and the
// console sink keeps working. Every call replaces the sinks installed by the
// previous one, closing a previously opened file, so repeated calls never
// duplicate output. Loggers returned by earlier calls write through the new
// sinks.
func Setup(opts Options) *Logger {
	mu.Lock()
	defer mu.Unlock()

	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv(EnvLevel)
	}
	if levelName == "" {
		levelName = DefaultLevel
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		fmt.Fprintf(diag, "Invalid log level: %s. Using %s.\n", levelName, DefaultLevel)
		level = zerolog.InfoLevel
	}

	order, err := parseFormat(opts.Format)
	if err != nil {
		fmt.Fprintf(diag, "Invalid log format %q: %v. Using %q.\n", opts.Format, err, DefaultFormat)
		order, _ = parseFormat(DefaultFormat)
	}

	writers := []io.Writer{consoleWriter(console, order)}

	var opened io.Closer
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			fmt.Fprintf(diag, "Warning: Could not create log file %s: %v\n", opts.File, err)
		} else {
			opened = f
			writers = append(writers, f)
		}
	}

	sink.swap(zerolog.MultiLevelWriter(writers...))
	if fileSink != nil {
		_ = fileSink.Close()
	}
	fileSink = opened
	zerolog.SetGlobalLevel(level)

	base := zerolog.New(sink).With().
		Timestamp().
		Caller().
		Logger()
	root := newLogger(base, sink, RootName)
	log.Logger = root.Logger

	return root
}

// ParseLevel maps a level name to a zerolog.Level. Matching is case
// insensitive and accepts WARNING and CRITICAL as aliases of warn and fatal.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel, nil
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "INFO":
		return zerolog.InfoLevel, nil
	case "WARNING", "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

func parseFormat(format string) ([]string, error) {
	if strings.TrimSpace(format) == "" {
		format = DefaultFormat
	}

	tokens := strings.FieldsFunc(format, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-' || r == '\t'
	})

	order := make([]string, 0, len(tokens))
	for _, token := range tokens {
		part, ok := parts[strings.ToLower(token)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormatPart, token)
		}
		order = append(order, part)
	}
	if len(order) == 0 {
		return nil, ErrUnknownFormatPart
	}
	return order, nil
}

func consoleWriter(out io.Writer, order []string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		TimeFormat:    "2006-01-02 15:04:05",
		PartsOrder:    order,
		FieldsExclude: []string{NameFieldName},
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// swapWriter forwards to a replaceable zerolog.LevelWriter.
type swapWriter struct {
	mu sync.RWMutex
	w  zerolog.LevelWriter
}

func (s *swapWriter) swap(w zerolog.LevelWriter) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *swapWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.WriteLevel(level, p)
}
