// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kick Presence contributors

// Package logger provides a thin wrapper around zerolog.Logger together with
// the one-shot logging bootstrap used by kick-presence.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer, derive component loggers
// with Named and carry them through a context with WithContext/FromContext.
package logger

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NameFieldName is the field carrying the dotted component name of a logger.
const NameFieldName = "logger"

// RootName is the component name of the logger returned by Setup.
const RootName = "kick_presence"

// noisy lists component names whose minimum level is raised to Warn.
var noisy = map[string]zerolog.Level{
	"resty":   zerolog.WarnLevel,
	"http":    zerolog.WarnLevel,
	"discord": zerolog.WarnLevel,
	"grpc":    zerolog.WarnLevel,
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// out is the writer below the name injection; nil when unknown.
	out  io.Writer
	name string
}

type ctxKey struct{}

func newLogger(zl zerolog.Logger, out io.Writer, name string) *Logger {
	if name != "" && out != nil {
		zl = zl.Output(newNameWriter(name, out))
	}
	return &Logger{Logger: zl, out: out, name: name}
}

// NewConsole returns a human readable *Logger writing to w. It does not touch
// the process-wide configuration and is used for diagnostics emitted before
// Setup runs.
func NewConsole(w io.Writer) *Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	base := zerolog.New(cw).With().
		Timestamp().
		Logger()
	return newLogger(base, cw, "")
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return newLogger(zerolog.Nop(), io.Discard, "")
}

// Name returns the dotted component name of l.
func (l *Logger) Name() string {
	return l.name
}

// Named returns a child *Logger for the given component. The child carries a
// "logger" field of the form "<parent>.<name>" and keeps the parent's fields
// and level. A logger whose name contains a known noisy component anywhere
// in its path only emits Warn and above.
func (l *Logger) Named(name string) *Logger {
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}

	var child *Logger
	if l.out != nil {
		child = newLogger(l.Logger, l.out, full)
	} else {
		// the writer of a foreign zerolog logger cannot be recovered
		zl := l.With().Str(NameFieldName, full).Logger()
		child = &Logger{Logger: zl, name: full}
	}

	if floor, ok := noisyFloor(full); ok && child.GetLevel() < floor {
		child.Logger = child.Level(floor)
	}
	return child
}

func noisyFloor(full string) (zerolog.Level, bool) {
	for _, segment := range strings.Split(full, ".") {
		if floor, ok := noisy[segment]; ok {
			return floor, true
		}
	}
	return zerolog.NoLevel, false
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger(), out: l.out, name: l.name}
}

// WithContext returns a copy of ctx carrying l. The embedded zerolog.Logger is
// attached as well so zerolog.Ctx and log.Ctx callers observe it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	ctx = l.Logger.WithContext(ctx)
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the *Logger attached to ctx by WithContext.
//
// Without one it falls back to the zerolog logger stored by zerolog's own
// WithContext, and then to zerolog's context default, so this function never
// returns nil.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return newLogger(*log.Ctx(ctx), nil, "")
}

// nameWriter prefixes every JSON event with the "logger" field. Keeping the
// name out of the zerolog context lets nested loggers replace it instead of
// repeating the key.
type nameWriter struct {
	prefix []byte
	w      zerolog.LevelWriter
}

func newNameWriter(name string, w io.Writer) nameWriter {
	quoted, _ := json.Marshal(name)

	prefix := make([]byte, 0, len(NameFieldName)+len(quoted)+5)
	prefix = append(prefix, `{"`+NameFieldName+`":`...)
	prefix = append(prefix, quoted...)
	prefix = append(prefix, ',')

	lw, ok := w.(zerolog.LevelWriter)
	if !ok {
		lw = zerolog.LevelWriterAdapter{Writer: w}
	}
	return nameWriter{prefix: prefix, w: lw}
}

func (n nameWriter) inject(p []byte) []byte {
	if len(p) < 2 || p[0] != '{' {
		return p
	}
	out := make([]byte, 0, len(n.prefix)+len(p))
	out = append(out, n.prefix...)
	if p[1] == '}' {
		out = out[:len(out)-1] // empty event, no separator
	}
	return append(out, p[1:]...)
}

func (n nameWriter) Write(p []byte) (int, error) {
	if _, err := n.w.Write(n.inject(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (n nameWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if _, err := n.w.WriteLevel(level, n.inject(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	zerolog.DefaultContextLogger = &log.Logger
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
