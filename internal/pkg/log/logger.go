/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoding is the output format of a logger.
type Encoding = string

// Supported encodings.
const (
	Console Encoding = "console"
	JSON    Encoding = "json"
)

// DefaultEncoding may be overridden at build time with -ldflags.
var DefaultEncoding = Console //nolint:gochecknoglobals

// Log is a zap logger bound to a module whose level is controlled through SetLevel/SetSpec.
type Log struct {
	*zap.Logger
	module string
}

type options struct {
	encoding Encoding
	stdOut   zapcore.WriteSyncer
	stdErr   zapcore.WriteSyncer
	fields   []zap.Field
}

// Option configures a logger.
type Option func(o *options)

// WithStdOut sets the writer for DEBUG, INFO and WARN entries.
func WithStdOut(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdOut = w
	}
}

// WithStdErr sets the writer for ERROR, PANIC and FATAL entries.
func WithStdErr(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdErr = w
	}
}

// WithEncoding selects console or json output.
func WithEncoding(encoding Encoding) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}

// WithFields adds fields to every entry.
func WithFields(fields ...zap.Field) Option {
	return func(o *options) {
		o.fields = fields
	}
}

// New returns a logger for the given module.
func New(module string, opts ...Option) *Log {
	o := &options{
		encoding: DefaultEncoding,
		stdOut:   os.Stdout,
		stdErr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(o)
	}

	return &Log{
		Logger: newZap(module, o).With(o.fields...),
		module: module,
	}
}

// IsEnabled reports whether entries of the given level are written for this module.
func (l *Log) IsEnabled(level Level) bool {
	return levels.enabled(l.module, level)
}

func newZap(module string, o *options) *zap.Logger {
	enc := newEncoder(o.encoding)

	errorsOnly := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel && levels.enabled(module, Level(lvl))
	})

	belowError := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && levels.enabled(module, Level(lvl))
	})

	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(o.stdErr), errorsOnly),
		zapcore.NewCore(enc, zapcore.Lock(o.stdOut), belowError),
	)

	return zap.New(core, zap.AddCaller()).Named(module)
}

func newEncoder(encoding Encoding) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(encoding) {
	case JSON:
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder

		return zapcore.NewJSONEncoder(cfg)
	case Console:
		cfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(fmt.Sprintf("[%s]", name))
		}

		return zapcore.NewConsoleEncoder(cfg)
	default:
		panic("unsupported encoding " + encoding)
	}
}

// Debugc logs a DEBUG entry with the trace and span IDs found in ctx.
func (l *Log) Debugc(ctx context.Context, msg string, fields ...zap.Field) {
	l.Debug(msg, withTracing(ctx, fields)...)
}

// Infoc logs an INFO entry with the trace and span IDs found in ctx.
func (l *Log) Infoc(ctx context.Context, msg string, fields ...zap.Field) {
	l.Info(msg, withTracing(ctx, fields)...)
}

// Warnc logs a WARN entry with the trace and span IDs found in ctx.
func (l *Log) Warnc(ctx context.Context, msg string, fields ...zap.Field) {
	l.Warn(msg, withTracing(ctx, fields)...)
}

// Errorc logs an ERROR entry with the trace and span IDs found in ctx.
func (l *Log) Errorc(ctx context.Context, msg string, fields ...zap.Field) {
	l.Error(msg, withTracing(ctx, fields)...)
}

func withTracing(ctx context.Context, fields []zap.Field) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return fields
	}

	return append(fields,
		zap.String(FieldTraceID, sc.TraceID().String()),
		zap.String(FieldSpanID, sc.SpanID().String()),
	)
}
