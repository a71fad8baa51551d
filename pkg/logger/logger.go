// Package logger provides the structured logger used across the exchange
// server and CLI.
package logger

import (
	"context"
	"errors"

	"github.com/code19m/errx"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/identity"
)

// Logger is the logging interface used across the module.
type Logger interface {
	Debug(msg any)
	Info(msg any)
	Warn(msg any)
	Error(msg any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Warnx logs err at warn level, unpacking errx.ErrorX code, type and details.
	Warnx(err error)
	// Errorx logs err at error level, unpacking errx.ErrorX code, type and details.
	Errorx(err error)

	With(keysAndValues ...any) Logger
	// WithContext adds the calling user from the request identity, if any.
	WithContext(ctx context.Context) Logger
	Named(name string) Logger

	Sync() error
}

type logger struct {
	*zap.SugaredLogger
}

// New creates a Logger with the provided configuration.
func New(cfg Config) (Logger, error) {
	if cfg.Disable {
		return Nop(), nil
	}

	zapConfig, err := cfg.zapConfig()
	if err != nil {
		return nil, err
	}

	zl, err := zapConfig.Build()
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return &logger{zl.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

func (l *logger) errorFields(err error) []any {
	var e errx.ErrorX
	if !errors.As(err, &e) {
		return nil
	}
	return []any{
		"error_code", e.Code(),
		"error_type", e.Type().String(),
		"error_trace", e.Trace(),
		"error_fields", e.Fields(),
		"error_details", e.Details(),
	}
}

func (l *logger) Warnx(err error) {
	if err == nil {
		return
	}
	l.SugaredLogger.With(l.errorFields(err)...).Warn(err.Error())
}

func (l *logger) Errorx(err error) {
	if err == nil {
		return
	}
	l.SugaredLogger.With(l.errorFields(err)...).Error(err.Error())
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{l.SugaredLogger.With(keysAndValues...)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if id, ok := identity.Get(ctx); ok && id.UserID != "" {
		return l.With("user_id", id.UserID)
	}
	return l
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

func (l *logger) Debug(msg any) { l.SugaredLogger.Debug(msg) }
func (l *logger) Info(msg any)  { l.SugaredLogger.Info(msg) }
func (l *logger) Warn(msg any)  { l.SugaredLogger.Warn(msg) }
func (l *logger) Error(msg any) { l.SugaredLogger.Error(msg) }
