package events

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

var _ watermill.LoggerAdapter = (*loggerAdapter)(nil)

// loggerAdapter adapts logger.Logger to watermill.LoggerAdapter.
type loggerAdapter struct {
	base logger.Logger
}

func newLoggerAdapter(l logger.Logger) *loggerAdapter {
	return &loggerAdapter{base: l}
}

func (l *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.withFields(fields).With("error", err).Error(msg)
}

func (l *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	l.withFields(fields).Info(msg)
}

func (l *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	l.withFields(fields).Debug(msg)
}

func (l *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	l.withFields(fields).Debug(msg)
}

func (l *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{base: l.withFields(fields)}
}

func (l *loggerAdapter) withFields(fields watermill.LogFields) logger.Logger {
	if len(fields) == 0 {
		return l.base
	}
	kv := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return l.base.With(kv...)
}
