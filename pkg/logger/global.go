package logger

import (
	"context"
	"sync"
	"sync/atomic"
)

var (
	global   atomic.Value // Logger
	initOnce sync.Once
)

// SetGlobal replaces the process-wide logger. Call it once at start up,
// before serving requests.
func SetGlobal(l Logger) {
	initOnce.Do(func() {})
	global.Store(holder{l})
}

// Configure builds a logger from cfg and installs it globally.
func Configure(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	SetGlobal(l)
	return nil
}

// L returns the process-wide logger, creating a console logger at info
// level on first use.
func L() Logger {
	if h, ok := global.Load().(holder); ok {
		return h.Logger
	}
	initOnce.Do(func() {
		l, err := New(Config{Level: "info", Encoding: EncodingConsole})
		if err != nil {
			l = Nop()
		}
		global.Store(holder{l})
	})
	return global.Load().(holder).Logger
}

// holder keeps atomic.Value happy with different concrete Logger types.
type holder struct {
	Logger
}

func Debugf(format string, args ...any) { L().Debugf(format, args...) }
func Infof(format string, args ...any)  { L().Infof(format, args...) }
func Warnf(format string, args ...any)  { L().Warnf(format, args...) }
func Errorf(format string, args ...any) { L().Errorf(format, args...) }

func Warnx(err error)  { L().Warnx(err) }
func Errorx(err error) { L().Errorx(err) }

func Named(name string) Logger                 { return L().Named(name) }
func WithContext(ctx context.Context) Logger { return L().WithContext(ctx) }

func Sync() error {
	return L().Sync()
}
