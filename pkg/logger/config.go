package logger

import (
	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	timeKey    = "time"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// Encoding is json for log shippers or console for humans.
	Encoding string `yaml:"encoding" json:"encoding"`

	// Disable creates a no-op logger.
	Disable bool `yaml:"disable" json:"disable"`
}

func (c Config) zapConfig() (*zap.Config, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errx.Wrap(err)
	}

	encoding := c.Encoding
	if encoding == "" {
		encoding = EncodingConsole
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		TimeKey:        timeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if encoding == EncodingConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return &zap.Config{
		Level:            level,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
	}, nil
}
