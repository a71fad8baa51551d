package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/identity"
)

func observed() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &logger{zap.New(core).Sugar()}, logs
}

func TestNew(t *testing.T) {
	l, err := New(Config{Level: "debug", Encoding: EncodingJSON})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)

	l, err = New(Config{Disable: true})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestErrorx(t *testing.T) {
	l, logs := observed()

	l.Errorx(errx.New("boom", errx.WithCode("SOME_CODE")))
	l.Warnx(errors.New("plain"))
	l.Errorx(nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "SOME_CODE", entries[0].ContextMap()["error_code"])
	assert.Equal(t, "plain", entries[1].Message)
	assert.NotContains(t, entries[1].ContextMap(), "error_code")
}

func TestWithContext(t *testing.T) {
	l, logs := observed()

	ctx := identity.Set(context.Background(), &identity.Identity{UserID: "garygeeke"})
	l.WithContext(ctx).Info("hello")
	l.WithContext(context.Background()).Info("anonymous")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "garygeeke", entries[0].ContextMap()["user_id"])
	assert.NotContains(t, entries[1].ContextMap(), "user_id")
}
