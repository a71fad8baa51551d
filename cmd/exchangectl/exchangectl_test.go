package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/identity"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/loader"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/server/middleware"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	for _, arg := range []string{"0", "-1", "three"} {
		_, err := parseSteps([]string{arg})
		assert.Error(t, err, arg)
	}
}

func TestTokenSecret(t *testing.T) {
	t.Setenv(tokenSecretEnv, "")
	_, err := tokenSecret()
	assert.Error(t, err)

	t.Setenv(tokenSecretEnv, "short")
	_, err = tokenSecret()
	assert.Error(t, err)

	t.Setenv(tokenSecretEnv, "0123456789abcdef0123456789abcdef")
	secret, err := tokenSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 32)
}

func TestIssueToken(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")

	_, err := issueToken(secret, "exchange", "", time.Hour)
	assert.Error(t, err)
	_, err = issueToken(secret, "exchange", "garygeeke", 0)
	assert.Error(t, err)

	token, err := issueToken(secret, "exchange", "garygeeke", time.Hour)
	require.NoError(t, err)

	audit.SetEnabled(false)
	var userID string
	handler := middleware.NewJWTAuthenticator(secret, "exchange").Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = identity.UserID(r.Context())
	}))
	req := httptest.NewRequest("GET", "/glossaries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "garygeeke", userID)
}

func TestIsDocumentChange(t *testing.T) {
	file := filepath.Join("run", "exchange", "crm.yml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: file, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: file, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: file, Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: file, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join("run", "exchange", "erp.yml"), Op: fsnotify.Write}, false},
		{"unclean path", fsnotify.Event{Name: "run/exchange/../exchange/crm.yml", Op: fsnotify.Write}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDocumentChange(tt.event, file))
		})
	}
}

func TestWaitForServer(t *testing.T) {
	ready := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ready.Close()
	assert.NoError(t, waitForServer(ready.URL+"/health", 3, time.Millisecond))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()
	assert.Error(t, waitForServer(down.URL+"/health", 2, time.Millisecond))
}

func TestImportFile_DryRun(t *testing.T) {
	audit.SetEnabled(false)

	path := filepath.Join(t.TempDir(), "crm.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
assetManager: {qualifiedName: crm}
dataAssets:
  - externalIdentifier: tbl-customers
    properties: {qualifiedName: crm.customers}
`), 0o600))

	l := loader.NewLoader(nil, nil, nil, "garygeeke").WithDryRun(true)
	result, err := importFile(context.Background(), l, "garygeeke", path)
	require.NoError(t, err)
	assert.Empty(t, result.Created)

	_, err = importFile(context.Background(), l, "garygeeke", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestPrintMessages(t *testing.T) {
	messages := []audit.Message{{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Msgid:     "import",
		Message:   "erinoverview imported sales.yaml (4 created, 0 updated)",
	}}

	var text bytes.Buffer
	require.NoError(t, printMessages(&text, messages, "text"))
	assert.Equal(t, "2026-03-01T12:00:00Z import   erinoverview imported sales.yaml (4 created, 0 updated)\n", text.String())

	var empty bytes.Buffer
	require.NoError(t, printMessages(&empty, nil, "json"))
	assert.Equal(t, "[]\n", empty.String())

	assert.Error(t, printMessages(&text, messages, "xml"))
}
