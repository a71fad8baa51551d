package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/identity"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestAuthenticator(events *[]audit.Event) *JWTAuthenticator {
	auth := NewJWTAuthenticator(testSecret, "exchange")
	auth.audit = func(e audit.Event) {
		*events = append(*events, e)
	}
	return auth
}

func rejectingHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})
}

func TestNewJWTAuthenticator(t *testing.T) {
	auth := NewJWTAuthenticator(testSecret, "exchange")
	assert.NotNil(t, auth)
	assert.Equal(t, "exchange", auth.issuer)
}

func TestMiddleware_MissingAuthorization(t *testing.T) {
	var events []audit.Event
	handler := newTestAuthenticator(&events).Middleware(rejectingHandler(t))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization missing", rec.Body.String())
	require.Len(t, events, 1)
	assert.Equal(t, "Authorization missing", events[0].(audit.AuthenticateEvent).ErrorMessage)
}

func TestMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	var events []audit.Event
	handler := newTestAuthenticator(&events).Middleware(rejectingHandler(t))

	tests := []struct {
		name   string
		header string
	}{
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"random string", "something random"},
		{"empty bearer", "Bearer "},
		{"token scheme", `Token token="abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Malformed authorization header", rec.Body.String())
		})
	}
}

func TestMiddleware_MalformedToken(t *testing.T) {
	var events []audit.Event
	handler := newTestAuthenticator(&events).Middleware(rejectingHandler(t))

	tests := []struct {
		name  string
		token string
	}{
		{"not a jwt", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Malformed authorization token", rec.Body.String())
		})
	}
}

func TestMiddleware_MissingSubject(t *testing.T) {
	var events []audit.Event
	auth := newTestAuthenticator(&events)
	handler := auth.Middleware(rejectingHandler(t))

	token, err := auth.Issue("", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Malformed authorization token", rec.Body.String())
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	var events []audit.Event
	auth := newTestAuthenticator(&events)
	handler := auth.Middleware(rejectingHandler(t))

	auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := auth.Issue("garygeeke", time.Hour)
	require.NoError(t, err)
	auth.now = time.Now

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expired", rec.Body.String())
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	var events []audit.Event
	handler := newTestAuthenticator(&events).Middleware(rejectingHandler(t))

	other := NewJWTAuthenticator([]byte("another-secret-another-secret-xx"), "exchange")
	forged, err := other.Issue("garygeeke", time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "garygeeke",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{"other secret": forged, "alg none": unsigned} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Invalid signature", rec.Body.String())
		})
	}
}

func TestMiddleware_WrongIssuer(t *testing.T) {
	var events []audit.Event
	handler := newTestAuthenticator(&events).Middleware(rejectingHandler(t))

	other := NewJWTAuthenticator(testSecret, "someone-else")
	token, err := other.Issue("garygeeke", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	var events []audit.Event
	auth := newTestAuthenticator(&events)

	var got *identity.Identity
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusNoContent)
	}))

	token, err := auth.Issue("garygeeke", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "10.0.0.7:41234"
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(AssetManagerHeader, "am-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "garygeeke", got.UserID)
	assert.Equal(t, "exchange", got.Issuer)
	assert.Equal(t, "am-1", got.AssetManagerGUID)
	assert.Equal(t, "10.0.0.7", got.RemoteIP.String())
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
	assert.Empty(t, events)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req).String())

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req).String())
}
