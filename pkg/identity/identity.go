package identity

import (
	"context"
	"net"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity is the authenticated caller of an exchange request.
type Identity struct {
	// Token claims
	UserID    string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Request context
	AssetManagerGUID string // X-Asset-Manager-Guid header
	RemoteIP         net.IP
}

// FromClaims creates an Identity from validated JWT claims.
func FromClaims(claims *jwt.RegisteredClaims) *Identity {
	id := &Identity{
		UserID: claims.Subject,
		Issuer: claims.Issuer,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id
}

// WithAssetManager records the asset manager the caller acts for.
func (i *Identity) WithAssetManager(guid string) *Identity {
	i.AssetManagerGUID = guid
	return i
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}

// UserID returns the calling user stored in ctx, or "" when the request is
// anonymous.
func UserID(ctx context.Context) string {
	if id, ok := Get(ctx); ok {
		return id.UserID
	}
	return ""
}
