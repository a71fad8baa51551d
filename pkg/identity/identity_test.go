package identity

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	claims := &jwt.RegisteredClaims{
		Subject:   "erinoverview",
		Issuer:    "exchange",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
	}

	id := FromClaims(claims)
	assert.Equal(t, "erinoverview", id.UserID)
	assert.Equal(t, "exchange", id.Issuer)
	assert.True(t, id.IssuedAt.Equal(issued))
	assert.True(t, id.ExpiresAt.Equal(issued.Add(time.Hour)))
}

func TestFromClaims_NoTimes(t *testing.T) {
	id := FromClaims(&jwt.RegisteredClaims{Subject: "peterprofile"})
	assert.Equal(t, "peterprofile", id.UserID)
	assert.True(t, id.IssuedAt.IsZero())
	assert.True(t, id.ExpiresAt.IsZero())
}

func TestIdentity_WithMethods(t *testing.T) {
	id := (&Identity{UserID: "garygeeke"}).
		WithAssetManager("am-guid").
		WithRemoteIP(net.ParseIP("10.0.0.7"))

	assert.Equal(t, "am-guid", id.AssetManagerGUID)
	assert.Equal(t, "10.0.0.7", id.RemoteIP.String())
}

func TestContext(t *testing.T) {
	_, ok := Get(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "", UserID(context.Background()))

	ctx := Set(context.Background(), &Identity{UserID: "calliequartile"})
	id, ok := Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "calliequartile", id.UserID)
	assert.Equal(t, "calliequartile", UserID(ctx))
}
