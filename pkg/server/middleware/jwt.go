package middleware

import (
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/audit"
	"github.com/doodlesbykumbi/metadata-exchange/pkg/identity"
)

// AssetManagerHeader names the asset manager the caller acts for.
const AssetManagerHeader = "X-Asset-Manager-Guid"

var tokenRegex = regexp.MustCompile(`^Bearer (.+)$`)

// JWTAuthenticator is middleware that validates HS256 bearer tokens and
// stores the caller's identity in the request context.
type JWTAuthenticator struct {
	secret []byte
	issuer string
	now    func() time.Time
	audit  func(audit.Event)
}

// NewJWTAuthenticator creates a new JWT authenticator middleware. Tokens
// must be signed with secret and, when issuer is set, issued by it.
func NewJWTAuthenticator(secret []byte, issuer string) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
		audit:  audit.Log,
	}
}

// Issue returns a signed token for userID that expires after ttl.
func (j *JWTAuthenticator) Issue(userID string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

func (j *JWTAuthenticator) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func (j *JWTAuthenticator) reject(w http.ResponseWriter, r *http.Request, message string) {
	j.audit(audit.AuthenticateEvent{
		ClientIP:     clientIP(r).String(),
		ErrorMessage: message,
	})
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(message))
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			j.reject(w, r, "Authorization missing")
			return
		}

		tokenMatches := tokenRegex.FindStringSubmatch(authHeader)
		if len(tokenMatches) != 2 {
			j.reject(w, r, "Malformed authorization header")
			return
		}

		claims, err := j.parse(tokenMatches[1])
		switch {
		case err == nil:
		case errors.Is(err, jwt.ErrTokenExpired):
			j.reject(w, r, "Token expired")
			return
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			j.reject(w, r, "Invalid signature")
			return
		default:
			j.reject(w, r, "Malformed authorization token")
			return
		}

		id := identity.FromClaims(claims).
			WithAssetManager(r.Header.Get(AssetManagerHeader)).
			WithRemoteIP(clientIP(r))
		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// clientIP returns the first X-Forwarded-For address or the peer address.
func clientIP(r *http.Request) net.IP {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := net.ParseIP(strings.TrimSpace(strings.Split(forwarded, ",")[0])); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}
