package auth

import (
	"encoding/base64"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// Token validation failures. IsValid normalizes all of them to false;
// Subject reports them to callers that need the distinction.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("token signature mismatch")
	ErrExpiredToken   = errors.New("token expired")
)

// TokenManager issues and verifies signed bearer tokens. The same secret is
// used for issuance and verification; timestamps are embedded at second
// granularity.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager decodes the Base64-encoded secret and builds a manager.
// An absent or undecodable secret is reported immediately so the process
// fails at startup rather than per-request.
func NewTokenManager(secretB64 string, ttl time.Duration) (*TokenManager, error) {
	if secretB64 == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	secret, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return nil, errors.New("auth: signing secret is not valid base64")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: secret, ttl: ttl}, nil
}

// Issue builds and signs a token whose subject is the user's email.
func (tm *TokenManager) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Subject verifies the token signature and returns the embedded subject.
func (tm *TokenManager) Subject(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrBadSignature
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpiredToken
		default:
			return "", ErrMalformedToken
		}
	}
	if !parsed.Valid {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}

// IsValid reports whether the token verifies against the shared secret,
// names the given user as its subject, and has not expired. Any parse or
// signature failure yields false, never an error.
func (tm *TokenManager) IsValid(tokenStr string, user *domain.User) bool {
	if user == nil {
		return false
	}
	subject, err := tm.Subject(tokenStr)
	if err != nil {
		return false
	}
	return subject == user.Email
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}
