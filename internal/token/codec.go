// Package token reads the claims embedded in LearnHub bearer tokens without
// verifying their signature. Verification belongs to the remote API; the
// portal only needs the expiry instant to manage its local sessions.
package token

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims describes the readable payload of a LearnHub token.
type Claims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// timeNow is swapped in tests.
var timeNow = time.Now

// DecodeClaims extracts the claims of a token without signature verification.
// Returns nil on any malformed input: missing segments, bad encoding, or an
// unparsable payload.
func DecodeClaims(tokenStr string) *Claims {
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil
	}
	return claims
}

// Expiry returns the token's expiry instant. The second return value is false
// when the token is undecodable or carries no exp claim.
func Expiry(tokenStr string) (time.Time, bool) {
	claims := DecodeClaims(tokenStr)
	if claims == nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// IsExpired reports whether the token may no longer be used. Unknown expiry
// counts as expired, and a token is expired at exactly its expiry instant.
func IsExpired(tokenStr string) bool {
	exp, ok := Expiry(tokenStr)
	if !ok {
		return true
	}
	return !timeNow().Before(exp)
}
