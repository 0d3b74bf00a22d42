package token

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDecodeClaimsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not-a-token",
		"one.two",
		"a.!!!not-base64!!!.c",
		"a.bm90LWpzb24.c", // payload decodes but is not JSON
	}
	for _, raw := range cases {
		if claims := DecodeClaims(raw); claims != nil {
			t.Fatalf("expected nil claims for %q, got %+v", raw, claims)
		}
		if _, ok := Expiry(raw); ok {
			t.Fatalf("expected no expiry for %q", raw)
		}
		if !IsExpired(raw) {
			t.Fatalf("expected %q to count as expired", raw)
		}
	}
}

func TestDecodeClaimsReadsPayload(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, &Claims{
		Username: "reza",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	claims := DecodeClaims(raw)
	if claims == nil {
		t.Fatalf("expected claims")
	}
	if claims.Username != "reza" || claims.Role != "admin" || claims.Subject != "42" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	got, ok := Expiry(raw)
	if !ok {
		t.Fatalf("expected expiry")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry mismatch: got %v want %v", got, exp)
	}
}

func TestExpiryAbsentClaim(t *testing.T) {
	raw := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
	})
	if _, ok := Expiry(raw); ok {
		t.Fatalf("expected no expiry for token without exp")
	}
	if !IsExpired(raw) {
		t.Fatalf("token without exp must count as expired")
	}
}

func TestIsExpiredBoundary(t *testing.T) {
	exp := time.Unix(1_900_000_000, 0)
	raw := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})

	restore := timeNow
	defer func() { timeNow = restore }()

	timeNow = func() time.Time { return exp.Add(-time.Second) }
	if IsExpired(raw) {
		t.Fatalf("token must be valid before its expiry")
	}

	timeNow = func() time.Time { return exp }
	if !IsExpired(raw) {
		t.Fatalf("token must be expired at exactly its expiry instant")
	}

	timeNow = func() time.Time { return exp.Add(time.Second) }
	if !IsExpired(raw) {
		t.Fatalf("token must be expired after its expiry")
	}
}
