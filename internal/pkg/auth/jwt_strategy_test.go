package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestNewJWTStrategyDefaults(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.issuer != issuer {
		t.Fatalf("unexpected issuer: %s", strategy.issuer)
	}
}

func TestJWTStrategyIssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestJWTStrategyRejectsInvalidTokens(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	valid, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	otherSecret, _ := NewJWTStrategy("other", Options{}).IssueToken(7)
	foreign := NewJWTStrategy("secret", Options{})
	foreign.issuer = "someone-else"
	otherIssuer, _ := foreign.IssueToken(7)

	expiredStrategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	expiredStrategy.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _ := expiredStrategy.IssueToken(7)

	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "7",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "abc",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "7",
		Issuer:  issuer,
	}).SignedString([]byte("secret"))

	cases := map[string]string{
		"garbage":       "not-a-token",
		"tampered":      valid + "x",
		"other secret":  otherSecret,
		"other issuer":  otherIssuer,
		"expired":       expired,
		"none alg":      noneAlg,
		"bad subject":   badSubject,
		"no expiration": noExpiry,
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
