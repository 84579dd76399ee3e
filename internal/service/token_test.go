package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndVerify(t *testing.T) {
	svc := NewTokenService("testsecret", 30*time.Minute)
	require.Equal(t, 30*time.Minute, svc.TTL())

	tok, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	sub, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", sub)
}

func TestTokenVerifyFailures(t *testing.T) {
	svc := NewTokenService("testsecret", time.Minute)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("othersecret", time.Minute)
		tok, err := other.Issue("alice@example.com")
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenService("testsecret", -time.Minute)
		tok, err := expired.Issue("alice@example.com")
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty subject", func(t *testing.T) {
		tok, err := svc.Issue("")
		require.NoError(t, err)
		_, err = svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
