// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStaticTokenProvider_EmptyToken(t *testing.T) {
	p := NewStaticTokenProvider("")
	_, err := p.Token(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStaticTokenProvider_OpaqueTokenPassesThrough(t *testing.T) {
	p := NewStaticTokenProvider("opaque-token-value")
	token, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token-value", token)
}

func TestStaticTokenProvider_ValidJWT(t *testing.T) {
	raw := signedToken(t, time.Now().Add(time.Hour))
	p := NewStaticTokenProvider(raw)

	token, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, token)
}

func TestStaticTokenProvider_ExpiredJWT(t *testing.T) {
	p := NewStaticTokenProvider(signedToken(t, time.Now().Add(-time.Hour)))

	_, err := p.Token(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStaticTokenProvider_SetTokenReplaces(t *testing.T) {
	p := NewStaticTokenProvider("")
	p.SetToken("fresh-token")

	token, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}
