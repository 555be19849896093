// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// staticTokenProvider hands out one externally supplied bearer token. The
// token can be swapped at runtime (e.g. after the hosting application
// refreshes its credential).
type staticTokenProvider struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenProvider returns a [TokenProvider] serving the given token.
// An empty token is allowed at construction; requests made before SetToken
// fail with [ErrUnauthorized].
func NewStaticTokenProvider(token string) *staticTokenProvider {
	return &staticTokenProvider{token: strings.TrimSpace(token)}
}

func (p *staticTokenProvider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = strings.TrimSpace(token)
}

// Token implements [TokenProvider]. Expiry is pre-checked locally from the
// JWT claims so an obviously dead credential fails before any network I/O.
func (p *staticTokenProvider) Token(_ context.Context) (string, error) {
	p.mu.RLock()
	token := p.token
	p.mu.RUnlock()

	if token == "" {
		return "", fmt.Errorf("%w: no token configured", ErrUnauthorized)
	}
	if err := checkTokenExpiry(token); err != nil {
		return "", err
	}

	return token, nil
}

// checkTokenExpiry inspects the token's exp claim without verifying the
// signature; verification is the server's job. Tokens that do not parse as
// JWT are passed through untouched (opaque tokens are legal).
func checkTokenExpiry(token string) error {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return fmt.Errorf("%w: token expired at %s", ErrUnauthorized, exp.Format(time.RFC3339))
	}

	return nil
}
