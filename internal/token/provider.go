// SPDX-License-Identifier: Apache-2.0

// Package token supplies bearer tokens for the remote store adapter.
//
// The store protocol authenticates every request with a bearer token issued
// by an external account service. This package does not talk to that service:
// it holds the token the driver obtained, inspects its JWT claims to detect
// expiry before a doomed request is sent, and exposes an invalidation hook so
// the driver can prompt re-authentication after a 401.
package token

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

var (
	// ErrNoToken is returned when no token has been set on the provider.
	ErrNoToken = errors.New("no auth token available")

	// ErrSessionExpired is returned when the held token's expiry claim is in
	// the past. The driver is expected to re-authenticate the user.
	ErrSessionExpired = errors.New("auth session expired")
)

//go:generate mockgen -source=provider.go -destination=../mock/token_provider_mock.go -package=mock

// Provider supplies the bearer token attached to every remote store request.
type Provider interface {
	// Token returns the current bearer token. It returns ErrNoToken when no
	// token is held and ErrSessionExpired when the token's JWT expiry claim
	// has passed.
	Token(ctx context.Context) (string, error)

	// Invalidate discards the held token. The adapter calls it when the
	// server rejects the token with 401 so that subsequent cycles fail fast
	// with ErrNoToken instead of hammering the store.
	Invalidate()
}

type jwtProvider struct {
	logger *logger.Logger

	mu           sync.RWMutex
	token        string
	onInvalidate func()
}

// NewProvider creates a Provider holding token. onInvalidate, when non-nil,
// is called once each time the token is invalidated (by the adapter after a
// 401 or by the driver).
func NewProvider(token string, onInvalidate func(), log *logger.Logger) Provider {
	return &jwtProvider{
		token:        strings.TrimSpace(token),
		onInvalidate: onInvalidate,
		logger:       log,
	}
}

// Token implements [Provider]. Expiry is read from the token's "exp" claim
// without signature verification: the server remains the authority, this is
// only an early exit for clearly stale sessions.
func (p *jwtProvider) Token(_ context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.token == "" {
		return "", ErrNoToken
	}

	if expired, err := isExpired(p.token); err == nil && expired {
		return "", ErrSessionExpired
	}

	return p.token, nil
}

// Invalidate implements [Provider].
func (p *jwtProvider) Invalidate() {
	p.mu.Lock()
	hadToken := p.token != ""
	p.token = ""
	callback := p.onInvalidate
	p.mu.Unlock()

	if hadToken {
		p.logger.Warn().Str("func", "jwtProvider.Invalidate").Msg("auth token invalidated")
		if callback != nil {
			callback()
		}
	}
}

func isExpired(tokenString string) (bool, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		// Opaque (non-JWT) tokens are passed through untouched.
		return false, err
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}

	return exp.Before(time.Now()), nil
}
