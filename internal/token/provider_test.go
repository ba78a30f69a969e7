// SPDX-License-Identifier: Apache-2.0

package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestProvider_TokenEmpty(t *testing.T) {
	provider := NewProvider("", nil, logger.Nop())

	_, err := provider.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestProvider_OpaqueTokenPassesThrough(t *testing.T) {
	provider := NewProvider("not-a-jwt-token", nil, logger.Nop())

	got, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt-token", got)
}

func TestProvider_ValidJWT(t *testing.T) {
	raw := signedToken(t, time.Now().Add(time.Hour))
	provider := NewProvider(raw, nil, logger.Nop())

	got, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestProvider_ExpiredJWT(t *testing.T) {
	raw := signedToken(t, time.Now().Add(-time.Hour))
	provider := NewProvider(raw, nil, logger.Nop())

	_, err := provider.Token(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestProvider_InvalidateDropsTokenAndFiresCallback(t *testing.T) {
	fired := 0
	provider := NewProvider("some-token", func() { fired++ }, logger.Nop())

	provider.Invalidate()
	assert.Equal(t, 1, fired)

	_, err := provider.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)

	// повторная инвалидация без токена коллбек не вызывает
	provider.Invalidate()
	assert.Equal(t, 1, fired)
}
