// SPDX-License-Identifier: Apache-2.0

package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The store uses a single shared token configured at startup. The middleware
// inspects the incoming "Authorization" header, extracts the bearer token and
// compares it against the configured one in constant time.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token does not match the configured one.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(h.authToken)) != 1 {
			log.Warn().Str("func", "*Handler.auth").Msg("token mismatch")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
