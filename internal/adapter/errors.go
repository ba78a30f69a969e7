// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401. The adapter invalidates the token
	// provider before returning it.
	ErrUnauthorized = errors.New("remote store unauthorized")

	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("remote store forbidden")

	// ErrPreconditionFailed maps HTTP 412: another writer stored a new
	// version since the ref used as If-Match was read.
	ErrPreconditionFailed = errors.New("remote precondition failed")

	// ErrTooLarge maps HTTP 413.
	ErrTooLarge = errors.New("remote content too large")

	// ErrConnectionRefused covers transport-level failures where no HTTP
	// response was received at all.
	ErrConnectionRefused = errors.New("remote store connection refused")

	// ErrNoRef signals a 2xx response missing the ETag header; without a
	// ref the optimistic-concurrency protocol cannot continue.
	ErrNoRef = errors.New("remote response carries no ref")
)
