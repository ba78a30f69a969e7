// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrTurnedOff is returned when a cycle is requested for a resource
	// whose synchronization has been disabled.
	ErrTurnedOff = errors.New("synchronization is turned off for resource")

	// ErrLocalInvalidContent is returned when the local resource content
	// fails its syntactic validity check. Invalid local data is never
	// merged or pushed.
	ErrLocalInvalidContent = errors.New("local content is invalid")

	// ErrIncompatible is returned when remote data carries an envelope
	// version newer than this build understands. The driver is expected to
	// disable sync for the resource until the application is updated.
	ErrIncompatible = errors.New("remote content version is incompatible")

	// ErrSyncRetriesExhausted is returned when repeated remote
	// precondition failures persist across the bounded retry loop,
	// indicating sustained contention from other writers.
	ErrSyncRetriesExhausted = errors.New("sync retries exhausted under contention")

	// ErrNoConflicts is returned by Accept when the resource is not in the
	// conflicts state.
	ErrNoConflicts = errors.New("no conflicts to resolve")
)
