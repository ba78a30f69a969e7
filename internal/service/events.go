// SPDX-License-Identifier: Apache-2.0

package service

import (
	"sync"

	"github.com/MKhiriev/go-settings-sync/models"
)

// statusEvents holds the observer registrations of one synchroniser.
// Listeners are invoked synchronously on the calling goroutine, in
// registration order, and only on actual transitions: a redundant setStatus
// fires nothing.
type statusEvents struct {
	mu                sync.Mutex
	statusListeners   []func(models.SyncStatus)
	conflictsDetected []func()
	conflictsResolved []func()
	localChange       []func()
}

func (e *statusEvents) onStatusChange(fn func(models.SyncStatus)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statusListeners = append(e.statusListeners, fn)
}

func (e *statusEvents) onConflictsDetected(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conflictsDetected = append(e.conflictsDetected, fn)
}

func (e *statusEvents) onConflictsResolved(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conflictsResolved = append(e.conflictsResolved, fn)
}

func (e *statusEvents) onLocalChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.localChange = append(e.localChange, fn)
}

func (e *statusEvents) fireStatusChange(status models.SyncStatus) {
	for _, fn := range e.snapshotStatus() {
		fn(status)
	}
}

func (e *statusEvents) fireConflictsDetected() {
	e.mu.Lock()
	listeners := append(([]func())(nil), e.conflictsDetected...)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (e *statusEvents) fireConflictsResolved() {
	e.mu.Lock()
	listeners := append(([]func())(nil), e.conflictsResolved...)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (e *statusEvents) fireLocalChange() {
	e.mu.Lock()
	listeners := append(([]func())(nil), e.localChange...)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (e *statusEvents) snapshotStatus() []func(models.SyncStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(([]func(models.SyncStatus))(nil), e.statusListeners...)
}
