// SPDX-License-Identifier: Apache-2.0

// Package service contains the synchroniser engine core and the services
// built around it: the per-resource synchronisers, the periodic sync job
// driving them, and the server-side resource service backing the store
// handlers.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Synchroniser keeps one user-data resource consistent between its local
// file and its remote-stored copy. Instances are independent: each resource
// category gets its own Synchroniser with its own checkpoint and state.
//
// Callers must serialize calls to the same Synchroniser; no ordering is
// guaranteed between concurrently issued cycles.
type Synchroniser interface {
	// Key returns the resource category this instance manages.
	Key() models.ResourceKey

	// Status returns the current engine state.
	Status() models.SyncStatus

	// SetEnabled turns synchronization for the resource on or off.
	// Disabling cancels any in-flight cycle.
	SetEnabled(enabled bool)

	// Sync runs one full synchronization cycle: fetch remote and local
	// state, reconcile against the last-sync checkpoint, and either apply
	// the result, surface conflicts, or do nothing. It is a no-op while a
	// cycle is in flight or conflicts are pending, and returns ErrTurnedOff
	// when the resource is disabled.
	Sync(ctx context.Context) error

	// Pull force-replaces local state with the current remote content and
	// updates the checkpoint. No-op when nothing is stored remotely.
	Pull(ctx context.Context) error

	// Push force-replaces remote state with the current local content and
	// updates the checkpoint. No-op when no local content exists.
	Push(ctx context.Context) error

	// Accept resolves pending conflicts with the user's content: the
	// resolution is applied to both sides and the engine returns to idle.
	// Returns ErrNoConflicts outside the conflicts state.
	Accept(ctx context.Context, content string) error

	// Stop cancels any in-flight cycle, discards the staged preview, and
	// forces the engine back to idle.
	Stop(ctx context.Context) error

	// HandleLocalChange reacts to an external change of the local file.
	// While conflicts are pending the cycle is re-run against the
	// previously fetched remote state (no refetch, so the conflict is not
	// masked); otherwise a local-change notification is emitted.
	HandleLocalChange(ctx context.Context) error

	// OnStatusChange registers fn to be called on every actual status
	// transition.
	OnStatusChange(fn func(models.SyncStatus))

	// OnConflictsDetected registers fn to be called when a cycle ends in
	// the conflicts state.
	OnConflictsDetected(fn func())

	// OnConflictsResolved registers fn to be called when the engine leaves
	// the conflicts state.
	OnConflictsResolved(fn func())

	// OnLocalChange registers fn to be called when the local file changes
	// outside a conflict, for drivers that auto-trigger sync.
	OnLocalChange(fn func())
}

// SyncJob periodically drives a set of synchronisers.
type SyncJob interface {
	// Start launches the background loop syncing every resource each
	// interval. A non-positive interval falls back to the default.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and waits for it to exit.
	Stop()
}
