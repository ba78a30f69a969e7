// SPDX-License-Identifier: Apache-2.0

// Package store implements all durable state of the application: the
// client-side last-sync checkpoints, backup snapshots, staged previews, and
// guarded resource files, plus the server-side SQLite resource store.
//
// Client-side state lives under a single data directory:
//
//	<dataDir>/lastSync<Key>.json     last-sync checkpoint per resource
//	<dataDir>/<key>.json             the synchronized resource file itself
//	<dataDir>/<key>.preview.json     staged merge candidate (ephemeral)
//	<dataDir>/backups/<key>/...      write-once timestamped snapshots
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CheckpointStore persists the last-sync checkpoint of one resource: the
// (ref, syncData) pair both sides last agreed on. The checkpoint is the
// common ancestor for three-way merges and the basis for deciding whether
// either side has forwarded since the last sync.
type CheckpointStore interface {
	// Get loads and parses the checkpoint. A missing checkpoint (first
	// sync) yields (nil, nil); read failures other than "file does not
	// exist" are logged and likewise yield (nil, nil) so a damaged
	// checkpoint degrades to a first sync instead of wedging the engine.
	Get(ctx context.Context) (*models.RemoteUserData, error)

	// Update atomically replaces the checkpoint with remote. Partial
	// writes must never be observable.
	Update(ctx context.Context, remote models.RemoteUserData) error

	// Delete removes the checkpoint. Missing checkpoint is not an error.
	Delete(ctx context.Context) error
}

// BackupStore keeps write-once timestamped snapshots of pre-change local
// content, independent of the remote store. Snapshots exist for forensic
// recovery only and are never consulted during conflict resolution.
type BackupStore interface {
	// Save writes content as a new snapshot and returns its name.
	Save(ctx context.Context, content string) (string, error)

	// List returns snapshot names, newest first.
	List(ctx context.Context) ([]string, error)

	// Read returns the content of the named snapshot.
	Read(ctx context.Context, name string) (string, error)
}

// PreviewStore stages the candidate result of a merge computation at a
// well-known location so an external viewer can render or edit it before it
// is applied.
type PreviewStore interface {
	// Write stages content as the current preview.
	Write(ctx context.Context, content string) error

	// Read returns the staged preview content, or ErrNoPreview.
	Read(ctx context.Context) (string, error)

	// Delete removes the staged preview. Missing preview is not an error.
	Delete(ctx context.Context) error
}

// LocalResource is the guarded synchronized file itself (e.g. the
// keybindings file). Load captures a modification stamp alongside the
// content; Write re-checks that stamp so an external edit in between fails
// with ErrLocalPreconditionFailed instead of being silently overwritten.
type LocalResource interface {
	// Load returns the current content and modification stamp.
	// A missing file yields ("", zero time, nil).
	Load(ctx context.Context) (string, time.Time, error)

	// Write stores content provided the file still carries stamp (or, for
	// a zero stamp, provided the file still does not exist). On a stamp
	// mismatch it fails with ErrLocalPreconditionFailed.
	Write(ctx context.Context, content string, stamp time.Time) error

	// Replace stores content unconditionally (pull / accept paths).
	Replace(ctx context.Context, content string) error
}
