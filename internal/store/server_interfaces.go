// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-settings-sync/models"
)

var (
	// ErrRefMismatch is returned by InsertWithPrecondition when the
	// expected ref is no longer the latest stored version.
	ErrRefMismatch = errors.New("ref is not the latest version")

	// ErrVersionNotFound is returned when no stored version matches.
	ErrVersionNotFound = errors.New("resource version not found")
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/resource_repository_mock.go -package=mock

// ResourceRepository is the server-side persistence contract of the resource
// store. Versions are append-only; a write never mutates history.
type ResourceRepository interface {
	// Latest returns the newest stored version of key, or nil when the
	// resource has never been written.
	Latest(ctx context.Context, key models.ResourceKey) (*models.ResourceVersion, error)

	// InsertWithPrecondition appends a new version atomically. When
	// expectedRef is non-empty the insert only succeeds if expectedRef is
	// still the latest ref for key; otherwise ErrRefMismatch is returned
	// and nothing is stored.
	InsertWithPrecondition(ctx context.Context, version models.ResourceVersion, expectedRef string) error

	// ListVersions returns all stored versions of key, newest first.
	ListVersions(ctx context.Context, key models.ResourceKey) ([]models.ResourceVersion, error)

	// GetByRef returns the stored version of key at ref, or
	// ErrVersionNotFound.
	GetByRef(ctx context.Context, key models.ResourceKey, ref string) (*models.ResourceVersion, error)

	// DeleteKey removes all versions of key.
	DeleteKey(ctx context.Context, key models.ResourceKey) error

	// DeleteAll removes every stored version of every resource.
	DeleteAll(ctx context.Context) error

	// LatestRefs returns the latest ref per resource key.
	LatestRefs(ctx context.Context) (map[models.ResourceKey]string, error)

	// Session returns the store session identifier, creating one on first
	// use. DeleteAll rotates it so clients can detect a cleared store.
	Session(ctx context.Context) (string, error)
}
