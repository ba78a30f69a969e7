// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/resource_service_mock.go -package=mock

// ResourceService is the server-side application service behind the store
// handlers. It owns ref allocation and the write precondition semantics; the
// repository only persists.
type ResourceService interface {
	// Latest returns the newest version of key, or nil when the resource
	// has never been written.
	Latest(ctx context.Context, key models.ResourceKey) (*models.ResourceVersion, error)

	// Write appends a new version of key with a freshly allocated ref.
	// A non-empty expectedRef must match the current latest ref
	// ([models.NoneRef] meaning "nothing stored yet") or
	// store.ErrRefMismatch is returned.
	Write(ctx context.Context, key models.ResourceKey, content string, expectedRef string) (models.ResourceVersion, error)

	// ListRefs returns the stored history of key, newest first.
	ListRefs(ctx context.Context, key models.ResourceKey) ([]models.RefEntry, error)

	// GetByRef returns the version of key at ref, or store.ErrVersionNotFound.
	GetByRef(ctx context.Context, key models.ResourceKey, ref string) (*models.ResourceVersion, error)

	// DeleteKey removes every version of key.
	DeleteKey(ctx context.Context, key models.ResourceKey) error

	// Clear removes all stored data and rotates the store session.
	Clear(ctx context.Context) error

	// Manifest returns the latest ref per resource plus the store session.
	Manifest(ctx context.Context) (models.Manifest, error)
}
