// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer access to the remote user-data
// store.
//
// The primary abstraction is [RemoteStore], which decouples the synchroniser
// engine from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteStore]) built on conditional requests:
// reads send If-None-Match and treat 304 as "unchanged", writes send
// If-Match so a concurrent writer is detected as a 412 instead of being
// silently overwritten.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrPreconditionFailed] for 412, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic communication with the remote
// user-data store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type RemoteStore interface {
	// Read fetches the latest stored version of key. When previous is
	// non-nil its ref is sent as If-None-Match; a 304 response returns
	// previous unchanged without re-parsing any payload. The response ETag
	// becomes the returned ref; a 2xx response without an ETag fails with
	// ErrNoRef.
	Read(ctx context.Context, key models.ResourceKey, previous *models.UserData) (models.UserData, error)

	// Write stores content for key and returns the new ref. A non-empty ref
	// is sent as If-Match so the write only succeeds if ref is still
	// current; a 412 response is mapped to ErrPreconditionFailed. An empty
	// ref force-overwrites.
	Write(ctx context.Context, key models.ResourceKey, content string, ref string) (string, error)

	// Manifest fetches the store manifest: the latest ref per resource and
	// the store session identifier.
	Manifest(ctx context.Context) (models.Manifest, error)

	// GetAllRefs lists every historical version of key, newest first.
	GetAllRefs(ctx context.Context, key models.ResourceKey) ([]models.RefEntry, error)

	// ResolveContent fetches the historical content of key at ref.
	// Returns nil when the version holds no content.
	ResolveContent(ctx context.Context, key models.ResourceKey, ref string) (*string, error)

	// Delete removes all stored versions of key.
	Delete(ctx context.Context, key models.ResourceKey) error

	// Clear removes every resource from the store.
	Clear(ctx context.Context) error
}
