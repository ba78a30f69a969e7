// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/models"
)

type resourceService struct {
	repository store.ResourceRepository

	logger *logger.Logger
}

// NewResourceService constructs the server-side [ResourceService] on top of
// the given repository.
func NewResourceService(repository store.ResourceRepository, logger *logger.Logger) ResourceService {
	return &resourceService{
		repository: repository,
		logger:     logger,
	}
}

// Latest implements [ResourceService].
func (r *resourceService) Latest(ctx context.Context, key models.ResourceKey) (*models.ResourceVersion, error) {
	return r.repository.Latest(ctx, key)
}

// Write implements [ResourceService]. Refs are opaque UUIDs, never derived
// from content: two writes of identical content still get distinct refs.
func (r *resourceService) Write(ctx context.Context, key models.ResourceKey, content string, expectedRef string) (models.ResourceVersion, error) {
	version := models.ResourceVersion{
		Key:     key,
		Ref:     uuid.NewString(),
		Content: content,
		Created: time.Now().UnixMilli(),
	}

	if err := r.repository.InsertWithPrecondition(ctx, version, expectedRef); err != nil {
		return models.ResourceVersion{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "resourceService.Write").
		Str("key", key.String()).
		Str("ref", version.Ref).
		Msg("stored new resource version")

	return version, nil
}

// ListRefs implements [ResourceService].
func (r *resourceService) ListRefs(ctx context.Context, key models.ResourceKey) ([]models.RefEntry, error) {
	versions, err := r.repository.ListVersions(ctx, key)
	if err != nil {
		return nil, err
	}

	entries := make([]models.RefEntry, 0, len(versions))
	for _, v := range versions {
		entries = append(entries, models.RefEntry{
			URL:     fmt.Sprintf("/resource/%s/%s", v.Key, v.Ref),
			Created: v.Created,
		})
	}

	return entries, nil
}

// GetByRef implements [ResourceService].
func (r *resourceService) GetByRef(ctx context.Context, key models.ResourceKey, ref string) (*models.ResourceVersion, error) {
	return r.repository.GetByRef(ctx, key, ref)
}

// DeleteKey implements [ResourceService].
func (r *resourceService) DeleteKey(ctx context.Context, key models.ResourceKey) error {
	return r.repository.DeleteKey(ctx, key)
}

// Clear implements [ResourceService].
func (r *resourceService) Clear(ctx context.Context) error {
	return r.repository.DeleteAll(ctx)
}

// Manifest implements [ResourceService].
func (r *resourceService) Manifest(ctx context.Context) (models.Manifest, error) {
	latest, err := r.repository.LatestRefs(ctx)
	if err != nil {
		return models.Manifest{}, err
	}

	session, err := r.repository.Session(ctx)
	if err != nil {
		return models.Manifest{}, err
	}

	return models.Manifest{Latest: latest, Session: session}, nil
}
