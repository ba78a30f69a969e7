// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/mock"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/models"
)

func newTestResourceService(t *testing.T, ctrl *gomock.Controller) (ResourceService, *mock.MockResourceRepository) {
	t.Helper()
	repository := mock.NewMockResourceRepository(ctrl)
	return NewResourceService(repository, logger.Nop()), repository
}

func TestResourceService_Write_AllocatesOpaqueRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)
	before := time.Now().UnixMilli()

	var stored models.ResourceVersion
	repository.EXPECT().
		InsertWithPrecondition(gomock.Any(), gomock.Any(), "previous-ref").
		DoAndReturn(func(_ context.Context, version models.ResourceVersion, _ string) error {
			stored = version
			return nil
		})

	version, err := service.Write(context.Background(), models.ResourceSettings, `{"a":1}`, "previous-ref")
	require.NoError(t, err)

	assert.Equal(t, stored, version)
	assert.Equal(t, models.ResourceSettings, version.Key)
	assert.Equal(t, `{"a":1}`, version.Content)
	assert.GreaterOrEqual(t, version.Created, before)

	// ref — непрозрачный UUID, не зависит от содержимого
	_, err = uuid.Parse(version.Ref)
	assert.NoError(t, err)
}

func TestResourceService_Write_DistinctRefsForIdenticalContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().
		InsertWithPrecondition(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	first, err := service.Write(context.Background(), models.ResourceSettings, "same", "")
	require.NoError(t, err)
	second, err := service.Write(context.Background(), models.ResourceSettings, "same", first.Ref)
	require.NoError(t, err)

	assert.NotEqual(t, first.Ref, second.Ref)
}

func TestResourceService_Write_PreconditionFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().
		InsertWithPrecondition(gomock.Any(), gomock.Any(), "stale-ref").
		Return(store.ErrRefMismatch)

	_, err := service.Write(context.Background(), models.ResourceSettings, "content", "stale-ref")
	assert.ErrorIs(t, err, store.ErrRefMismatch)
}

func TestResourceService_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	want := &models.ResourceVersion{Key: models.ResourceSettings, Ref: "ref-1", Content: "{}"}
	repository.EXPECT().Latest(gomock.Any(), models.ResourceSettings).Return(want, nil)

	got, err := service.Latest(context.Background(), models.ResourceSettings)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResourceService_ListRefs_BuildsResolveURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().ListVersions(gomock.Any(), models.ResourceSettings).Return([]models.ResourceVersion{
		{Key: models.ResourceSettings, Ref: "ref-2", Created: 200},
		{Key: models.ResourceSettings, Ref: "ref-1", Created: 100},
	}, nil)

	entries, err := service.ListRefs(context.Background(), models.ResourceSettings)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, models.RefEntry{URL: "/resource/settings/ref-2", Created: 200}, entries[0])
	assert.Equal(t, models.RefEntry{URL: "/resource/settings/ref-1", Created: 100}, entries[1])
}

func TestResourceService_ListRefs_EmptyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().ListVersions(gomock.Any(), models.ResourceSettings).Return(nil, nil)

	entries, err := service.ListRefs(context.Background(), models.ResourceSettings)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResourceService_GetByRef_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().GetByRef(gomock.Any(), models.ResourceSettings, "missing").
		Return(nil, store.ErrVersionNotFound)

	_, err := service.GetByRef(context.Background(), models.ResourceSettings, "missing")
	assert.ErrorIs(t, err, store.ErrVersionNotFound)
}

func TestResourceService_Manifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	latest := map[models.ResourceKey]string{
		models.ResourceSettings:    "ref-7",
		models.ResourceKeybindings: "ref-3",
	}
	repository.EXPECT().LatestRefs(gomock.Any()).Return(latest, nil)
	repository.EXPECT().Session(gomock.Any()).Return("session-1", nil)

	manifest, err := service.Manifest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Manifest{Latest: latest, Session: "session-1"}, manifest)
}

func TestResourceService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().DeleteAll(gomock.Any()).Return(nil)
	require.NoError(t, service.Clear(context.Background()))
}

func TestResourceService_DeleteKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repository := newTestResourceService(t, ctrl)

	repository.EXPECT().DeleteKey(gomock.Any(), models.ResourceSettings).Return(nil)
	require.NoError(t, service.DeleteKey(context.Background(), models.ResourceSettings))
}
