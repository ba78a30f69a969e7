// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

func TestCheckpointStore_GetMissingIsFirstSync(t *testing.T) {
	cp := NewCheckpointStore(t.TempDir(), models.ResourceSettings, logger.Nop())

	got, err := cp.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckpointStore_UpdateThenGet(t *testing.T) {
	cp := NewCheckpointStore(t.TempDir(), models.ResourceSettings, logger.Nop())
	ctx := context.Background()

	remote := models.RemoteUserData{
		Ref:      "ref-1",
		SyncData: &models.SyncData{Version: models.CurrentSyncDataVersion, Content: `{"a":1}`},
	}
	require.NoError(t, cp.Update(ctx, remote))

	got, err := cp.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ref-1", got.Ref)
	require.NotNil(t, got.SyncData)
	assert.Equal(t, `{"a":1}`, got.SyncData.Content)
	assert.Equal(t, models.CurrentSyncDataVersion, got.SyncData.Version)
}

func TestCheckpointStore_UpdateRejectsEmptySyncData(t *testing.T) {
	cp := NewCheckpointStore(t.TempDir(), models.ResourceSettings, logger.Nop())

	err := cp.Update(context.Background(), models.RemoteUserData{Ref: "ref-1"})
	assert.Error(t, err)
}

func TestCheckpointStore_CorruptFileDegradesToFirstSync(t *testing.T) {
	dir := t.TempDir()
	cp := NewCheckpointStore(dir, models.ResourceSettings, logger.Nop())

	path := filepath.Join(dir, "lastSyncsettings.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0o600))

	got, err := cp.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckpointStore_Delete(t *testing.T) {
	cp := NewCheckpointStore(t.TempDir(), models.ResourceSettings, logger.Nop())
	ctx := context.Background()

	// delete без существующего чекпойнта — не ошибка
	require.NoError(t, cp.Delete(ctx))

	remote := models.RemoteUserData{
		Ref:      "ref-1",
		SyncData: &models.SyncData{Version: 2, Content: "x"},
	}
	require.NoError(t, cp.Update(ctx, remote))
	require.NoError(t, cp.Delete(ctx))

	got, err := cp.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
