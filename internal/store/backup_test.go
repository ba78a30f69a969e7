// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

func TestBackupStore_SaveAndRead(t *testing.T) {
	backups := NewBackupStore(t.TempDir(), models.ResourceSettings, logger.Nop())
	ctx := context.Background()

	name, err := backups.Save(ctx, "snapshot content")
	require.NoError(t, err)
	require.NotEmpty(t, name)

	content, err := backups.Read(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, "snapshot content", content)
}

func TestBackupStore_ListEmptyDir(t *testing.T) {
	backups := NewBackupStore(t.TempDir(), models.ResourceSettings, logger.Nop())

	names, err := backups.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestBackupStore_ListNewestFirst(t *testing.T) {
	backups := NewBackupStore(t.TempDir(), models.ResourceSettings, logger.Nop())
	ctx := context.Background()

	first, err := backups.Save(ctx, "first")
	require.NoError(t, err)
	second, err := backups.Save(ctx, "second")
	require.NoError(t, err)

	names, err := backups.List(ctx)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, second, names[0])
	assert.Equal(t, first, names[1])
}

func TestBackupStore_PruneKeepsWindow(t *testing.T) {
	backups := NewBackupStore(t.TempDir(), models.ResourceSettings, logger.Nop()).(*backupStore)
	backups.keep = 3
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := backups.Save(ctx, fmt.Sprintf("snapshot %d", i))
		require.NoError(t, err)
	}

	names, err := backups.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 3)

	// новейший снимок пережил prune
	content, err := backups.Read(ctx, names[0])
	require.NoError(t, err)
	assert.Equal(t, "snapshot 4", content)
}
