// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-sync/models"
)

func TestPreviewStore_ReadMissing(t *testing.T) {
	previews := NewPreviewStore(t.TempDir(), models.ResourceSettings)

	_, err := previews.Read(context.Background())
	assert.ErrorIs(t, err, ErrNoPreview)
}

func TestPreviewStore_WriteReadDelete(t *testing.T) {
	previews := NewPreviewStore(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	require.NoError(t, previews.Write(ctx, "merge candidate"))

	content, err := previews.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "merge candidate", content)

	require.NoError(t, previews.Delete(ctx))
	_, err = previews.Read(ctx)
	assert.ErrorIs(t, err, ErrNoPreview)

	// повторное удаление — не ошибка
	require.NoError(t, previews.Delete(ctx))
}
