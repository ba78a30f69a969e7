// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-sync/models"
)

func TestLocalResource_LoadMissing(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)

	content, stamp, err := local.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, content)
	assert.True(t, stamp.IsZero())
}

func TestLocalResource_WriteWithZeroStampCreates(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	require.NoError(t, local.Write(ctx, `{"a":1}`, time.Time{}))

	content, stamp, err := local.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, content)
	assert.False(t, stamp.IsZero())
}

func TestLocalResource_WriteWithFreshStamp(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	require.NoError(t, local.Replace(ctx, "v1"))
	_, stamp, err := local.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, local.Write(ctx, "v2", stamp))

	content, _, err := local.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
}

func TestLocalResource_WriteStaleStampFails(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	require.NoError(t, local.Replace(ctx, "v1"))
	_, stamp, err := local.Load(ctx)
	require.NoError(t, err)

	// файл меняется извне между Load и Write
	require.NoError(t, local.Replace(ctx, "edited externally"))

	err = local.Write(ctx, "v2", stamp.Add(-time.Second))
	assert.ErrorIs(t, err, ErrLocalPreconditionFailed)

	content, _, err := local.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "edited externally", content)
}

func TestLocalResource_WriteZeroStampOnExistingFileFails(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	require.NoError(t, local.Replace(ctx, "v1"))

	err := local.Write(ctx, "v2", time.Time{})
	assert.ErrorIs(t, err, ErrLocalPreconditionFailed)
}

func TestLocalResource_WriteExpectedFileRemoved(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	err := local.Write(ctx, "v2", time.Now())
	assert.ErrorIs(t, err, ErrLocalPreconditionFailed)
}

func TestLocalResource_ReplaceUnconditional(t *testing.T) {
	local := NewLocalResource(t.TempDir(), models.ResourceSettings)
	ctx := context.Background()

	require.NoError(t, local.Replace(ctx, "v1"))
	require.NoError(t, local.Replace(ctx, "v2"))

	content, _, err := local.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v2", content)
}
