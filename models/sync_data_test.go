// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseSyncData ────────────────────────────────────────────────────────────

func TestParseSyncData_VersionedEnvelope(t *testing.T) {
	sd, err := ParseSyncData(`{"version":2,"content":"{\"a\":1}"}`)
	require.NoError(t, err)

	assert.Equal(t, 2, sd.Version)
	assert.Equal(t, `{"a":1}`, sd.Content)
}

func TestParseSyncData_BarePayloadMigratesToVersionOne(t *testing.T) {
	// содержимое без конверта — данные старого формата
	sd, err := ParseSyncData(`{"editor.fontSize": 14}`)
	require.NoError(t, err)

	assert.Equal(t, 1, sd.Version)
	assert.Equal(t, `{"editor.fontSize": 14}`, sd.Content)
}

func TestParseSyncData_NonJSONPayloadMigratesToVersionOne(t *testing.T) {
	sd, err := ParseSyncData("just some text")
	require.NoError(t, err)

	assert.Equal(t, 1, sd.Version)
	assert.Equal(t, "just some text", sd.Content)
}

func TestParseSyncData_EmptyPayload(t *testing.T) {
	_, err := ParseSyncData("   ")
	assert.ErrorIs(t, err, ErrEmptySyncData)
}

func TestSyncData_MarshalRoundTrip(t *testing.T) {
	original := SyncData{Version: CurrentSyncDataVersion, Content: `{"a":1}`}

	payload, err := original.Marshal()
	require.NoError(t, err)

	parsed, err := ParseSyncData(payload)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

// ── ParseRemoteUserData ──────────────────────────────────────────────────────

func TestParseRemoteUserData_NilContent(t *testing.T) {
	remote, err := ParseRemoteUserData(UserData{Ref: NoneRef})
	require.NoError(t, err)

	assert.Equal(t, NoneRef, remote.Ref)
	assert.Nil(t, remote.SyncData)
}

func TestParseRemoteUserData_WithEnvelope(t *testing.T) {
	payload := `{"version":2,"content":"hello"}`
	remote, err := ParseRemoteUserData(UserData{Ref: "ref-1", Content: &payload})
	require.NoError(t, err)

	require.NotNil(t, remote.SyncData)
	assert.Equal(t, "ref-1", remote.Ref)
	assert.Equal(t, "hello", remote.SyncData.Content)
}

func TestParseRemoteUserData_EmptyContent(t *testing.T) {
	empty := ""
	_, err := ParseRemoteUserData(UserData{Ref: "ref-1", Content: &empty})
	assert.ErrorIs(t, err, ErrEmptySyncData)
}

// ── ResourceKey ──────────────────────────────────────────────────────────────

func TestParseResourceKey(t *testing.T) {
	for _, key := range AllResourceKeys() {
		parsed, err := ParseResourceKey(key.String())
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	}

	_, err := ParseResourceKey("themes")
	assert.Error(t, err)
}
