// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonMerge(t *testing.T, local, remote string, base *string) Result {
	t.Helper()
	result, err := NewJSONObjectEngine().Merge(local, remote, base, FormattingOptions{InsertSpaces: true, TabSize: 2})
	require.NoError(t, err)
	return result
}

func asObject(t *testing.T, content string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(content), &obj))
	return obj
}

func strPtr(s string) *string { return &s }

// ── Merge ────────────────────────────────────────────────────────────────────

func TestJSONEngine_Merge_AllEqual(t *testing.T) {
	content := `{"a": 1}`
	result := jsonMerge(t, content, content, &content)

	assert.False(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
}

func TestJSONEngine_Merge_FormattingOnlyDifferenceIsNoChange(t *testing.T) {
	base := `{"a": 1}`
	result := jsonMerge(t, `{"a": 1}`, "{\n  \"a\": 1\n}", &base)

	assert.False(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
}

func TestJSONEngine_Merge_OnlyRemoteForwardedVerbatim(t *testing.T) {
	base := `{"a": 1}`
	local := `{"a": 1}`
	remote := "{\n      \"a\": 2\n}"

	result := jsonMerge(t, local, remote, &base)

	require.True(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
	// текст удалённой стороны не переформатируется
	assert.Equal(t, remote, result.MergeContent)
}

func TestJSONEngine_Merge_OnlyLocalForwardedVerbatim(t *testing.T) {
	base := `{"a": 1}`
	local := `{"a": 1, "b": 2}`
	remote := "{\n  \"a\": 1\n}"

	result := jsonMerge(t, local, remote, &base)

	require.True(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
	assert.Equal(t, local, result.MergeContent)
}

func TestJSONEngine_Merge_RemoteDeletionWins(t *testing.T) {
	base := `{"a": 1, "b": 2}`
	local := `{"a": 1, "b": 2}`
	remote := `{"a": 1}`

	result := jsonMerge(t, local, remote, &base)

	require.True(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
	assert.Equal(t, remote, result.MergeContent)
}

func TestJSONEngine_Merge_DisjointAdditionsConflict(t *testing.T) {
	base := `{"a": 1}`
	local := `{"a": 1, "x": 1}`
	remote := `{"a": 1, "y": 2}`

	result := jsonMerge(t, local, remote, &base)

	require.True(t, result.HasChanges)
	assert.True(t, result.HasConflicts)
	// кандидат объединяет обе стороны как отправную точку
	assert.Equal(t, map[string]any{"a": float64(1), "x": float64(1), "y": float64(2)}, asObject(t, result.MergeContent))
}

func TestJSONEngine_Merge_BothSidesMovedConflictCandidate(t *testing.T) {
	base := `{"a": 1, "b": 2}`
	local := `{"a": 10, "b": 2}`
	remote := `{"a": 1, "b": 20, "c": 3}`

	result := jsonMerge(t, local, remote, &base)

	assert.True(t, result.HasConflicts)
	require.True(t, result.HasChanges)
	// для каждого ключа берётся изменившая его сторона
	assert.Equal(t, map[string]any{"a": float64(10), "b": float64(20), "c": float64(3)}, asObject(t, result.MergeContent))
}

func TestJSONEngine_Merge_SameKeyConflictKeepsLocal(t *testing.T) {
	base := `{"a": 1}`
	local := `{"a": 2}`
	remote := `{"a": 3}`

	result := jsonMerge(t, local, remote, &base)

	assert.True(t, result.HasConflicts)
	assert.True(t, result.HasChanges)
	// кандидат сохраняет локальное значение
	assert.Equal(t, float64(2), asObject(t, result.MergeContent)["a"])
}

func TestJSONEngine_Merge_IdenticalChangeIsClean(t *testing.T) {
	base := `{"a": 1}`
	both := `{"a": 2}`

	result := jsonMerge(t, both, both, &base)

	assert.False(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
}

func TestJSONEngine_Merge_NilBaseDisjointKeysConflict(t *testing.T) {
	result := jsonMerge(t, `{"a": 1}`, `{"b": 2}`, nil)

	require.True(t, result.HasChanges)
	assert.True(t, result.HasConflicts)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, asObject(t, result.MergeContent))
}

func TestJSONEngine_Merge_NilBaseSameKeyDifferentValueConflicts(t *testing.T) {
	result := jsonMerge(t, `{"a": 1}`, `{"a": 2}`, nil)

	assert.True(t, result.HasConflicts)
	assert.Equal(t, float64(1), asObject(t, result.MergeContent)["a"])
}

func TestJSONEngine_Merge_BlankContentIsEmptyObject(t *testing.T) {
	result := jsonMerge(t, "", `{"a": 1}`, nil)

	require.True(t, result.HasChanges)
	assert.False(t, result.HasConflicts)
	assert.Equal(t, `{"a": 1}`, result.MergeContent)
}

func TestJSONEngine_Merge_CandidateTabIndentation(t *testing.T) {
	result, err := NewJSONObjectEngine().Merge(`{"a": 1}`, `{"b": 2}`, nil, FormattingOptions{})
	require.NoError(t, err)

	require.True(t, result.HasConflicts)
	assert.Contains(t, result.MergeContent, "\t\"a\"")
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestJSONEngine_Validate(t *testing.T) {
	engine := NewJSONObjectEngine()

	assert.NoError(t, engine.Validate(`{"a": 1}`))
	assert.NoError(t, engine.Validate(""))
	assert.Error(t, engine.Validate(`[1, 2]`))
	assert.Error(t, engine.Validate(`{"a":`))
}
