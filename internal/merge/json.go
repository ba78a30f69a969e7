// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"dario.cat/mergo"
)

// jsonObjectEngine reconciles object-shaped resources at the document level:
// a side that is semantically unchanged since base takes the other side
// verbatim, identical changes agree, and any pairwise three-way divergence is
// a conflict. The conflict candidate is built key-wise — the local value wins
// per key, non-conflicting remote additions are overlaid — and only the
// candidate is ever re-serialized; clean forwards keep the winning side's
// text byte for byte so a no-op sync never rewrites either store.
type jsonObjectEngine struct{}

// NewJSONObjectEngine constructs the [Engine] for JSON-object resources.
func NewJSONObjectEngine() Engine {
	return jsonObjectEngine{}
}

// Validate implements [Engine].
func (jsonObjectEngine) Validate(content string) error {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return fmt.Errorf("content is not a JSON object: %w", err)
	}
	return nil
}

// Merge implements [Engine].
func (e jsonObjectEngine) Merge(local, remote string, base *string, opts FormattingOptions) (Result, error) {
	localObj, err := parseObject(local)
	if err != nil {
		return Result{}, fmt.Errorf("parse local content: %w", err)
	}
	remoteObj, err := parseObject(remote)
	if err != nil {
		return Result{}, fmt.Errorf("parse remote content: %w", err)
	}

	baseObj := map[string]any{}
	if base != nil {
		if baseObj, err = parseObject(*base); err != nil {
			return Result{}, fmt.Errorf("parse base content: %w", err)
		}
	}

	switch {
	case reflect.DeepEqual(localObj, remoteObj):
		// Both sides agree (formatting differences are not changes).
		return Result{MergeContent: local}, nil

	case reflect.DeepEqual(localObj, baseObj):
		// Only remote moved since base: forward its text verbatim.
		return Result{MergeContent: remote, HasChanges: true}, nil

	case reflect.DeepEqual(remoteObj, baseObj):
		// Only local moved since base.
		return Result{MergeContent: local, HasChanges: true}, nil
	}

	candidate, err := conflictCandidate(localObj, remoteObj, baseObj)
	if err != nil {
		return Result{}, fmt.Errorf("build conflict candidate: %w", err)
	}

	mergeContent, err := formatObject(candidate, opts)
	if err != nil {
		return Result{}, fmt.Errorf("format merged content: %w", err)
	}

	return Result{MergeContent: mergeContent, HasChanges: true, HasConflicts: true}, nil
}

// conflictCandidate builds the viewer's starting point for a conflicted
// document: local values, remote values for keys only the remote changed,
// remote deletions of keys local left untouched, and remote-only additions
// overlaid with mergo.
func conflictCandidate(localObj, remoteObj, baseObj map[string]any) (map[string]any, error) {
	candidate := make(map[string]any, len(localObj)+len(remoteObj))
	for key, lv := range localObj {
		candidate[key] = lv
	}

	for key, bv := range baseObj {
		lv, lok := candidate[key]
		if !lok || !reflect.DeepEqual(lv, bv) {
			continue
		}
		rv, rok := remoteObj[key]
		switch {
		case !rok:
			delete(candidate, key)
		case !reflect.DeepEqual(rv, bv):
			candidate[key] = rv
		}
	}

	if err := mergo.Merge(&candidate, remoteObj); err != nil {
		return nil, err
	}
	return candidate, nil
}

func parseObject(content string) (map[string]any, error) {
	if strings.TrimSpace(content) == "" {
		return map[string]any{}, nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

func formatObject(obj map[string]any, opts FormattingOptions) (string, error) {
	indent := "\t"
	if opts.InsertSpaces {
		size := opts.TabSize
		if size <= 0 {
			size = 4
		}
		indent = strings.Repeat(" ", size)
	}

	payload, err := json.MarshalIndent(obj, "", indent)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
