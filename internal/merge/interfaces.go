// SPDX-License-Identifier: Apache-2.0

// Package merge implements the per-resource reconciliation engines the
// synchroniser delegates to. An engine is a pure function over the three
// inputs of a sync cycle: the local content, the remote content, and the
// last-synced content acting as the common ancestor.
//
// Engines must be deterministic given identical inputs (the engine core
// re-runs a cycle after a remote precondition failure and relies on getting
// the same answer for the same state) and must never mutate their inputs.
package merge

import "github.com/MKhiriev/go-settings-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/merge_engine_mock.go -package=mock

// FormattingOptions carries serialization hints for the merged output.
type FormattingOptions struct {
	// InsertSpaces selects space indentation over tabs.
	InsertSpaces bool

	// TabSize is the indent width when InsertSpaces is set.
	TabSize int
}

// Result is the outcome of one merge computation.
type Result struct {
	// MergeContent is the merged content candidate. When HasConflicts is
	// set it carries the engine's best-effort resolution for the viewer to
	// start from.
	MergeContent string

	// HasChanges reports whether either side needs updating; when false
	// the sides agree (formatting-only differences do not count) and the
	// cycle has nothing to do.
	HasChanges bool

	// HasConflicts reports that local and remote diverged incompatibly
	// since base and automatic reconciliation needs user input.
	HasConflicts bool
}

// Engine reconciles one resource category.
type Engine interface {
	// Merge computes the three-way reconciliation of local and remote
	// against base. A nil base means no common ancestor is known (first
	// sync), in which case equal sides are clean and differing sides
	// conflict.
	Merge(local, remote string, base *string, opts FormattingOptions) (Result, error)

	// Validate performs the resource's syntactic validity check. Content
	// failing it must never reach Merge.
	Validate(content string) error
}

// ForResource returns the engine for a resource category: the JSON-object
// engine for object-shaped resources, the text engine otherwise.
func ForResource(key models.ResourceKey) Engine {
	switch key {
	case models.ResourceSettings, models.ResourceGlobalState:
		return NewJSONObjectEngine()
	default:
		return NewTextEngine()
	}
}
