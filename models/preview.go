// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// SyncPreviewResult is the transient result of one merge computation.
// It is created fresh per sync cycle, becomes the basis for apply, and is
// discarded once apply completes or the cycle is cancelled.
type SyncPreviewResult struct {
	// LocalContent is the snapshot of the local file the merge reasoned
	// about. Empty when the local file does not exist.
	LocalContent string

	// LocalStamp is the local file's modification stamp at snapshot time.
	// Apply uses it as a precondition so an external edit between preview
	// and apply is detected instead of silently overwritten.
	LocalStamp time.Time

	// Remote is the remote state the merge reasoned about.
	Remote RemoteUserData

	// LastSync is the checkpoint state used as the common ancestor,
	// nil when no checkpoint exists yet (first sync).
	LastSync *RemoteUserData

	// MergeContent is the candidate merged content, nil when there is
	// nothing to do.
	MergeContent *string

	HasLocalChanged  bool
	HasRemoteChanged bool
	HasConflicts     bool
}
