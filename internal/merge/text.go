// SPDX-License-Identifier: Apache-2.0

package merge

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// textEngine reconciles line-oriented resources. A side unchanged since base
// takes the other side verbatim; when both sides moved the result is a
// conflict. The candidate replays the base→remote edits on top of the local
// content where the hunks still apply, and falls back to git-style markers
// where they do not.
type textEngine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewTextEngine constructs the [Engine] for text resources.
func NewTextEngine() Engine {
	return textEngine{dmp: diffmatchpatch.New()}
}

// Validate implements [Engine]. Any text is structurally valid.
func (textEngine) Validate(string) error {
	return nil
}

// Merge implements [Engine].
func (e textEngine) Merge(local, remote string, base *string, _ FormattingOptions) (Result, error) {
	if local == remote {
		return Result{MergeContent: local}, nil
	}

	if base == nil {
		switch {
		case local == "":
			return Result{MergeContent: remote, HasChanges: true}, nil
		case remote == "":
			return Result{MergeContent: local, HasChanges: true}, nil
		default:
			return e.conflictResult(local, remote, ""), nil
		}
	}

	switch {
	case local == *base:
		// Only remote forwarded.
		return Result{MergeContent: remote, HasChanges: true}, nil
	case remote == *base:
		// Only local forwarded.
		return Result{MergeContent: local, HasChanges: true}, nil
	}

	return e.conflictResult(local, remote, *base), nil
}

// conflictResult builds the conflict candidate: the base→remote edits
// replayed onto local when they still apply cleanly, marker blocks otherwise.
func (e textEngine) conflictResult(local, remote, base string) Result {
	if base != "" {
		patches := e.dmp.PatchMake(base, remote)
		merged, applied := e.dmp.PatchApply(patches, local)
		clean := true
		for _, ok := range applied {
			if !ok {
				clean = false
				break
			}
		}
		if clean && merged != local && merged != remote {
			return Result{MergeContent: merged, HasChanges: true, HasConflicts: true}
		}
	}

	content := fmt.Sprintf("<<<<<<< local\n%s\n=======\n%s\n>>>>>>> remote\n", local, remote)
	return Result{MergeContent: content, HasChanges: true, HasConflicts: true}
}
