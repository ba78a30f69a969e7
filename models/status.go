// SPDX-License-Identifier: Apache-2.0

package models

// SyncStatus is the per-resource engine state.
//
// Transitions: Uninitialized → Idle on first load, Idle → Syncing when a
// cycle starts, Syncing → Idle on clean completion or Syncing → HasConflicts
// when the merge cannot reconcile both sides. HasConflicts returns to Idle
// only through an explicit user resolution (accept) or stop.
type SyncStatus int

const (
	StatusUninitialized SyncStatus = iota
	StatusIdle
	StatusSyncing
	StatusHasConflicts
)

func (s SyncStatus) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusIdle:
		return "idle"
	case StatusSyncing:
		return "syncing"
	case StatusHasConflicts:
		return "hasConflicts"
	default:
		return "unknown"
	}
}
