// SPDX-License-Identifier: Apache-2.0

package models

// Manifest summarizes the remote store state in a single read: the latest
// ref per resource plus the store session identifier. A session change means
// the store was cleared or recreated and all local checkpoints are stale.
type Manifest struct {
	Latest  map[ResourceKey]string `json:"latest"`
	Session string                 `json:"session"`
}

// RefEntry describes one historical version of a stored resource.
type RefEntry struct {
	// URL resolves the historical content for this ref.
	URL string `json:"url"`

	// Created is the server-side creation time in unix milliseconds.
	Created int64 `json:"created"`
}
