// SPDX-License-Identifier: Apache-2.0

package models

// ResourceVersion is one stored version of a resource as persisted by the
// server-side store. Every successful write appends a new version with a
// fresh ref; "latest" is the version with the greatest Created stamp.
type ResourceVersion struct {
	Key     ResourceKey `json:"key"`
	Ref     string      `json:"ref"`
	Content string      `json:"content"`

	// Created is the server-side creation time in unix milliseconds.
	Created int64 `json:"created"`
}
