// SPDX-License-Identifier: Apache-2.0

package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// CurrentSyncDataVersion is the highest envelope version this build can
// interpret. Remote data carrying a greater version must not be synchronized.
const CurrentSyncDataVersion = 2

// NoneRef is the ref a store reports for a resource that has never been
// written. Writers may send it as a precondition meaning "only succeed if
// nothing is stored yet".
const NoneRef = "0"

// ErrEmptySyncData is returned when an envelope payload is empty or blank.
var ErrEmptySyncData = errors.New("empty sync data payload")

// SyncData is the versioned envelope stored inside [UserData.Content].
// The version field makes format changes detectable: a client seeing a
// version greater than [CurrentSyncDataVersion] must refuse to sync the
// resource instead of misinterpreting it.
type SyncData struct {
	// Version is the envelope format version, starting at 1.
	Version int `json:"version"`

	// Content is the synchronized resource content, serialized by the
	// resource owner (typically a JSON document stored as a string).
	Content string `json:"content"`
}

// UserData is one versioned blob as seen over the wire.
type UserData struct {
	// Ref is an opaque version token, analogous to an HTTP ETag.
	// It changes on every successful write and is used as the
	// If-Match precondition for the next write.
	Ref string `json:"ref"`

	// Content is the raw stored payload, nil when the server returned
	// no body for the resource.
	Content *string `json:"content"`
}

// RemoteUserData is the parsed form of a remote read.
// SyncData == nil means the remote resource does not exist yet.
type RemoteUserData struct {
	Ref      string    `json:"ref"`
	SyncData *SyncData `json:"syncData"`
}

// ParseSyncData decodes raw as the current versioned envelope.
//
// Payloads written before the envelope was versioned stored the resource
// content bare. To preserve the migration semantics, any payload that does
// not decode as a versioned envelope is treated as version-1 content.
func ParseSyncData(raw string) (SyncData, error) {
	if strings.TrimSpace(raw) == "" {
		return SyncData{}, ErrEmptySyncData
	}

	var sd SyncData
	if err := json.Unmarshal([]byte(raw), &sd); err == nil && sd.Version > 0 {
		return sd, nil
	}

	return SyncData{Version: 1, Content: raw}, nil
}

// ParseRemoteUserData converts a raw wire read into its parsed form.
// A nil content yields a RemoteUserData with SyncData == nil.
func ParseRemoteUserData(data UserData) (RemoteUserData, error) {
	if data.Content == nil {
		return RemoteUserData{Ref: data.Ref}, nil
	}

	sd, err := ParseSyncData(*data.Content)
	if err != nil {
		return RemoteUserData{}, err
	}

	return RemoteUserData{Ref: data.Ref, SyncData: &sd}, nil
}

// Marshal serializes the envelope to its wire form.
func (s SyncData) Marshal() (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
