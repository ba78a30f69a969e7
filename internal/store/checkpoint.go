// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// checkpointRecord is the on-disk form of a checkpoint: the agreed ref plus
// the JSON-serialized SyncData envelope. Older checkpoints stored the bare
// resource content in Content; ParseSyncData migrates those on read.
type checkpointRecord struct {
	Ref     string `json:"ref"`
	Content string `json:"content"`
}

type checkpointStore struct {
	path   string
	logger *logger.Logger
}

// NewCheckpointStore creates the [CheckpointStore] for key, persisted at
// <dataDir>/lastSync<Key>.json.
func NewCheckpointStore(dataDir string, key models.ResourceKey, log *logger.Logger) CheckpointStore {
	return &checkpointStore{
		path:   filepath.Join(dataDir, fmt.Sprintf("lastSync%s.json", key)),
		logger: log,
	}
}

// Get implements [CheckpointStore].
func (c *checkpointStore) Get(_ context.Context) (*models.RemoteUserData, error) {
	payload, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		c.logger.Err(err).Str("func", "checkpointStore.Get").Str("path", c.path).
			Msg("error reading checkpoint, treating as first sync")
		return nil, nil
	}

	var record checkpointRecord
	if err = json.Unmarshal(payload, &record); err != nil {
		c.logger.Err(err).Str("func", "checkpointStore.Get").Str("path", c.path).
			Msg("error decoding checkpoint, treating as first sync")
		return nil, nil
	}

	syncData, err := models.ParseSyncData(record.Content)
	if err != nil {
		c.logger.Err(err).Str("func", "checkpointStore.Get").Str("path", c.path).
			Msg("error parsing checkpoint envelope, treating as first sync")
		return nil, nil
	}

	return &models.RemoteUserData{Ref: record.Ref, SyncData: &syncData}, nil
}

// Update implements [CheckpointStore]. The record is written to a temporary
// file and renamed over the checkpoint so a crash mid-write leaves the
// previous checkpoint intact.
func (c *checkpointStore) Update(_ context.Context, remote models.RemoteUserData) error {
	if remote.SyncData == nil {
		return fmt.Errorf("checkpoint update for %s: no sync data", c.path)
	}

	content, err := remote.SyncData.Marshal()
	if err != nil {
		return fmt.Errorf("encode checkpoint envelope: %w", err)
	}

	payload, err := json.Marshal(checkpointRecord{Ref: remote.Ref, Content: content})
	if err != nil {
		return fmt.Errorf("encode checkpoint record: %w", err)
	}

	if err = atomicWriteFile(c.path, payload); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}

	return nil
}

// Delete implements [CheckpointStore].
func (c *checkpointStore) Delete(_ context.Context) error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete checkpoint: %w", err)
	}
	return nil
}

// atomicWriteFile writes payload next to path and renames it into place.
func atomicWriteFile(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}
