// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// defaultBackupWindow is how many snapshots are retained per resource.
const defaultBackupWindow = 10

type backupStore struct {
	dir    string
	keep   int
	logger *logger.Logger
}

// NewBackupStore creates the [BackupStore] for key under
// <dataDir>/backups/<key>/. Snapshots beyond the retention window are pruned
// oldest-first on every Save.
func NewBackupStore(dataDir string, key models.ResourceKey, log *logger.Logger) BackupStore {
	return &backupStore{
		dir:    filepath.Join(dataDir, "backups", key.String()),
		keep:   defaultBackupWindow,
		logger: log,
	}
}

// Save implements [BackupStore]. Snapshot names embed the creation time and
// a uuid so concurrent saves in the same nanosecond cannot collide; an
// existing file with the same name is never overwritten.
func (b *backupStore) Save(_ context.Context, content string) (string, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json", time.Now().UTC().Format("20060102T150405.000000000Z"), uuid.NewString())
	path := filepath.Join(b.dir, name)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrBackupExists, name)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write backup snapshot: %w", err)
	}

	b.prune()
	return name, nil
}

// List implements [BackupStore].
func (b *backupStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list backup snapshots: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	// Timestamped names sort chronologically; newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Read implements [BackupStore].
func (b *backupStore) Read(_ context.Context, name string) (string, error) {
	payload, err := os.ReadFile(filepath.Join(b.dir, filepath.Base(name)))
	if err != nil {
		return "", fmt.Errorf("read backup snapshot %s: %w", name, err)
	}
	return string(payload), nil
}

func (b *backupStore) prune() {
	names, err := b.List(context.Background())
	if err != nil || len(names) <= b.keep {
		return
	}

	for _, name := range names[b.keep:] {
		if err = os.Remove(filepath.Join(b.dir, name)); err != nil {
			b.logger.Err(err).Str("func", "backupStore.prune").Str("snapshot", name).
				Msg("error pruning backup snapshot")
		}
	}
}
