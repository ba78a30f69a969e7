// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-settings-sync/models"
)

type localResource struct {
	path string
}

// NewLocalResource creates the [LocalResource] for key, stored at
// <dataDir>/<key>.json.
func NewLocalResource(dataDir string, key models.ResourceKey) LocalResource {
	return &localResource{path: filepath.Join(dataDir, key.String()+".json")}
}

// Load implements [LocalResource].
func (l *localResource) Load(_ context.Context) (string, time.Time, error) {
	payload, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", time.Time{}, nil
		}
		return "", time.Time{}, fmt.Errorf("read local resource: %w", err)
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("stat local resource: %w", err)
	}

	return string(payload), info.ModTime(), nil
}

// Write implements [LocalResource]. The stamp check and the write are not
// one atomic step at the filesystem level; the window is small and an
// external writer racing inside it still loses at most one edit, which the
// next cycle's merge recovers from the backup snapshot taken before apply.
func (l *localResource) Write(_ context.Context, content string, stamp time.Time) error {
	info, err := os.Stat(l.path)
	switch {
	case os.IsNotExist(err):
		if !stamp.IsZero() {
			return fmt.Errorf("%w: file removed", ErrLocalPreconditionFailed)
		}
	case err != nil:
		return fmt.Errorf("stat local resource: %w", err)
	default:
		if stamp.IsZero() || !info.ModTime().Equal(stamp) {
			return fmt.Errorf("%w: modified at %s", ErrLocalPreconditionFailed, info.ModTime().Format(time.RFC3339Nano))
		}
	}

	if err = atomicWriteFile(l.path, []byte(content)); err != nil {
		return fmt.Errorf("write local resource: %w", err)
	}
	return nil
}

// Replace implements [LocalResource].
func (l *localResource) Replace(_ context.Context, content string) error {
	if err := atomicWriteFile(l.path, []byte(content)); err != nil {
		return fmt.Errorf("replace local resource: %w", err)
	}
	return nil
}
