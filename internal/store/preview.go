// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-settings-sync/models"
)

type previewStore struct {
	path string
}

// NewPreviewStore creates the [PreviewStore] for key, staged at
// <dataDir>/<key>.preview.json.
func NewPreviewStore(dataDir string, key models.ResourceKey) PreviewStore {
	return &previewStore{path: filepath.Join(dataDir, key.String()+".preview.json")}
}

// Write implements [PreviewStore].
func (p *previewStore) Write(_ context.Context, content string) error {
	if err := atomicWriteFile(p.path, []byte(content)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

// Read implements [PreviewStore].
func (p *previewStore) Read(_ context.Context) (string, error) {
	payload, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoPreview
		}
		return "", fmt.Errorf("read preview: %w", err)
	}
	return string(payload), nil
}

// Delete implements [PreviewStore].
func (p *previewStore) Delete(_ context.Context) error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete preview: %w", err)
	}
	return nil
}
