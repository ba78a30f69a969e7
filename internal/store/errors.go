// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

var (
	// ErrLocalPreconditionFailed signals that the local resource file was
	// modified externally between the snapshot a sync cycle reasoned about
	// and the guarded write that tried to apply its result. The caller must
	// re-run the whole cycle instead of retrying the write.
	ErrLocalPreconditionFailed = errors.New("local file changed since read")

	// ErrBackupExists guards the write-once property of backup snapshots.
	ErrBackupExists = errors.New("backup snapshot already exists")

	// ErrNoPreview is returned when no staged preview content exists.
	ErrNoPreview = errors.New("no preview content staged")
)
