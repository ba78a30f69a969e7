// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-settings-sync/internal/adapter"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/merge"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/models"
)

// maxSyncRetries bounds the reconcile-and-retry loop on remote precondition
// failures. The source protocol retried without bound; under sustained
// contention that turns livelock into an observable error instead.
const maxSyncRetries = 5

// SynchroniserConfig holds the collaborators of one synchroniser instance.
// A struct because nine fields is too many for positional parameters.
type SynchroniserConfig struct {
	Key            models.ResourceKey
	Remote         adapter.RemoteStore
	Checkpoint     store.CheckpointStore
	Backups        store.BackupStore
	Previews       store.PreviewStore
	Local          store.LocalResource
	Engine         merge.Engine
	Formatting     merge.FormattingOptions
	DefaultContent string
	Logger         *logger.Logger
}

type synchroniser struct {
	key            models.ResourceKey
	remote         adapter.RemoteStore
	checkpoint     store.CheckpointStore
	backups        store.BackupStore
	previews       store.PreviewStore
	local          store.LocalResource
	engine         merge.Engine
	formatting     merge.FormattingOptions
	defaultContent string

	logger *logger.Logger
	events statusEvents

	// opMu serializes full cycles; Sync uses TryLock so a cycle racing an
	// in-flight one degrades to a no-op instead of queueing.
	opMu sync.Mutex

	stateMu        sync.Mutex
	status         models.SyncStatus
	enabled        bool
	preview        *models.SyncPreviewResult
	lastSeenRemote *models.UserData
	cancelInFlight context.CancelFunc
}

// NewSynchroniser constructs the engine for one resource. The instance
// starts enabled in the Uninitialized state and moves to Idle on its first
// cycle.
func NewSynchroniser(cfg SynchroniserConfig) Synchroniser {
	return &synchroniser{
		key:            cfg.Key,
		remote:         cfg.Remote,
		checkpoint:     cfg.Checkpoint,
		backups:        cfg.Backups,
		previews:       cfg.Previews,
		local:          cfg.Local,
		engine:         cfg.Engine,
		formatting:     cfg.Formatting,
		defaultContent: cfg.DefaultContent,
		logger:         cfg.Logger,
		status:         models.StatusUninitialized,
		enabled:        true,
	}
}

// Key implements [Synchroniser].
func (s *synchroniser) Key() models.ResourceKey {
	return s.key
}

// Status implements [Synchroniser].
func (s *synchroniser) Status() models.SyncStatus {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.status
}

// SetEnabled implements [Synchroniser].
func (s *synchroniser) SetEnabled(enabled bool) {
	s.stateMu.Lock()
	s.enabled = enabled
	cancel := s.cancelInFlight
	s.stateMu.Unlock()

	if !enabled && cancel != nil {
		cancel()
	}
}

// Sync implements [Synchroniser].
func (s *synchroniser) Sync(ctx context.Context) error {
	if !s.isEnabled() {
		s.logger.Debug().Str("resource", s.key.String()).Msg("sync skipped: resource disabled")
		return ErrTurnedOff
	}

	switch s.Status() {
	case models.StatusSyncing:
		s.logger.Debug().Str("resource", s.key.String()).Msg("sync skipped: already syncing")
		return nil
	case models.StatusHasConflicts:
		s.logger.Debug().Str("resource", s.key.String()).Msg("sync skipped: conflicts pending")
		return nil
	}

	if !s.opMu.TryLock() {
		return nil
	}
	defer s.opMu.Unlock()

	if s.Status() == models.StatusHasConflicts {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.setCancel(cancel)
	defer func() {
		cancel()
		s.setCancel(nil)
	}()

	s.setStatus(models.StatusSyncing)

	if err := s.runCycle(ctx); err != nil {
		s.setStatus(models.StatusIdle)
		if errors.Is(err, context.Canceled) {
			s.logger.Debug().Str("resource", s.key.String()).Msg("sync cancelled")
			return nil
		}
		return fmt.Errorf("sync %s: %w", s.key, err)
	}

	if s.Status() != models.StatusHasConflicts {
		s.setStatus(models.StatusIdle)
	}
	return nil
}

func (s *synchroniser) runCycle(ctx context.Context) error {
	remote, err := s.fetchRemote(ctx, true)
	if err != nil {
		return err
	}

	lastSync, err := s.checkpoint.Get(ctx)
	if err != nil {
		return err
	}

	return s.doSync(ctx, remote, lastSync, 0)
}

// doSync runs one reconciliation attempt and retries with a cache-bypassing
// refetch on remote precondition failure. Retrying re-runs the whole
// reconciliation rather than re-issuing the write, which keeps the result
// correct under concurrent writers.
func (s *synchroniser) doSync(ctx context.Context, remote models.RemoteUserData, lastSync *models.RemoteUserData, attempt int) error {
	if remote.SyncData != nil && remote.SyncData.Version > models.CurrentSyncDataVersion {
		return fmt.Errorf("%w: remote version %d, supported %d",
			ErrIncompatible, remote.SyncData.Version, models.CurrentSyncDataVersion)
	}

	err := s.performSync(ctx, remote, lastSync)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrPreconditionFailed) {
		return err
	}

	if attempt >= maxSyncRetries {
		return fmt.Errorf("%w: %w", ErrSyncRetriesExhausted, err)
	}

	s.logger.Debug().
		Str("resource", s.key.String()).
		Int("attempt", attempt+1).
		Msg("remote moved underneath the write, reconciling against fresh state")

	fresh, err := s.fetchRemote(ctx, false)
	if err != nil {
		return err
	}

	return s.doSync(ctx, fresh, lastSync, attempt+1)
}

func (s *synchroniser) performSync(ctx context.Context, remote models.RemoteUserData, lastSync *models.RemoteUserData) error {
	preview, err := s.generatePreview(ctx, remote, lastSync)
	if err != nil {
		return err
	}

	if preview == nil {
		s.setPreview(nil)
		// Nothing to reconcile. Forward the checkpoint when the remote ref
		// moved without a content change (or no checkpoint exists yet) so
		// the next cycle still starts from the agreed state.
		if remote.SyncData != nil && (lastSync == nil || lastSync.Ref != remote.Ref) {
			if err = s.checkpoint.Update(ctx, remote); err != nil {
				return err
			}
		}
		return nil
	}

	if preview.HasConflicts {
		s.logger.Info().Str("resource", s.key.String()).Msg("conflicts detected, waiting for resolution")
		s.setStatus(models.StatusHasConflicts)
		return nil
	}

	return s.apply(ctx, preview, false)
}

// generatePreview computes the three-way reconciliation for the cycle. It
// returns nil when there is nothing to do. The cancellation token is checked
// before every side effect so a superseded preview is discarded before it
// can touch disk.
func (s *synchroniser) generatePreview(ctx context.Context, remote models.RemoteUserData, lastSync *models.RemoteUserData) (*models.SyncPreviewResult, error) {
	localContent, stamp, err := s.local.Load(ctx)
	if err != nil {
		return nil, err
	}
	if localContent == "" {
		localContent = s.defaultContent
	}

	if err = s.engine.Validate(localContent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalInvalidContent, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	preview := &models.SyncPreviewResult{
		LocalContent: localContent,
		LocalStamp:   stamp,
		Remote:       remote,
		LastSync:     lastSync,
	}

	var lastSyncContent *string
	if lastSync != nil && lastSync.SyncData != nil {
		lastSyncContent = &lastSync.SyncData.Content
	}

	switch {
	case remote.SyncData != nil:
		remoteContent := remote.SyncData.Content
		if lastSyncContent != nil && *lastSyncContent == localContent && *lastSyncContent == remoteContent {
			// All three agree already.
			return nil, nil
		}

		result, err := s.engine.Merge(localContent, remoteContent, lastSyncContent, s.formatting)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", s.key, err)
		}
		if !result.HasChanges {
			return nil, nil
		}

		content := result.MergeContent
		preview.MergeContent = &content
		preview.HasConflicts = result.HasConflicts
		preview.HasLocalChanged = result.HasConflicts || content != localContent
		preview.HasRemoteChanged = result.HasConflicts || content != remoteContent

	case localContent != "":
		// First sync to a resource with nothing remote yet: local becomes
		// the new remote content.
		content := localContent
		preview.MergeContent = &content
		preview.HasRemoteChanged = true

	default:
		return nil, nil
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = s.previews.Write(ctx, *preview.MergeContent); err != nil {
		return nil, err
	}

	s.setPreview(preview)
	return preview, nil
}

// apply consumes preview: it writes the merged content to the local file
// and/or the remote store, then advances the checkpoint to the new agreed
// state. A remote precondition failure bubbles up to the doSync retry loop.
func (s *synchroniser) apply(ctx context.Context, preview *models.SyncPreviewResult, forcePush bool) error {
	if preview.MergeContent == nil {
		s.setPreview(nil)
		return nil
	}
	content := *preview.MergeContent

	if err := s.engine.Validate(content); err != nil {
		return fmt.Errorf("%w: %w", ErrLocalInvalidContent, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if preview.HasLocalChanged {
		if !preview.LocalStamp.IsZero() {
			if _, err := s.backups.Save(ctx, preview.LocalContent); err != nil {
				return err
			}
		}
		if err := s.local.Write(ctx, content, preview.LocalStamp); err != nil {
			return err
		}
	}

	newRemote := preview.Remote
	if preview.HasRemoteChanged {
		if err := ctx.Err(); err != nil {
			return err
		}

		envelope := models.SyncData{Version: models.CurrentSyncDataVersion, Content: content}
		payload, err := envelope.Marshal()
		if err != nil {
			return fmt.Errorf("encode envelope: %w", err)
		}

		ref := preview.Remote.Ref
		if forcePush {
			ref = ""
		}

		newRef, err := s.remote.Write(ctx, s.key, payload, ref)
		if err != nil {
			return err
		}

		newRemote = models.RemoteUserData{Ref: newRef, SyncData: &envelope}
		s.cacheRemote(&models.UserData{Ref: newRef, Content: &payload})
	}

	if err := s.previews.Delete(ctx); err != nil {
		s.logger.Err(err).Str("resource", s.key.String()).Msg("error deleting preview resource")
	}

	if newRemote.SyncData != nil && checkpointMoved(preview.LastSync, newRemote) {
		if err := s.checkpoint.Update(ctx, newRemote); err != nil {
			return err
		}
	}

	s.setPreview(nil)
	return nil
}

func checkpointMoved(lastSync *models.RemoteUserData, agreed models.RemoteUserData) bool {
	if lastSync == nil || lastSync.SyncData == nil {
		return true
	}
	return lastSync.Ref != agreed.Ref || lastSync.SyncData.Content != agreed.SyncData.Content
}

// Pull implements [Synchroniser].
func (s *synchroniser) Pull(ctx context.Context) error {
	if !s.isEnabled() {
		return ErrTurnedOff
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	remote, err := s.fetchRemote(ctx, false)
	if err != nil {
		return fmt.Errorf("pull %s: %w", s.key, err)
	}
	if remote.SyncData == nil {
		s.logger.Debug().Str("resource", s.key.String()).Msg("pull skipped: nothing stored remotely")
		return nil
	}
	if remote.SyncData.Version > models.CurrentSyncDataVersion {
		return fmt.Errorf("pull %s: %w", s.key, ErrIncompatible)
	}

	s.setStatus(models.StatusSyncing)

	if err = s.local.Replace(ctx, remote.SyncData.Content); err != nil {
		s.setStatus(models.StatusIdle)
		return fmt.Errorf("pull %s: %w", s.key, err)
	}
	if err = s.checkpoint.Update(ctx, remote); err != nil {
		s.setStatus(models.StatusIdle)
		return fmt.Errorf("pull %s: %w", s.key, err)
	}

	_ = s.previews.Delete(ctx)
	s.setPreview(nil)
	s.setStatus(models.StatusIdle)
	return nil
}

// Push implements [Synchroniser].
func (s *synchroniser) Push(ctx context.Context) error {
	if !s.isEnabled() {
		return ErrTurnedOff
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	localContent, _, err := s.local.Load(ctx)
	if err != nil {
		return fmt.Errorf("push %s: %w", s.key, err)
	}
	if localContent == "" {
		s.logger.Debug().Str("resource", s.key.String()).Msg("push skipped: no local content")
		return nil
	}
	if err = s.engine.Validate(localContent); err != nil {
		return fmt.Errorf("push %s: %w: %w", s.key, ErrLocalInvalidContent, err)
	}

	s.setStatus(models.StatusSyncing)

	envelope := models.SyncData{Version: models.CurrentSyncDataVersion, Content: localContent}
	payload, err := envelope.Marshal()
	if err != nil {
		s.setStatus(models.StatusIdle)
		return fmt.Errorf("push %s: encode envelope: %w", s.key, err)
	}

	newRef, err := s.remote.Write(ctx, s.key, payload, "")
	if err != nil {
		s.setStatus(models.StatusIdle)
		return fmt.Errorf("push %s: %w", s.key, err)
	}

	newRemote := models.RemoteUserData{Ref: newRef, SyncData: &envelope}
	s.cacheRemote(&models.UserData{Ref: newRef, Content: &payload})

	if err = s.checkpoint.Update(ctx, newRemote); err != nil {
		s.setStatus(models.StatusIdle)
		return fmt.Errorf("push %s: %w", s.key, err)
	}

	_ = s.previews.Delete(ctx)
	s.setPreview(nil)
	s.setStatus(models.StatusIdle)
	return nil
}

// Accept implements [Synchroniser].
func (s *synchroniser) Accept(ctx context.Context, content string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.Status() != models.StatusHasConflicts {
		return ErrNoConflicts
	}
	preview := s.getPreview()
	if preview == nil {
		return ErrNoConflicts
	}

	resolved := content
	preview.MergeContent = &resolved
	preview.HasConflicts = false
	preview.HasLocalChanged = true
	preview.HasRemoteChanged = true

	if err := s.apply(ctx, preview, true); err != nil {
		return fmt.Errorf("accept %s: %w", s.key, err)
	}

	s.setStatus(models.StatusIdle)
	return nil
}

// Stop implements [Synchroniser]. Cancellation happens before the operation
// lock is taken so an in-flight cycle aborts instead of being waited out.
func (s *synchroniser) Stop(ctx context.Context) error {
	s.stateMu.Lock()
	cancel := s.cancelInFlight
	s.stateMu.Unlock()
	if cancel != nil {
		cancel()
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.previews.Delete(ctx); err != nil {
		s.logger.Err(err).Str("resource", s.key.String()).Msg("error deleting preview resource")
	}
	s.setPreview(nil)
	s.setStatus(models.StatusIdle)
	return nil
}

// HandleLocalChange implements [Synchroniser].
func (s *synchroniser) HandleLocalChange(ctx context.Context) error {
	if s.Status() != models.StatusHasConflicts {
		s.events.fireLocalChange()
		return nil
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	preview := s.getPreview()
	if preview == nil {
		return nil
	}

	// Re-run against the previously fetched remote and checkpoint state:
	// refetching here could mask the conflict the user is resolving.
	if err := s.doSync(ctx, preview.Remote, preview.LastSync, 0); err != nil {
		return fmt.Errorf("resync %s after local change: %w", s.key, err)
	}

	if s.getPreview() == nil {
		// The change resolved the divergence and the cycle applied cleanly.
		s.setStatus(models.StatusIdle)
	}
	return nil
}

// OnStatusChange implements [Synchroniser].
func (s *synchroniser) OnStatusChange(fn func(models.SyncStatus)) {
	s.events.onStatusChange(fn)
}

// OnConflictsDetected implements [Synchroniser].
func (s *synchroniser) OnConflictsDetected(fn func()) {
	s.events.onConflictsDetected(fn)
}

// OnConflictsResolved implements [Synchroniser].
func (s *synchroniser) OnConflictsResolved(fn func()) {
	s.events.onConflictsResolved(fn)
}

// OnLocalChange implements [Synchroniser].
func (s *synchroniser) OnLocalChange(fn func()) {
	s.events.onLocalChange(fn)
}

func (s *synchroniser) fetchRemote(ctx context.Context, useCache bool) (models.RemoteUserData, error) {
	var previous *models.UserData
	if useCache {
		previous = s.cachedRemote()
	}

	data, err := s.remote.Read(ctx, s.key, previous)
	if err != nil {
		return models.RemoteUserData{}, err
	}

	s.cacheRemote(&data)
	return models.ParseRemoteUserData(data)
}

func (s *synchroniser) setStatus(status models.SyncStatus) {
	s.stateMu.Lock()
	old := s.status
	if old == status {
		s.stateMu.Unlock()
		return
	}
	s.status = status
	s.stateMu.Unlock()

	s.logger.Debug().
		Str("resource", s.key.String()).
		Str("from", old.String()).
		Str("to", status.String()).
		Msg("sync status changed")

	s.events.fireStatusChange(status)
	if status == models.StatusHasConflicts {
		s.events.fireConflictsDetected()
	}
	if old == models.StatusHasConflicts {
		s.events.fireConflictsResolved()
	}
}

func (s *synchroniser) isEnabled() bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.enabled
}

func (s *synchroniser) setCancel(cancel context.CancelFunc) {
	s.stateMu.Lock()
	s.cancelInFlight = cancel
	s.stateMu.Unlock()
}

func (s *synchroniser) setPreview(preview *models.SyncPreviewResult) {
	s.stateMu.Lock()
	s.preview = preview
	s.stateMu.Unlock()
}

func (s *synchroniser) getPreview() *models.SyncPreviewResult {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.preview
}

func (s *synchroniser) cachedRemote() *models.UserData {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.lastSeenRemote
}

func (s *synchroniser) cacheRemote(data *models.UserData) {
	s.stateMu.Lock()
	s.lastSeenRemote = data
	s.stateMu.Unlock()
}
