// SPDX-License-Identifier: Apache-2.0

// Package client assembles and runs the sync client: it wires one
// synchroniser per resource category on top of the shared remote store
// adapter and drives them with the periodic sync job until the process is
// told to stop.
package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-settings-sync/internal/adapter"
	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/merge"
	"github.com/MKhiriev/go-settings-sync/internal/service"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/internal/token"
	"github.com/MKhiriev/go-settings-sync/models"
)

type App struct {
	synchronisers []service.Synchroniser
	syncJob       service.SyncJob
	cfg           *config.ClientConfig

	logger *logger.Logger
}

// NewApp wires the full client: token provider, remote store adapter, the
// per-resource stores and synchronisers, and the periodic sync job.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	provider := token.NewProvider(cfg.AuthToken, nil, log)

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, provider, log)
	if err != nil {
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	if err = os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	synchronisers := make([]service.Synchroniser, 0, len(models.AllResourceKeys()))
	for _, key := range models.AllResourceKeys() {
		s := service.NewSynchroniser(service.SynchroniserConfig{
			Key:        key,
			Remote:     remote,
			Checkpoint: store.NewCheckpointStore(cfg.Storage.DataDir, key, log),
			Backups:    store.NewBackupStore(cfg.Storage.DataDir, key, log),
			Previews:   store.NewPreviewStore(cfg.Storage.DataDir, key),
			Local:      store.NewLocalResource(cfg.Storage.DataDir, key),
			Engine:     merge.ForResource(key),
			Formatting: merge.FormattingOptions{InsertSpaces: true, TabSize: 4},
			Logger:     log,
		})

		// внешнее изменение локального файла запускает внеочередной цикл
		s.OnLocalChange(func() {
			go func() {
				if err := s.Sync(context.Background()); err != nil {
					log.Err(err).Str("resource", s.Key().String()).Msg("sync after local change failed")
				}
			}()
		})

		synchronisers = append(synchronisers, s)
	}

	return &App{
		synchronisers: synchronisers,
		syncJob:       service.NewSyncJob(synchronisers, log),
		cfg:           cfg,
		logger:        log,
	}, nil
}

// Run starts the periodic sync job and blocks until a termination signal
// arrives, then stops every synchroniser.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.logger.Info().Dur("interval", a.cfg.SyncInterval).Msg("starting sync job")
	a.syncJob.Start(ctx, a.cfg.SyncInterval)
	defer a.syncJob.Stop()

	<-ctx.Done()

	a.logger.Info().Msg("shutting down")
	for _, s := range a.synchronisers {
		if err := s.Stop(context.Background()); err != nil {
			a.logger.Err(err).Str("resource", s.Key().String()).Msg("error stopping synchroniser")
		}
	}

	return nil
}
