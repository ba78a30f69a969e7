// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/mock"
	"github.com/MKhiriev/go-settings-sync/models"
)

func TestSyncJob_StartSyncsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	done := make(chan struct{})

	s := mock.NewMockSynchroniser(ctrl)
	s.EXPECT().Key().Return(models.ResourceSettings).AnyTimes()
	s.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) error {
		if calls.Add(1) == 1 {
			close(done)
		}
		return nil
	}).AnyTimes()

	j := NewSyncJob([]Synchroniser{s}, logger.Nop())
	j.Start(context.Background(), time.Hour)
	defer j.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first sync did not run")
	}
}

func TestSyncJob_TicksEveryInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	done := make(chan struct{})

	s := mock.NewMockSynchroniser(ctrl)
	s.EXPECT().Key().Return(models.ResourceSettings).AnyTimes()
	s.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) error {
		if calls.Add(1) == 3 {
			close(done)
		}
		return nil
	}).AnyTimes()

	j := NewSyncJob([]Synchroniser{s}, logger.Nop())
	j.Start(context.Background(), 10*time.Millisecond)
	defer j.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("expected at least 3 sync runs, got %d", calls.Load())
	}
}

func TestSyncJob_SyncErrorDoesNotStopTheLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	done := make(chan struct{})

	s := mock.NewMockSynchroniser(ctrl)
	s.EXPECT().Key().Return(models.ResourceSettings).AnyTimes()
	s.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) error {
		if calls.Add(1) == 2 {
			close(done)
		}
		return errors.New("remote unavailable")
	}).AnyTimes()

	j := NewSyncJob([]Synchroniser{s}, logger.Nop())
	j.Start(context.Background(), 10*time.Millisecond)
	defer j.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop stopped after a failing sync")
	}
}

func TestSyncJob_StopWaitsForTheLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockSynchroniser(ctrl)
	s.EXPECT().Key().Return(models.ResourceSettings).AnyTimes()
	s.EXPECT().Sync(gomock.Any()).Return(nil).AnyTimes()

	j := NewSyncJob([]Synchroniser{s}, logger.Nop())
	j.Start(context.Background(), 10*time.Millisecond)

	j.Stop()
	// повторный Stop безопасен
	j.Stop()
}

func TestSyncJob_RestartReplacesPreviousLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	done := make(chan struct{})

	s := mock.NewMockSynchroniser(ctrl)
	s.EXPECT().Key().Return(models.ResourceSettings).AnyTimes()
	s.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) error {
		if calls.Add(1) == 1 {
			close(done)
		}
		return nil
	}).AnyTimes()

	j := NewSyncJob([]Synchroniser{s}, logger.Nop())
	j.Start(context.Background(), time.Hour)
	j.Start(context.Background(), time.Hour) // второй запуск останавливает первый

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("restarted job did not sync")
	}
	j.Stop()
	assert.GreaterOrEqual(t, calls.Load(), int64(1))
}

func TestSyncJob_SyncsEveryResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := models.AllResourceKeys()
	require.NotEmpty(t, keys)

	done := make(chan struct{})
	var remaining atomic.Int64
	remaining.Store(int64(len(keys)))

	synchronisers := make([]Synchroniser, 0, len(keys))
	for _, key := range keys {
		s := mock.NewMockSynchroniser(ctrl)
		s.EXPECT().Key().Return(key).AnyTimes()
		s.EXPECT().Sync(gomock.Any()).DoAndReturn(func(context.Context) error {
			if remaining.Add(-1) == 0 {
				close(done)
			}
			return nil
		}).MinTimes(1)
		synchronisers = append(synchronisers, s)
	}

	j := NewSyncJob(synchronisers, logger.Nop())
	j.Start(context.Background(), time.Hour)
	defer j.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("not every resource was synced")
	}
	assert.Zero(t, remaining.Load())
}
