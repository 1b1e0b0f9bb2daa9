// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkarneev/homestock/internal/adapter"
	"github.com/mkarneev/homestock/internal/crypto"
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/models"
)

const (
	syncFilePrefix = "homestock-sync-"
	syncFileSuffix = ".json"
)

// syncFilename derives the blob filename deterministically from the token,
// so every device holding the token addresses the same blob.
func syncFilename(token string) string {
	return syncFilePrefix + token + syncFileSuffix
}

type syncService struct {
	items      store.ItemRepository
	categories store.CategoryRepository
	settings   store.SettingsRepository
	snapshot   store.SnapshotRepository
	blobs      adapter.BlobClient
	vault      crypto.VaultService
	devices    DeviceService

	// inFlight serializes sync operations per token. Overlapping calls on
	// the same token are rejected, not queued.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSyncService(storages *store.ClientStorages, blobs adapter.BlobClient, vault crypto.VaultService, devices DeviceService) SyncService {
	return &syncService{
		items:      storages.Items,
		categories: storages.Categories,
		settings:   storages.Settings,
		snapshot:   storages.Snapshot,
		blobs:      blobs,
		vault:      vault,
		devices:    devices,
		inFlight:   make(map[string]struct{}),
	}
}

func (s *syncService) acquire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[token]; busy {
		return false
	}
	s.inFlight[token] = struct{}{}
	return true
}

func (s *syncService) release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, token)
}

func (s *syncService) GenerateSync(ctx context.Context) models.SyncResult {
	token := uuid.NewString()
	if !s.acquire(token) {
		return syncFailure(ErrSyncInProgress)
	}
	defer s.release(token)

	filename := syncFilename(token)
	if err := s.uploadSnapshot(ctx, token, filename); err != nil {
		return syncFailure(err)
	}

	if err := s.persistConfig(ctx, token, filename); err != nil {
		return syncFailure(err)
	}
	s.recordSyncTime(ctx, time.Now())

	return models.OkSyncResult(token)
}

func (s *syncService) JoinSync(ctx context.Context, token string) models.SyncResult {
	if token == "" {
		return syncFailure(fmt.Errorf("%w: empty token", adapter.ErrBlobNotFound))
	}
	if !s.acquire(token) {
		return syncFailure(ErrSyncInProgress)
	}
	defer s.release(token)

	filename := syncFilename(token)

	refs, err := s.blobs.List(ctx, filename)
	if err != nil {
		return syncFailure(err)
	}
	if len(refs) == 0 {
		return syncFailure(adapter.ErrBlobNotFound)
	}

	raw, err := s.blobs.Fetch(ctx, refs[0].URL)
	if err != nil {
		return syncFailure(err)
	}

	var env models.Envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return syncFailure(fmt.Errorf("%w: %w", store.ErrInvalidFormat, err))
	}

	var snapshot models.SyncSnapshot
	if err = s.vault.Decrypt(env, token, &snapshot); err != nil {
		return syncFailure(err)
	}
	if snapshot.Items == nil || snapshot.Categories == nil {
		return syncFailure(fmt.Errorf("%w: snapshot missing items or categories", store.ErrInvalidFormat))
	}

	// One transaction for both tables: a failed join must not leave remote
	// items next to local categories.
	if err = s.snapshot.ReplaceAll(ctx, snapshot.Items, snapshot.Categories); err != nil {
		return syncFailure(err)
	}

	if err = s.persistConfig(ctx, token, filename); err != nil {
		return syncFailure(err)
	}
	s.recordSyncTime(ctx, time.Now())

	return models.OkSyncResult(token)
}

func (s *syncService) SyncNow(ctx context.Context) models.SyncResult {
	status, err := s.Status(ctx)
	if err != nil {
		return syncFailure(err)
	}
	if !status.Configured() {
		return syncFailure(ErrNotConfigured)
	}

	if !s.acquire(status.Token) {
		return syncFailure(ErrSyncInProgress)
	}
	defer s.release(status.Token)

	if err = s.uploadSnapshot(ctx, status.Token, status.Filename); err != nil {
		return syncFailure(err)
	}
	s.recordSyncTime(ctx, time.Now())

	return models.OkSyncResult(status.Token)
}

func (s *syncService) UnSync(ctx context.Context) models.SyncResult {
	// Local configuration only. The remote blob stays so other devices in
	// the group keep working.
	for _, key := range []string{
		store.SettingSyncToken,
		store.SettingSyncFilename,
		store.SettingLastLocalSync,
		store.SettingLastRemoteSync,
	} {
		if err := s.settings.DeleteSetting(ctx, key); err != nil {
			return syncFailure(fmt.Errorf("clear sync config: %w", err))
		}
	}

	return models.OkSyncResult("")
}

func (s *syncService) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus

	token, err := s.getSetting(ctx, store.SettingSyncToken)
	if err != nil {
		return models.SyncStatus{}, err
	}
	filename, err := s.getSetting(ctx, store.SettingSyncFilename)
	if err != nil {
		return models.SyncStatus{}, err
	}
	status.Token = token
	status.Filename = filename

	if ts := s.getTimeSetting(ctx, store.SettingLastLocalSync); ts != nil {
		status.LastLocalSync = ts
	}
	if ts := s.getTimeSetting(ctx, store.SettingLastRemoteSync); ts != nil {
		status.LastRemoteSync = ts
	}

	return status, nil
}

func (s *syncService) CheckRemoteStatus(ctx context.Context) error {
	status, err := s.Status(ctx)
	if err != nil {
		return fmt.Errorf("check remote status: %w", err)
	}
	if !status.Configured() {
		return nil
	}

	refs, err := s.blobs.List(ctx, status.Filename)
	if err != nil {
		return fmt.Errorf("check remote status: %w", err)
	}
	if len(refs) == 0 {
		return nil
	}

	if err = s.settings.SetSetting(ctx, store.SettingLastRemoteSync, refs[0].UploadedAt.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("check remote status: %w", err)
	}

	return nil
}

// uploadSnapshot encrypts the current local state under token and overwrites
// the remote blob at filename.
func (s *syncService) uploadSnapshot(ctx context.Context, token, filename string) error {
	items, err := s.items.GetAllItems(ctx)
	if err != nil {
		return fmt.Errorf("snapshot items: %w", err)
	}
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return fmt.Errorf("snapshot categories: %w", err)
	}

	snapshot := models.NewSyncSnapshot(items, categories, s.devices.GetDeviceID(ctx))

	env, err := s.vault.Encrypt(snapshot, token)
	if err != nil {
		return fmt.Errorf("encrypt snapshot: %w", err)
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	url, err := s.blobs.Upload(ctx, filename, payload)
	if err != nil {
		return err
	}
	if url == "" {
		return adapter.ErrUploadFailed
	}

	return nil
}

func (s *syncService) persistConfig(ctx context.Context, token, filename string) error {
	if err := s.settings.SetSetting(ctx, store.SettingSyncToken, token); err != nil {
		return fmt.Errorf("persist sync token: %w", err)
	}
	if err := s.settings.SetSetting(ctx, store.SettingSyncFilename, filename); err != nil {
		return fmt.Errorf("persist sync filename: %w", err)
	}
	return nil
}

// recordSyncTime stamps both markers after a successful upload: the upload
// this device just completed is by definition the newest remote state. The
// sync itself already succeeded, so a failed stamp is logged, not raised.
func (s *syncService) recordSyncTime(ctx context.Context, at time.Time) {
	log := logger.FromContext(ctx)

	ts := at.Format(time.RFC3339Nano)
	for _, key := range []string{store.SettingLastLocalSync, store.SettingLastRemoteSync} {
		if err := s.settings.SetSetting(ctx, key, ts); err != nil {
			log.Err(err).
				Str("func", "syncService.recordSyncTime").
				Str("setting", key).
				Msg("failed to record sync timestamp")
		}
	}
}

func (s *syncService) getSetting(ctx context.Context, key string) (string, error) {
	value, err := s.settings.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *syncService) getTimeSetting(ctx context.Context, key string) *time.Time {
	value, err := s.settings.GetSetting(ctx, key)
	if err != nil {
		return nil
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &ts
}
