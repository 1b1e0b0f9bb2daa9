// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarneev/homestock/internal/crypto"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/models"
)

type syncFixture struct {
	items      *memItems
	categories *memCategories
	settings   *memSettings
	snapshot   *memSnapshot
	blobs      *memBlobs
	vault      crypto.VaultService
	sync       SyncService
}

func newSyncFixture(seed ...models.StockItem) *syncFixture {
	f := &syncFixture{
		items:      newMemItems(seed...),
		categories: newMemCategories("Pantry", "Cleaning"),
		settings:   newMemSettings(),
		blobs:      newMemBlobs(),
		vault:      crypto.NewVaultService(),
	}
	f.snapshot = &memSnapshot{items: f.items, categories: f.categories}

	storages := &store.ClientStorages{
		Items:      f.items,
		Categories: f.categories,
		Settings:   f.settings,
		Snapshot:   f.snapshot,
	}
	devices := NewDeviceService(f.settings, f.vault)
	f.sync = NewSyncService(storages, f.blobs, f.vault, devices)

	return f
}

func seedItem(name string, stock int, category string) models.StockItem {
	return models.StockItem{
		ID:       name + "-id",
		Name:     name,
		Stock:    stock,
		Category: category,
		History: []models.StockHistory{{
			Timestamp:     time.Now(),
			Change:        stock,
			PreviousStock: 0,
			NewStock:      stock,
			Action:        models.ActionSet,
		}},
	}
}

func TestGenerateSync_Success(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	result := f.sync.GenerateSync(ctx)

	require.True(t, result.Success, result.Error)
	require.NotEmpty(t, result.Token)

	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Token, status.Token)
	assert.Equal(t, syncFilename(result.Token), status.Filename)
	assert.NotNil(t, status.LastLocalSync)
	assert.NotNil(t, status.LastRemoteSync)

	// The uploaded blob must decrypt under the token back to the snapshot.
	raw, ok := f.blobs.blobs[status.Filename]
	require.True(t, ok)

	var env models.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, models.SchemeAuthenticated, env.Scheme())

	var snapshot models.SyncSnapshot
	require.NoError(t, f.vault.Decrypt(env, result.Token, &snapshot))
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "Soap", snapshot.Items[0].Name)
	assert.Len(t, snapshot.Categories, 2)
	assert.NotEmpty(t, snapshot.DeviceID)
}

func TestGenerateSync_UploadFailure(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))
	f.blobs.failUpload = true

	result := f.sync.GenerateSync(ctx)

	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Configured())
}

func TestGenerateSync_TimestampWriteFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))
	f.settings.failSet = map[string]error{
		store.SettingLastLocalSync:  errors.New("disk full"),
		store.SettingLastRemoteSync: errors.New("disk full"),
	}

	// The upload itself succeeded, so a failed timestamp write must not turn
	// the whole sync into a failure.
	result := f.sync.GenerateSync(ctx)
	require.True(t, result.Success, result.Error)

	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Token, status.Token)
	assert.Nil(t, status.LastLocalSync)
}

func TestJoinSync_Success(t *testing.T) {
	ctx := context.Background()

	// Device A generates, device B joins with A's token.
	a := newSyncFixture(seedItem("Soap", 2, "Cleaning"), seedItem("Rice", 5, "Pantry"))
	generated := a.sync.GenerateSync(ctx)
	require.True(t, generated.Success, generated.Error)

	b := newSyncFixture(seedItem("Stale", 1, "Other"))
	b.blobs.blobs = a.blobs.blobs
	b.blobs.uploadedAt = a.blobs.uploadedAt

	joined := b.sync.JoinSync(ctx, generated.Token)
	require.True(t, joined.Success, joined.Error)

	items, err := b.items.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Rice", items[0].Name)
	assert.Equal(t, "Soap", items[1].Name)

	status, err := b.sync.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, generated.Token, status.Token)
}

func TestJoinSync_MissingBlob(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	result := f.sync.JoinSync(ctx, "wrong-token")

	require.False(t, result.Success)
	assert.Equal(t, "no sync data found for this token", result.Error)

	// Failure must not configure sync, and local data stays untouched.
	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Configured())

	items, err := f.items.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestJoinSync_WrongToken(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	// A blob exists under the derived filename but was encrypted under a
	// different token.
	env, err := f.vault.Encrypt(models.SyncSnapshot{Items: []models.StockItem{}, Categories: []models.Category{}}, "other-token")
	require.NoError(t, err)
	payload, err := json.Marshal(env)
	require.NoError(t, err)
	_, err = f.blobs.Upload(ctx, syncFilename("stolen-token"), payload)
	require.NoError(t, err)

	result := f.sync.JoinSync(ctx, "stolen-token")

	require.False(t, result.Success)
	assert.Equal(t, "decryption failed: wrong sync token or corrupted data", result.Error)

	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Configured())
}

func TestJoinSync_ApplyFailureKeepsLocalData(t *testing.T) {
	ctx := context.Background()

	a := newSyncFixture(seedItem("Soap", 2, "Cleaning"))
	generated := a.sync.GenerateSync(ctx)
	require.True(t, generated.Success, generated.Error)

	b := newSyncFixture(seedItem("Stale", 1, "Other"), seedItem("Older", 3, "Other"))
	b.blobs.blobs = a.blobs.blobs
	b.blobs.uploadedAt = a.blobs.uploadedAt
	b.snapshot.failWith = errors.New("disk full")

	result := b.sync.JoinSync(ctx, generated.Token)
	require.False(t, result.Success)

	// A failed apply leaves items, categories and configuration exactly as
	// they were: no remote items next to local categories.
	items, err := b.items.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Older", items[0].Name)
	assert.Equal(t, "Stale", items[1].Name)

	categories, err := b.categories.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{Name: "Pantry"}, {Name: "Cleaning"}}, categories)

	status, err := b.sync.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Configured())
}

func TestSyncNow_NotConfigured(t *testing.T) {
	f := newSyncFixture()

	result := f.sync.SyncNow(context.Background())

	require.False(t, result.Success)
	assert.Equal(t, "sync is not configured on this device", result.Error)
}

func TestSyncNow_Success(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	generated := f.sync.GenerateSync(ctx)
	require.True(t, generated.Success)

	// Mutate local data, then sync again. The remote blob must carry the
	// new state.
	require.NoError(t, f.items.SaveItem(ctx, seedItem("Rice", 5, "Pantry")))

	result := f.sync.SyncNow(ctx)
	require.True(t, result.Success, result.Error)

	raw := f.blobs.blobs[syncFilename(generated.Token)]
	var env models.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	var snapshot models.SyncSnapshot
	require.NoError(t, f.vault.Decrypt(env, generated.Token, &snapshot))
	assert.Len(t, snapshot.Items, 2)
}

func TestSyncNow_FailureKeepsTimestamps(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	generated := f.sync.GenerateSync(ctx)
	require.True(t, generated.Success)
	before, err := f.sync.Status(ctx)
	require.NoError(t, err)

	f.blobs.failUpload = true
	result := f.sync.SyncNow(ctx)
	require.False(t, result.Success)

	after, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.True(t, before.LastLocalSync.Equal(*after.LastLocalSync))
}

func TestUnSync(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	generated := f.sync.GenerateSync(ctx)
	require.True(t, generated.Success)
	filename := syncFilename(generated.Token)

	result := f.sync.UnSync(ctx)
	require.True(t, result.Success)

	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Configured())

	// Remote blob and local items stay untouched.
	_, ok := f.blobs.blobs[filename]
	assert.True(t, ok)
	items, err := f.items.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSyncNow_RejectsOverlap(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	generated := f.sync.GenerateSync(ctx)
	require.True(t, generated.Success)

	svc := f.sync.(*syncService)
	require.True(t, svc.acquire(generated.Token))
	defer svc.release(generated.Token)

	result := f.sync.SyncNow(ctx)

	require.False(t, result.Success)
	assert.Equal(t, "sync already in progress", result.Error)
}

func TestCheckRemoteStatus(t *testing.T) {
	ctx := context.Background()
	f := newSyncFixture(seedItem("Soap", 2, "Cleaning"))

	// Unconfigured: silently does nothing.
	require.NoError(t, f.sync.CheckRemoteStatus(ctx))

	generated := f.sync.GenerateSync(ctx)
	require.True(t, generated.Success)

	// Another device uploads later; the poller should pick up the newer
	// remote timestamp.
	filename := syncFilename(generated.Token)
	remoteTime := time.Now().Add(time.Hour)
	f.blobs.uploadedAt[filename] = remoteTime

	require.NoError(t, f.sync.CheckRemoteStatus(ctx))

	status, err := f.sync.Status(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LastRemoteSync)
	assert.True(t, status.LastRemoteSync.Equal(remoteTime))
}
