// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package service

import (
	"errors"

	"github.com/mkarneev/homestock/internal/adapter"
	"github.com/mkarneev/homestock/internal/crypto"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/models"
)

// syncFailure translates an internal error into the uniform failed
// SyncResult shown to the user. Sentinel errors get short stable messages;
// anything unexpected falls through with its own text.
func syncFailure(err error) models.SyncResult {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return models.FailedSyncResult("sync is not configured on this device")
	case errors.Is(err, ErrSyncInProgress):
		return models.FailedSyncResult("sync already in progress")
	case errors.Is(err, adapter.ErrBlobNotFound):
		return models.FailedSyncResult("no sync data found for this token")
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return models.FailedSyncResult("decryption failed: wrong sync token or corrupted data")
	case errors.Is(err, adapter.ErrOffline):
		return models.FailedSyncResult("sync server is unreachable")
	case errors.Is(err, adapter.ErrUploadFailed):
		return models.FailedSyncResult("upload to sync server failed")
	case errors.Is(err, adapter.ErrDownloadFailed):
		return models.FailedSyncResult("download from sync server failed")
	case errors.Is(err, store.ErrInvalidFormat):
		return models.FailedSyncResult("sync data has an invalid format")
	default:
		return models.FailedSyncResult(err.Error())
	}
}
