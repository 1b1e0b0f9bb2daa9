package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarneev/homestock/internal/logger"
)

// Well-known settings keys. All values are plain strings or JSON text; the
// only schema evolution allowed here is additive keys.
const (
	SettingSyncToken      = "sync_token"
	SettingSyncFilename   = "sync_filename"
	SettingLastLocalSync  = "last_local_sync"
	SettingLastRemoteSync = "last_remote_sync"
	SettingDeviceID       = "device_id"
	SettingDeviceInfo     = "device_info"
	SettingSyncGroup      = "sync_group"
	SettingPairingKey     = "pairing_key"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.GetSetting").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("failed to read setting (key=%s): %w", key, err)
	}

	return value, nil
}

func (r *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertSetting, key, value); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SetSetting").
			Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("failed to write setting (key=%s): %w", key, err)
	}

	return nil
}

func (r *settingsRepository) DeleteSetting(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.DeleteSetting").
			Str("key", key).
			Msg("failed to delete setting")
		return fmt.Errorf("failed to delete setting (key=%s): %w", key, err)
	}

	return nil
}
