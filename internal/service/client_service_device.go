// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkarneev/homestock/internal/crypto"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/models"
)

// placeholderDeviceID is returned when no settings store is available, e.g.
// in a non-interactive context. It is deliberately not a valid uuid so it
// can never collide with a persisted id.
const placeholderDeviceID = "ephemeral-device"

// pairingTokenTTL bounds how long a pairing token stays valid.
const pairingTokenTTL = 24 * time.Hour

type deviceService struct {
	settings store.SettingsRepository
	vault    crypto.VaultService
}

func NewDeviceService(settings store.SettingsRepository, vault crypto.VaultService) DeviceService {
	return &deviceService{settings: settings, vault: vault}
}

func (s *deviceService) GetDeviceID(ctx context.Context) string {
	if s.settings == nil {
		return placeholderDeviceID
	}

	id, err := s.settings.GetSetting(ctx, store.SettingDeviceID)
	if err == nil && id != "" {
		return id
	}
	// Only a confirmed absence may mint a new id. A transient read failure
	// must not overwrite the stable identity with a fresh one.
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return placeholderDeviceID
	}

	id = uuid.NewString()
	if err = s.settings.SetSetting(ctx, store.SettingDeviceID, id); err != nil {
		return placeholderDeviceID
	}

	return id
}

func (s *deviceService) GetDeviceInfo(ctx context.Context) (models.Device, error) {
	if s.settings == nil {
		return models.Device{}, store.ErrSettingNotFound
	}

	now := time.Now()

	raw, err := s.settings.GetSetting(ctx, store.SettingDeviceInfo)
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return models.Device{}, fmt.Errorf("get device info: %w", err)
	}

	var device models.Device
	if err == nil && json.Unmarshal([]byte(raw), &device) == nil && device.ID != "" {
		device.LastSeenAt = now
	} else {
		id := s.GetDeviceID(ctx)
		device = models.Device{
			ID:         id,
			Name:       friendlyDeviceName(id),
			Platform:   runtime.GOOS,
			CreatedAt:  now,
			LastSeenAt: now,
		}
	}

	if err = s.saveDeviceInfo(ctx, device); err != nil {
		return models.Device{}, err
	}

	return device, nil
}

func (s *deviceService) saveDeviceInfo(ctx context.Context, device models.Device) error {
	payload, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("encode device info: %w", err)
	}
	if err = s.settings.SetSetting(ctx, store.SettingDeviceInfo, string(payload)); err != nil {
		return fmt.Errorf("save device info: %w", err)
	}
	return nil
}

func friendlyDeviceName(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("homestock on %s (%s)", runtime.GOOS, short)
}

func (s *deviceService) AddToSyncGroup(ctx context.Context, device models.Device) error {
	group, err := s.GetSyncGroup(ctx)
	if err != nil {
		return err
	}

	if group.ID == "" {
		group = models.SyncGroup{
			ID:        uuid.NewString(),
			Name:      "household",
			CreatedAt: time.Now(),
		}
	}

	for _, d := range group.Devices {
		if d.ID == device.ID {
			return nil
		}
	}
	group.Devices = append(group.Devices, device)
	group.UpdatedAt = time.Now()

	return s.ReplaceSyncGroup(ctx, group)
}

func (s *deviceService) RemoveFromSyncGroup(ctx context.Context, deviceID string) error {
	group, err := s.GetSyncGroup(ctx)
	if err != nil {
		return err
	}

	kept := group.Devices[:0]
	for _, d := range group.Devices {
		if d.ID != deviceID {
			kept = append(kept, d)
		}
	}
	group.Devices = kept
	group.UpdatedAt = time.Now()

	return s.ReplaceSyncGroup(ctx, group)
}

func (s *deviceService) IsInSyncGroup(ctx context.Context) (bool, error) {
	group, err := s.GetSyncGroup(ctx)
	if err != nil {
		return false, err
	}

	id := s.GetDeviceID(ctx)
	for _, d := range group.Devices {
		if d.ID == id {
			return true, nil
		}
	}

	return false, nil
}

func (s *deviceService) ReplaceSyncGroup(ctx context.Context, group models.SyncGroup) error {
	payload, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("encode sync group: %w", err)
	}
	if err = s.settings.SetSetting(ctx, store.SettingSyncGroup, string(payload)); err != nil {
		return fmt.Errorf("save sync group: %w", err)
	}
	return nil
}

func (s *deviceService) GetSyncGroup(ctx context.Context) (models.SyncGroup, error) {
	raw, err := s.settings.GetSetting(ctx, store.SettingSyncGroup)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.SyncGroup{}, nil
	}
	if err != nil {
		return models.SyncGroup{}, fmt.Errorf("get sync group: %w", err)
	}

	var group models.SyncGroup
	if err = json.Unmarshal([]byte(raw), &group); err != nil {
		return models.SyncGroup{}, fmt.Errorf("%w: sync group: %w", store.ErrInvalidFormat, err)
	}

	return group, nil
}

func (s *deviceService) GeneratePairingToken(ctx context.Context) (string, error) {
	key, err := s.pairingKey(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   s.GetDeviceID(ctx),
		"nonce": uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(pairingTokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign pairing token: %w", err)
	}

	return token, nil
}

func (s *deviceService) ValidatePairingToken(ctx context.Context, tokenString string) (string, error) {
	key, err := s.pairingKey(ctx)
	if err != nil {
		return "", err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrPairingTokenExpired
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidPairingToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidPairingToken
	}
	deviceID, err := claims.GetSubject()
	if err != nil || deviceID == "" {
		return "", ErrInvalidPairingToken
	}

	return deviceID, nil
}

// pairingKey returns the persisted per-device HMAC key, generating one on
// first use.
func (s *deviceService) pairingKey(ctx context.Context) ([]byte, error) {
	raw, err := s.settings.GetSetting(ctx, store.SettingPairingKey)
	if err == nil && raw != "" {
		return []byte(raw), nil
	}
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return nil, fmt.Errorf("get pairing key: %w", err)
	}

	generated, err := s.vault.GenerateSecureKey()
	if err != nil {
		return nil, fmt.Errorf("generate pairing key: %w", err)
	}
	if err = s.settings.SetSetting(ctx, store.SettingPairingKey, generated); err != nil {
		return nil, fmt.Errorf("save pairing key: %w", err)
	}

	return []byte(generated), nil
}
