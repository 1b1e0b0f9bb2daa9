package service

import "errors"

var (
	// ErrNotConfigured is returned when a sync operation is attempted before
	// sync has been set up on this device.
	ErrNotConfigured = errors.New("sync is not configured")

	// ErrSyncInProgress is returned when a sync operation overlaps another
	// one on the same token.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNameRequired is returned when an item or category is created with
	// an empty name.
	ErrNameRequired = errors.New("name must not be empty")

	// ErrInvalidPairingToken is returned when a pairing token fails
	// signature or shape validation.
	ErrInvalidPairingToken = errors.New("invalid pairing token")

	// ErrPairingTokenExpired is returned when a pairing token is past its
	// validity window.
	ErrPairingTokenExpired = errors.New("pairing token expired")
)
