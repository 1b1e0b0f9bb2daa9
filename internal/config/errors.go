package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when storage settings are
	// missing or unusable.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when the server listen address
	// is missing.
	ErrInvalidServerConfigs = errors.New("invalid server configs")

	// ErrInvalidAdapterConfigs is returned when the client has no blob
	// server URL to connect to.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
)
