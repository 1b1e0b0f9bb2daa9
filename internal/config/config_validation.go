// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config is shared between server and client processes, so
// only universally required invariants are checked here; the per-process
// views perform their own validation.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// ValidateServer checks the fields the blob server requires at startup.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
