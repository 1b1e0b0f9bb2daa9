// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

// Package config loads and merges the homestock configuration from
// environment variables, command-line flags and an optional JSON file.
//
// Sources are merged in priority order (earlier sources win for non-zero
// fields): environment, flags, JSON file. The merged result is validated
// before use. Server and client processes consume different views of the
// same structured config: the server needs the PostgreSQL DSN and listen
// address, the client needs the local SQLite path, the blob-server URL and
// worker intervals.
package config
