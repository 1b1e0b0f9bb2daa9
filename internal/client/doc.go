// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, and background status polling
// into a single process lifecycle.
package client
