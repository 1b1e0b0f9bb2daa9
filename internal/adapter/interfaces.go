// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package adapter

import (
	"context"

	"github.com/mkarneev/homestock/models"
)

// BlobClient is the client-side view of the remote blob store. Blobs are
// opaque byte payloads addressed by filename; the server never sees
// plaintext inventory data.
type BlobClient interface {
	// Upload stores content under filename, overwriting any previous blob
	// with the same name, and returns the server-assigned URL.
	Upload(ctx context.Context, filename string, content []byte) (string, error)

	// List returns references to all blobs whose filename starts with
	// prefix, newest first.
	List(ctx context.Context, prefix string) ([]models.BlobRef, error)

	// Fetch downloads the blob behind url and returns its raw bytes.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Delete removes the blob behind url from the server.
	Delete(ctx context.Context, url string) error
}
