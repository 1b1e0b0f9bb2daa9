package store

import (
	"context"
	"time"
)

// BlobInfo is the metadata view of one stored blob, used for existence
// checks and remote-status polling without transferring content.
type BlobInfo struct {
	Filename   string
	UploadedAt time.Time
}

// BlobRepository is the server-side store of opaque encrypted blobs,
// addressed by filename. Upload overwrites: the whole blob is the unit of
// conflict resolution.
type BlobRepository interface {
	// SaveBlob writes or overwrites the blob under filename and returns
	// the server-side upload timestamp.
	SaveBlob(ctx context.Context, filename string, content []byte) (time.Time, error)

	// GetBlob returns the stored content, or [ErrBlobNotFound].
	GetBlob(ctx context.Context, filename string) ([]byte, error)

	// ListBlobs returns metadata for every blob whose filename starts with
	// prefix, newest first.
	ListBlobs(ctx context.Context, prefix string) ([]BlobInfo, error)

	// DeleteBlob removes the blob, or returns [ErrBlobNotFound] if absent.
	DeleteBlob(ctx context.Context, filename string) error
}
