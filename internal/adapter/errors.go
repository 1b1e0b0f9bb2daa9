package adapter

import "errors"

var (
	// ErrBlobNotFound is returned when the server has no blob under the
	// requested filename.
	ErrBlobNotFound = errors.New("blob not found on server")

	// ErrUploadFailed is returned when the server rejects an upload.
	ErrUploadFailed = errors.New("blob upload failed")

	// ErrDownloadFailed is returned when a list or fetch request is
	// rejected by the server.
	ErrDownloadFailed = errors.New("blob download failed")

	// ErrOffline is returned when the server cannot be reached at all
	// (DNS failure, connection refused, timeout).
	ErrOffline = errors.New("blob server unreachable")
)
