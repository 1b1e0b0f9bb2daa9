// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

// Package app contains shared application-layer constants used across the
// HomeStock server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgFilenameRequired is returned when a blob request arrives without a
	// filename path parameter.
	MsgFilenameRequired = "filename is required"

	// MsgInvalidFilename is returned when the filename fails validation,
	// for example because it contains path separators.
	MsgInvalidFilename = "invalid filename"

	// MsgEmptyBlobBody is returned when an upload request carries no body.
	MsgEmptyBlobBody = "empty blob body"

	// MsgErrorReadingBody is returned when the request body cannot be read,
	// including uploads exceeding the size limit.
	MsgErrorReadingBody = "error reading blob body"

	// MsgErrorSavingBlob is returned when the storage layer rejects an
	// upload.
	MsgErrorSavingBlob = "error saving blob"

	// MsgErrorListingBlobs is returned when the blob listing query fails.
	MsgErrorListingBlobs = "error listing blobs"

	// MsgErrorGettingBlob is returned when a blob cannot be fetched, whether
	// missing or due to a storage failure.
	MsgErrorGettingBlob = "error getting blob"

	// MsgErrorDeletingBlob is returned when a blob cannot be removed.
	MsgErrorDeletingBlob = "error deleting blob"
)
