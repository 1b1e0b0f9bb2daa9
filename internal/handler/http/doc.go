// Package http implements the blob server's HTTP API: upload, list, fetch
// and delete of opaque encrypted blobs addressed by filename.
package http
