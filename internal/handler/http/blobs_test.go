// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/models"
)

// memBlobRepository is an in-memory BlobRepository for handler tests.
type memBlobRepository struct {
	blobs      map[string][]byte
	uploadedAt map[string]time.Time
}

func newMemBlobRepository() *memBlobRepository {
	return &memBlobRepository{
		blobs:      make(map[string][]byte),
		uploadedAt: make(map[string]time.Time),
	}
}

func (r *memBlobRepository) SaveBlob(_ context.Context, filename string, content []byte) (time.Time, error) {
	now := time.Now()
	r.blobs[filename] = content
	r.uploadedAt[filename] = now
	return now, nil
}

func (r *memBlobRepository) GetBlob(_ context.Context, filename string) ([]byte, error) {
	content, ok := r.blobs[filename]
	if !ok {
		return nil, store.ErrBlobNotFound
	}
	return content, nil
}

func (r *memBlobRepository) ListBlobs(_ context.Context, prefix string) ([]store.BlobInfo, error) {
	var infos []store.BlobInfo
	for name := range r.blobs {
		if strings.HasPrefix(name, prefix) {
			infos = append(infos, store.BlobInfo{Filename: name, UploadedAt: r.uploadedAt[name]})
		}
	}
	return infos, nil
}

func (r *memBlobRepository) DeleteBlob(_ context.Context, filename string) error {
	if _, ok := r.blobs[filename]; !ok {
		return store.ErrBlobNotFound
	}
	delete(r.blobs, filename)
	delete(r.uploadedAt, filename)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memBlobRepository) {
	t.Helper()
	repo := newMemBlobRepository()
	h := NewHandler(&store.Storages{Blobs: repo}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestUploadBlob(t *testing.T) {
	srv, repo := newTestServer(t)
	content := []byte(`{"encryptedData":"abc","iv":"def"}`)

	resp, err := http.Post(srv.URL+"/api/blobs/homestock-sync-t1.json", "application/octet-stream", bytes.NewReader(content))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ur models.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ur))
	assert.Equal(t, "/api/blobs/homestock-sync-t1.json", ur.URL)

	assert.Equal(t, content, repo.blobs["homestock-sync-t1.json"])
}

func TestUploadBlob_Overwrite(t *testing.T) {
	srv, repo := newTestServer(t)

	for _, payload := range []string{"first", "second"} {
		resp, err := http.Post(srv.URL+"/api/blobs/f.json", "application/octet-stream", strings.NewReader(payload))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, []byte("second"), repo.blobs["f.json"])
}

func TestUploadBlob_EmptyBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/blobs/f.json", "application/octet-stream", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadBlob_UnsafeFilename(t *testing.T) {
	srv, repo := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/blobs/a..b.json", "application/octet-stream", strings.NewReader("x"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.blobs)
}

// failingBlobRepository fails every write with the injected error.
type failingBlobRepository struct {
	*memBlobRepository
	err error
}

func (r *failingBlobRepository) SaveBlob(context.Context, string, []byte) (time.Time, error) {
	return time.Time{}, r.err
}

func TestUploadBlob_TransientStorageError(t *testing.T) {
	repo := &failingBlobRepository{
		memBlobRepository: newMemBlobRepository(),
		err:               fmt.Errorf("failed to save blob: %w", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}),
	}
	h := NewHandler(&store.Storages{Blobs: repo}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/blobs/f.json", "application/octet-stream", strings.NewReader("x"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestUploadBlob_PermanentStorageError(t *testing.T) {
	repo := &failingBlobRepository{
		memBlobRepository: newMemBlobRepository(),
		err:               errors.New("boom"),
	}
	h := NewHandler(&store.Storages{Blobs: repo}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/blobs/f.json", "application/octet-stream", strings.NewReader("x"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetBlob(t *testing.T) {
	srv, repo := newTestServer(t)
	content := []byte("encrypted bytes")
	_, err := repo.SaveBlob(context.Background(), "f.json", content)
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/blobs/f.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestGetBlob_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/blobs/missing.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListBlobs(t *testing.T) {
	srv, repo := newTestServer(t)
	ctx := context.Background()
	_, err := repo.SaveBlob(ctx, "homestock-sync-t1.json", []byte("a"))
	require.NoError(t, err)
	_, err = repo.SaveBlob(ctx, "homestock-sync-t2.json", []byte("b"))
	require.NoError(t, err)
	_, err = repo.SaveBlob(ctx, "unrelated.bin", []byte("c"))
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/blobs/?prefix=homestock-sync-")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refs []models.BlobRef
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&refs))
	assert.Len(t, refs, 2)
}

func TestListBlobs_Empty(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/blobs/?prefix=nothing")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refs []models.BlobRef
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&refs))
	assert.Empty(t, refs)
}

func TestDeleteBlob(t *testing.T) {
	srv, repo := newTestServer(t)
	_, err := repo.SaveBlob(context.Background(), "f.json", []byte("a"))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/blobs/f.json", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, repo.blobs, "f.json")
}

func TestDeleteBlob_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/blobs/missing.json", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListBlobs_GzipResponse(t *testing.T) {
	srv, repo := newTestServer(t)
	_, err := repo.SaveBlob(context.Background(), "f.json", []byte("a"))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/blobs/?prefix=f", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	// Disable the transport's transparent decompression so the header and
	// body can be checked as sent.
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	defer zr.Close()

	var refs []models.BlobRef
	require.NoError(t, json.NewDecoder(zr).Decode(&refs))
	assert.Len(t, refs, 1)
}

func TestTraceIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/blobs/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}
