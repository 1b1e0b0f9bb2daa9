// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarneev/homestock/models"
)

func newTestAdapter(serverURL string) BlobClient {
	return NewHTTPBlobAdapter(HTTPClientConfig{BaseURL: serverURL, Timeout: 2 * time.Second})
}

func TestUpload_Success(t *testing.T) {
	content := []byte(`{"encryptedData":"abc","iv":"def","salt":"ghi"}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/blobs/homestock-sync-token1.json", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, content, body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UploadResponse{URL: "/api/blobs/homestock-sync-token1.json"})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	url, err := a.Upload(context.Background(), "homestock-sync-token1.json", content)

	require.NoError(t, err)
	assert.Equal(t, "/api/blobs/homestock-sync-token1.json", url)
}

func TestUpload_EmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UploadResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.Upload(context.Background(), "file.json", []byte("data"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUpload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("storage unavailable"))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.Upload(context.Background(), "file.json", []byte("data"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestList_Success(t *testing.T) {
	want := []models.BlobRef{
		{URL: "/api/blobs/homestock-sync-token1.json", UploadedAt: time.Now().UTC().Truncate(time.Second)},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/blobs", r.URL.Path)
		assert.Equal(t, "homestock-sync-token1", r.URL.Query().Get("prefix"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	got, err := a.List(context.Background(), "homestock-sync-token1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].URL, got[0].URL)
	assert.True(t, want[0].UploadedAt.Equal(got[0].UploadedAt))
}

func TestList_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	got, err := a.List(context.Background(), "nothing")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetch_Success(t *testing.T) {
	content := []byte("encrypted payload bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/blobs/homestock-sync-token1.json", r.URL.Path)
		_, _ = w.Write(content)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)

	// Full URLs and bare filenames are both accepted.
	got, err := a.Fetch(context.Background(), srv.URL+"/api/blobs/homestock-sync-token1.json")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	got, err = a.Fetch(context.Background(), "homestock-sync-token1.json")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	_, err := a.Fetch(context.Background(), "missing.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/blobs/homestock-sync-token1.json", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	err := a.Delete(context.Background(), "/api/blobs/homestock-sync-token1.json")

	require.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	err := a.Delete(context.Background(), "missing.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestOffline(t *testing.T) {
	// Point at a closed server to force a transport error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := newTestAdapter(srv.URL)

	_, err := a.Upload(context.Background(), "file.json", []byte("data"))
	assert.ErrorIs(t, err, ErrOffline)

	_, err = a.List(context.Background(), "file")
	assert.ErrorIs(t, err, ErrOffline)

	_, err = a.Fetch(context.Background(), "file.json")
	assert.ErrorIs(t, err, ErrOffline)

	err = a.Delete(context.Background(), "file.json")
	assert.ErrorIs(t, err, ErrOffline)
}
