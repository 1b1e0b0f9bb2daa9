// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mkarneev/homestock/models"
)

// HTTPClientConfig configures the outbound connection to the blob server.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpBlobAdapter struct {
	client *resty.Client
}

// NewHTTPBlobAdapter returns a BlobClient speaking the blob server's HTTP
// API. Missing config fields fall back to localhost and a 15s timeout.
func NewHTTPBlobAdapter(cfg HTTPClientConfig) BlobClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBlobAdapter{client: cli}
}

func (h *httpBlobAdapter) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(content).
		Post("/api/blobs/" + filename)
	if err != nil {
		return "", fmt.Errorf("%w: upload request: %w", ErrOffline, err)
	}
	if err = mapHTTPError(resp, ErrUploadFailed); err != nil {
		return "", err
	}

	var ur models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if ur.URL == "" {
		return "", fmt.Errorf("%w: server returned no url", ErrUploadFailed)
	}

	return ur.URL, nil
}

func (h *httpBlobAdapter) List(ctx context.Context, prefix string) ([]models.BlobRef, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("prefix", prefix).
		Get("/api/blobs")
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrOffline, err)
	}
	if err = mapHTTPError(resp, ErrDownloadFailed); err != nil {
		return nil, err
	}

	var refs []models.BlobRef
	if err = json.Unmarshal(resp.Body(), &refs); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return refs, nil
}

func (h *httpBlobAdapter) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/blobs/" + blobFilename(url))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch request: %w", ErrOffline, err)
	}
	if err = mapHTTPError(resp, ErrDownloadFailed); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpBlobAdapter) Delete(ctx context.Context, url string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/blobs/" + blobFilename(url))
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrOffline, err)
	}

	return mapHTTPError(resp, ErrDownloadFailed)
}

// blobFilename reduces a blob URL to its addressable filename, so that
// both full URLs returned by the server and bare filenames are accepted.
func blobFilename(url string) string {
	return path.Base(strings.TrimRight(url, "/"))
}

// mapHTTPError translates a non-2xx response into a sentinel error:
// 404 becomes ErrBlobNotFound, everything else wraps fallback with the
// status and body for context.
func mapHTTPError(resp *resty.Response, fallback error) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return ErrBlobNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", fallback, resp.StatusCode(), body)
}
