// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkarneev/homestock/internal/app"
	"github.com/mkarneev/homestock/internal/logger"
	"github.com/mkarneev/homestock/internal/utils"
	"github.com/mkarneev/homestock/models"
)

// maxBlobSize bounds a single uploaded snapshot. A household inventory is
// tiny; anything near this limit is a client bug.
const maxBlobSize = 16 << 20

func (h *Handler) uploadBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filename := chi.URLParam(r, "filename")
	if filename == "" {
		http.Error(w, app.MsgFilenameRequired, http.StatusBadRequest)
		return
	}
	if err := h.filenames.Validate(ctx, filename); err != nil {
		log.Err(err).Str("func", "*Handler.uploadBlob").Msg("rejected filename")
		http.Error(w, app.MsgInvalidFilename, http.StatusBadRequest)
		return
	}

	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBlobSize))
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadBlob").Msg("error reading blob body")
		http.Error(w, app.MsgErrorReadingBody, http.StatusBadRequest)
		return
	}
	if len(content) == 0 {
		http.Error(w, app.MsgEmptyBlobBody, http.StatusBadRequest)
		return
	}

	if _, err = h.storages.Blobs.SaveBlob(ctx, filename, content); err != nil {
		log.Err(err).Str("func", "*Handler.uploadBlob").Msg("error saving blob")
		http.Error(w, app.MsgErrorSavingBlob, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UploadResponse{URL: blobURL(filename)}, http.StatusOK)
}

func (h *Handler) listBlobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	prefix := r.URL.Query().Get("prefix")

	infos, err := h.storages.Blobs.ListBlobs(ctx, prefix)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBlobs").Msg("error listing blobs")
		http.Error(w, app.MsgErrorListingBlobs, statusFromError(err))
		return
	}

	refs := make([]models.BlobRef, 0, len(infos))
	for _, info := range infos {
		refs = append(refs, models.BlobRef{
			URL:        blobURL(info.Filename),
			UploadedAt: info.UploadedAt,
		})
	}

	utils.WriteJSON(w, refs, http.StatusOK)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filename := chi.URLParam(r, "filename")
	if err := h.filenames.Validate(ctx, filename); err != nil {
		http.Error(w, app.MsgInvalidFilename, http.StatusBadRequest)
		return
	}

	content, err := h.storages.Blobs.GetBlob(ctx, filename)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBlob").Msg("error getting blob")
		http.Error(w, app.MsgErrorGettingBlob, statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filename := chi.URLParam(r, "filename")
	if err := h.filenames.Validate(ctx, filename); err != nil {
		http.Error(w, app.MsgInvalidFilename, http.StatusBadRequest)
		return
	}

	if err := h.storages.Blobs.DeleteBlob(ctx, filename); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBlob").Msg("error deleting blob")
		http.Error(w, app.MsgErrorDeletingBlob, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// blobURL is the canonical path clients use to fetch and delete a blob.
func blobURL(filename string) string {
	return "/api/blobs/" + filename
}
