// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkarneev/homestock/internal/logger"
)

// blobRepository is the PostgreSQL-backed implementation of
// [BlobRepository]. Queries are built with squirrel using PostgreSQL
// placeholders.
type blobRepository struct {
	db      *DB
	logger  *logger.Logger
	builder sq.StatementBuilderType
}

// NewBlobRepository constructs a [BlobRepository] backed by the provided
// database connection and logger.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	logger.Debug().Msg("creating blob repository")
	return &blobRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveBlob upserts the blob under filename. Overwrite is deliberate:
// last write wins at whole-blob granularity.
func (r *blobRepository) SaveBlob(ctx context.Context, filename string, content []byte) (time.Time, error) {
	log := logger.FromContext(ctx)

	uploadedAt := time.Now().UTC()

	query, args, err := r.builder.
		Insert("blobs").
		Columns("filename", "content", "uploaded_at").
		Values(filename, content, uploadedAt).
		Suffix("ON CONFLICT (filename) DO UPDATE SET content = EXCLUDED.content, uploaded_at = EXCLUDED.uploaded_at").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build blob upsert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "blobRepository.SaveBlob").
			Str("filename", filename).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute blob upsert")
		return time.Time{}, fmt.Errorf("failed to save blob (filename=%s): %w", filename, err)
	}

	return uploadedAt, nil
}

func (r *blobRepository) GetBlob(ctx context.Context, filename string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("content").
		From("blobs").
		Where(sq.Eq{"filename": filename}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build blob select: %w", err)
	}

	var content []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.GetBlob").
			Str("filename", filename).
			Msg("failed to scan blob row")
		return nil, fmt.Errorf("failed to read blob (filename=%s): %w", filename, err)
	}

	return content, nil
}

func (r *blobRepository) ListBlobs(ctx context.Context, prefix string) ([]BlobInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("filename", "uploaded_at").
		From("blobs").
		Where(sq.Like{"filename": prefix + "%"}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build blob list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.ListBlobs").
			Str("prefix", prefix).
			Msg("failed to execute blob list query")
		return nil, fmt.Errorf("failed to list blobs (prefix=%s): %w", prefix, err)
	}
	defer rows.Close()

	infos := make([]BlobInfo, 0)

	for rows.Next() {
		var info BlobInfo
		if err = rows.Scan(&info.Filename, &info.UploadedAt); err != nil {
			log.Err(err).
				Str("func", "blobRepository.ListBlobs").
				Msg("failed to scan blob info row")
			return nil, fmt.Errorf("failed to scan blob info row: %w", err)
		}
		infos = append(infos, info)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blob rows: %w", err)
	}

	return infos, nil
}

func (r *blobRepository) DeleteBlob(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("blobs").
		Where(sq.Eq{"filename": filename}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build blob delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.DeleteBlob").
			Str("filename", filename).
			Msg("failed to execute blob delete")
		return fmt.Errorf("failed to delete blob (filename=%s): %w", filename, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (filename=%s): %w", filename, err)
	}
	if affected == 0 {
		return ErrBlobNotFound
	}

	return nil
}
