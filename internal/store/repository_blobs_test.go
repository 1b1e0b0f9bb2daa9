package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarneev/homestock/internal/logger"
)

func newMockBlobRepository(t *testing.T) (BlobRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo := NewBlobRepository(&DB{DB: conn, logger: logger.Nop()}, logger.Nop())
	return repo, mock
}

func TestBlobRepository_SaveBlob(t *testing.T) {
	repo, mock := newMockBlobRepository(t)
	content := []byte(`{"encryptedData":"abc"}`)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO blobs (filename,content,uploaded_at) VALUES ($1,$2,$3) ON CONFLICT (filename) DO UPDATE SET content = EXCLUDED.content, uploaded_at = EXCLUDED.uploaded_at")).
		WithArgs("homestock-sync-t1.json", content, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	uploadedAt, err := repo.SaveBlob(context.Background(), "homestock-sync-t1.json", content)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().UTC(), uploadedAt, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_GetBlob(t *testing.T) {
	repo, mock := newMockBlobRepository(t)
	content := []byte("payload")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT content FROM blobs WHERE filename = $1")).
		WithArgs("f.json").
		WillReturnRows(sqlmock.NewRows([]string{"content"}).AddRow(content))

	got, err := repo.GetBlob(context.Background(), "f.json")
	require.NoError(t, err)

	assert.Equal(t, content, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_GetBlob_NotFound(t *testing.T) {
	repo, mock := newMockBlobRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT content FROM blobs WHERE filename = $1")).
		WithArgs("missing.json").
		WillReturnRows(sqlmock.NewRows([]string{"content"}))

	_, err := repo.GetBlob(context.Background(), "missing.json")

	require.ErrorIs(t, err, ErrBlobNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_ListBlobs(t *testing.T) {
	repo, mock := newMockBlobRepository(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT filename, uploaded_at FROM blobs WHERE filename LIKE $1 ORDER BY uploaded_at DESC")).
		WithArgs("homestock-sync-%").
		WillReturnRows(sqlmock.NewRows([]string{"filename", "uploaded_at"}).
			AddRow("homestock-sync-b.json", now).
			AddRow("homestock-sync-a.json", now.Add(-time.Hour)))

	infos, err := repo.ListBlobs(context.Background(), "homestock-sync-")
	require.NoError(t, err)

	require.Len(t, infos, 2)
	assert.Equal(t, "homestock-sync-b.json", infos[0].Filename)
	assert.Equal(t, now, infos[0].UploadedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_DeleteBlob(t *testing.T) {
	repo, mock := newMockBlobRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blobs WHERE filename = $1")).
		WithArgs("f.json").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteBlob(context.Background(), "f.json"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_DeleteBlob_NotFound(t *testing.T) {
	repo, mock := newMockBlobRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blobs WHERE filename = $1")).
		WithArgs("missing.json").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBlob(context.Background(), "missing.json")

	require.ErrorIs(t, err, ErrBlobNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_SaveBlob_ExecError(t *testing.T) {
	repo, mock := newMockBlobRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO blobs")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.SaveBlob(context.Background(), "f.json", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save blob")
}
