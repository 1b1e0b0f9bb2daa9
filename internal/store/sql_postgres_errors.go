// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification reports whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable marks permanent failures. Repeating the operation with the
	// same inputs will fail again.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as dropped connections and
	// serialization conflicts.
	Retryable
)

// ClassifyError inspects a PostgreSQL driver error and classifies it.
// Non-postgres errors and unrecognised codes are [NonRetryable].
func ClassifyError(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	// Class 08, connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40, transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57, operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
