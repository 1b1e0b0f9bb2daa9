package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a query or stock update targets an
	// item id that does not exist in the local store.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidFormat is returned when an import payload fails shape
	// validation (e.g. a full import missing the items or categories keys).
	ErrInvalidFormat = errors.New("invalid import format")

	// ErrSettingNotFound is returned when a settings key has no persisted
	// value.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrBlobNotFound is returned by the server blob repository when no blob
	// exists under the requested filename.
	ErrBlobNotFound = errors.New("blob not found")
)
