package validators

import (
	"context"
	"strings"
)

// maxFilenameLength matches the filename column width of the blob store.
const maxFilenameLength = 255

// FilenameValidator checks blob filenames before they reach the storage
// layer. Filenames are flat keys, not paths, so any separator or dot-dot
// element is rejected outright.
type FilenameValidator struct {
}

func NewFilenameValidator() Validator {
	return &FilenameValidator{}
}

// Validate accepts string and *string values. Field scoping is not
// applicable to a scalar and is ignored.
func (v *FilenameValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateFilename(ctx, value)
	case *string:
		return v.validateFilename(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *FilenameValidator) validateFilename(_ context.Context, filename string) error {
	if strings.TrimSpace(filename) == "" {
		return ErrEmptyFilename
	}
	if len(filename) > maxFilenameLength {
		return ErrLongFilename
	}
	if strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return ErrUnsafeFilename
	}
	return nil
}
