package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyItemID   = errors.New("item id is required")
	ErrEmptyName     = errors.New("item name is required")
	ErrNegativeStock = errors.New("stock cannot be negative")
	ErrBrokenHistory = errors.New("history entry does not add up")
	ErrUnknownAction = errors.New("unknown history action")

	ErrEmptyFilename  = errors.New("filename is required")
	ErrUnsafeFilename = errors.New("filename contains path elements")
	ErrLongFilename   = errors.New("filename is too long")
)
