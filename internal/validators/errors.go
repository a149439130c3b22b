package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrNilInput        = errors.New("input is nil")

	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrInvalidID         = errors.New("invalid id")
)
