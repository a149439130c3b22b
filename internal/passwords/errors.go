package passwords

import "errors"

// ErrInvalidLength is returned by [Generate] for a non-positive length.
var ErrInvalidLength = errors.New("password length must be positive")
