package crypto

import "errors"

var (
	ErrInvalidKeyword      = errors.New("invalid keyword")
	ErrInvalidMode         = errors.New("invalid mode")
	ErrResourceUnavailable = errors.New("resource unavailable")
)
