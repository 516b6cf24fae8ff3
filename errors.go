// errors.go
package ecommerce

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input parameters")
	ErrInvalidValue       = errors.New("invalid preference value")
	ErrNotFound           = errors.New("user preference not found")
	ErrStorageUnavailable = errors.New("storage backend unavailable")
)
