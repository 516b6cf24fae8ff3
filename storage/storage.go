// storage/storage.go
package storage

import (
	"github.com/sapsa07/ecommerce"
)

// Storage is the backend contract implemented by this package.
type Storage = ecommerce.Storage

var (
	_ Storage = (*MemoryStorage)(nil)
	_ Storage = (*SQLiteStorage)(nil)
)
