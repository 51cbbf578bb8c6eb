package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a name-based lookup resolves no row.
// Handlers translate it to a 404 rather than letting it surface as a fault.
var ErrNotFound = errors.New("not found")

// notFound translates GORM's sentinel into the repository's own error so
// callers never depend on gorm directly.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
