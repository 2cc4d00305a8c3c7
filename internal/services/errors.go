package services

import (
	"errors"

	"gorm.io/gorm"
)

// Error taxonomy surfaced to the request boundary. Handlers map these to
// HTTP statuses; nothing here is fatal to the process.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrConflict     = errors.New("conflict")
)

// translate maps persistence errors onto the service taxonomy
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
