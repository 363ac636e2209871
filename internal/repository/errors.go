package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("storage unavailable")
)

// MapStorageError translates common gorm/driver errors to domain errors.
// I only map what I expect to handle explicitly at higher layers; everything
// else passes through.
func MapStorageError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}
