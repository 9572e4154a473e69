package services

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id is unknown or the record is not owned
// by the stated parent.
var ErrNotFound = errors.New("resource not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
