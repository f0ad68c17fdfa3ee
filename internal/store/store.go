// Package store holds the gorm-backed repositories. Every store takes its
// *gorm.DB explicitly so callers control the session; there is no package
// level connection.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
