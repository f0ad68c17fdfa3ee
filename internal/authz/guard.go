package authz

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Resource is anything owned by exactly one user.
type Resource interface {
	OwnerID() uint
}

// Authorize checks that actorID may read or modify res. It has no side
// effects: a nil resource reports ErrNotFound, an ownership mismatch reports
// ErrUnauthorized. The same check applies to get, update and delete of both
// cards and comments; listing is scoped by owner at the query level instead.
func Authorize(actorID uint, res Resource) error {
	if res == nil {
		return ErrNotFound
	}

	if res.OwnerID() != actorID {
		return ErrUnauthorized
	}

	return nil
}
