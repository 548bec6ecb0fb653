package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a users.email or
	// students.email unique constraint rejects an insert.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateName is returned when the classrooms.name unique
	// constraint rejects an insert.
	ErrDuplicateName = errors.New("name already exists")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// The database constraints are the authority on duplicates and dangling
// references. Concurrent inserts make any pre-check racy, so repositories
// insert first and translate the constraint error afterwards.

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
