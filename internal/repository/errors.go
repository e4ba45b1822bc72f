package repository

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes handled by the repositories
const (
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgForeignKeyViolation pq.ErrorCode = "23503"
)

// isUniqueViolation reports whether err comes from a primary key or unique
// constraint rejecting a duplicate row
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// foreignKeyViolation returns the violated constraint name when err is a
// foreign key violation
func foreignKeyViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return pqErr.Constraint, true
	}
	return "", false
}
