package database

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation. Resolve-or-create callers use this to treat an insert that lost
// a race as "row already exists" rather than a failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
