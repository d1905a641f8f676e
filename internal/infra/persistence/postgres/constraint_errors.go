package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// isUndefinedTable reports whether the error is PostgreSQL's undefined_table
// (SQLSTATE 42P01). A fresh database without migrations applied yet raises
// this on every read; callers map it to repository.ErrTableNotFound so the
// domain can treat "no table" as "no data yet" without string matching.
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "42p01") ||
		strings.Contains(errMsg, "does not exist")
}
