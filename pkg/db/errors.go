package db

import "strings"

// IsUniqueViolation reports whether the error is a unique-constraint failure
// from either backing driver. SQLite reports "UNIQUE constraint failed:
// table.column"; Postgres reports "duplicate key value" with the constraint
// name. When column is provided the match is narrowed to it.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	unique := strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
	if !unique {
		return false
	}
	if column == "" {
		return true
	}
	return strings.Contains(msg, column)
}
