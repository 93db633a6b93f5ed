package utils

import "strings"

// IsDuplicateEntry reports whether err came from a unique-index collision.
// MySQL says "Duplicate entry", sqlite says "UNIQUE constraint failed".
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
