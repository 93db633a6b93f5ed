package services

import (
	"errors"
	"strings"

	"backoffice-backend/utils"
)

var (
	ErrNotFound     = errors.New("record_not_found")
	ErrNotCheckedIn = errors.New("not_checked_in")
)

// ValidationError carries one message per failing field. Raised before any
// write reaches the database.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func validateModel(v interface{}) error {
	if msgs := utils.ValidateStruct(v); len(msgs) > 0 {
		return &ValidationError{Fields: msgs}
	}
	return nil
}
