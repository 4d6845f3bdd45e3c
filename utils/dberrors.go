package utils

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// DataError represents a constraint violation surfaced by the data layer
type DataError struct {
	Code    string
	Message string
}

func (e *DataError) Error() string {
	return e.Message
}

// NewDataError builds a DataError with the given code and message
func NewDataError(code, message string) *DataError {
	return &DataError{Code: code, Message: message}
}

// IsNotFound reports whether the error is GORM's record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether the error is a unique-constraint
// violation. Matched on the driver message so it works with both
// PostgreSQL and SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}

// IsForeignKeyViolation reports whether the error is a foreign-key
// constraint violation, for both PostgreSQL and SQLite.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}

// IsCheckViolation reports whether the error is a check-constraint
// violation (range or enumeration guard in the schema).
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint")
}
