// File: /repositories/errors.go
package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by the repository layer. Controllers translate
// these into HTTP responses; nothing below the controllers touches gin.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateUsername = errors.New("username already in use")
	ErrDuplicateKey      = errors.New("duplicate key")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// isDuplicateKey detects unique-constraint violations without depending on a
// specific driver. The string checks cover mysql and sqlite wording.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
