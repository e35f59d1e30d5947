package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a unique-constraint violation, so it
// can be translated into a domain-specific message.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
