package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the domain sentinels.
func translate(err error, action, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s not found: %w", what, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", what, domain.ErrConflict)
	default:
		return fmt.Errorf("failed to %s %s: %w", action, what, err)
	}
}

// likePattern builds a case-insensitive contains pattern for LOWER(col) LIKE ?.
func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
