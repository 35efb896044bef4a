// Package staff models the federation staff accounts that use the panel.
package staff

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// User is a panel account.
type User struct {
	ID           string `validate:"required,uuid4"`
	Username     string `validate:"required,max=150"`
	PasswordHash string `validate:"required"`
	IsStaff      bool
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the user fields.
func (u *User) Validate() error {
	return domain.ValidateStruct(validator.New(), u)
}

// CanUsePanel reports whether the user may call staff endpoints.
func (u *User) CanUsePanel() bool {
	return u.IsActive && u.IsStaff
}
