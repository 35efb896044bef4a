package academies

import (
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Academy is a gym affiliated with the federation.
type Academy struct {
	ID             string `validate:"required,uuid4"`
	Name           string `validate:"required,max=255"`
	City           string `validate:"required,max=128"`
	State          string `validate:"omitempty,max=64"`
	FederationCode string `validate:"omitempty,max=64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the academy fields.
func (a *Academy) Validate() error {
	return domain.ValidateStruct(validator.New(), a)
}

// DisplayName renders "Name - City/State", omitting the state when unknown.
func (a *Academy) DisplayName() string {
	if a.State != "" {
		return a.Name + " - " + a.City + "/" + a.State
	}
	return a.Name + " - " + a.City
}

// NormalizeState trims and upper-cases a state abbreviation.
func NormalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

// Coach is the professor responsible for athletes of an academy.
type Coach struct {
	ID        string  `validate:"required,uuid4"`
	FullName  string  `validate:"required,max=255"`
	WhatsApp  string  `validate:"omitempty,max=32"`
	Email     string  `validate:"omitempty,email"`
	AcademyID string  `validate:"required,uuid4"`
	UserID    *string `validate:"omitempty,uuid4"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Academy *Academy `validate:"-"`
}

// Validate checks the coach fields.
func (c *Coach) Validate() error {
	return domain.ValidateStruct(validator.New(), c)
}
