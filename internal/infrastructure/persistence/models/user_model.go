package models

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
)

// UserModel is the GORM database model for panel users
type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Username     string `gorm:"not null;type:varchar(150);uniqueIndex"`
	PasswordHash string `gorm:"not null;type:varchar(255)"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *staff.User {
	return &staff.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsStaff:      m.IsStaff,
		IsActive:     m.IsActive,
		LastLogin:    m.LastLogin,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *staff.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.IsStaff = u.IsStaff
	m.IsActive = u.IsActive
	m.LastLogin = u.LastLogin
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// All lists every model managed by AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&AcademyModel{},
		&CoachModel{},
		&EventModel{},
		&RegistrationModel{},
		&PaymentModel{},
		&MetricModel{},
		&BracketModel{},
		&EntryModel{},
		&MatchModel{},
	}
}
