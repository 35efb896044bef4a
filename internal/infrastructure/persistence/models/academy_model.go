package models

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
)

// AcademyModel is the GORM database model for academies
type AcademyModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	Name           string `gorm:"not null;type:varchar(255);uniqueIndex:idx_academy_natural_key"`
	City           string `gorm:"not null;type:varchar(128);uniqueIndex:idx_academy_natural_key"`
	State          string `gorm:"type:varchar(64);uniqueIndex:idx_academy_natural_key"`
	FederationCode string `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (AcademyModel) TableName() string {
	return "academies"
}

// ToDomain converts GORM model to domain entity
func (m *AcademyModel) ToDomain() *academies.Academy {
	return &academies.Academy{
		ID:             m.ID,
		Name:           m.Name,
		City:           m.City,
		State:          m.State,
		FederationCode: m.FederationCode,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AcademyModel) FromDomain(a *academies.Academy) {
	m.ID = a.ID
	m.Name = a.Name
	m.City = a.City
	m.State = a.State
	m.FederationCode = a.FederationCode
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// CoachModel is the GORM database model for coaches
type CoachModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	FullName  string  `gorm:"not null;type:varchar(255);uniqueIndex:idx_coach_academy_name"`
	WhatsApp  string  `gorm:"type:varchar(32)"`
	Email     string  `gorm:"type:varchar(254)"`
	AcademyID string  `gorm:"not null;type:uuid;index;uniqueIndex:idx_coach_academy_name"`
	UserID    *string `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Academy *AcademyModel `gorm:"foreignKey:AcademyID"`
}

// TableName specifies the table name for GORM
func (CoachModel) TableName() string {
	return "coaches"
}

// ToDomain converts GORM model to domain entity
func (m *CoachModel) ToDomain() *academies.Coach {
	coach := &academies.Coach{
		ID:        m.ID,
		FullName:  m.FullName,
		WhatsApp:  m.WhatsApp,
		Email:     m.Email,
		AcademyID: m.AcademyID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Academy != nil {
		coach.Academy = m.Academy.ToDomain()
	}
	return coach
}

// FromDomain converts domain entity to GORM model
func (m *CoachModel) FromDomain(c *academies.Coach) {
	m.ID = c.ID
	m.FullName = c.FullName
	m.WhatsApp = c.WhatsApp
	m.Email = c.Email
	m.AcademyID = c.AcademyID
	m.UserID = c.UserID
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
