package models

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"

	"github.com/shopspring/decimal"
)

// EventModel is the GORM database model for events
type EventModel struct {
	ID                   string          `gorm:"primaryKey;type:uuid"`
	Title                string          `gorm:"not null;type:varchar(255)"`
	Slug                 string          `gorm:"not null;type:varchar(255);uniqueIndex"`
	Location             string          `gorm:"not null;type:varchar(255)"`
	Description          string          `gorm:"type:text"`
	StartAt              time.Time       `gorm:"not null;index"`
	RegistrationDeadline time.Time       `gorm:"not null"`
	RegistrationFee      decimal.Decimal `gorm:"not null;type:decimal(8,2)"`
	IsFree               bool            `gorm:"not null;default:false"`
	RulesDocument        string          `gorm:"type:varchar(255)"`
	IsPublished          bool            `gorm:"not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:                   m.ID,
		Title:                m.Title,
		Slug:                 m.Slug,
		Location:             m.Location,
		Description:          m.Description,
		StartAt:              m.StartAt,
		RegistrationDeadline: m.RegistrationDeadline,
		RegistrationFee:      m.RegistrationFee,
		IsFree:               m.IsFree,
		RulesDocument:        m.RulesDocument,
		IsPublished:          m.IsPublished,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.Title = e.Title
	m.Slug = e.Slug
	m.Location = e.Location
	m.Description = e.Description
	m.StartAt = e.StartAt
	m.RegistrationDeadline = e.RegistrationDeadline
	m.RegistrationFee = e.RegistrationFee
	m.IsFree = e.IsFree
	m.RulesDocument = e.RulesDocument
	m.IsPublished = e.IsPublished
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}
