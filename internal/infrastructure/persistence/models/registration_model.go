package models

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"

	"github.com/shopspring/decimal"
)

// RegistrationModel is the GORM database model for athlete registrations.
// A CPF is unique per event; NULL CPFs do not collide.
type RegistrationModel struct {
	ID              string          `gorm:"primaryKey;type:uuid"`
	EventID         string          `gorm:"not null;type:uuid;index;uniqueIndex:idx_registration_event_cpf"`
	AcademyID       string          `gorm:"not null;type:uuid;index"`
	CoachID         string          `gorm:"not null;type:uuid;index"`
	AthleteName     string          `gorm:"not null;type:varchar(255)"`
	BirthDate       time.Time       `gorm:"not null;type:date"`
	PracticeTime    string          `gorm:"not null;type:varchar(8)"`
	RecordWins      int             `gorm:"not null;default:0"`
	RecordDraws     int             `gorm:"not null;default:0"`
	RecordLosses    int             `gorm:"not null;default:0"`
	WeightKg        decimal.Decimal `gorm:"not null;type:decimal(6,2)"`
	RuleSet         string          `gorm:"not null;type:varchar(16)"`
	Modality        string          `gorm:"not null;type:varchar(16);index"`
	WhatsApp        string          `gorm:"not null;type:varchar(32)"`
	Sex             string          `gorm:"not null;type:varchar(16)"`
	ExperienceLevel string          `gorm:"type:varchar(16)"`
	CPF             *string         `gorm:"type:varchar(11);index;uniqueIndex:idx_registration_event_cpf"`
	Notes           string          `gorm:"type:text"`
	Status          string          `gorm:"not null;type:varchar(16);index"`
	CreatedAt       time.Time       `gorm:"index"`
	UpdatedAt       time.Time

	Event   *EventModel   `gorm:"foreignKey:EventID"`
	Academy *AcademyModel `gorm:"foreignKey:AcademyID"`
	Coach   *CoachModel   `gorm:"foreignKey:CoachID"`
}

// TableName specifies the table name for GORM
func (RegistrationModel) TableName() string {
	return "athlete_registrations"
}

// ToDomain converts GORM model to domain entity, including loaded relations
func (m *RegistrationModel) ToDomain() *events.AthleteRegistration {
	reg := &events.AthleteRegistration{
		ID:              m.ID,
		EventID:         m.EventID,
		AcademyID:       m.AcademyID,
		CoachID:         m.CoachID,
		AthleteName:     m.AthleteName,
		BirthDate:       events.Date(m.BirthDate),
		PracticeTime:    events.PracticeTime(m.PracticeTime),
		RecordWins:      m.RecordWins,
		RecordDraws:     m.RecordDraws,
		RecordLosses:    m.RecordLosses,
		WeightKg:        m.WeightKg,
		RuleSet:         events.RuleSet(m.RuleSet),
		Modality:        events.Modality(m.Modality),
		WhatsApp:        m.WhatsApp,
		Sex:             events.Sex(m.Sex),
		ExperienceLevel: events.ExperienceLevel(m.ExperienceLevel),
		CPF:             m.CPF,
		Notes:           m.Notes,
		Status:          events.Status(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Event != nil {
		reg.Event = m.Event.ToDomain()
	}
	if m.Academy != nil {
		reg.Academy = m.Academy.ToDomain()
	}
	if m.Coach != nil {
		reg.Coach = m.Coach.ToDomain()
	}
	return reg
}

// FromDomain converts domain entity to GORM model. Relations are not copied.
func (m *RegistrationModel) FromDomain(r *events.AthleteRegistration) {
	m.ID = r.ID
	m.EventID = r.EventID
	m.AcademyID = r.AcademyID
	m.CoachID = r.CoachID
	m.AthleteName = r.AthleteName
	m.BirthDate = r.BirthDate
	m.PracticeTime = string(r.PracticeTime)
	m.RecordWins = r.RecordWins
	m.RecordDraws = r.RecordDraws
	m.RecordLosses = r.RecordLosses
	m.WeightKg = r.WeightKg
	m.RuleSet = string(r.RuleSet)
	m.Modality = string(r.Modality)
	m.WhatsApp = r.WhatsApp
	m.Sex = string(r.Sex)
	m.ExperienceLevel = string(r.ExperienceLevel)
	m.CPF = r.CPF
	m.Notes = r.Notes
	m.Status = string(r.Status)
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}
