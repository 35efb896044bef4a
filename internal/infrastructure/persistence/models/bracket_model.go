package models

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
)

// BracketModel is the GORM database model for matchmaking brackets
type BracketModel struct {
	ID              string  `gorm:"primaryKey;type:uuid"`
	EventID         string  `gorm:"not null;type:uuid;index;uniqueIndex:idx_bracket_key"`
	MetricID        string  `gorm:"not null;type:uuid;index;uniqueIndex:idx_bracket_key"`
	RuleSet         string  `gorm:"not null;type:varchar(32);uniqueIndex:idx_bracket_key"`
	ExperienceLabel string  `gorm:"not null;type:varchar(64);uniqueIndex:idx_bracket_key"`
	Sex             string  `gorm:"not null;type:varchar(16);uniqueIndex:idx_bracket_key"`
	AgeGroup        string  `gorm:"not null;type:varchar(32);uniqueIndex:idx_bracket_key"`
	WeightLabel     string  `gorm:"not null;type:varchar(32);uniqueIndex:idx_bracket_key"`
	BracketIndex    int     `gorm:"not null;default:1;uniqueIndex:idx_bracket_key"`
	Size            int     `gorm:"not null"`
	MaxFights       int     `gorm:"not null"`
	GeneratedByID   *string `gorm:"type:uuid"`
	IsManual        bool    `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Metric  *MetricModel `gorm:"foreignKey:MetricID"`
	Entries []EntryModel `gorm:"foreignKey:BracketID"`
	Matches []MatchModel `gorm:"foreignKey:BracketID"`
}

// TableName specifies the table name for GORM
func (BracketModel) TableName() string {
	return "matchmaking_brackets"
}

// ToDomain converts GORM model to domain entity, including loaded entries and matches
func (m *BracketModel) ToDomain() *matchmaking.Bracket {
	b := &matchmaking.Bracket{
		ID:              m.ID,
		EventID:         m.EventID,
		MetricID:        m.MetricID,
		RuleSet:         events.RuleSet(m.RuleSet),
		ExperienceLabel: m.ExperienceLabel,
		Sex:             events.Sex(m.Sex),
		AgeGroup:        m.AgeGroup,
		WeightLabel:     m.WeightLabel,
		BracketIndex:    m.BracketIndex,
		Size:            m.Size,
		MaxFights:       m.MaxFights,
		GeneratedByID:   m.GeneratedByID,
		IsManual:        m.IsManual,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Metric != nil {
		b.Metric = m.Metric.ToDomain()
	}
	for i := range m.Entries {
		b.Entries = append(b.Entries, m.Entries[i].ToDomain())
	}
	for i := range m.Matches {
		b.Matches = append(b.Matches, m.Matches[i].ToDomain())
	}
	return b
}

// FromDomain converts domain entity to GORM model. Entries are copied, matches are not.
func (m *BracketModel) FromDomain(b *matchmaking.Bracket) {
	m.ID = b.ID
	m.EventID = b.EventID
	m.MetricID = b.MetricID
	m.RuleSet = string(b.RuleSet)
	m.ExperienceLabel = b.ExperienceLabel
	m.Sex = string(b.Sex)
	m.AgeGroup = b.AgeGroup
	m.WeightLabel = b.WeightLabel
	m.BracketIndex = b.BracketIndex
	m.Size = b.Size
	m.MaxFights = b.MaxFights
	m.GeneratedByID = b.GeneratedByID
	m.IsManual = b.IsManual
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
	m.Entries = make([]EntryModel, len(b.Entries))
	for i, e := range b.Entries {
		m.Entries[i].FromDomain(e)
	}
}

// EntryModel is the GORM database model for bracket entries
type EntryModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	BracketID      string `gorm:"not null;type:uuid;uniqueIndex:idx_entry_bracket_registration;uniqueIndex:idx_entry_bracket_slot"`
	RegistrationID string `gorm:"not null;type:uuid;index;uniqueIndex:idx_entry_bracket_registration"`
	Seed           int    `gorm:"not null"`
	Slot           int    `gorm:"not null;uniqueIndex:idx_entry_bracket_slot"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Registration *RegistrationModel `gorm:"foreignKey:RegistrationID"`
}

// TableName specifies the table name for GORM
func (EntryModel) TableName() string {
	return "matchmaking_entries"
}

// ToDomain converts GORM model to domain entity
func (m *EntryModel) ToDomain() *matchmaking.Entry {
	e := &matchmaking.Entry{
		ID:             m.ID,
		BracketID:      m.BracketID,
		RegistrationID: m.RegistrationID,
		Seed:           m.Seed,
		Slot:           m.Slot,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Registration != nil {
		e.Registration = m.Registration.ToDomain()
	}
	return e
}

// FromDomain converts domain entity to GORM model
func (m *EntryModel) FromDomain(e *matchmaking.Entry) {
	m.ID = e.ID
	m.BracketID = e.BracketID
	m.RegistrationID = e.RegistrationID
	m.Seed = e.Seed
	m.Slot = e.Slot
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// MatchModel is the GORM database model for bracket matches
type MatchModel struct {
	ID                string  `gorm:"primaryKey;type:uuid"`
	BracketID         string  `gorm:"not null;type:uuid;index"`
	RoundNumber       int     `gorm:"not null"`
	Position          int     `gorm:"not null"`
	BlueEntryID       *string `gorm:"type:uuid"`
	RedEntryID        *string `gorm:"type:uuid"`
	BlueSourceMatchID *string `gorm:"type:uuid"`
	RedSourceMatchID  *string `gorm:"type:uuid"`
	WinnerEntryID     *string `gorm:"type:uuid"`
	IsBye             bool    `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (MatchModel) TableName() string {
	return "matchmaking_matches"
}

// ToDomain converts GORM model to domain entity
func (m *MatchModel) ToDomain() *matchmaking.Match {
	return &matchmaking.Match{
		ID:                m.ID,
		BracketID:         m.BracketID,
		RoundNumber:       m.RoundNumber,
		Position:          m.Position,
		BlueEntryID:       m.BlueEntryID,
		RedEntryID:        m.RedEntryID,
		BlueSourceMatchID: m.BlueSourceMatchID,
		RedSourceMatchID:  m.RedSourceMatchID,
		WinnerEntryID:     m.WinnerEntryID,
		IsBye:             m.IsBye,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MatchModel) FromDomain(match *matchmaking.Match) {
	m.ID = match.ID
	m.BracketID = match.BracketID
	m.RoundNumber = match.RoundNumber
	m.Position = match.Position
	m.BlueEntryID = match.BlueEntryID
	m.RedEntryID = match.RedEntryID
	m.BlueSourceMatchID = match.BlueSourceMatchID
	m.RedSourceMatchID = match.RedSourceMatchID
	m.WinnerEntryID = match.WinnerEntryID
	m.IsBye = match.IsBye
	m.CreatedAt = match.CreatedAt
	m.UpdatedAt = match.UpdatedAt
}
