package models

import (
	"encoding/json"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
)

// MetricModel is the GORM database model for matchmaking metrics. The
// classification tables are stored as JSON text.
type MetricModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Name                string `gorm:"not null;type:varchar(255);uniqueIndex"`
	MaxFightsPerAthlete int    `gorm:"not null;default:1"`
	Notes               string `gorm:"type:text"`
	AgeMetrics          string `gorm:"type:text"`
	ExperienceMetrics   string `gorm:"type:text"`
	WeightCategories    string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (MetricModel) TableName() string {
	return "matchmaking_metrics"
}

// ToDomain converts GORM model to domain entity. Tables that cannot be read
// fall back to the federation defaults.
func (m *MetricModel) ToDomain() *matchmaking.Metric {
	return &matchmaking.Metric{
		ID:                  m.ID,
		Name:                m.Name,
		MaxFightsPerAthlete: m.MaxFightsPerAthlete,
		Notes:               m.Notes,
		AgeMetrics:          matchmaking.LenientAgeMetrics([]byte(m.AgeMetrics)),
		ExperienceMetrics:   matchmaking.LenientExperienceMetrics([]byte(m.ExperienceMetrics)),
		WeightCategories:    matchmaking.LenientWeightCategories([]byte(m.WeightCategories)),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MetricModel) FromDomain(metric *matchmaking.Metric) error {
	ages, err := json.Marshal(metric.AgeMetrics)
	if err != nil {
		return err
	}
	experience, err := json.Marshal(metric.ExperienceMetrics)
	if err != nil {
		return err
	}
	weights, err := json.Marshal(metric.WeightCategories)
	if err != nil {
		return err
	}

	m.ID = metric.ID
	m.Name = metric.Name
	m.MaxFightsPerAthlete = metric.MaxFightsPerAthlete
	m.Notes = metric.Notes
	m.AgeMetrics = string(ages)
	m.ExperienceMetrics = string(experience)
	m.WeightCategories = string(weights)
	m.CreatedAt = metric.CreatedAt
	m.UpdatedAt = metric.UpdatedAt
	return nil
}
