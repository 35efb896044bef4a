// Package matchmaking classifies confirmed athletes and builds single
// elimination brackets (chaves) for an event.
package matchmaking

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/go-playground/validator/v10"
)

// AgeMetric is an inclusive age range.
type AgeMetric struct {
	Name   string `json:"nome"`
	MinAge int    `json:"idade_minima"`
	MaxAge int    `json:"idade_maxima"`
}

// Contains reports whether age falls inside the range.
func (a AgeMetric) Contains(age int) bool {
	return a.MinAge <= age && age <= a.MaxAge
}

// ExperienceMetric is a fight count range with optional bounds.
type ExperienceMetric struct {
	Name      string `json:"nome"`
	MinFights *int   `json:"minimo_lutas,omitempty"`
	MaxFights *int   `json:"maximo_lutas,omitempty"`
}

// Contains reports whether total satisfies the bounds that are set.
func (e ExperienceMetric) Contains(total int) bool {
	if e.MinFights != nil && total < *e.MinFights {
		return false
	}
	if e.MaxFights != nil && total > *e.MaxFights {
		return false
	}
	return true
}

// WeightCategory lists the weight labels of a rule set, sex and age group.
type WeightCategory struct {
	Name     string   `json:"nome"`
	Sex      string   `json:"sexo"`
	AgeGroup string   `json:"faixa_idade"`
	Weights  []string `json:"faixas_peso"`
}

// Metric sex values used by weight categories
const (
	MetricSexMale   = "masculino"
	MetricSexFemale = "feminino"
)

// Metric is a named set of classification tables.
type Metric struct {
	ID                  string `validate:"required,uuid4"`
	Name                string `validate:"required,max=255"`
	MaxFightsPerAthlete int    `validate:"gte=1"`
	Notes               string `validate:"-"`
	AgeMetrics          []AgeMetric
	ExperienceMetrics   []ExperienceMetric
	WeightCategories    []WeightCategory
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the metric fields.
func (m *Metric) Validate() error {
	return domain.ValidateStruct(validator.New(), m)
}

// Capacity is the number of athletes a bracket of this metric can hold.
func (m *Metric) Capacity() int {
	return Capacity(m.MaxFightsPerAthlete)
}

// NewDefaultMetric returns a metric carrying the federation default tables.
func NewDefaultMetric(id, name string) *Metric {
	return &Metric{
		ID:                  id,
		Name:                name,
		MaxFightsPerAthlete: 1,
		AgeMetrics:          DefaultAgeMetrics(),
		ExperienceMetrics:   DefaultExperienceMetrics(),
		WeightCategories:    DefaultWeightCategories(),
	}
}
