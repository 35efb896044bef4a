//go:build unit
// +build unit

package events

import (
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestRegistration() *AthleteRegistration {
	cpf := "12345678901"
	return &AthleteRegistration{
		ID:           uuid.NewString(),
		EventID:      uuid.NewString(),
		AcademyID:    uuid.NewString(),
		CoachID:      uuid.NewString(),
		AthleteName:  "Maria Souza",
		BirthDate:    time.Date(2008, 5, 10, 0, 0, 0, 0, time.UTC),
		PracticeTime: PracticeOneToThree,
		RecordWins:   3,
		WeightKg:     decimal.RequireFromString("55.5"),
		RuleSet:      RuleSetK1Light,
		Modality:     ModalityAmateur,
		WhatsApp:     "5541999998888",
		Sex:          SexFemale,
		CPF:          &cpf,
		Status:       StatusPending,
	}
}

func TestAthleteRegistration_DeriveExperienceLevel(t *testing.T) {
	tests := []struct {
		wins, draws, losses int
		want                ExperienceLevel
	}{
		{0, 0, 0, ExperienceBeginner},
		{4, 0, 0, ExperienceBeginner},
		{3, 1, 1, ExperienceIntermediate},
		{14, 0, 0, ExperienceIntermediate},
		{10, 2, 3, ExperienceAdvanced},
	}
	for _, tt := range tests {
		reg := &AthleteRegistration{RecordWins: tt.wins, RecordDraws: tt.draws, RecordLosses: tt.losses}
		assert.Equal(t, tt.want, reg.DeriveExperienceLevel())
	}
}

func TestAthleteRegistration_Validate(t *testing.T) {
	assert.NoError(t, newTestRegistration().Validate())

	badCPF := newTestRegistration()
	cpf := "123"
	badCPF.CPF = &cpf
	assert.Error(t, badCPF.Validate())

	noCPF := newTestRegistration()
	noCPF.CPF = nil
	assert.NoError(t, noCPF.Validate())

	wrongCoach := newTestRegistration()
	wrongCoach.Coach = &academies.Coach{ID: wrongCoach.CoachID, AcademyID: uuid.NewString()}
	assert.Error(t, wrongCoach.Validate())

	badRule := newTestRegistration()
	badRule.RuleSet = "boxing"
	assert.Error(t, badRule.Validate())
}

func TestAgeOn(t *testing.T) {
	birth := time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 15, AgeOn(birth, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 16, AgeOn(birth, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 16, AgeOn(birth, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestChoiceLabels(t *testing.T) {
	assert.Equal(t, "K1 Light", RuleSetK1Light.Label())
	assert.Equal(t, "Masculino", SexMale.Label())
	assert.Equal(t, "Pendente", StatusPending.Label())
	assert.Equal(t, "Amador", ModalityAmateur.Label())
	assert.Equal(t, "unknown", Sex("unknown").Label())
	assert.False(t, Status("paid").Valid())
}
