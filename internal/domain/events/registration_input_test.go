//go:build unit
// +build unit

package events

import (
	"errors"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputToday = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validAthlete() AthleteInput {
	return AthleteInput{
		AthleteName: " Joao Pereira ",
		CPF:         "12345678901",
		BirthDate:   "2005-04-20",
		WeightKg:    decPtr("72.35"),
		RuleSet:     RuleSetK1Rules,
		Sex:         SexMale,
		WhatsApp:    "(41) 99999-8888",
		TotalFights: intPtr(7),
	}
}

func validAcademy() AcademyInput {
	return AcademyInput{AcademyName: "Team Alpha", AcademyCity: "Curitiba", AcademyState: " pr ", CoachName: "Carlos"}
}

func TestRegistrationInput_Normalize(t *testing.T) {
	in := &RegistrationInput{AcademyInput: validAcademy(), AthleteInput: validAthlete()}

	draft, err := in.Normalize(inputToday)
	require.NoError(t, err)

	assert.Equal(t, "Joao Pereira", draft.AthleteName)
	assert.Equal(t, "5541999998888", draft.WhatsApp)
	assert.Equal(t, "PR", draft.Academy.AcademyState)
	assert.Equal(t, ModalityAmateur, draft.Academy.Modality)
	assert.Equal(t, PracticeLessThanOne, draft.PracticeTime)
	assert.Equal(t, 7, draft.TotalFights)
	assert.Equal(t, time.Date(2005, 4, 20, 0, 0, 0, 0, time.UTC), draft.BirthDate)

	reg := draft.Build("id", "event", "academy", "coach", StatusPending)
	assert.Equal(t, 7, reg.RecordWins)
	assert.Zero(t, reg.RecordDraws)
	assert.Zero(t, reg.RecordLosses)
	assert.Equal(t, ExperienceIntermediate, reg.ExperienceLevel)
	assert.Equal(t, "12345678901", reg.CPFValue())
}

func TestRegistrationInput_NormalizeCollectsAllErrors(t *testing.T) {
	in := &RegistrationInput{
		AthleteInput: AthleteInput{
			CPF:       "123.456.789-01",
			BirthDate: "2027-01-01",
			WhatsApp:  "9999",
			Sex:       "x",
		},
	}

	_, err := in.Normalize(inputToday)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	assert.Equal(t, []string{MsgAcademyName}, verrs["academy_name"])
	assert.Equal(t, []string{MsgAcademyCity}, verrs["academy_city"])
	assert.Equal(t, []string{MsgCoachName}, verrs["coach_name"])
	assert.Equal(t, []string{MsgCPFFormat}, verrs["cpf"])
	assert.Equal(t, []string{MsgBirthDateFuture}, verrs["birth_date"])
	assert.Equal(t, []string{MsgWhatsAppLength}, verrs["whatsapp"])
	assert.Equal(t, []string{MsgTotalFightsMissing}, verrs["total_fights"])
	assert.Equal(t, []string{MsgInvalidChoice}, verrs["sex"])
	assert.True(t, verrs.Has("weight_kg"))
	assert.True(t, verrs.Has("athlete_name"))
}

func TestRegistrationInput_EmptyWhatsApp(t *testing.T) {
	athlete := validAthlete()
	athlete.WhatsApp = " "
	in := &RegistrationInput{AcademyInput: validAcademy(), AthleteInput: athlete}

	_, err := in.Normalize(inputToday)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{MsgWhatsAppEmpty}, verrs["whatsapp"])
}

func TestBulkRegistrationInput_Normalize(t *testing.T) {
	second := validAthlete()
	second.AthleteName = "Ana Lima"
	second.CPF = "10987654321"
	second.Sex = SexFemale

	in := &BulkRegistrationInput{
		Shared: AcademyInput{AcademyName: "Team Alpha", AcademyCity: "Curitiba", CoachName: "Carlos", Modality: ModalityProfessional},
		Athletes: []AthleteInput{
			validAthlete(),
			{AthleteName: "  "},
			second,
			{AthleteName: "Removed", Delete: true},
		},
	}

	drafts, err := in.Normalize(inputToday)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, ModalityProfessional, drafts[0].Academy.Modality)
	assert.Equal(t, "Ana Lima", drafts[1].AthleteName)
}

func TestBulkRegistrationInput_RequiresAthletes(t *testing.T) {
	in := &BulkRegistrationInput{Shared: validAcademy(), Athletes: []AthleteInput{{}}}

	_, err := in.Normalize(inputToday)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{MsgNoAthletes}, verrs[""])
}

func TestBulkRegistrationInput_DuplicateCPFInBatch(t *testing.T) {
	in := &BulkRegistrationInput{Shared: validAcademy(), Athletes: []AthleteInput{validAthlete(), validAthlete()}}

	_, err := in.Normalize(inputToday)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{MsgCPFDuplicate}, verrs[AthleteField(1, "cpf")])
	assert.False(t, verrs.Has(AthleteField(0, "cpf")))
}
