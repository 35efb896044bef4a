package events

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// MsgCoachOutsideAcademy is returned when a coach and academy do not match.
const MsgCoachOutsideAcademy = "O professor selecionado não pertence à academia escolhida."

// AthleteRegistration is an athlete's entry in an event.
type AthleteRegistration struct {
	ID              string          `validate:"required,uuid4"`
	EventID         string          `validate:"required,uuid4"`
	AcademyID       string          `validate:"required,uuid4"`
	CoachID         string          `validate:"required,uuid4"`
	AthleteName     string          `validate:"required,max=255"`
	BirthDate       time.Time       `validate:"required"`
	PracticeTime    PracticeTime    `validate:"required,oneof=lt_1 1_3 3_5 gt_5"`
	RecordWins      int             `validate:"gte=0"`
	RecordDraws     int             `validate:"gte=0"`
	RecordLosses    int             `validate:"gte=0"`
	WeightKg        decimal.Decimal `validate:"-"`
	RuleSet         RuleSet         `validate:"required,oneof=k1_light k1_rules"`
	Modality        Modality        `validate:"required,oneof=amateur professional"`
	WhatsApp        string          `validate:"required,max=32"`
	Sex             Sex             `validate:"required,oneof=male female other"`
	ExperienceLevel ExperienceLevel `validate:"omitempty,oneof=beginner intermediate advanced"`
	CPF             *string         `validate:"omitempty,cpf"`
	Notes           string          `validate:"-"`
	Status          Status          `validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Event   *Event             `validate:"-"`
	Academy *academies.Academy `validate:"-"`
	Coach   *academies.Coach   `validate:"-"`
}

// Validate checks the registration fields and the coach/academy pairing
// when the coach is loaded.
func (r *AthleteRegistration) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("cpf", validators.CPFValidation); err != nil {
		return err
	}
	if err := domain.ValidateStruct(validate, r); err != nil {
		return err
	}
	if r.WeightKg.IsNegative() {
		return domain.NewValidationError("weight_kg", MsgNegativeValue)
	}
	if r.Coach != nil && r.Coach.AcademyID != r.AcademyID {
		return domain.NewValidationError("coach", MsgCoachOutsideAcademy)
	}
	return nil
}

// TotalFights is the sum of wins, draws and losses.
func (r *AthleteRegistration) TotalFights() int {
	return r.RecordWins + r.RecordDraws + r.RecordLosses
}

// DeriveExperienceLevel maps the fight count to a level: under 5 is
// beginner, under 15 intermediate, advanced otherwise.
func (r *AthleteRegistration) DeriveExperienceLevel() ExperienceLevel {
	total := r.TotalFights()
	switch {
	case total < 5:
		return ExperienceBeginner
	case total < 15:
		return ExperienceIntermediate
	default:
		return ExperienceAdvanced
	}
}

// CPFValue returns the CPF or an empty string.
func (r *AthleteRegistration) CPFValue() string {
	if r.CPF == nil {
		return ""
	}
	return *r.CPF
}

// AgeOn returns the athlete's age in whole years on day.
func (r *AthleteRegistration) AgeOn(day time.Time) int {
	return AgeOn(r.BirthDate, day)
}

// AgeOn returns the age in whole years of someone born on birth at day.
func AgeOn(birth, day time.Time) int {
	years := day.Year() - birth.Year()
	if day.Month() < birth.Month() || (day.Month() == birth.Month() && day.Day() < birth.Day()) {
		years--
	}
	return years
}

// Date truncates t to its calendar day in t's location, returned as UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
