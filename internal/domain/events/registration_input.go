package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// Messages shown for invalid registration data
const (
	MsgCPFFormat          = "Informe o CPF com 11 digitos."
	MsgCPFDuplicate       = "Este CPF ja esta inscrito neste evento."
	MsgAcademyName        = "Informe o nome da academia."
	MsgAcademyCity        = "Informe a cidade da academia."
	MsgCoachName          = "Informe o nome do professor responsavel."
	MsgWhatsAppEmpty      = "Informe o WhatsApp com DDD."
	MsgWhatsAppLength     = "Informe o WhatsApp com DDI 55, DDD e numero (10 ou 11 digitos)."
	MsgBirthDateFuture    = "A data de nascimento nao pode estar no futuro."
	MsgBirthDateFormat    = "Informe uma data valida."
	MsgTotalFightsMissing = "Informe a quantidade de lutas disputadas."
	MsgInvalidChoice      = "Escolha uma opcao valida."
	MsgNoAthletes         = "Informe ao menos um atleta."
)

// AcademyInput holds the academy and coach fields shared by single and
// bulk registrations.
type AcademyInput struct {
	AcademyName  string
	AcademyCity  string
	AcademyState string
	CoachName    string
	Modality     Modality
}

// Normalize trims the fields, upper-cases the state and defaults the modality.
func (in AcademyInput) Normalize() (AcademyInput, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	out := AcademyInput{
		AcademyName:  strings.TrimSpace(in.AcademyName),
		AcademyCity:  strings.TrimSpace(in.AcademyCity),
		AcademyState: academies.NormalizeState(in.AcademyState),
		CoachName:    strings.TrimSpace(in.CoachName),
		Modality:     in.Modality,
	}
	if out.AcademyName == "" {
		errs.Add("academy_name", MsgAcademyName)
	}
	if out.AcademyCity == "" {
		errs.Add("academy_city", MsgAcademyCity)
	}
	if out.CoachName == "" {
		errs.Add("coach_name", MsgCoachName)
	}
	if out.Modality == "" {
		out.Modality = ModalityAmateur
	} else if !out.Modality.Valid() {
		errs.Add("modality", MsgInvalidChoice)
	}
	return out, errs
}

// AthleteInput holds the per athlete fields of a registration.
type AthleteInput struct {
	AthleteName  string
	CPF          string
	BirthDate    string
	PracticeTime PracticeTime
	WeightKg     *decimal.Decimal
	RuleSet      RuleSet
	Sex          Sex
	WhatsApp     string
	TotalFights  *int
	Notes        string
	// Delete marks a bulk row the user removed.
	Delete bool
}

// IsBlank reports whether a bulk row carries no athlete.
func (in AthleteInput) IsBlank() bool {
	return in.Delete || strings.TrimSpace(in.AthleteName) == ""
}

// RegistrationDraft is a validated registration that still needs its
// academy and coach resolved.
type RegistrationDraft struct {
	Academy      AcademyInput
	AthleteName  string
	CPF          string
	BirthDate    time.Time
	PracticeTime PracticeTime
	WeightKg     decimal.Decimal
	RuleSet      RuleSet
	Sex          Sex
	WhatsApp     string
	TotalFights  int
	Notes        string
}

// Build turns the draft into a registration. The whole fight count is
// recorded as wins.
func (d *RegistrationDraft) Build(id, eventID, academyID, coachID string, status Status) *AthleteRegistration {
	cpf := d.CPF
	reg := &AthleteRegistration{
		ID:           id,
		EventID:      eventID,
		AcademyID:    academyID,
		CoachID:      coachID,
		AthleteName:  d.AthleteName,
		BirthDate:    d.BirthDate,
		PracticeTime: d.PracticeTime,
		RecordWins:   d.TotalFights,
		WeightKg:     d.WeightKg,
		RuleSet:      d.RuleSet,
		Modality:     d.Academy.Modality,
		WhatsApp:     d.WhatsApp,
		Sex:          d.Sex,
		CPF:          &cpf,
		Notes:        d.Notes,
		Status:       status,
	}
	reg.ExperienceLevel = reg.DeriveExperienceLevel()
	return reg
}

func (in AthleteInput) normalize(today time.Time) (*RegistrationDraft, domain.ValidationErrors) {
	errs := domain.ValidationErrors{}
	draft := &RegistrationDraft{
		AthleteName:  strings.TrimSpace(in.AthleteName),
		CPF:          strings.TrimSpace(in.CPF),
		PracticeTime: in.PracticeTime,
		RuleSet:      in.RuleSet,
		Sex:          in.Sex,
		Notes:        strings.TrimSpace(in.Notes),
	}

	if draft.AthleteName == "" {
		errs.Add("athlete_name", MsgRequired)
	}

	if draft.CPF == "" {
		errs.Add("cpf", MsgRequired)
	} else if !validators.IsCPF(draft.CPF) {
		errs.Add("cpf", MsgCPFFormat)
	}

	if raw := strings.TrimSpace(in.BirthDate); raw == "" {
		errs.Add("birth_date", MsgRequired)
	} else if birth, err := time.Parse(DateLayout, raw); err != nil {
		errs.Add("birth_date", MsgBirthDateFormat)
	} else if birth.After(Date(today)) {
		errs.Add("birth_date", MsgBirthDateFuture)
	} else {
		draft.BirthDate = birth
	}

	if draft.PracticeTime == "" {
		draft.PracticeTime = PracticeLessThanOne
	} else if !draft.PracticeTime.Valid() {
		errs.Add("practice_time", MsgInvalidChoice)
	}

	if draft.RuleSet == "" {
		draft.RuleSet = RuleSetK1Light
	} else if !draft.RuleSet.Valid() {
		errs.Add("rule_set", MsgInvalidChoice)
	}

	if draft.Sex == "" {
		errs.Add("sex", MsgRequired)
	} else if !draft.Sex.Valid() {
		errs.Add("sex", MsgInvalidChoice)
	}

	switch {
	case in.WeightKg == nil:
		errs.Add("weight_kg", MsgRequired)
	case in.WeightKg.IsNegative():
		errs.Add("weight_kg", MsgNegativeValue)
	default:
		draft.WeightKg = in.WeightKg.Round(2)
	}

	whatsapp, err := validators.NormalizeWhatsApp(in.WhatsApp)
	switch {
	case errors.Is(err, validators.ErrPhoneEmpty):
		errs.Add("whatsapp", MsgWhatsAppEmpty)
	case err != nil:
		errs.Add("whatsapp", MsgWhatsAppLength)
	default:
		draft.WhatsApp = whatsapp
	}

	switch {
	case in.TotalFights == nil:
		errs.Add("total_fights", MsgTotalFightsMissing)
	case *in.TotalFights < 0:
		errs.Add("total_fights", MsgNegativeValue)
	default:
		draft.TotalFights = *in.TotalFights
	}

	return draft, errs
}

// RegistrationInput is the public single athlete registration form.
type RegistrationInput struct {
	AcademyInput
	AthleteInput
}

// Normalize validates every field and returns all problems at once as
// domain.ValidationErrors.
func (in *RegistrationInput) Normalize(today time.Time) (*RegistrationDraft, error) {
	academy, errs := in.AcademyInput.Normalize()
	draft, athleteErrs := in.AthleteInput.normalize(today)
	errs.Merge("", athleteErrs)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	draft.Academy = academy
	return draft, nil
}

// BulkRegistrationInput registers several athletes of one academy at once.
type BulkRegistrationInput struct {
	Shared   AcademyInput
	Athletes []AthleteInput
}

// AthleteField names the error key of a field in the i-th bulk row.
func AthleteField(i int, field string) string {
	return fmt.Sprintf("athletes.%d.%s", i, field)
}

// Normalize validates the shared fields and every non blank row. A CPF
// repeated inside the batch is reported on the later rows.
func (in *BulkRegistrationInput) Normalize(today time.Time) ([]*RegistrationDraft, error) {
	shared, errs := in.Shared.Normalize()

	drafts := make([]*RegistrationDraft, 0, len(in.Athletes))
	seenCPF := map[string]bool{}
	for i, row := range in.Athletes {
		if row.IsBlank() {
			continue
		}
		draft, rowErrs := row.normalize(today)
		if draft.CPF != "" && !rowErrs.Has("cpf") {
			if seenCPF[draft.CPF] {
				rowErrs.Add("cpf", MsgCPFDuplicate)
			}
			seenCPF[draft.CPF] = true
		}
		errs.Merge(fmt.Sprintf("athletes.%d", i), rowErrs)
		draft.Academy = shared
		drafts = append(drafts, draft)
	}

	if len(drafts) == 0 && !errs.Has("") {
		errs.Add("", MsgNoAthletes)
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return drafts, nil
}
