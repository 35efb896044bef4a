package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Messages shown for invalid event data
const (
	MsgDeadlineAfterStart  = "O término das inscrições deve ser antes do início do evento."
	MsgFormDeadlineAfter   = "O encerramento das inscrições deve ocorrer antes do início do evento."
	MsgStartInPast         = "A data do evento deve estar no futuro."
	MsgRequired            = "Este campo é obrigatório."
	MsgNegativeValue       = "Certifique-se que este valor seja maior ou igual a 0."
	MsgRegistrationsClosed = "As inscricoes para este evento estao encerradas."
)

const (
	defaultSlug   = "evento"
	maxSlugLength = 255
)

// Event is a federation event open for athlete registrations.
type Event struct {
	ID                   string          `validate:"required,uuid4"`
	Title                string          `validate:"required,max=255"`
	Slug                 string          `validate:"required,max=255"`
	Location             string          `validate:"required,max=255"`
	Description          string          `validate:"-"`
	StartAt              time.Time       `validate:"required"`
	RegistrationDeadline time.Time       `validate:"required"`
	RegistrationFee      decimal.Decimal `validate:"-"`
	IsFree               bool
	RulesDocument        string `validate:"omitempty,max=255"`
	IsPublished          bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate checks the event fields and that registrations close before the event starts.
func (e *Event) Validate() error {
	if err := domain.ValidateStruct(validator.New(), e); err != nil {
		return err
	}
	if e.RegistrationFee.IsNegative() {
		return domain.NewValidationError("registration_fee", MsgNegativeValue)
	}
	if !e.RegistrationDeadline.Before(e.StartAt) {
		return domain.NewValidationError("registration_deadline", MsgDeadlineAfterStart)
	}
	return nil
}

// IsRegistrationOpen reports whether the event is published and the deadline has not passed.
func (e *Event) IsRegistrationOpen(now time.Time) bool {
	return e.IsPublished && !now.After(e.RegistrationDeadline)
}

// ChargedFee is the amount charged per registration, zero for free events.
func (e *Event) ChargedFee() decimal.Decimal {
	if e.IsFree {
		return decimal.Zero
	}
	return e.RegistrationFee
}

// BaseSlug derives the URL slug of a title.
func BaseSlug(title string) string {
	s := slug.Make(title)
	if s == "" {
		s = defaultSlug
	}
	if len(s) > maxSlugLength-4 {
		s = strings.TrimRight(s[:maxSlugLength-4], "-")
	}
	return s
}

// SlugCandidate returns the n-th candidate for base: base itself for n <= 1,
// then base-2, base-3 and so on.
func SlugCandidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// EventInput carries the fields staff can edit on an event.
type EventInput struct {
	Title                string
	Location             string
	Description          string
	StartAt              time.Time
	RegistrationDeadline time.Time
	RegistrationFee      decimal.Decimal
	IsFree               bool
	IsPublished          bool
}

// Validate collects field errors. The event must start after now.
func (in *EventInput) Validate(now time.Time) error {
	errs := domain.ValidationErrors{}
	if strings.TrimSpace(in.Title) == "" {
		errs.Add("title", MsgRequired)
	}
	if strings.TrimSpace(in.Location) == "" {
		errs.Add("location", MsgRequired)
	}
	if in.StartAt.IsZero() {
		errs.Add("start_at", MsgRequired)
	} else if !in.StartAt.After(now) {
		errs.Add("start_at", MsgStartInPast)
	}
	if in.RegistrationDeadline.IsZero() {
		errs.Add("registration_deadline", MsgRequired)
	} else if !in.StartAt.IsZero() && !in.RegistrationDeadline.Before(in.StartAt) {
		errs.Add("registration_deadline", MsgFormDeadlineAfter)
	}
	if in.RegistrationFee.IsNegative() {
		errs.Add("registration_fee", MsgNegativeValue)
	}
	return errs.OrNil()
}

// Apply copies the input onto e.
func (in *EventInput) Apply(e *Event) {
	e.Title = strings.TrimSpace(in.Title)
	e.Location = strings.TrimSpace(in.Location)
	e.Description = in.Description
	e.StartAt = in.StartAt
	e.RegistrationDeadline = in.RegistrationDeadline
	e.RegistrationFee = in.RegistrationFee.Round(2)
	e.IsFree = in.IsFree
	e.IsPublished = in.IsPublished
}
