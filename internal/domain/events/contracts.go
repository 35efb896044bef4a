// Package events models federation events, athlete registrations and the
// registration flows.
package events

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
)

// ErrRegistrationClosed is returned when an event no longer accepts registrations.
var ErrRegistrationClosed = errors.New(MsgRegistrationsClosed)

// ErrNoRulesDocument is returned when an event has no rules document.
var ErrNoRulesDocument = errors.New("event has no rules document")

// Event list filters used by the staff panel
const (
	EventFilterPublished = "publicados"
	EventFilterDrafts    = "rascunhos"
)

// EventQuery filters event listings.
type EventQuery struct {
	Search string
	// Status is EventFilterPublished, EventFilterDrafts or empty.
	Status        string
	PublishedOnly bool
	StartsAfter   *time.Time
	Ascending     bool
	Limit         int
	Offset        int
}

// RegistrationQuery filters registration listings.
type RegistrationQuery struct {
	// Search matches athlete, academy or coach names.
	Search    string
	Status    Status
	EventID   string
	EventSlug string
	Modality  Modality
	Limit     int
	Offset    int
}

// EventCounts holds registration totals of one event.
type EventCounts struct {
	Total     int64
	Confirmed int64
}

// AcademyCount is an academy with its number of registrations.
type AcademyCount struct {
	Academy       academies.Academy
	Registrations int64
}

// EventRepository persists events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// SlugExists ignores the event identified by excludeID.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context, query *EventQuery) ([]*Event, int64, error)
	CountPublished(ctx context.Context) (int64, error)
	// CountOpen counts published events whose deadline is not before now.
	CountOpen(ctx context.Context, now time.Time) (int64, error)
}

// RegistrationRepository persists registrations. Reads load the event,
// academy and coach.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *AthleteRegistration) error
	Update(ctx context.Context, reg *AthleteRegistration) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	GetByID(ctx context.Context, id string) (*AthleteRegistration, error)
	CPFExists(ctx context.Context, eventID, cpf string) (bool, error)
	List(ctx context.Context, query *RegistrationQuery) ([]*AthleteRegistration, int64, error)
	// ListByCPFAndBirthDate returns the newest registrations first.
	ListByCPFAndBirthDate(ctx context.Context, cpf string, birthDate time.Time) ([]*AthleteRegistration, error)
	// ListConfirmedByEvent returns confirmed registrations in creation order.
	ListConfirmedByEvent(ctx context.Context, eventID string) ([]*AthleteRegistration, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CountByEvents(ctx context.Context, eventIDs []string) (map[string]EventCounts, error)
	TopAcademies(ctx context.Context, limit int) ([]AcademyCount, error)
}

// DocumentConnector stores uploaded documents such as event rules.
type DocumentConnector interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// EventSummary is an event with its registration totals.
type EventSummary struct {
	Event  *Event
	Counts EventCounts
}

// EventPage is one page of events.
type EventPage struct {
	Events     []*Event
	Page       int
	PageSize   int
	TotalCount int64
}

// RulesUpload is a rules document sent by staff.
type RulesUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// EventService manages events.
type EventService interface {
	Create(ctx context.Context, input *EventInput) (*Event, error)
	Update(ctx context.Context, slug string, input *EventInput) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// ListPublished pages published events by start date.
	ListPublished(ctx context.Context, page int) (*EventPage, error)
	ListForStaff(ctx context.Context, query *EventQuery) ([]*EventSummary, int64, error)
	UploadRules(ctx context.Context, slug string, upload *RulesUpload) (*Event, error)
	// DownloadRules returns the document content and its file name.
	DownloadRules(ctx context.Context, slug string) ([]byte, string, error)
}

// RegistrationResult is a created registration with its charge, if any.
type RegistrationResult struct {
	Registration *AthleteRegistration
	Payment      *payments.Payment
}

// BulkRegistrationResult summarizes a bulk registration.
type BulkRegistrationResult struct {
	Event         *Event
	Registrations []*RegistrationResult
	TotalAmount   string
}

// BracketPlacement is the slot of a registration in a generated bracket.
type BracketPlacement struct {
	BracketID string
	Title     string
	Slot      int
}

// LookupResult is a registration found by CPF and birth date.
type LookupResult struct {
	Registration *AthleteRegistration
	Payment      *payments.Payment
	Brackets     []BracketPlacement
}

// SendPaymentOutcome tells what the send payment action did.
type SendPaymentOutcome string

// Send payment outcomes
const (
	OutcomeConfirmedFree    SendPaymentOutcome = "confirmed_free"
	OutcomeAlreadyConfirmed SendPaymentOutcome = "already_confirmed"
	OutcomeChargeCreated    SendPaymentOutcome = "charge_created"
	OutcomeChargeUpdated    SendPaymentOutcome = "charge_updated"
)

// SendPaymentResult is the result of the lookup send payment action.
type SendPaymentResult struct {
	Outcome      SendPaymentOutcome
	Message      string
	Registration *AthleteRegistration
	Payment      *payments.Payment
}

// RegistrationService runs the public registration flows.
type RegistrationService interface {
	Register(ctx context.Context, slug string, input *RegistrationInput) (*RegistrationResult, error)
	RegisterBulk(ctx context.Context, slug string, input *BulkRegistrationInput) (*BulkRegistrationResult, error)
	Lookup(ctx context.Context, cpf, birthDate string) ([]*LookupResult, error)
	SendPayment(ctx context.Context, cpf, birthDate, registrationID string) (*SendPaymentResult, error)
}
