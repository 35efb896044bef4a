// Package dashboard defines the staff panel read models and actions.
package dashboard

import (
	"context"
	"errors"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
)

// Panel page sizes and limits
const (
	EventsPageSize        = 15
	RegistrationsPageSize = 20
	UpcomingLimit         = 6
	TopAcademiesLimit     = 5
	RecentLimit           = 8
)

// Payment actions available on a registration
const (
	ActionResend        = "resend"
	ActionManualConfirm = "manual-confirm"
)

// Payment action messages
const (
	MsgResendWithLink    = "Novo link de pagamento gerado. Copie e encaminhe ao atleta: %s"
	MsgResendWithoutLink = "Novo pagamento criado. Consulte os detalhes atualizados da inscricao."
	MsgManualConfirmed   = "Pagamento marcado como confirmado. A inscricao foi atualizada."
	MsgResendFailed      = "Nao foi possivel gerar uma nova cobranca agora. Tente novamente em instantes."
)

// ErrInvalidPaymentAction is returned for an unknown payment action.
var ErrInvalidPaymentAction = errors.New("Acao de pagamento invalida.")

// RegistrationTotals counts registrations per status.
type RegistrationTotals struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Cancelled int64
}

// Summary is the panel home page.
type Summary struct {
	PublishedEvents int64
	OpenEvents      int64
	Registrations   RegistrationTotals
	Upcoming        []*events.EventSummary
	TopAcademies    []events.AcademyCount
	Recent          []*events.AthleteRegistration
}

// EventPage is one page of the staff event list.
type EventPage struct {
	Events     []*events.EventSummary
	Page       int
	PageSize   int
	TotalCount int64
}

// RegistrationFilter narrows the staff registration list and export.
type RegistrationFilter struct {
	Search    string
	Status    events.Status
	EventSlug string
	Modality  events.Modality
}

// RegistrationPage is one page of the staff registration list.
type RegistrationPage struct {
	Registrations []*events.AthleteRegistration
	Payments      map[string]*payments.Payment
	Page          int
	PageSize      int
	TotalCount    int64
}

// PaymentActionResult is the outcome of a staff payment action.
type PaymentActionResult struct {
	Action  string
	Message string
	Payment *payments.Payment
}

// ExportFile is a generated spreadsheet.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// RegistrationExporter renders registrations as a spreadsheet.
type RegistrationExporter interface {
	Export(registrations []*events.AthleteRegistration) ([]byte, error)
	ContentType() string
	Extension() string
}

// DashboardService serves the staff panel.
type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
	ListEvents(ctx context.Context, search, status string, page int) (*EventPage, error)
	ListRegistrations(ctx context.Context, filter *RegistrationFilter, page int) (*RegistrationPage, error)
	ExportRegistrations(ctx context.Context, filter *RegistrationFilter) (*ExportFile, error)
	PaymentAction(ctx context.Context, registrationID, action string) (*PaymentActionResult, error)
}
