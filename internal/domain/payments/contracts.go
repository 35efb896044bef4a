package payments

import (
	"context"
	"errors"
)

// PaymentRepository persists payments.
type PaymentRepository interface {
	// Save inserts p or updates the payment of the same registration.
	Save(ctx context.Context, p *Payment) error
	GetByRegistrationID(ctx context.Context, registrationID string) (*Payment, error)
	GetByGatewayID(ctx context.Context, gatewayPaymentID string) (*Payment, error)
	ListByRegistrationIDs(ctx context.Context, registrationIDs []string) (map[string]*Payment, error)
}

// WebhookResult describes the effect of a gateway notification.
type WebhookResult struct {
	PaymentID string
	Status    Status
	Paid      bool
}

// PaymentService handles charges after registration.
type PaymentService interface {
	// Resend creates a fresh charge for a registration and moves it back to pending.
	Resend(ctx context.Context, registrationID string) (*Payment, error)
	// MarkPaidManually confirms a registration without a gateway charge.
	MarkPaidManually(ctx context.Context, registrationID string) (*Payment, error)
	// AuthorizeWebhook checks the token sent by the gateway. Any token is
	// accepted when none is configured.
	AuthorizeWebhook(token string) bool
	// HandleWebhook applies a gateway notification body.
	HandleWebhook(ctx context.Context, body []byte) (*WebhookResult, error)
}

// Webhook body errors
var (
	ErrInvalidWebhookBody = errors.New("JSON invalido")
	ErrWebhookMissingID   = errors.New("Pagamento nao informado")
)

// Messages shown when a charge cannot be created
const (
	MsgChargeFailed     = "Nao foi possivel gerar o pagamento no momento. Tente novamente em instantes."
	MsgBulkChargeFailed = "Nao foi possivel gerar os pagamentos no momento. Tente novamente em instantes."
)
