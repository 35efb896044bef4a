package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMissingConfiguration is returned when the gateway credentials are not set.
var ErrMissingConfiguration = errors.New("asaas gateway is not configured")

// MissingConfigurationError names the setting that is missing.
type MissingConfigurationError struct {
	Setting string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("Configure a variavel de ambiente %s antes de usar a API.", e.Setting)
}

// Unwrap allows errors.Is(err, ErrMissingConfiguration).
func (e *MissingConfigurationError) Unwrap() error {
	return ErrMissingConfiguration
}

// APIError is a failed call to the gateway. StatusCode is 0 for transport failures.
type APIError struct {
	Message      string
	StatusCode   int
	ResponseData map[string]any
}

func (e *APIError) Error() string {
	return e.Message
}

// Customer is a gateway customer.
type Customer struct {
	ID  string
	Raw map[string]any
}

// CustomerRequest identifies the payer of a charge.
type CustomerRequest struct {
	Name        string
	CPF         string
	Email       string
	MobilePhone string
}

// ChargeRequest describes a charge to create.
type ChargeRequest struct {
	CustomerID        string
	Value             decimal.Decimal
	DueDate           time.Time
	Description       string
	BillingType       BillingType
	ExternalReference string
}

// Charge is the gateway's view of a created payment.
type Charge struct {
	ID          string
	Status      Status
	BillingType BillingType
	DueDate     time.Time
	Value       decimal.Decimal
	InvoiceURL  string
	BankSlipURL string
	Raw         map[string]any
	// PixQRCodeImage and PixCopyAndPaste are empty unless the PIX QR code
	// could be fetched.
	PixQRCodeImage  string
	PixCopyAndPaste string
}

// Gateway is the payment provider.
type Gateway interface {
	// EnsureCustomer returns the customer registered under the CPF, creating it when absent.
	EnsureCustomer(ctx context.Context, req CustomerRequest) (*Customer, error)
	// CreatePayment creates a charge.
	CreatePayment(ctx context.Context, req ChargeRequest) (*Charge, error)
}
