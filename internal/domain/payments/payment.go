// Package payments models registration fees charged through the Asaas gateway.
package payments

import (
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Status mirrors the payment statuses reported by Asaas.
type Status string

// Payment statuses
const (
	StatusPending              Status = "PENDING"
	StatusAwaitingRiskAnalysis Status = "AWAITING_RISK_ANALYSIS"
	StatusReceived             Status = "RECEIVED"
	StatusConfirmed            Status = "CONFIRMED"
	StatusOverdue              Status = "OVERDUE"
	StatusRefunded             Status = "REFUNDED"
	StatusRefundRequested      Status = "REFUND_REQUESTED"
	StatusChargebackRequested  Status = "CHARGEBACK_REQUESTED"
	StatusChargebackDispute    Status = "CHARGEBACK_DISPUTE"
	StatusChargebackReversed   Status = "CHARGEBACK_REVERSED"
	StatusBankSlipViewed       Status = "BANK_SLIP_VIEWED"
	StatusDeleted              Status = "PAYMENT_DELETED"
	StatusUnknown              Status = "UNKNOWN"
)

// IsPaidStatus reports whether status means the money was received.
func IsPaidStatus(status Status) bool {
	return status == StatusReceived || status == StatusConfirmed
}

// BillingType is the Asaas payment method.
type BillingType string

// Billing types
const (
	BillingPix        BillingType = "PIX"
	BillingBoleto     BillingType = "BOLETO"
	BillingCreditCard BillingType = "CREDIT_CARD"
	BillingUndefined  BillingType = "UNDEFINED"
)

// ManualCustomerID marks payments confirmed by staff without a gateway charge.
const ManualCustomerID = "manual"

// Payment is the charge attached to a single registration.
type Payment struct {
	ID                string `validate:"required,uuid4"`
	RegistrationID    string `validate:"required,uuid4"`
	CustomerID        string `validate:"required,max=64"`
	GatewayPaymentID  string `validate:"required,max=64"`
	Value             decimal.Decimal
	DueDate           time.Time   `validate:"required"`
	BillingType       BillingType `validate:"required,oneof=PIX BOLETO CREDIT_CARD UNDEFINED"`
	Status            Status      `validate:"required,max=32"`
	InvoiceURL        string
	BankSlipURL       string
	PixQRCodeImage    string
	PixCopyAndPaste   string
	ExternalReference string `validate:"max=64"`
	Payload           map[string]any
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate checks the payment fields.
func (p *Payment) Validate() error {
	return domain.ValidateStruct(validator.New(), p)
}

// IsPaid reports whether the gateway acknowledged the payment.
func (p *Payment) IsPaid() bool {
	return IsPaidStatus(p.Status)
}

// AmountDisplay renders the value as "R$ 0.00".
func (p *Payment) AmountDisplay() string {
	return "R$ " + p.Value.StringFixed(2)
}

// MarkAsPaid records the payment as paid at now. An empty status defaults
// to RECEIVED and a nil payload keeps the current one.
func (p *Payment) MarkAsPaid(status Status, payload map[string]any, now time.Time) {
	if status == "" {
		status = StatusReceived
	}
	p.Status = status
	p.PaidAt = &now
	if payload != nil {
		p.Payload = payload
	}
}
