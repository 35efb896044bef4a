package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultDueDays = 3

// paymentCharger creates gateway charges for registrations. Callers pass
// the repositories so charges can join their transaction.
type paymentCharger struct {
	gateway     payments.Gateway
	dueDays     int
	billingType payments.BillingType
	loc         *time.Location
	logger      logger.Logger
}

func newPaymentCharger(gateway payments.Gateway, settings *config.AsaasSettings, loc *time.Location, logger logger.Logger) *paymentCharger {
	dueDays := settings.PaymentDueDays
	if dueDays <= 0 {
		dueDays = defaultDueDays
	}
	if loc == nil {
		loc = time.UTC
	}
	return &paymentCharger{
		gateway:     gateway,
		dueDays:     dueDays,
		billingType: payments.BillingType(settings.BillingType()),
		loc:         loc,
		logger:      logger,
	}
}

// today is the current calendar day in the configured timezone.
func (c *paymentCharger) today() time.Time {
	return events.Date(time.Now().In(c.loc))
}

// Charge creates a gateway charge for reg and stores it as the payment of
// the registration. reg must carry its event; the coach is optional.
func (c *paymentCharger) Charge(ctx context.Context, repos store.Repositories, reg *events.AthleteRegistration) (*payments.Payment, error) {
	if reg.Event == nil {
		return nil, fmt.Errorf("registration %s has no event loaded", reg.ID)
	}

	customerReq := payments.CustomerRequest{
		Name:        reg.AthleteName,
		CPF:         reg.CPFValue(),
		MobilePhone: validators.MobilePhone(reg.WhatsApp),
	}
	if reg.Coach != nil {
		customerReq.Email = reg.Coach.Email
	}
	customer, err := c.gateway.EnsureCustomer(ctx, customerReq)
	if err != nil {
		return nil, err
	}

	charge, err := c.gateway.CreatePayment(ctx, payments.ChargeRequest{
		CustomerID:        customer.ID,
		Value:             reg.Event.RegistrationFee,
		DueDate:           c.today().AddDate(0, 0, c.dueDays),
		Description:       fmt.Sprintf("Inscricao %s - %s", reg.AthleteName, reg.Event.Title),
		BillingType:       c.billingType,
		ExternalReference: reg.ID,
	})
	if err != nil {
		return nil, err
	}

	payment := &payments.Payment{
		ID:                uuid.NewString(),
		RegistrationID:    reg.ID,
		CustomerID:        customer.ID,
		GatewayPaymentID:  charge.ID,
		Value:             reg.Event.RegistrationFee,
		DueDate:           charge.DueDate,
		BillingType:       charge.BillingType,
		Status:            charge.Status,
		InvoiceURL:        charge.InvoiceURL,
		BankSlipURL:       charge.BankSlipURL,
		PixQRCodeImage:    charge.PixQRCodeImage,
		PixCopyAndPaste:   charge.PixCopyAndPaste,
		ExternalReference: reg.ID,
		Payload:           charge.Raw,
	}
	if payment.DueDate.IsZero() {
		payment.DueDate = c.today().AddDate(0, 0, c.dueDays)
	}
	if payment.BillingType == "" {
		payment.BillingType = c.billingType
	}
	if payment.Status == "" {
		payment.Status = payments.StatusPending
	}

	if err := repos.Payments.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	c.logger.Info("Charge created", "registration_id", reg.ID, "gateway_payment_id", charge.ID, "value", payment.Value.StringFixed(2))
	return payment, nil
}

// MarkPaidManually confirms reg without a gateway charge. An existing
// payment is marked CONFIRMED; otherwise a manual payment is recorded.
func (c *paymentCharger) MarkPaidManually(ctx context.Context, repos store.Repositories, reg *events.AthleteRegistration) (*payments.Payment, error) {
	now := time.Now()
	payment, err := repos.Payments.GetByRegistrationID(ctx, reg.ID)
	switch {
	case err == nil:
		payload := make(map[string]any, len(payment.Payload)+1)
		for k, v := range payment.Payload {
			payload[k] = v
		}
		payload["manual_confirmation"] = true
		payment.MarkAsPaid(payments.StatusConfirmed, payload, now)
	case isNotFound(err):
		value := decimal.Zero
		if reg.Event != nil {
			value = reg.Event.RegistrationFee
		}
		payment = &payments.Payment{
			ID:                uuid.NewString(),
			RegistrationID:    reg.ID,
			CustomerID:        payments.ManualCustomerID,
			GatewayPaymentID:  "manual-" + strings.ReplaceAll(uuid.NewString(), "-", ""),
			Value:             value,
			DueDate:           c.today(),
			BillingType:       payments.BillingUndefined,
			Status:            payments.StatusConfirmed,
			ExternalReference: reg.ID,
			Payload:           map[string]any{"manual_confirmation": true},
			PaidAt:            &now,
		}
	default:
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if err := repos.Payments.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	if err := repos.Registrations.UpdateStatus(ctx, reg.ID, events.StatusConfirmed); err != nil {
		return nil, fmt.Errorf("failed to confirm registration: %w", err)
	}
	reg.Status = events.StatusConfirmed

	c.logger.Info("Payment confirmed manually", "registration_id", reg.ID, "payment_id", payment.ID)
	return payment, nil
}
