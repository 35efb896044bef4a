package app

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"
)

// paymentService implements the PaymentService interface
type paymentService struct {
	store        store.Store
	charger      *paymentCharger
	webhookToken string
	logger       logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(
	st store.Store,
	gateway payments.Gateway,
	settings *config.AsaasSettings,
	loc *time.Location,
	logger logger.Logger,
) (payments.PaymentService, error) {
	return &paymentService{
		store:        st,
		charger:      newPaymentCharger(gateway, settings, loc, logger),
		webhookToken: settings.WebhookToken,
		logger:       logger,
	}, nil
}

func (s *paymentService) Resend(ctx context.Context, registrationID string) (*payments.Payment, error) {
	var payment *payments.Payment
	err := s.store.Transaction(ctx, func(repos store.Repositories) error {
		reg, err := repos.Registrations.GetByID(ctx, registrationID)
		if err != nil {
			return err
		}
		if payment, err = s.charger.Charge(ctx, repos, reg); err != nil {
			return err
		}
		if reg.Status != events.StatusPending {
			return repos.Registrations.UpdateStatus(ctx, reg.ID, events.StatusPending)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to resend charge", "registration_id", registrationID, "error", err)
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) MarkPaidManually(ctx context.Context, registrationID string) (*payments.Payment, error) {
	var payment *payments.Payment
	err := s.store.Transaction(ctx, func(repos store.Repositories) error {
		reg, err := repos.Registrations.GetByID(ctx, registrationID)
		if err != nil {
			return err
		}
		payment, err = s.charger.MarkPaidManually(ctx, repos, reg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) AuthorizeWebhook(token string) bool {
	if s.webhookToken == "" {
		return true
	}
	if token == "" {
		return false
	}
	return constantTimeEqual(token, s.webhookToken) || constantTimeEqual(token, "Bearer "+s.webhookToken)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// webhookPaymentData picks the payment object of a notification: the
// "payment" field, else "data", else the body itself.
func webhookPaymentData(body map[string]any) (map[string]any, bool) {
	for _, key := range []string{"payment", "data"} {
		if v, ok := body[key]; ok && truthy(v) {
			data, isMap := v.(map[string]any)
			return data, isMap
		}
	}
	return body, true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	return true
}

func (s *paymentService) HandleWebhook(ctx context.Context, body []byte) (*payments.WebhookResult, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	var notification map[string]any
	if err := json.Unmarshal(body, &notification); err != nil || notification == nil {
		return nil, payments.ErrInvalidWebhookBody
	}

	data, ok := webhookPaymentData(notification)
	if !ok {
		return nil, payments.ErrWebhookMissingID
	}
	gatewayID := ""
	if id, present := data["id"]; present && truthy(id) {
		gatewayID = fmt.Sprint(id)
	}
	if gatewayID == "" {
		return nil, payments.ErrWebhookMissingID
	}
	status, _ := data["status"].(string)

	var result *payments.WebhookResult
	err := s.store.Transaction(ctx, func(repos store.Repositories) error {
		payment, err := repos.Payments.GetByGatewayID(ctx, gatewayID)
		if err != nil {
			if isNotFound(err) {
				s.logger.Warn("Webhook received for unknown payment", "gateway_payment_id", gatewayID)
			}
			return err
		}

		paid := payments.IsPaidStatus(payments.Status(status))
		if paid {
			payment.MarkAsPaid(payments.Status(status), data, time.Now())
		} else {
			if status != "" {
				payment.Status = payments.Status(status)
			}
			payment.Payload = data
		}
		if err := repos.Payments.Save(ctx, payment); err != nil {
			return fmt.Errorf("failed to save payment: %w", err)
		}
		if paid {
			if err := repos.Registrations.UpdateStatus(ctx, payment.RegistrationID, events.StatusConfirmed); err != nil {
				return fmt.Errorf("failed to confirm registration: %w", err)
			}
		}

		result = &payments.WebhookResult{PaymentID: payment.ID, Status: payment.Status, Paid: paid}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Webhook applied", "gateway_payment_id", gatewayID, "status", result.Status, "paid", result.Paid)
	return result, nil
}
