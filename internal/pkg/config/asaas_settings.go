package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Billing types accepted by the Asaas gateway
const (
	BillingTypePix        = "PIX"
	BillingTypeBoleto     = "BOLETO"
	BillingTypeCreditCard = "CREDIT_CARD"
	BillingTypeUndefined  = "UNDEFINED"
)

// AsaasSettings configures the Asaas payment gateway. An empty APIKey or
// APIBase is allowed at startup; the gateway reports the missing
// configuration when a charge is requested.
type AsaasSettings struct {
	APIKey             string        `mapstructure:"api_key"`
	APIBase            string        `mapstructure:"api_base" validate:"omitempty,url"`
	WebhookToken       string        `mapstructure:"webhook_token"`
	PaymentDueDays     int           `mapstructure:"payment_due_days" validate:"gte=0,lte=60"`
	DefaultBillingType string        `mapstructure:"default_billing_type" validate:"omitempty,oneof=PIX BOLETO CREDIT_CARD UNDEFINED"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// Validate checks the gateway settings.
func (s *AsaasSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for AsaasSettings: %w", err)
	}
	return nil
}

// BillingType returns the configured billing type, PIX when unset.
func (s *AsaasSettings) BillingType() string {
	if s.DefaultBillingType == "" {
		return BillingTypePix
	}
	return s.DefaultBillingType
}
