//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const webhookBody = `{"event":"PAYMENT_RECEIVED","payment":{"id":"pay_123","status":"RECEIVED"}}`

func TestWebhookHandler_Asaas(t *testing.T) {
	t.Run("rejects a bad token", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "wrong").Return(false)
		r := services.router()

		w := serve(r, "POST", BasePath+"/webhooks/asaas", webhookBody, map[string]string{"X-Asaas-Token": "wrong"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Body.String())
		services.payments.AssertNotCalled(t, "HandleWebhook", mock.Anything, mock.Anything)
	})

	t.Run("checks the empty token when no header is sent", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "").Return(false)
		r := services.router()

		w := serve(r, "POST", BasePath+"/webhooks/asaas", webhookBody, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		services.payments.AssertExpectations(t)
	})

	t.Run("accepts any matching header", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "stale").Return(false)
		services.payments.On("AuthorizeWebhook", "secret").Return(true)
		services.payments.On("HandleWebhook", mock.Anything, []byte(webhookBody)).
			Return(&payments.WebhookResult{PaymentID: "pay_123", Status: payments.StatusReceived, Paid: true}, nil)
		r := services.router()

		w := serve(r, "POST", BasePath+"/webhooks/asaas", webhookBody, map[string]string{
			"X-Asaas-Token":      "stale",
			"asaas-access-token": "secret",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		services.payments.AssertExpectations(t)
	})

	t.Run("legacy path is served", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "").Return(true)
		services.payments.On("HandleWebhook", mock.Anything, mock.Anything).Return(&payments.WebhookResult{PaymentID: "pay_123"}, nil)
		r := services.router()

		w := serve(r, "POST", LegacyWebhookPath, webhookBody, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "").Return(true)
		services.payments.On("HandleWebhook", mock.Anything, mock.Anything).Return(nil, payments.ErrInvalidWebhookBody)
		r := services.router()

		w := serve(r, "POST", BasePath+"/webhooks/asaas", "not json", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"JSON invalido"}`, w.Body.String())
	})

	t.Run("missing payment id", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "").Return(true)
		services.payments.On("HandleWebhook", mock.Anything, mock.Anything).Return(nil, payments.ErrWebhookMissingID)
		r := services.router()

		w := serve(r, "POST", BasePath+"/webhooks/asaas", `{"payment":{}}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Pagamento nao informado"}`, w.Body.String())
	})

	t.Run("unknown payment", func(t *testing.T) {
		services := newTestServices()
		services.payments.On("AuthorizeWebhook", "").Return(true)
		services.payments.On("HandleWebhook", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
		r := services.router()

		w := serve(r, "POST", BasePath+"/webhooks/asaas", webhookBody, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Pagamento nao encontrado"}`, w.Body.String())
	})
}
