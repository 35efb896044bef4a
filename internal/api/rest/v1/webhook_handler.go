package v1

import (
	"errors"
	"net/http"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// webhookTokenHeaders are checked in order for the gateway token.
var webhookTokenHeaders = []string{"X-Asaas-Token", "asaas-access-token", "Authorization"}

// WebhookHandler defines the interface for gateway notifications
type WebhookHandler interface {
	Asaas(ctx *gin.Context)
}

type webhookHandler struct {
	paymentService payments.PaymentService
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(paymentService payments.PaymentService) WebhookHandler {
	return &webhookHandler{paymentService: paymentService}
}

func (handler *webhookHandler) authorized(ctx *gin.Context) bool {
	var candidates []string
	for _, name := range webhookTokenHeaders {
		if token := ctx.GetHeader(name); token != "" {
			candidates = append(candidates, token)
		}
	}
	if len(candidates) == 0 {
		return handler.paymentService.AuthorizeWebhook("")
	}
	for _, token := range candidates {
		if handler.paymentService.AuthorizeWebhook(token) {
			return true
		}
	}
	return false
}

// Asaas applies an Asaas payment notification
func (handler *webhookHandler) Asaas(ctx *gin.Context) {
	if !handler.authorized(ctx) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	body, err := ctx.GetRawData()
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": payments.ErrInvalidWebhookBody.Error()})
		return
	}

	if _, err := handler.paymentService.HandleWebhook(ctx, body); err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidWebhookBody), errors.Is(err, payments.ErrWebhookMissingID):
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": MsgWebhookNotFound})
		default:
			respondError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
