//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", domain.NewValidationError("cpf", "CPF inválido."), http.StatusBadRequest, MsgFixErrors},
		{"missing gateway setting", &payments.MissingConfigurationError{Setting: "ASAAS_API_KEY"}, http.StatusServiceUnavailable,
			"Configure a variavel de ambiente ASAAS_API_KEY antes de usar a API."},
		{"gateway failure", fmt.Errorf("charge: %w", &payments.APIError{StatusCode: 400, Message: "invalid"}), http.StatusBadGateway, payments.MsgChargeFailed},
		{"registration closed", events.ErrRegistrationClosed, http.StatusBadRequest, events.MsgRegistrationsClosed},
		{"no rules", events.ErrNoRulesDocument, http.StatusNotFound, MsgNotFound},
		{"bad credentials", staff.ErrInvalidCredentials, http.StatusUnauthorized, staff.ErrInvalidCredentials.Error()},
		{"bad token", staff.ErrInvalidToken, http.StatusUnauthorized, staff.ErrInvalidToken.Error()},
		{"forbidden", staff.ErrForbidden, http.StatusForbidden, staff.ErrForbidden.Error()},
		{"username taken", staff.ErrUsernameTaken, http.StatusConflict, staff.ErrUsernameTaken.Error()},
		{"metric in use", matchmaking.ErrMetricInUse, http.StatusConflict, matchmaking.ErrMetricInUse.Error()},
		{"no matches selected", matchmaking.ErrNoMatchesSelected, http.StatusBadRequest, matchmaking.ErrNoMatchesSelected.Error()},
		{"invalid payment action", dashboard.ErrInvalidPaymentAction, http.StatusBadRequest, dashboard.ErrInvalidPaymentAction.Error()},
		{"not found", fmt.Errorf("event: %w", domain.ErrNotFound), http.StatusNotFound, MsgNotFound},
		{"conflict", domain.ErrConflict, http.StatusConflict, MsgConflict},
		{"unexpected", errors.New("disk full"), http.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusOf(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
