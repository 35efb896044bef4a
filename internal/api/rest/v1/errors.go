package v1

import (
	"errors"
	"net/http"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/gin-gonic/gin"
)

// Response messages not owned by a domain package
const (
	MsgInvalidBody      = "Dados invalidos. Verifique o formato da requisicao."
	MsgFixErrors        = "Por favor corrija os erros abaixo e tente novamente."
	MsgBulkFixErrors    = "Nao foi possivel enviar as inscricoes. Verifique os campos destacados."
	MsgNotFound         = "Registro nao encontrado."
	MsgConflict         = "Registro duplicado."
	MsgInternal         = "Erro interno. Tente novamente em instantes."
	MsgMissingToken     = "Autenticacao necessaria."
	MsgLookupEmpty      = "Nao encontramos inscricoes para os dados informados."
	MsgWebhookNotFound  = "Pagamento nao encontrado"
	MsgRulesFileMissing = "Envie o arquivo do regulamento no campo file."
)

// ErrorResponse is the body of every failed request. Errors carries field
// messages for validation failures.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// statusOf maps a service error to its HTTP status and user facing message.
func statusOf(err error) (int, string) {
	var validationErrs domain.ValidationErrors
	var missingConfig *payments.MissingConfigurationError
	var apiErr *payments.APIError

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, MsgFixErrors
	case errors.As(err, &missingConfig):
		return http.StatusServiceUnavailable, missingConfig.Error()
	case errors.Is(err, payments.ErrMissingConfiguration):
		return http.StatusServiceUnavailable, err.Error()
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, payments.MsgChargeFailed
	case errors.Is(err, events.ErrRegistrationClosed):
		return http.StatusBadRequest, events.MsgRegistrationsClosed
	case errors.Is(err, events.ErrNoRulesDocument):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, staff.ErrInvalidCredentials),
		errors.Is(err, staff.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, staff.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, staff.ErrUsernameTaken),
		errors.Is(err, matchmaking.ErrMetricInUse):
		return http.StatusConflict, err.Error()
	case errors.Is(err, staff.ErrPasswordTooShort),
		errors.Is(err, matchmaking.ErrNoMatchesSelected),
		errors.Is(err, matchmaking.ErrNoMatchesToExport),
		errors.Is(err, matchmaking.ErrMetricNotSelected),
		errors.Is(err, dashboard.ErrInvalidPaymentAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, MsgConflict
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// isGatewayError reports whether err comes from the payment gateway.
func isGatewayError(err error) bool {
	var missingConfig *payments.MissingConfigurationError
	var apiErr *payments.APIError
	return errors.As(err, &missingConfig) || errors.As(err, &apiErr) ||
		errors.Is(err, payments.ErrMissingConfiguration)
}

// respondError writes err as an ErrorResponse. Unexpected errors are
// attached to the gin context so the request logger records them.
func respondError(ctx *gin.Context, err error) {
	status, message := statusOf(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
	}

	response := ErrorResponse{Message: message}
	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.Errors = validationErrs
	}
	ctx.AbortWithStatusJSON(status, response)
}

func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
