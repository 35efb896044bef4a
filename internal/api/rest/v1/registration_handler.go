package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// Registration success messages
const (
	MsgRegisteredFree = "Inscricao confirmada! Evento gratuito, nao ha cobranca pendente."
	MsgRegisteredPaid = "Inscricao criada! Realize o pagamento para confirmar sua vaga."
	MsgBulkFree       = "%d inscricao(oes) confirmadas (evento gratuito)."
	MsgBulkPaid       = "%d inscricao(oes) criadas com sucesso!"
)

// RegistrationHandler defines the interface for the public registration flows
type RegistrationHandler interface {
	Register(ctx *gin.Context)
	RegisterBulk(ctx *gin.Context)
	Lookup(ctx *gin.Context)
}

type registrationHandler struct {
	registrationService events.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService events.RegistrationService) RegistrationHandler {
	return &registrationHandler{registrationService: registrationService}
}

func newRegistrationResult(r *events.RegistrationResult) RegistrationResultResponse {
	return RegistrationResultResponse{
		Registration: newRegistrationResponse(r.Registration),
		Payment:      newPaymentResponse(r.Payment),
	}
}

// Register registers one athlete in an open event
// @Summary Register an athlete
// @Tags Registration
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param requestBody body RegistrationRequest true "Registration"
// @Success 201 {object} RegistrationResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /events/{slug}/registrations [post]
func (handler *registrationHandler) Register(ctx *gin.Context) {
	var request RegistrationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	result, err := handler.registrationService.Register(ctx, ctx.Param("slug"), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := newRegistrationResult(result)
	response.Message = MsgRegisteredPaid
	if result.Registration.Event != nil && result.Registration.Event.IsFree {
		response.Message = MsgRegisteredFree
	}
	ctx.JSON(http.StatusCreated, response)
}

// RegisterBulk registers several athletes of one academy at once
func (handler *registrationHandler) RegisterBulk(ctx *gin.Context) {
	var request BulkRegistrationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	result, err := handler.registrationService.RegisterBulk(ctx, ctx.Param("slug"), request.ToInput())
	if err != nil {
		var validationErrs domain.ValidationErrors
		var apiErr *payments.APIError
		switch {
		case errors.As(err, &validationErrs):
			ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: MsgBulkFixErrors, Errors: validationErrs})
		case errors.As(err, &apiErr):
			respondMessage(ctx, http.StatusBadGateway, payments.MsgBulkChargeFailed)
		default:
			respondError(ctx, err)
		}
		return
	}

	count := len(result.Registrations)
	response := BulkRegistrationResponse{
		Message:       fmt.Sprintf(MsgBulkPaid, count),
		Event:         newEventResponse(result.Event, time.Now()),
		Count:         count,
		TotalAmount:   result.TotalAmount,
		Registrations: make([]RegistrationResultResponse, 0, count),
	}
	if result.Event.IsFree {
		response.Message = fmt.Sprintf(MsgBulkFree, count)
	}
	for _, r := range result.Registrations {
		response.Registrations = append(response.Registrations, newRegistrationResult(r))
	}
	ctx.JSON(http.StatusCreated, response)
}

// Lookup lists the registrations of an athlete. The "send-payment" action
// also sends the payment of one of them before listing.
func (handler *registrationHandler) Lookup(ctx *gin.Context) {
	var request LookupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	var response LookupResponse
	if request.Action == ActionSendPayment {
		sent, err := handler.registrationService.SendPayment(ctx, request.CPF, request.BirthDate, request.RegistrationID)
		switch {
		case err == nil:
			response.Message = sent.Message
			response.Outcome = string(sent.Outcome)
		case errors.Is(err, domain.ErrNotFound):
			// unknown registration, list only
		case isGatewayError(err):
			_ = ctx.Error(err)
			_, response.Message = statusOf(err)
		default:
			respondError(ctx, err)
			return
		}
	}

	results, err := handler.registrationService.Lookup(ctx, request.CPF, request.BirthDate)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.Registrations = newLookupItems(results)
	if len(results) == 0 && response.Message == "" {
		response.Message = MsgLookupEmpty
	}
	ctx.JSON(http.StatusOK, response)
}
