package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// DashboardHandler defines the interface for the staff panel
type DashboardHandler interface {
	Summary(ctx *gin.Context)
	ListEvents(ctx *gin.Context)
	ListRegistrations(ctx *gin.Context)
	ExportRegistrations(ctx *gin.Context)
	PaymentAction(ctx *gin.Context)
}

type dashboardHandler struct {
	dashboardService dashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{dashboardService: dashboardService}
}

// registrationFilter reads the staff registration filters from the query string.
func registrationFilter(ctx *gin.Context) *dashboard.RegistrationFilter {
	return &dashboard.RegistrationFilter{
		Search:    ctx.Query("busca"),
		Status:    events.Status(ctx.Query("status")),
		EventSlug: ctx.Query("evento"),
		Modality:  events.Modality(ctx.Query("modalidade")),
	}
}

// Summary returns the panel home page
// @Summary Staff dashboard
// @Tags Panel
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Router /painel [get]
func (handler *dashboardHandler) Summary(ctx *gin.Context) {
	summary, err := handler.dashboardService.Summary(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSummaryResponse(summary, time.Now()))
}

// ListEvents pages every event with its registration totals
func (handler *dashboardHandler) ListEvents(ctx *gin.Context) {
	page, err := handler.dashboardService.ListEvents(ctx, ctx.Query("busca"), ctx.Query("status"), queryPage(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, StaffEventListResponse{
		PageInfo: newPageInfo(page.Page, page.PageSize, page.TotalCount),
		Events:   newEventSummaries(page.Events, time.Now()),
	})
}

// ListRegistrations pages registrations with their payments
func (handler *dashboardHandler) ListRegistrations(ctx *gin.Context) {
	page, err := handler.dashboardService.ListRegistrations(ctx, registrationFilter(ctx), queryPage(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := StaffRegistrationListResponse{
		PageInfo:      newPageInfo(page.Page, page.PageSize, page.TotalCount),
		Registrations: make([]StaffRegistrationResponse, 0, len(page.Registrations)),
	}
	for _, r := range page.Registrations {
		response.Registrations = append(response.Registrations, StaffRegistrationResponse{
			RegistrationResponse: newRegistrationResponse(r),
			Payment:              newPaymentResponse(page.Payments[r.ID]),
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// ExportRegistrations downloads the filtered registrations as a spreadsheet
func (handler *dashboardHandler) ExportRegistrations(ctx *gin.Context) {
	file, err := handler.dashboardService.ExportRegistrations(ctx, registrationFilter(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendFile(ctx, file.FileName, file.ContentType, file.Content)
}

// PaymentAction resends or manually confirms the payment of a registration
func (handler *dashboardHandler) PaymentAction(ctx *gin.Context) {
	var request PaymentActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	result, err := handler.dashboardService.PaymentAction(ctx, ctx.Param("id"), request.Action)
	if err != nil {
		var apiErr *payments.APIError
		if errors.As(err, &apiErr) {
			respondMessage(ctx, http.StatusBadGateway, dashboard.MsgResendFailed)
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PaymentActionResponse{
		Action:  result.Action,
		Message: result.Message,
		Payment: newPaymentResponse(result.Payment),
	})
}
