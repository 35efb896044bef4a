package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"
)

// exportLimit bounds the rows of a registrations spreadsheet.
const exportLimit = 100000

// dashboardService implements the DashboardService interface
type dashboardService struct {
	store    store.Store
	payments payments.PaymentService
	exporter dashboard.RegistrationExporter
	loc      *time.Location
	logger   logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	st store.Store,
	paymentService payments.PaymentService,
	exporter dashboard.RegistrationExporter,
	loc *time.Location,
	logger logger.Logger,
) (dashboard.DashboardService, error) {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		store:    st,
		payments: paymentService,
		exporter: exporter,
		loc:      loc,
		logger:   logger,
	}, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	repos := s.store.Repos()
	now := time.Now()
	summary := &dashboard.Summary{}

	var err error
	if summary.PublishedEvents, err = repos.Events.CountPublished(ctx); err != nil {
		return nil, err
	}
	if summary.OpenEvents, err = repos.Events.CountOpen(ctx, now); err != nil {
		return nil, err
	}

	byStatus, err := repos.Registrations.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, count := range byStatus {
		summary.Registrations.Total += count
	}
	summary.Registrations.Pending = byStatus[events.StatusPending]
	summary.Registrations.Confirmed = byStatus[events.StatusConfirmed]
	summary.Registrations.Cancelled = byStatus[events.StatusCancelled]

	since := now.Add(-24 * time.Hour)
	upcoming, _, err := repos.Events.List(ctx, &events.EventQuery{
		PublishedOnly: true,
		StartsAfter:   &since,
		Ascending:     true,
		Limit:         dashboard.UpcomingLimit,
	})
	if err != nil {
		return nil, err
	}
	if summary.Upcoming, err = summarizeEvents(ctx, repos, upcoming); err != nil {
		return nil, err
	}

	if summary.TopAcademies, err = repos.Registrations.TopAcademies(ctx, dashboard.TopAcademiesLimit); err != nil {
		return nil, err
	}
	if summary.Recent, _, err = repos.Registrations.List(ctx, &events.RegistrationQuery{Limit: dashboard.RecentLimit}); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *dashboardService) ListEvents(ctx context.Context, search, status string, page int) (*dashboard.EventPage, error) {
	if status != events.EventFilterPublished && status != events.EventFilterDrafts {
		status = ""
	}
	page, offset := pageOffset(page, dashboard.EventsPageSize)

	repos := s.store.Repos()
	list, total, err := repos.Events.List(ctx, &events.EventQuery{
		Search: strings.TrimSpace(search),
		Status: status,
		Limit:  dashboard.EventsPageSize,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	summaries, err := summarizeEvents(ctx, repos, list)
	if err != nil {
		return nil, err
	}
	return &dashboard.EventPage{
		Events:     summaries,
		Page:       page,
		PageSize:   dashboard.EventsPageSize,
		TotalCount: total,
	}, nil
}

// registrationQuery drops unknown status and modality filters.
func registrationQuery(filter *dashboard.RegistrationFilter) *events.RegistrationQuery {
	query := &events.RegistrationQuery{}
	if filter == nil {
		return query
	}
	query.Search = strings.TrimSpace(filter.Search)
	query.EventSlug = strings.TrimSpace(filter.EventSlug)
	if filter.Status.Valid() {
		query.Status = filter.Status
	}
	if filter.Modality.Valid() {
		query.Modality = filter.Modality
	}
	return query
}

func (s *dashboardService) ListRegistrations(ctx context.Context, filter *dashboard.RegistrationFilter, page int) (*dashboard.RegistrationPage, error) {
	page, offset := pageOffset(page, dashboard.RegistrationsPageSize)
	query := registrationQuery(filter)
	query.Limit = dashboard.RegistrationsPageSize
	query.Offset = offset

	repos := s.store.Repos()
	regs, total, err := repos.Registrations.List(ctx, query)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.ID)
	}
	paymentsByReg, err := repos.Payments.ListByRegistrationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &dashboard.RegistrationPage{
		Registrations: regs,
		Payments:      paymentsByReg,
		Page:          page,
		PageSize:      dashboard.RegistrationsPageSize,
		TotalCount:    total,
	}, nil
}

func (s *dashboardService) ExportRegistrations(ctx context.Context, filter *dashboard.RegistrationFilter) (*dashboard.ExportFile, error) {
	query := registrationQuery(filter)
	query.Limit = exportLimit

	regs, _, err := s.store.Repos().Registrations.List(ctx, query)
	if err != nil {
		return nil, err
	}
	content, err := s.exporter.Export(regs)
	if err != nil {
		return nil, fmt.Errorf("failed to export registrations: %w", err)
	}

	s.logger.Info("Registrations exported", "rows", len(regs))
	return &dashboard.ExportFile{
		FileName:    fmt.Sprintf("inscricoes-%s.%s", time.Now().In(s.loc).Format("20060102-1504"), s.exporter.Extension()),
		ContentType: s.exporter.ContentType(),
		Content:     content,
	}, nil
}

func (s *dashboardService) PaymentAction(ctx context.Context, registrationID, action string) (*dashboard.PaymentActionResult, error) {
	switch action {
	case dashboard.ActionResend:
		payment, err := s.payments.Resend(ctx, registrationID)
		if err != nil {
			var apiErr *payments.APIError
			if errors.As(err, &apiErr) {
				return nil, fmt.Errorf("%s: %w", dashboard.MsgResendFailed, err)
			}
			return nil, err
		}
		result := &dashboard.PaymentActionResult{Action: action, Payment: payment, Message: dashboard.MsgResendWithoutLink}
		if link := paymentLink(payment); link != "" {
			result.Message = fmt.Sprintf(dashboard.MsgResendWithLink, link)
		}
		return result, nil
	case dashboard.ActionManualConfirm:
		payment, err := s.payments.MarkPaidManually(ctx, registrationID)
		if err != nil {
			return nil, err
		}
		return &dashboard.PaymentActionResult{Action: action, Payment: payment, Message: dashboard.MsgManualConfirmed}, nil
	default:
		return nil, dashboard.ErrInvalidPaymentAction
	}
}

func paymentLink(p *payments.Payment) string {
	if p.InvoiceURL != "" {
		return p.InvoiceURL
	}
	return p.BankSlipURL
}
