//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summary(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	paid := CreateOpenEvent(t, services, "Copa Paga", false)
	free := CreateOpenEvent(t, services, "Copa Gratis", true)

	_, err := services.Registrations.Register(ctx, paid.Slug, TestRegistrationInput("11111111111", "Atleta Pendente"))
	require.NoError(t, err)
	_, err = services.Registrations.Register(ctx, free.Slug, TestRegistrationInput("22222222222", "Atleta Confirmado"))
	require.NoError(t, err)

	summary, err := services.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.PublishedEvents)
	assert.EqualValues(t, 2, summary.OpenEvents)
	assert.EqualValues(t, 2, summary.Registrations.Total)
	assert.EqualValues(t, 1, summary.Registrations.Pending)
	assert.EqualValues(t, 1, summary.Registrations.Confirmed)
	assert.Len(t, summary.Upcoming, 2)
	require.Len(t, summary.TopAcademies, 1)
	assert.EqualValues(t, 2, summary.TopAcademies[0].Registrations)
	assert.Len(t, summary.Recent, 2)
}

func TestDashboardService_ListEventsFilter(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateOpenEvent(t, services, "Copa Publicada", false)

	page, err := services.Dashboard.ListEvents(ctx, "", events.EventFilterDrafts, 1)
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)

	page, err = services.Dashboard.ListEvents(ctx, "", "desconhecido", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)
	assert.Equal(t, dashboard.EventsPageSize, page.PageSize)
}

func TestDashboardService_ListAndExportRegistrations(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	event := CreateOpenEvent(t, services, "Copa Lista", false)

	_, err := services.Registrations.Register(ctx, event.Slug, TestRegistrationInput("11111111111", "Maria Lima"))
	require.NoError(t, err)
	_, err = services.Registrations.Register(ctx, event.Slug, TestRegistrationInput("22222222222", "Pedro Alves"))
	require.NoError(t, err)

	filter := &dashboard.RegistrationFilter{Search: "maria", Status: "invalido", EventSlug: event.Slug}
	page, err := services.Dashboard.ListRegistrations(ctx, filter, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)
	require.Len(t, page.Registrations, 1)
	assert.NotNil(t, page.Payments[page.Registrations[0].ID])

	file, err := services.Dashboard.ExportRegistrations(ctx, &dashboard.RegistrationFilter{EventSlug: event.Slug})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.FileName, "inscricoes-"))
	assert.True(t, strings.HasSuffix(file.FileName, ".xlsx"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.NotEmpty(t, file.Content)
}

func TestDashboardService_PaymentAction(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	event := CreateOpenEvent(t, services, "Copa Acoes", false)

	created, err := services.Registrations.Register(ctx, event.Slug, TestRegistrationInput("11111111111", "Joao Souza"))
	require.NoError(t, err)
	id := created.Registration.ID

	_, err = services.Dashboard.PaymentAction(ctx, id, "refund")
	assert.ErrorIs(t, err, dashboard.ErrInvalidPaymentAction)

	resent, err := services.Dashboard.PaymentAction(ctx, id, dashboard.ActionResend)
	require.NoError(t, err)
	assert.Contains(t, resent.Message, resent.Payment.InvoiceURL)

	confirmed, err := services.Dashboard.PaymentAction(ctx, id, dashboard.ActionManualConfirm)
	require.NoError(t, err)
	assert.Equal(t, dashboard.MsgManualConfirmed, confirmed.Message)
	assert.Equal(t, payments.StatusConfirmed, confirmed.Payment.Status)

	reg, err := services.DBContext.Repos.Registrations.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, events.StatusConfirmed, reg.Status)
}

func TestDashboardService_ResendGatewayFailure(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	event := CreateOpenEvent(t, services, "Copa Falha", false)

	created, err := services.Registrations.Register(ctx, event.Slug, TestRegistrationInput("11111111111", "Joao Souza"))
	require.NoError(t, err)

	services.Gateway.Err = &payments.APIError{StatusCode: 500, Message: "boom"}
	_, err = services.Dashboard.PaymentAction(ctx, created.Registration.ID, dashboard.ActionResend)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), dashboard.MsgResendFailed))
}
