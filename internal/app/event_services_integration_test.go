//go:build integration
// +build integration

package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEventInput(title string) *events.EventInput {
	start := time.Now().Add(20 * 24 * time.Hour).Truncate(time.Second)
	return &events.EventInput{
		Title:                title,
		Location:             "Ginasio Aecim Tocantins",
		StartAt:              start,
		RegistrationDeadline: start.Add(-48 * time.Hour),
		RegistrationFee:      decimal.RequireFromString("95.50"),
		IsPublished:          true,
	}
}

func TestEventService_CreateUniqueSlugs(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	first, err := services.Events.Create(ctx, testEventInput("Copa São João"))
	require.NoError(t, err)
	assert.Equal(t, "copa-sao-joao", first.Slug)

	second, err := services.Events.Create(ctx, testEventInput("Copa Sao Joao"))
	require.NoError(t, err)
	assert.Equal(t, "copa-sao-joao-2", second.Slug)

	third, err := services.Events.Create(ctx, testEventInput("Copa são joão"))
	require.NoError(t, err)
	assert.Equal(t, "copa-sao-joao-3", third.Slug)
}

func TestEventService_CreateValidation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	input := testEventInput("Copa Passada")
	input.StartAt = time.Now().Add(-time.Hour)
	input.RegistrationDeadline = time.Now()

	_, err := services.Events.Create(context.Background(), input)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{events.MsgStartInPast}, verrs["start_at"])
	assert.Equal(t, []string{events.MsgFormDeadlineAfter}, verrs["registration_deadline"])
}

func TestEventService_UpdateKeepsSlug(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.Events.Create(ctx, testEventInput("Copa Original"))
	require.NoError(t, err)

	input := testEventInput("Copa Renomeada")
	input.IsPublished = false
	updated, err := services.Events.Update(ctx, created.Slug, input)
	require.NoError(t, err)
	assert.Equal(t, "copa-original", updated.Slug)
	assert.Equal(t, "Copa Renomeada", updated.Title)

	_, err = services.Events.GetBySlug(ctx, created.Slug)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_ListPublished(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		input := testEventInput("Etapa " + string(rune('A'+i)))
		input.StartAt = input.StartAt.Add(time.Duration(i) * time.Hour)
		_, err := services.Events.Create(ctx, input)
		require.NoError(t, err)
	}
	draft := testEventInput("Rascunho")
	draft.IsPublished = false
	_, err := services.Events.Create(ctx, draft)
	require.NoError(t, err)

	page, err := services.Events.ListPublished(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 12, page.TotalCount)
	require.Len(t, page.Events, PublicEventsPageSize)
	assert.Equal(t, "Etapa A", page.Events[0].Title)

	page, err = services.Events.ListPublished(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, page.Events, 2)
}

func TestEventService_DraftStaysHidden(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	input := testEventInput("Copa Rascunho")
	input.IsPublished = false
	created, err := services.Events.Create(ctx, input)
	require.NoError(t, err)
	assert.False(t, created.IsPublished)

	_, err = services.Events.GetBySlug(ctx, created.Slug)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page, err := services.Events.ListPublished(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.TotalCount)
	assert.Empty(t, page.Events)

	_, err = services.Registrations.Register(ctx, created.Slug, TestRegistrationInput("12345678901", "Joao Souza"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_RulesDocument(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	created, err := services.Events.Create(ctx, testEventInput("Copa Regulamento"))
	require.NoError(t, err)

	_, err = services.Events.UploadRules(ctx, created.Slug, &events.RulesUpload{FileName: "regras.docx", Content: strings.NewReader("x")})
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	_, _, err = services.Events.DownloadRules(ctx, created.Slug)
	assert.ErrorIs(t, err, events.ErrNoRulesDocument)

	content := []byte("%PDF-1.4 regulamento")
	updated, err := services.Events.UploadRules(ctx, created.Slug, &events.RulesUpload{
		FileName:    "Regulamento Oficial.pdf",
		ContentType: "application/pdf",
		Content:     bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.RulesDocument, "event_rules/"))
	assert.True(t, strings.HasSuffix(updated.RulesDocument, "-regulamento-oficial.pdf"))

	downloaded, name, err := services.Events.DownloadRules(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
}

func TestEventService_ListForStaffCounts(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	event := CreateOpenEvent(t, services, "Copa Contagem", true)

	_, err := services.Registrations.Register(ctx, event.Slug, TestRegistrationInput("12345678901", "Joao Souza"))
	require.NoError(t, err)

	summaries, total, err := services.Events.ListForStaff(ctx, &events.EventQuery{Search: "contagem"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 1, summaries[0].Counts.Total)
	assert.EqualValues(t, 1, summaries[0].Counts.Confirmed)
}
