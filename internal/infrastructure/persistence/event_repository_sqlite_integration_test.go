//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSqliteRepository_GetBySlug(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	event := CreateTestEvent(t, "Copa Cearense")
	require.NoError(t, ctx.Repos.Events.Create(context.Background(), event))

	fetched, err := ctx.Repos.Events.GetBySlug(context.Background(), "copa-cearense")
	require.NoError(t, err)
	assert.Equal(t, event.ID, fetched.ID)
	assert.True(t, event.RegistrationFee.Equal(fetched.RegistrationFee))

	_, err = ctx.Repos.Events.GetBySlug(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestEventSqliteRepository_Create_InvalidEvent(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	event := CreateTestEvent(t, "Copa")
	event.RegistrationDeadline = event.StartAt.Add(time.Hour)

	err := ctx.Repos.Events.Create(context.Background(), event)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestEventSqliteRepository_SlugExists(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	event := CreateTestEvent(t, "Copa Cearense")
	require.NoError(t, ctx.Repos.Events.Create(context.Background(), event))

	exists, err := ctx.Repos.Events.SlugExists(context.Background(), event.Slug, "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ctx.Repos.Events.SlugExists(context.Background(), event.Slug, event.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEventSqliteRepository_Update(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	event := CreateTestEvent(t, "Copa Cearense")
	require.NoError(t, ctx.Repos.Events.Create(context.Background(), event))

	event.IsPublished = false
	event.RulesDocument = "eventos/regulamentos/regras.pdf"
	require.NoError(t, ctx.Repos.Events.Update(context.Background(), event))

	fetched, err := ctx.Repos.Events.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsPublished)
	assert.Equal(t, event.RulesDocument, fetched.RulesDocument)
}

func TestEventSqliteRepository_Create_KeepsDraft(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	draft := CreateTestEvent(t, "Copa Rascunho")
	draft.IsPublished = false
	require.NoError(t, ctx.Repos.Events.Create(context.Background(), draft))

	fetched, err := ctx.Repos.Events.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsPublished)
}

func TestEventSqliteRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	published := CreateTestEvent(t, "Copa Cearense")
	require.NoError(t, ctx.Repos.Events.Create(context.Background(), published))
	draft := CreateTestEvent(t, "Desafio Nordeste")
	draft.IsPublished = false
	draft.StartAt = draft.StartAt.Add(24 * time.Hour)
	require.NoError(t, ctx.Repos.Events.Create(context.Background(), draft))

	list, total, err := ctx.Repos.Events.List(context.Background(), &events.EventQuery{PublishedOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, published.ID, list[0].ID)

	list, _, err = ctx.Repos.Events.List(context.Background(), &events.EventQuery{Status: events.EventFilterDrafts})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, draft.ID, list[0].ID)

	list, _, err = ctx.Repos.Events.List(context.Background(), &events.EventQuery{Search: "NORDESTE"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, draft.ID, list[0].ID)

	list, _, err = ctx.Repos.Events.List(context.Background(), &events.EventQuery{Ascending: true})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, published.ID, list[0].ID)

	count, err := ctx.Repos.Events.CountPublished(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	open, err := ctx.Repos.Events.CountOpen(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.EqualValues(t, 1, open)
}
