//go:build integration
// +build integration

package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedConfirmed stores n confirmed adult K1 Light males weighing 60 to 63 kg
// plus one athlete of unsupported sex.
func seedConfirmed(t *testing.T, services *TestServices, event *events.Event, n int) {
	t.Helper()

	ctx := context.Background()
	repos := services.DBContext.Repos
	academy := persistence.CreateTestAcademy(t, "Academia Seed")
	require.NoError(t, repos.Academies.Create(ctx, academy))
	coach := persistence.CreateTestCoach(t, academy, "Mestre Seed")
	require.NoError(t, repos.Coaches.Create(ctx, coach))

	for i := 0; i < n; i++ {
		reg := persistence.CreateTestRegistration(t, event, coach, fmt.Sprintf("Atleta %02d", i), fmt.Sprintf("%011d", i+1))
		reg.WeightKg = decimal.NewFromFloat(60 + float64(i%4)*0.5)
		reg.BirthDate = time.Date(1995, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		reg.RecordWins = 0
		reg.Status = events.StatusConfirmed
		require.NoError(t, repos.Registrations.Create(ctx, reg))
	}

	other := persistence.CreateTestRegistration(t, event, coach, "Atleta Outro", "99999999999")
	other.Sex = events.SexOther
	other.Status = events.StatusConfirmed
	require.NoError(t, repos.Registrations.Create(ctx, other))
}

func TestMetricService_CRUD(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	fights := 2
	input := &matchmaking.MetricInput{
		Name:                  "Copa Verao",
		MaxFightsPerAthlete:   &fights,
		AgeMetricsJSON:        `[{"nome":"adulto","idade_minima":18,"idade_maxima":40}]`,
		ExperienceMetricsJSON: `[{"nome":"iniciante","maximo_lutas":4}]`,
		WeightCategoriesJSON:  `[{"nome":"K1 Light","sexo":"M","faixa_idade":"adulto","faixas_peso":"60; 70; +70"}]`,
	}
	created, err := services.Metrics.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "masculino", created.WeightCategories[0].Sex)

	_, err = services.Metrics.Create(ctx, input)
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{matchmaking.MsgMetricNameTaken}, verrs["name"])

	input.Notes = "atualizada"
	updated, err := services.Metrics.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "atualizada", updated.Notes)

	page, err := services.Metrics.List(ctx, "verao", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)

	require.NoError(t, services.Metrics.Delete(ctx, created.ID))
	_, err = services.Metrics.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMetricService_EnsureDefault(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	metric, created, err := services.Metrics.EnsureDefault(ctx, "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, matchmaking.DefaultMetricName, metric.Name)
	assert.NotEmpty(t, metric.WeightCategories)

	again, created, err := services.Metrics.EnsureDefault(ctx, matchmaking.DefaultMetricName)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, metric.ID, again.ID)
}

func TestMatchmakingService_Generate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	event := CreateOpenEvent(t, services, "Copa Chaves", false)
	metric := persistence.SeedMetric(t, services.DBContext, "Padrao")
	seedConfirmed(t, services, event, 5)

	userID := uuid.NewString()
	result, err := services.Matchmaking.Generate(ctx, &matchmaking.GenerateRequest{
		EventSlug:       event.Slug,
		MetricID:        metric.ID,
		UserID:          userID,
		ReplaceExisting: true,
	})
	require.NoError(t, err)

	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "Atleta Outro", result.Unmatched[0].Athlete)
	assert.Equal(t, matchmaking.ReasonUnsupportedSex, result.Unmatched[0].Reason)

	athletes := 0
	for _, g := range result.Groups {
		athletes += g.AthleteCount
	}
	assert.Equal(t, 5, athletes)
	assert.Equal(t, len(result.Brackets), result.BracketsCreated)
	assert.Zero(t, result.Replaced)
	for _, b := range result.Brackets {
		assert.Equal(t, userID, *b.GeneratedByID)
		assert.LessOrEqual(t, len(b.Entries), metric.Capacity())
	}

	again, err := services.Matchmaking.Generate(ctx, &matchmaking.GenerateRequest{
		EventSlug:       event.Slug,
		MetricID:        metric.ID,
		ReplaceExisting: true,
	})
	require.NoError(t, err)
	assert.Equal(t, result.BracketsCreated, again.Replaced)

	overview, err := services.Matchmaking.EventOverview(ctx, event.Slug)
	require.NoError(t, err)
	assert.Equal(t, 6, overview.ConfirmedCount)
	assert.Len(t, overview.Brackets, again.BracketsCreated)
	require.Len(t, overview.Unassigned, 1)
	assert.Equal(t, "Atleta Outro", overview.Unassigned[0].AthleteName)

	err = services.Metrics.Delete(ctx, metric.ID)
	assert.ErrorIs(t, err, matchmaking.ErrMetricInUse)
}

func TestMatchmakingService_Generate_MissingMetric(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	event := CreateOpenEvent(t, services, "Copa Sem Metrica", false)

	_, err := services.Matchmaking.Generate(context.Background(), &matchmaking.GenerateRequest{EventSlug: event.Slug})
	assert.ErrorIs(t, err, matchmaking.ErrMetricNotSelected)
}

func generateOne(t *testing.T, services *TestServices, n int) (*events.Event, *matchmaking.Bracket) {
	t.Helper()

	event := CreateOpenEvent(t, services, "Copa Detalhe", false)
	metric := persistence.SeedMetric(t, services.DBContext, "Detalhe")
	seedConfirmed(t, services, event, n)

	result, err := services.Matchmaking.Generate(context.Background(), &matchmaking.GenerateRequest{
		EventSlug:       event.Slug,
		MetricID:        metric.ID,
		ReplaceExisting: true,
	})
	require.NoError(t, err)
	for _, b := range result.Brackets {
		if len(b.Entries) >= 2 {
			return event, b
		}
	}
	t.Fatal("no bracket with two athletes was generated")
	return nil, nil
}

func TestMatchmakingService_DetailAndReorder(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	_, bracket := generateOne(t, services, 2)

	detail, err := services.Matchmaking.BracketDetail(ctx, bracket.ID)
	require.NoError(t, err)
	require.NotEmpty(t, detail.Layout.Rounds)
	assert.Equal(t, matchmaking.DetailMatchHeight, detail.Layout.MatchHeight)

	ids := make([]string, 0, len(detail.Bracket.Entries))
	for i := len(detail.Bracket.Entries) - 1; i >= 0; i-- {
		ids = append(ids, detail.Bracket.Entries[i].ID)
	}

	reordered, err := services.Matchmaking.Reorder(ctx, bracket.ID, strings.Join(ids, ","))
	require.NoError(t, err)
	assert.True(t, reordered.Bracket.IsManual)
	require.Len(t, reordered.Bracket.Entries, len(ids))
	assert.Equal(t, ids[0], reordered.Bracket.Entries[0].ID)
	assert.Equal(t, 1, reordered.Bracket.Entries[0].Slot)

	_, err = services.Matchmaking.Reorder(ctx, bracket.ID, ids[0])
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{matchmaking.MsgOrderCount}, verrs["order"])
}

func TestMatchmakingService_Export(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	event, bracket := generateOne(t, services, 2)

	file, err := services.Matchmaking.ExportBracket(ctx, bracket.ID, false, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))

	_, err = services.Matchmaking.ExportBracket(ctx, bracket.ID, true, []string{"unknown"})
	assert.ErrorIs(t, err, matchmaking.ErrNoMatchesSelected)

	file, err = services.Matchmaking.ExportEvent(ctx, event.Slug)
	require.NoError(t, err)
	assert.Equal(t, "chaves-"+event.Slug+".pdf", file.FileName)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}
