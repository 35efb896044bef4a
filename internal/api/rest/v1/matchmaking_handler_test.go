//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMetricID = "3c2b1a0f-9e8d-4c7b-a695-84736251aabb"

func testBracket() *matchmaking.Bracket {
	blue, red := "e1", "e2"
	return &matchmaking.Bracket{
		ID:              "b1",
		MetricID:        testMetricID,
		RuleSet:         events.RuleSetK1Light,
		ExperienceLabel: "Iniciante",
		Sex:             events.SexMale,
		AgeGroup:        "Adulto",
		WeightLabel:     "-63,5kg",
		BracketIndex:    1,
		Size:            2,
		MaxFights:       1,
		Entries: []*matchmaking.Entry{
			{ID: blue, RegistrationID: "r1", Seed: 1, Slot: 1},
			{ID: red, RegistrationID: "r2", Seed: 2, Slot: 2},
		},
		Matches: []*matchmaking.Match{{ID: "m1", RoundNumber: 1, Position: 1, BlueEntryID: &blue, RedEntryID: &red}},
	}
}

func testBracketDetail() *matchmaking.BracketDetail {
	b := testBracket()
	return &matchmaking.BracketDetail{
		Bracket: b,
		Event:   testEvent(false),
		Layout:  matchmaking.ComputeLayout(b.Matches, b.TotalRounds(), 64, 16),
	}
}

func TestGenerationMessages(t *testing.T) {
	t.Run("nothing created", func(t *testing.T) {
		messages := generationMessages(&matchmaking.GenerationResult{})
		assert.Equal(t, []string{matchmaking.MsgNoBracketsCreated}, messages)
	})

	t.Run("created replaced and unmatched", func(t *testing.T) {
		result := &matchmaking.GenerationResult{BracketsCreated: 3, MatchesCreated: 4, Replaced: 2}
		for i := 1; i <= 7; i++ {
			result.Unmatched = append(result.Unmatched, matchmaking.Unmatched{Athlete: fmt.Sprintf("Atleta %d", i)})
		}

		messages := generationMessages(result)

		require.Len(t, messages, 3)
		assert.Equal(t, fmt.Sprintf(MsgBracketsCreated, 3, 4), messages[0])
		assert.Equal(t, fmt.Sprintf(MsgBracketsReplaced, 2), messages[1])
		assert.Contains(t, messages[2], "7 inscricao(oes)")
		assert.Contains(t, messages[2], "Atleta 5")
		assert.NotContains(t, messages[2], "Atleta 6")
	})
}

func TestMatchmakingHandler_Generate(t *testing.T) {
	url := BasePath + PanelPath + "/matchmaking/events/copa-sao-joao/generate"

	t.Run("replaces by default and records the user", func(t *testing.T) {
		services := newTestServices()
		user := services.allowStaff()
		services.matchmaking.On("Generate", mock.Anything, &matchmaking.GenerateRequest{
			EventSlug:       "copa-sao-joao",
			MetricID:        testMetricID,
			UserID:          user.ID,
			ReplaceExisting: true,
		}).Return(&matchmaking.GenerationResult{
			BracketsCreated: 1,
			MatchesCreated:  1,
			Groups:          []matchmaking.GroupSummary{{RuleSet: "K1 Light", AthleteCount: 2, BracketCount: 1}},
			Unmatched:       []matchmaking.Unmatched{{RegistrationID: "r3", Athlete: "Ana", Reason: matchmaking.ReasonUnsupportedSex}},
		}, nil)
		r := services.router()

		w := serve(r, "POST", url, fmt.Sprintf(`{"metric_id":%q}`, testMetricID), staffHeaders())

		require.Equal(t, http.StatusOK, w.Code)
		var response GenerationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.BracketsCreated)
		require.Len(t, response.Groups, 1)
		assert.Equal(t, 2, response.Groups[0].AthleteCount)
		require.Len(t, response.Unmatched, 1)
		assert.Equal(t, "r3", response.Unmatched[0].RegistrationID)
		assert.Len(t, response.Messages, 2)
		services.matchmaking.AssertExpectations(t)
	})

	t.Run("keeps existing brackets when asked", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("Generate", mock.Anything, mock.MatchedBy(func(req *matchmaking.GenerateRequest) bool {
			return !req.ReplaceExisting
		})).Return(&matchmaking.GenerationResult{}, nil)
		r := services.router()

		w := serve(r, "POST", url, fmt.Sprintf(`{"metric_id":%q,"replace_existing":false}`, testMetricID), staffHeaders())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), matchmaking.MsgNoBracketsCreated)
	})

	t.Run("metric missing", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("Generate", mock.Anything, mock.Anything).Return(nil, matchmaking.ErrMetricNotSelected)
		r := services.router()

		w := serve(r, "POST", url, `{}`, staffHeaders())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), matchmaking.ErrMetricNotSelected.Error())
	})
}

func TestMatchmakingHandler_EventOverview(t *testing.T) {
	services := newTestServices()
	services.allowStaff()
	services.matchmaking.On("EventOverview", mock.Anything, "copa-sao-joao").Return(&matchmaking.EventOverview{
		Event:          testEvent(false),
		Metrics:        []*matchmaking.Metric{matchmaking.NewDefaultMetric(testMetricID, matchmaking.DefaultMetricName)},
		Brackets:       []*matchmaking.BracketTotals{{Bracket: testBracket(), EntryTotal: 2, MatchTotal: 1}},
		ConfirmedCount: 3,
		Unassigned:     []*events.AthleteRegistration{testRegistration(testEvent(false))},
	}, nil)
	r := services.router()

	w := serve(r, "GET", BasePath+PanelPath+"/matchmaking/events/copa-sao-joao", "", staffHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	var response EventOverviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 3, response.ConfirmedCount)
	require.Len(t, response.Metrics, 1)
	assert.Equal(t, 2, response.Metrics[0].Capacity)
	require.Len(t, response.Brackets, 1)
	assert.Equal(t, int64(2), response.Brackets[0].EntryTotal)
	assert.Contains(t, response.Brackets[0].Title, "-63,5kg")
	assert.Len(t, response.Unassigned, 1)
}

func TestMatchmakingHandler_BracketDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("BracketDetail", mock.Anything, "b1").Return(testBracketDetail(), nil)
		r := services.router()

		w := serve(r, "GET", BasePath+PanelPath+"/matchmaking/brackets/b1", "", staffHeaders())

		require.Equal(t, http.StatusOK, w.Code)
		var response BracketDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "copa-sao-joao", response.EventSlug)
		assert.Len(t, response.Entries, 2)
		require.Len(t, response.Rounds, 1)
		require.Len(t, response.Rounds[0].Matches, 1)
		assert.Equal(t, "m1", response.Rounds[0].Matches[0].ID)
	})

	t.Run("not found", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("BracketDetail", mock.Anything, "nope").Return(nil, domain.ErrNotFound)
		r := services.router()

		w := serve(r, "GET", BasePath+PanelPath+"/matchmaking/brackets/nope", "", staffHeaders())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMatchmakingHandler_Reorder(t *testing.T) {
	services := newTestServices()
	services.allowStaff()
	services.matchmaking.On("Reorder", mock.Anything, "b1", "e2,e1").Return(testBracketDetail(), nil)
	r := services.router()

	w := serve(r, "PUT", BasePath+PanelPath+"/matchmaking/brackets/b1/order", `{"order":"e2,e1"}`, staffHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), matchmaking.MsgBracketReordered)
	services.matchmaking.AssertExpectations(t)
}

func TestMatchmakingHandler_ExportBracket(t *testing.T) {
	url := BasePath + PanelPath + "/matchmaking/brackets/b1/export"
	file := &matchmaking.ExportFile{FileName: "chave-b1.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.3")}

	t.Run("without body exports every match", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("ExportBracket", mock.Anything, "b1", false, []string(nil)).Return(file, nil)
		r := services.router()

		w := serve(r, "POST", url, "", staffHeaders())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, "%PDF-1.3", w.Body.String())
	})

	t.Run("selected matches", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("ExportBracket", mock.Anything, "b1", true, []string{"m1"}).Return(file, nil)
		r := services.router()

		w := serve(r, "POST", url, `{"selected":true,"match_ids":["m1"]}`, staffHeaders())

		assert.Equal(t, http.StatusOK, w.Code)
		services.matchmaking.AssertExpectations(t)
	})

	t.Run("empty selection", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.matchmaking.On("ExportBracket", mock.Anything, "b1", true, []string{}).Return(nil, matchmaking.ErrNoMatchesSelected)
		r := services.router()

		w := serve(r, "POST", url, `{"selected":true,"match_ids":[]}`, staffHeaders())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), matchmaking.ErrNoMatchesSelected.Error())
	})
}

func TestMetricHandler(t *testing.T) {
	base := BasePath + PanelPath + "/metrics"

	t.Run("list", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.metrics.On("List", mock.Anything, "padr", 1).Return(&matchmaking.MetricPage{
			Metrics:    []*matchmaking.Metric{matchmaking.NewDefaultMetric(testMetricID, matchmaking.DefaultMetricName)},
			Page:       1,
			PageSize:   matchmaking.DefaultMetricPageSize,
			TotalCount: 1,
		}, nil)
		r := services.router()

		w := serve(r, "GET", base+"?busca=padr", "", staffHeaders())

		require.Equal(t, http.StatusOK, w.Code)
		var response MetricListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Metrics, 1)
		assert.Equal(t, matchmaking.DefaultMetricName, response.Metrics[0].Name)
	})

	t.Run("create", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.metrics.On("Create", mock.Anything, mock.MatchedBy(func(in *matchmaking.MetricInput) bool {
			return in.Name == "Regional" && in.MaxFightsPerAthlete != nil && *in.MaxFightsPerAthlete == 2
		})).Return(matchmaking.NewDefaultMetric(testMetricID, "Regional"), nil)
		r := services.router()

		w := serve(r, "POST", base, `{"name":"Regional","max_fights_per_athlete":2}`, staffHeaders())

		assert.Equal(t, http.StatusCreated, w.Code)
		services.metrics.AssertExpectations(t)
	})

	t.Run("update with field errors", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.metrics.On("Update", mock.Anything, testMetricID, mock.Anything).
			Return(nil, domain.NewValidationError("age_metrics_json", "JSON inválido."))
		r := services.router()

		w := serve(r, "PUT", base+"/"+testMetricID, `{"name":"Regional","age_metrics_json":"["}`, staffHeaders())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "age_metrics_json")
	})

	t.Run("delete metric in use", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.metrics.On("Delete", mock.Anything, testMetricID).Return(matchmaking.ErrMetricInUse)
		r := services.router()

		w := serve(r, "DELETE", base+"/"+testMetricID, "", staffHeaders())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), matchmaking.ErrMetricInUse.Error())
	})

	t.Run("delete", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.metrics.On("Delete", mock.Anything, testMetricID).Return(nil)
		r := services.router()

		w := serve(r, "DELETE", base+"/"+testMetricID, "", staffHeaders())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), matchmaking.MsgMetricDeleted)
	})
}
