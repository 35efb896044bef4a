package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"

	"github.com/gin-gonic/gin"
)

// Generation summary messages
const (
	MsgBracketsCreated  = "%d chave(s) geradas (%d luta(s))."
	MsgBracketsReplaced = "%d chave(s) anteriores foram substituidas."
	MsgUnmatched        = "%d inscricao(oes) nao entraram em nenhuma chave: %s."
	unmatchedPreview    = 5
)

// MatchmakingHandler defines the interface for bracket generation and export
type MatchmakingHandler interface {
	EventOverview(ctx *gin.Context)
	Generate(ctx *gin.Context)
	ExportEvent(ctx *gin.Context)
	BracketDetail(ctx *gin.Context)
	ExportBracket(ctx *gin.Context)
	Reorder(ctx *gin.Context)
}

type matchmakingHandler struct {
	matchmakingService matchmaking.MatchmakingService
}

// NewMatchmakingHandler creates a new MatchmakingHandler
func NewMatchmakingHandler(matchmakingService matchmaking.MatchmakingService) MatchmakingHandler {
	return &matchmakingHandler{matchmakingService: matchmakingService}
}

// EventOverview returns the matchmaking panel of an event
func (handler *matchmakingHandler) EventOverview(ctx *gin.Context) {
	overview, err := handler.matchmakingService.EventOverview(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := EventOverviewResponse{
		Event:          newEventResponse(overview.Event, time.Now()),
		Metrics:        newMetricResponses(overview.Metrics),
		Brackets:       make([]BracketTotalsResponse, 0, len(overview.Brackets)),
		ConfirmedCount: overview.ConfirmedCount,
		Unassigned:     newRegistrationResponses(overview.Unassigned),
	}
	for _, t := range overview.Brackets {
		response.Brackets = append(response.Brackets, BracketTotalsResponse{
			ID:           t.Bracket.ID,
			Title:        t.Bracket.Title(),
			MetricID:     t.Bracket.MetricID,
			BracketIndex: t.Bracket.BracketIndex,
			Size:         t.Bracket.Size,
			IsManual:     t.Bracket.IsManual,
			EntryTotal:   t.EntryTotal,
			MatchTotal:   t.MatchTotal,
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// generationMessages renders the summary lines shown after a generation.
func generationMessages(result *matchmaking.GenerationResult) []string {
	var messages []string
	if result.BracketsCreated > 0 {
		messages = append(messages, fmt.Sprintf(MsgBracketsCreated, result.BracketsCreated, result.MatchesCreated))
	} else {
		messages = append(messages, matchmaking.MsgNoBracketsCreated)
	}
	if result.Replaced > 0 {
		messages = append(messages, fmt.Sprintf(MsgBracketsReplaced, result.Replaced))
	}
	if len(result.Unmatched) > 0 {
		names := make([]string, 0, unmatchedPreview)
		for i, u := range result.Unmatched {
			if i == unmatchedPreview {
				break
			}
			names = append(names, u.Athlete)
		}
		messages = append(messages, fmt.Sprintf(MsgUnmatched, len(result.Unmatched), strings.Join(names, ", ")))
	}
	return messages
}

// Generate builds the brackets of an event under a metric
// @Summary Generate brackets
// @Tags Matchmaking
// @Accept json
// @Produce json
// @Param slug path string true "Event slug"
// @Param requestBody body GenerateRequest true "Metric selection"
// @Success 200 {object} GenerationResponse
// @Failure 400 {object} ErrorResponse
// @Router /painel/matchmaking/events/{slug}/generate [post]
func (handler *matchmakingHandler) Generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	req := &matchmaking.GenerateRequest{
		EventSlug:       ctx.Param("slug"),
		MetricID:        request.MetricID,
		ReplaceExisting: request.ReplaceExisting == nil || *request.ReplaceExisting,
	}
	if user := currentUser(ctx); user != nil {
		req.UserID = user.ID
	}

	result, err := handler.matchmakingService.Generate(ctx, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := GenerationResponse{
		Messages:        generationMessages(result),
		BracketsCreated: result.BracketsCreated,
		MatchesCreated:  result.MatchesCreated,
		Replaced:        result.Replaced,
		Groups:          make([]GroupSummaryResponse, 0, len(result.Groups)),
		Unmatched:       make([]UnmatchedResponse, 0, len(result.Unmatched)),
	}
	for _, g := range result.Groups {
		response.Groups = append(response.Groups, GroupSummaryResponse(g))
	}
	for _, u := range result.Unmatched {
		response.Unmatched = append(response.Unmatched, UnmatchedResponse(u))
	}
	ctx.JSON(http.StatusOK, response)
}

// ExportEvent downloads every bracket of an event as a PDF
func (handler *matchmakingHandler) ExportEvent(ctx *gin.Context) {
	file, err := handler.matchmakingService.ExportEvent(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendFile(ctx, file.FileName, file.ContentType, file.Content)
}

// BracketDetail returns a bracket with its positioned matches
func (handler *matchmakingHandler) BracketDetail(ctx *gin.Context) {
	detail, err := handler.matchmakingService.BracketDetail(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newBracketDetailResponse(detail))
}

// ExportBracket downloads a bracket as a PDF, optionally limited to selected matches
func (handler *matchmakingHandler) ExportBracket(ctx *gin.Context) {
	var request ExportRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
			return
		}
	}

	file, err := handler.matchmakingService.ExportBracket(ctx, ctx.Param("id"), request.Selected, request.MatchIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendFile(ctx, file.FileName, file.ContentType, file.Content)
}

// Reorder applies a manual athlete order to a bracket
func (handler *matchmakingHandler) Reorder(ctx *gin.Context) {
	var request ReorderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	detail, err := handler.matchmakingService.Reorder(ctx, ctx.Param("id"), request.Order)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": matchmaking.MsgBracketReordered,
		"bracket": newBracketDetailResponse(detail),
	})
}
