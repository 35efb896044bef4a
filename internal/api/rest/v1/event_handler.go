package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"

	"github.com/gin-gonic/gin"
)

// EventHandler defines the interface for public and staff event operations
type EventHandler interface {
	List(ctx *gin.Context)
	GetBySlug(ctx *gin.Context)
	DownloadRules(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	UploadRules(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService) EventHandler {
	return &eventHandler{eventService: eventService}
}

// List pages the published events by start date
// @Summary List published events
// @Tags Event
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} EventListResponse
// @Router /events [get]
func (handler *eventHandler) List(ctx *gin.Context) {
	page, err := handler.eventService.ListPublished(ctx, queryPage(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	now := time.Now()
	response := EventListResponse{
		PageInfo: newPageInfo(page.Page, page.PageSize, page.TotalCount),
		Events:   make([]EventResponse, 0, len(page.Events)),
	}
	for _, e := range page.Events {
		response.Events = append(response.Events, newEventResponse(e, now))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetBySlug fetches a published event
// @Summary Get a published event
// @Tags Event
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} EventResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{slug} [get]
func (handler *eventHandler) GetBySlug(ctx *gin.Context) {
	event, err := handler.eventService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEventResponse(event, time.Now()))
}

// DownloadRules downloads the rules document of a published event
func (handler *eventHandler) DownloadRules(ctx *gin.Context) {
	content, fileName, err := handler.eventService.DownloadRules(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sendFile(ctx, fileName, "application/pdf", content)
}

// Create creates an event
// @Summary Create an event
// @Tags Panel
// @Accept json
// @Produce json
// @Param requestBody body EventRequest true "Event"
// @Success 201 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Router /painel/events [post]
func (handler *eventHandler) Create(ctx *gin.Context) {
	var request EventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	event, err := handler.eventService.Create(ctx, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newEventResponse(event, time.Now()))
}

// Update replaces the editable fields of an event
func (handler *eventHandler) Update(ctx *gin.Context) {
	var request EventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	event, err := handler.eventService.Update(ctx, ctx.Param("slug"), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEventResponse(event, time.Now()))
}

// UploadRules stores the PDF sent in the multipart "file" field as the event rules
func (handler *eventHandler) UploadRules(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgRulesFileMissing)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgRulesFileMissing)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = ""
	}

	event, err := handler.eventService.UploadRules(ctx, ctx.Param("slug"), &events.RulesUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Content:     file,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newEventResponse(event, time.Now()))
}
