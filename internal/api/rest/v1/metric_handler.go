package v1

import (
	"net/http"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"

	"github.com/gin-gonic/gin"
)

// MetricHandler defines the interface for matchmaking metric management
type MetricHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type metricHandler struct {
	metricService matchmaking.MetricService
}

// NewMetricHandler creates a new MetricHandler
func NewMetricHandler(metricService matchmaking.MetricService) MetricHandler {
	return &metricHandler{metricService: metricService}
}

// List pages metrics filtered by name
func (handler *metricHandler) List(ctx *gin.Context) {
	page, err := handler.metricService.List(ctx, ctx.Query("busca"), queryPage(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MetricListResponse{
		PageInfo: newPageInfo(page.Page, page.PageSize, page.TotalCount),
		Metrics:  newMetricResponses(page.Metrics),
	})
}

// Create creates a metric
// @Summary Create a matchmaking metric
// @Tags Matchmaking
// @Accept json
// @Produce json
// @Param requestBody body MetricRequest true "Metric"
// @Success 201 {object} MetricResponse
// @Failure 400 {object} ErrorResponse
// @Router /painel/metrics [post]
func (handler *metricHandler) Create(ctx *gin.Context) {
	var request MetricRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	metric, err := handler.metricService.Create(ctx, request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMetricResponse(metric))
}

// GetByID fetches a metric
func (handler *metricHandler) GetByID(ctx *gin.Context) {
	metric, err := handler.metricService.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMetricResponse(metric))
}

// Update replaces a metric
func (handler *metricHandler) Update(ctx *gin.Context) {
	var request MetricRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondMessage(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	metric, err := handler.metricService.Update(ctx, ctx.Param("id"), request.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMetricResponse(metric))
}

// DeleteByID removes a metric without brackets
func (handler *metricHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.metricService.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": matchmaking.MsgMetricDeleted})
}
