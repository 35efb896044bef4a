package v1

import (
	"net/http"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/gin-gonic/gin"
)

// LegacyWebhookPath is the webhook URL configured in the Asaas account.
const LegacyWebhookPath = "/pagamentos/webhooks/asaas/"

// Services are the application services exposed over HTTP.
type Services struct {
	Events        events.EventService
	Registrations events.RegistrationService
	Payments      payments.PaymentService
	Metrics       matchmaking.MetricService
	Matchmaking   matchmaking.MatchmakingService
	Dashboard     dashboard.DashboardService
	Auth          staff.AuthService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services) {
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	webhookHandler := NewWebhookHandler(services.Payments)
	r.POST(LegacyWebhookPath, webhookHandler.Asaas)

	v1 := r.Group(BasePath)
	v1.POST("/webhooks/asaas", webhookHandler.Asaas)

	// Public routes
	eventHandler := NewEventHandler(services.Events)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:slug", eventHandler.GetBySlug)
	v1.GET("/events/:slug/rules", eventHandler.DownloadRules)

	registrationHandler := NewRegistrationHandler(services.Registrations)
	v1.POST("/events/:slug/registrations", registrationHandler.Register)
	v1.POST("/events/:slug/registrations/bulk", registrationHandler.RegisterBulk)
	v1.POST("/registrations/lookup", registrationHandler.Lookup)

	authHandler := NewAuthHandler(services.Auth)
	v1.POST("/auth/login", authHandler.Login)

	// Staff routes
	panel := v1.Group(PanelPath, StaffOnly(services.Auth))
	panel.GET("/me", authHandler.Me)

	dashboardHandler := NewDashboardHandler(services.Dashboard)
	panel.GET("", dashboardHandler.Summary)
	panel.GET("/events", dashboardHandler.ListEvents)
	panel.POST("/events", eventHandler.Create)
	panel.PUT("/events/:slug", eventHandler.Update)
	panel.POST("/events/:slug/rules", eventHandler.UploadRules)
	panel.GET("/registrations", dashboardHandler.ListRegistrations)
	panel.GET("/registrations/export", dashboardHandler.ExportRegistrations)
	panel.POST("/registrations/:id/payment", dashboardHandler.PaymentAction)

	metricHandler := NewMetricHandler(services.Metrics)
	panel.GET("/metrics", metricHandler.List)
	panel.POST("/metrics", metricHandler.Create)
	panel.GET("/metrics/:id", metricHandler.GetByID)
	panel.PUT("/metrics/:id", metricHandler.Update)
	panel.DELETE("/metrics/:id", metricHandler.DeleteByID)

	matchmakingHandler := NewMatchmakingHandler(services.Matchmaking)
	panel.GET("/matchmaking/events/:slug", matchmakingHandler.EventOverview)
	panel.POST("/matchmaking/events/:slug/generate", matchmakingHandler.Generate)
	panel.POST("/matchmaking/events/:slug/export", matchmakingHandler.ExportEvent)
	panel.GET("/matchmaking/brackets/:id", matchmakingHandler.BracketDetail)
	panel.POST("/matchmaking/brackets/:id/export", matchmakingHandler.ExportBracket)
	panel.PUT("/matchmaking/brackets/:id/order", matchmakingHandler.Reorder)
}
