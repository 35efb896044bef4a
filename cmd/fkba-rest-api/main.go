// cmd/fkba-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/maurinmaster/SIA-FKBA/internal/api/rest/v1"
	"github.com/maurinmaster/SIA-FKBA/internal/app"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/auth"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/connector"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/export"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database", "error", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *v1.Services
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully", "type", cfg.Database.Type)

	st, err := persistence.NewGormStore(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	// Initialize connectors
	ctx := context.Background()
	documents, err := connector.NewDocumentConnector(ctx, &cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document connector: %w", err)
	}

	gateway, err := connector.NewAsaasClient(&cfg.Asaas, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Asaas client: %w", err)
	}

	services, err := initializeApplicationServices(cfg, st, documents, gateway, loc, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if _, created, err := services.Metrics.EnsureDefault(ctx, matchmaking.DefaultMetricName); err != nil {
		return nil, fmt.Errorf("failed to ensure default metric: %w", err)
	} else if created {
		log.Info("Created default matchmaking metric", "name", matchmaking.DefaultMetricName)
	}

	return &appDependencies{db: db, services: services}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	st store.Store,
	documents events.DocumentConnector,
	gateway payments.Gateway,
	loc *time.Location,
	log logger.Logger,
) (*v1.Services, error) {
	eventService, err := app.NewEventService(st, documents, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}

	registrationService, err := app.NewRegistrationService(st, gateway, &cfg.Asaas, loc, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create registration service: %w", err)
	}

	paymentService, err := app.NewPaymentService(st, gateway, &cfg.Asaas, loc, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}

	metricService, err := app.NewMetricService(st, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric service: %w", err)
	}

	matchmakingService, err := app.NewMatchmakingService(st, export.NewBracketPDFRenderer(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create matchmaking service: %w", err)
	}

	dashboardService, err := app.NewDashboardService(st, paymentService, export.NewRegistrationXLSXExporter(loc), loc, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	issuer, err := auth.NewJWTIssuer(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	authService, err := app.NewAuthService(st, auth.NewBcryptHasher(bcrypt.DefaultCost), issuer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Events:        eventService,
		Registrations: registrationService,
		Payments:      paymentService,
		Metrics:       metricService,
		Matchmaking:   matchmakingService,
		Dashboard:     dashboardService,
		Auth:          authService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	corsConfig := cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Asaas-Token", "asaas-access-token"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 || (len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Setup API routes
	v1.SetupRoutes(r, deps.services)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
