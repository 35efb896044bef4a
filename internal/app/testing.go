//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/auth"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/connector"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/export"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// FakeGateway records charges instead of calling Asaas.
type FakeGateway struct {
	mu        sync.Mutex
	Customers []payments.CustomerRequest
	Charges   []payments.ChargeRequest
	// Err is returned by CreatePayment when set.
	Err error
}

func (g *FakeGateway) EnsureCustomer(_ context.Context, req payments.CustomerRequest) (*payments.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Customers = append(g.Customers, req)
	return &payments.Customer{ID: "cus_" + req.CPF}, nil
}

func (g *FakeGateway) CreatePayment(_ context.Context, req payments.ChargeRequest) (*payments.Charge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return nil, g.Err
	}
	g.Charges = append(g.Charges, req)
	id := "pay_" + uuid.NewString()[:8]
	return &payments.Charge{
		ID:          id,
		Status:      payments.StatusPending,
		BillingType: req.BillingType,
		DueDate:     req.DueDate,
		Value:       req.Value,
		InvoiceURL:  "https://sandbox.asaas.com/i/" + id,
		Raw:         map[string]any{"id": id, "status": "PENDING"},
	}, nil
}

// ChargeCount returns the number of charges created.
func (g *FakeGateway) ChargeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Charges)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	Events        events.EventService
	Registrations events.RegistrationService
	Payments      payments.PaymentService
	Metrics       matchmaking.MetricService
	Matchmaking   matchmaking.MatchmakingService
	Dashboard     dashboard.DashboardService
	Auth          staff.AuthService

	Gateway   *FakeGateway
	DBContext *persistence.TestContext
}

// TestAsaasSettings are gateway settings with a webhook token.
func TestAsaasSettings() *config.AsaasSettings {
	return &config.AsaasSettings{
		APIKey:             "test-key",
		APIBase:            "https://sandbox.asaas.com/api/v3",
		WebhookToken:       "webhook-secret",
		PaymentDueDays:     3,
		DefaultBillingType: config.BillingTypePix,
	}
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	gateway := &FakeGateway{}
	settings := TestAsaasSettings()
	loc := time.UTC

	documents, err := connector.NewLocalDocumentConnector(t.TempDir(), log)
	require.NoError(t, err, "Failed to create document connector")

	eventService, err := NewEventService(dbContext.Store, documents, log)
	require.NoError(t, err, "Failed to create EventService")

	registrationService, err := NewRegistrationService(dbContext.Store, gateway, settings, loc, log)
	require.NoError(t, err, "Failed to create RegistrationService")

	paymentService, err := NewPaymentService(dbContext.Store, gateway, settings, loc, log)
	require.NoError(t, err, "Failed to create PaymentService")

	metricService, err := NewMetricService(dbContext.Store, log)
	require.NoError(t, err, "Failed to create MetricService")

	matchmakingService, err := NewMatchmakingService(dbContext.Store, export.NewBracketPDFRenderer(), log)
	require.NoError(t, err, "Failed to create MatchmakingService")

	dashboardService, err := NewDashboardService(dbContext.Store, paymentService, export.NewRegistrationXLSXExporter(loc), loc, log)
	require.NoError(t, err, "Failed to create DashboardService")

	issuer, err := auth.NewJWTIssuer(&config.AuthSettings{JWTSecret: "integration-test-secret", TokenTTL: time.Hour, Issuer: "fkba"})
	require.NoError(t, err, "Failed to create token issuer")

	authService, err := NewAuthService(dbContext.Store, auth.NewBcryptHasher(bcrypt.MinCost), issuer, log)
	require.NoError(t, err, "Failed to create AuthService")

	return &TestServices{
		Events:        eventService,
		Registrations: registrationService,
		Payments:      paymentService,
		Metrics:       metricService,
		Matchmaking:   matchmakingService,
		Dashboard:     dashboardService,
		Auth:          authService,
		Gateway:       gateway,
		DBContext:     dbContext,
	}
}

// CreateOpenEvent stores a published event accepting registrations.
func CreateOpenEvent(t *testing.T, services *TestServices, title string, free bool) *events.Event {
	t.Helper()

	event := persistence.CreateTestEvent(t, title)
	event.IsFree = free
	if free {
		event.RegistrationFee = decimal.Zero
	}
	require.NoError(t, services.DBContext.Repos.Events.Create(context.Background(), event))
	return event
}

// TestRegistrationInput returns a valid single registration form.
func TestRegistrationInput(cpf, athlete string) *events.RegistrationInput {
	weight := decimal.RequireFromString("62.5")
	fights := 3
	return &events.RegistrationInput{
		AcademyInput: events.AcademyInput{
			AcademyName:  "Team Nogueira",
			AcademyCity:  "Fortaleza",
			AcademyState: "ce",
			CoachName:    "Mestre Silva",
		},
		AthleteInput: events.AthleteInput{
			AthleteName: athlete,
			CPF:         cpf,
			BirthDate:   "2001-03-15",
			WeightKg:    &weight,
			RuleSet:     events.RuleSetK1Light,
			Sex:         events.SexMale,
			WhatsApp:    "(85) 99999-1234",
			TotalFights: &fights,
		},
	}
}
