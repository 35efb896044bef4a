//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/store"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB    *gorm.DB
	Store store.Store
	Repos store.Repositories
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	st, err := NewGormStore(db, logger)
	require.NoError(t, err, "Failed to create store")

	return &TestContext{
		DB:    db,
		Store: st,
		Repos: st.Repos(),
	}
}

// CreateTestAcademy creates an academy with default values
func CreateTestAcademy(t *testing.T, name string) *academies.Academy {
	t.Helper()

	return &academies.Academy{
		ID:    uuid.NewString(),
		Name:  name,
		City:  "Fortaleza",
		State: "CE",
	}
}

// CreateTestCoach creates a coach of academy
func CreateTestCoach(t *testing.T, academy *academies.Academy, name string) *academies.Coach {
	t.Helper()

	return &academies.Coach{
		ID:        uuid.NewString(),
		FullName:  name,
		WhatsApp:  "85999990000",
		AcademyID: academy.ID,
	}
}

// CreateTestEvent creates a published event starting in a month
func CreateTestEvent(t *testing.T, title string) *events.Event {
	t.Helper()

	start := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Second)
	return &events.Event{
		ID:                   uuid.NewString(),
		Title:                title,
		Slug:                 events.BaseSlug(title),
		Location:             "Ginasio Paulo Sarasate",
		StartAt:              start,
		RegistrationDeadline: start.Add(-7 * 24 * time.Hour),
		RegistrationFee:      decimal.NewFromInt(80),
		IsPublished:          true,
	}
}

// CreateTestRegistration creates a pending registration in event
func CreateTestRegistration(t *testing.T, event *events.Event, coach *academies.Coach, athlete, cpf string) *events.AthleteRegistration {
	t.Helper()

	reg := &events.AthleteRegistration{
		ID:           uuid.NewString(),
		EventID:      event.ID,
		AcademyID:    coach.AcademyID,
		CoachID:      coach.ID,
		AthleteName:  athlete,
		BirthDate:    time.Date(2000, time.May, 10, 0, 0, 0, 0, time.UTC),
		PracticeTime: events.PracticeOneToThree,
		RecordWins:   2,
		WeightKg:     decimal.RequireFromString("70.5"),
		RuleSet:      events.RuleSetK1Light,
		Modality:     events.ModalityAmateur,
		WhatsApp:     "85988887777",
		Sex:          events.SexMale,
		Status:       events.StatusPending,
	}
	if cpf != "" {
		reg.CPF = &cpf
	}
	reg.ExperienceLevel = reg.DeriveExperienceLevel()
	return reg
}

// CreateTestPayment creates a gateway charge for registration
func CreateTestPayment(t *testing.T, reg *events.AthleteRegistration) *payments.Payment {
	t.Helper()

	return &payments.Payment{
		ID:               uuid.NewString(),
		RegistrationID:   reg.ID,
		CustomerID:       "cus_" + reg.ID[:8],
		GatewayPaymentID: "pay_" + uuid.NewString()[:8],
		Value:            decimal.NewFromInt(80),
		DueDate:          events.Date(time.Now().Add(72 * time.Hour)),
		BillingType:      payments.BillingPix,
		Status:           payments.StatusPending,
		InvoiceURL:       "https://sandbox.asaas.com/i/" + reg.ID[:8],
		Payload:          map[string]any{"object": "payment"},
	}
}

// CreateTestUser creates a staff user
func CreateTestUser(t *testing.T, username string) *staff.User {
	t.Helper()

	return &staff.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsStaff:      true,
		IsActive:     true,
	}
}

// SeedRegistration persists an academy, a coach, an event and one registration.
func SeedRegistration(t *testing.T, ctx *TestContext, cpf string) *events.AthleteRegistration {
	t.Helper()

	background := context.Background()
	academy := CreateTestAcademy(t, "Academia "+uuid.NewString()[:6])
	require.NoError(t, ctx.Repos.Academies.Create(background, academy))
	coach := CreateTestCoach(t, academy, "Mestre Silva")
	require.NoError(t, ctx.Repos.Coaches.Create(background, coach))
	event := CreateTestEvent(t, "Copa "+uuid.NewString()[:6])
	require.NoError(t, ctx.Repos.Events.Create(background, event))

	reg := CreateTestRegistration(t, event, coach, "Joao Souza", cpf)
	require.NoError(t, ctx.Repos.Registrations.Create(background, reg))
	return reg
}

// SeedMetric persists the default metric under name.
func SeedMetric(t *testing.T, ctx *TestContext, name string) *matchmaking.Metric {
	t.Helper()

	metric := matchmaking.NewDefaultMetric(uuid.NewString(), name)
	require.NoError(t, ctx.Repos.Metrics.Create(context.Background(), metric))
	return metric
}
