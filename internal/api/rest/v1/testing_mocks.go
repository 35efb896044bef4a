//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/dashboard"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/stretchr/testify/mock"
)

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, input *events.EventInput) (*events.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, slug string, input *events.EventInput) (*events.Event, error) {
	args := m.Called(ctx, slug, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) GetBySlug(ctx context.Context, slug string) (*events.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) ListPublished(ctx context.Context, page int) (*events.EventPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.EventPage), args.Error(1)
}

func (m *MockEventService) ListForStaff(ctx context.Context, query *events.EventQuery) ([]*events.EventSummary, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*events.EventSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventService) UploadRules(ctx context.Context, slug string, upload *events.RulesUpload) (*events.Event, error) {
	args := m.Called(ctx, slug, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventService) DownloadRules(ctx context.Context, slug string) ([]byte, string, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockRegistrationService is a mock implementation of RegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, slug string, input *events.RegistrationInput) (*events.RegistrationResult, error) {
	args := m.Called(ctx, slug, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.RegistrationResult), args.Error(1)
}

func (m *MockRegistrationService) RegisterBulk(ctx context.Context, slug string, input *events.BulkRegistrationInput) (*events.BulkRegistrationResult, error) {
	args := m.Called(ctx, slug, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.BulkRegistrationResult), args.Error(1)
}

func (m *MockRegistrationService) Lookup(ctx context.Context, cpf, birthDate string) ([]*events.LookupResult, error) {
	args := m.Called(ctx, cpf, birthDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*events.LookupResult), args.Error(1)
}

func (m *MockRegistrationService) SendPayment(ctx context.Context, cpf, birthDate, registrationID string) (*events.SendPaymentResult, error) {
	args := m.Called(ctx, cpf, birthDate, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.SendPaymentResult), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Resend(ctx context.Context, registrationID string) (*payments.Payment, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) MarkPaidManually(ctx context.Context, registrationID string) (*payments.Payment, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Payment), args.Error(1)
}

func (m *MockPaymentService) AuthorizeWebhook(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}

func (m *MockPaymentService) HandleWebhook(ctx context.Context, body []byte) (*payments.WebhookResult, error) {
	args := m.Called(ctx, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookResult), args.Error(1)
}

// MockMetricService is a mock implementation of MetricService
type MockMetricService struct {
	mock.Mock
}

func (m *MockMetricService) Create(ctx context.Context, input *matchmaking.MetricInput) (*matchmaking.Metric, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.Metric), args.Error(1)
}

func (m *MockMetricService) Update(ctx context.Context, id string, input *matchmaking.MetricInput) (*matchmaking.Metric, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.Metric), args.Error(1)
}

func (m *MockMetricService) Get(ctx context.Context, id string) (*matchmaking.Metric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.Metric), args.Error(1)
}

func (m *MockMetricService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMetricService) List(ctx context.Context, search string, page int) (*matchmaking.MetricPage, error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.MetricPage), args.Error(1)
}

func (m *MockMetricService) EnsureDefault(ctx context.Context, name string) (*matchmaking.Metric, bool, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*matchmaking.Metric), args.Bool(1), args.Error(2)
}

// MockMatchmakingService is a mock implementation of MatchmakingService
type MockMatchmakingService struct {
	mock.Mock
}

func (m *MockMatchmakingService) Generate(ctx context.Context, req *matchmaking.GenerateRequest) (*matchmaking.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.GenerationResult), args.Error(1)
}

func (m *MockMatchmakingService) EventOverview(ctx context.Context, slug string) (*matchmaking.EventOverview, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.EventOverview), args.Error(1)
}

func (m *MockMatchmakingService) BracketDetail(ctx context.Context, bracketID string) (*matchmaking.BracketDetail, error) {
	args := m.Called(ctx, bracketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.BracketDetail), args.Error(1)
}

func (m *MockMatchmakingService) Reorder(ctx context.Context, bracketID, order string) (*matchmaking.BracketDetail, error) {
	args := m.Called(ctx, bracketID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.BracketDetail), args.Error(1)
}

func (m *MockMatchmakingService) ExportBracket(ctx context.Context, bracketID string, selected bool, matchIDs []string) (*matchmaking.ExportFile, error) {
	args := m.Called(ctx, bracketID, selected, matchIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.ExportFile), args.Error(1)
}

func (m *MockMatchmakingService) ExportEvent(ctx context.Context, slug string) (*matchmaking.ExportFile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchmaking.ExportFile), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*dashboard.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Summary), args.Error(1)
}

func (m *MockDashboardService) ListEvents(ctx context.Context, search, status string, page int) (*dashboard.EventPage, error) {
	args := m.Called(ctx, search, status, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.EventPage), args.Error(1)
}

func (m *MockDashboardService) ListRegistrations(ctx context.Context, filter *dashboard.RegistrationFilter, page int) (*dashboard.RegistrationPage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.RegistrationPage), args.Error(1)
}

func (m *MockDashboardService) ExportRegistrations(ctx context.Context, filter *dashboard.RegistrationFilter) (*dashboard.ExportFile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.ExportFile), args.Error(1)
}

func (m *MockDashboardService) PaymentAction(ctx context.Context, registrationID, action string) (*dashboard.PaymentActionResult, error) {
	args := m.Called(ctx, registrationID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.PaymentActionResult), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*staff.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*staff.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

func (m *MockAuthService) CreateUser(ctx context.Context, username, password string, isStaff bool) (*staff.User, error) {
	args := m.Called(ctx, username, password, isStaff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}
