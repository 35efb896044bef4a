//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testStaffToken = "staff-token"

type testServices struct {
	events        *MockEventService
	registrations *MockRegistrationService
	payments      *MockPaymentService
	metrics       *MockMetricService
	matchmaking   *MockMatchmakingService
	dashboard     *MockDashboardService
	auth          *MockAuthService
}

func newTestServices() *testServices {
	return &testServices{
		events:        new(MockEventService),
		registrations: new(MockRegistrationService),
		payments:      new(MockPaymentService),
		metrics:       new(MockMetricService),
		matchmaking:   new(MockMatchmakingService),
		dashboard:     new(MockDashboardService),
		auth:          new(MockAuthService),
	}
}

func (s *testServices) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, &Services{
		Events:        s.events,
		Registrations: s.registrations,
		Payments:      s.payments,
		Metrics:       s.metrics,
		Matchmaking:   s.matchmaking,
		Dashboard:     s.dashboard,
		Auth:          s.auth,
	})
	return r
}

// allowStaff makes testStaffToken resolve to an active staff user.
func (s *testServices) allowStaff() *staff.User {
	user := &staff.User{
		ID:       "8d1b59c4-3a57-4a0e-9f5e-2f0a7f4c9b11",
		Username: "secretaria",
		IsStaff:  true,
		IsActive: true,
	}
	s.auth.On("Authenticate", mock.Anything, testStaffToken).Return(user, nil)
	return user
}

func serve(r *gin.Engine, method, url, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func staffHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testStaffToken}
}

// TestSetupRoutes_PublicRoutesRegistered verifies that public routes are properly registered
func TestSetupRoutes_PublicRoutesRegistered(t *testing.T) {
	services := newTestServices()
	r := services.router()

	tests := []struct {
		method string
		url    string
	}{
		{"POST", BasePath + "/events/copa/registrations"},
		{"POST", BasePath + "/events/copa/registrations/bulk"},
		{"POST", BasePath + "/registrations/lookup"},
		{"POST", BasePath + "/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, "", nil)

			// Empty bodies are rejected before any service call
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSetupRoutes_Healthz(t *testing.T) {
	services := newTestServices()
	r := services.router()

	w := serve(r, "GET", "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// TestSetupRoutes_PanelRequiresToken verifies that every panel route is guarded
func TestSetupRoutes_PanelRequiresToken(t *testing.T) {
	services := newTestServices()
	r := services.router()

	panel := BasePath + PanelPath
	tests := []struct {
		method string
		url    string
	}{
		{"GET", panel},
		{"GET", panel + "/me"},
		{"GET", panel + "/events"},
		{"POST", panel + "/events"},
		{"PUT", panel + "/events/copa"},
		{"POST", panel + "/events/copa/rules"},
		{"GET", panel + "/registrations"},
		{"GET", panel + "/registrations/export"},
		{"POST", panel + "/registrations/abc/payment"},
		{"GET", panel + "/metrics"},
		{"POST", panel + "/metrics"},
		{"GET", panel + "/metrics/abc"},
		{"PUT", panel + "/metrics/abc"},
		{"DELETE", panel + "/metrics/abc"},
		{"GET", panel + "/matchmaking/events/copa"},
		{"POST", panel + "/matchmaking/events/copa/generate"},
		{"POST", panel + "/matchmaking/events/copa/export"},
		{"GET", panel + "/matchmaking/brackets/abc"},
		{"POST", panel + "/matchmaking/brackets/abc/export"},
		{"PUT", panel + "/matchmaking/brackets/abc/order"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := serve(r, tt.method, tt.url, "", nil)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), MsgMissingToken)
		})
	}
	services.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestStaffOnly(t *testing.T) {
	t.Run("invalid token is unauthorized", func(t *testing.T) {
		services := newTestServices()
		services.auth.On("Authenticate", mock.Anything, "expired").Return(nil, staff.ErrInvalidToken)
		r := services.router()

		w := serve(r, "GET", BasePath+PanelPath+"/me", "", map[string]string{"Authorization": "Bearer expired"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), staff.ErrInvalidToken.Error())
	})

	t.Run("non staff user is forbidden", func(t *testing.T) {
		services := newTestServices()
		services.auth.On("Authenticate", mock.Anything, "athlete").
			Return(&staff.User{ID: "u1", Username: "atleta", IsActive: true}, nil)
		r := services.router()

		w := serve(r, "GET", BasePath+PanelPath+"/me", "", map[string]string{"Authorization": "Bearer athlete"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), staff.ErrForbidden.Error())
	})

	t.Run("non bearer scheme is ignored", func(t *testing.T) {
		services := newTestServices()
		r := services.router()

		w := serve(r, "GET", BasePath+PanelPath+"/me", "", map[string]string{"Authorization": "Basic abc"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		services.auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("staff user reaches the panel", func(t *testing.T) {
		services := newTestServices()
		user := services.allowStaff()
		r := services.router()

		w := serve(r, "GET", BasePath+PanelPath+"/me", "", staffHeaders())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.Username)
		services.auth.AssertExpectations(t)
	})
}
