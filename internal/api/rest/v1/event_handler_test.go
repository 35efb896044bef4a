//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_List(t *testing.T) {
	services := newTestServices()
	event := testEvent(false)
	services.events.On("ListPublished", mock.Anything, 2).
		Return(&events.EventPage{Events: []*events.Event{event}, Page: 2, PageSize: 10, TotalCount: 11}, nil)
	r := services.router()

	w := serve(r, "GET", BasePath+"/events?page=2", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var response EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.TotalPages)
	require.Len(t, response.Events, 1)
	assert.Equal(t, "80.00", response.Events[0].RegistrationFee)
	assert.True(t, response.Events[0].RegistrationOpen)
	assert.False(t, response.Events[0].HasRules)
}

func TestEventHandler_GetBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		services := newTestServices()
		services.events.On("GetBySlug", mock.Anything, "copa-sao-joao").Return(testEvent(true), nil)
		r := services.router()

		w := serve(r, "GET", BasePath+"/events/copa-sao-joao", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_free":true`)
	})

	t.Run("not found", func(t *testing.T) {
		services := newTestServices()
		services.events.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)
		r := services.router()

		w := serve(r, "GET", BasePath+"/events/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), MsgNotFound)
	})
}

func TestEventHandler_DownloadRules(t *testing.T) {
	t.Run("downloads the document", func(t *testing.T) {
		services := newTestServices()
		services.events.On("DownloadRules", mock.Anything, "copa-sao-joao").Return([]byte("%PDF-1.4"), "regulamento.pdf", nil)
		r := services.router()

		w := serve(r, "GET", BasePath+"/events/copa-sao-joao/rules", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="regulamento.pdf"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4", w.Body.String())
	})

	t.Run("no document", func(t *testing.T) {
		services := newTestServices()
		services.events.On("DownloadRules", mock.Anything, "copa-sao-joao").Return(nil, "", events.ErrNoRulesDocument)
		r := services.router()

		w := serve(r, "GET", BasePath+"/events/copa-sao-joao/rules", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventHandler_Create(t *testing.T) {
	body := `{
		"title": "Copa São João",
		"location": "Fortaleza",
		"start_at": "2030-06-24T09:00:00-03:00",
		"registration_deadline": "2030-06-20T23:59:00-03:00",
		"registration_fee": "80.00",
		"is_published": true
	}`

	t.Run("created", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.events.On("Create", mock.Anything, mock.MatchedBy(func(in *events.EventInput) bool {
			return in.Title == "Copa São João" && in.RegistrationFee.StringFixed(2) == "80.00" && in.IsPublished
		})).Return(testEvent(false), nil)
		r := services.router()

		w := serve(r, "POST", BasePath+PanelPath+"/events", body, staffHeaders())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"copa-sao-joao"`)
		services.events.AssertExpectations(t)
	})

	t.Run("field errors", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		services.events.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("start_at", events.MsgStartInPast))
		r := services.router()

		w := serve(r, "POST", BasePath+PanelPath+"/events", body, staffHeaders())

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{events.MsgStartInPast}, response.Errors["start_at"])
	})
}

func TestEventHandler_UploadRules(t *testing.T) {
	t.Run("stores the file", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		updated := testEvent(false)
		updated.RulesDocument = "events/rules/copa-sao-joao.pdf"
		services.events.On("UploadRules", mock.Anything, "copa-sao-joao", mock.MatchedBy(func(u *events.RulesUpload) bool {
			return u.FileName == "regulamento.pdf" && u.ContentType == "" && u.Content != nil
		})).Return(updated, nil)
		r := services.router()

		body, contentType := testutil.CreateMultipartBody(t, "file", "regulamento.pdf", []byte("%PDF-1.4 rules"), nil)
		req := httptest.NewRequest("POST", BasePath+PanelPath+"/events/copa-sao-joao/rules", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+testStaffToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"has_rules":true`)
		services.events.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		services := newTestServices()
		services.allowStaff()
		r := services.router()

		w := serve(r, "POST", BasePath+PanelPath+"/events/copa-sao-joao/rules", "", staffHeaders())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), MsgRulesFileMissing)
	})
}
