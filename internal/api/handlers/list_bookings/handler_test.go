package list_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MC-AppointmentService/internal/service/bookings"
	"github.com/m04kA/MC-AppointmentService/internal/service/bookings/models"
)

var testZone = time.FixedZone("MSK", 3*60*60)

type stubService struct {
	resp    *models.BookingListResponse
	err     error
	lastReq *models.ListBookingsRequest
}

func (s *stubService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	service := &stubService{
		resp: &models.BookingListResponse{
			Bookings: []models.BookingResponse{
				{ID: 1, ServiceCode: "ecg", Date: "2025-10-15", StartTime: "09:00"},
				{ID: 2, ServiceCode: "blood_draw", Date: "2025-10-15", StartTime: "09:10"},
			},
		},
	}
	handler := NewHandler(service, testZone, nopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings?from=2025-10-15&to=2025-10-16&done=false", nil)
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	// даты разобраны в часовом поясе кабинета
	require.NotNil(t, service.lastReq.FromDate)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, testZone), *service.lastReq.FromDate)
	require.NotNil(t, service.lastReq.ToDate)
	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, testZone), *service.lastReq.ToDate)
	require.NotNil(t, service.lastReq.Done)
	assert.False(t, *service.lastReq.Done)
}

func TestHandler_NoParams(t *testing.T) {
	service := &stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}
	handler := NewHandler(service, testZone, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.lastReq.FromDate)
	assert.Nil(t, service.lastReq.ToDate)
	assert.Nil(t, service.lastReq.Done)
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		message string
	}{
		{
			name:    "bad from date",
			target:  "/api/v1/bookings?from=15.10.2025",
			message: msgInvalidDate,
		},
		{
			name:    "bad to date",
			target:  "/api/v1/bookings?to=послезавтра",
			message: msgInvalidDate,
		},
		{
			name:    "bad done",
			target:  "/api/v1/bookings?done=да",
			message: msgInvalidDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&stubService{}, testZone, nopLogger{})

			rec := httptest.NewRecorder()
			handler.Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.message, errResp.Message)
		})
	}
}

func TestHandler_ServiceErrors(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		handler := NewHandler(&stubService{err: bookings.ErrInvalidTimeRange}, testZone, nopLogger{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/bookings?from=2025-10-17&to=2025-10-15", nil)
		handler.Handle(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, msgInvalidPeriod, errResp.Message)
	})

	t.Run("internal error", func(t *testing.T) {
		handler := NewHandler(&stubService{err: errors.New("boom")}, testZone, nopLogger{})

		rec := httptest.NewRecorder()
		handler.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
