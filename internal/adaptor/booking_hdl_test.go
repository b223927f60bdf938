package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ride-booking/internal/data/repository"
	"ride-booking/internal/dto/request"
	"ride-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBookingService struct {
	reserveErr error
	cancelErr  error
	listErr    error
}

func (s *stubBookingService) Reserve(ctx context.Context, req *request.CreateBookingRequest) (*response.ReserveResponse, error) {
	if s.reserveErr != nil {
		return nil, s.reserveErr
	}
	return &response.ReserveResponse{BookingID: "b-1", SlotID: req.SlotID, GuestName: req.GuestName}, nil
}

func (s *stubBookingService) Cancel(ctx context.Context, bookingID string) error {
	return s.cancelErr
}

func (s *stubBookingService) ListBookings(ctx context.Context, limit int) ([]response.BookingRowResponse, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []response.BookingRowResponse{}, nil
}

const validBody = `{"slot_id":"2b7e6f64-9d5c-4a2b-8f3e-1c9d8a7b6e5f","guest_name":"Alice"}`

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"success", validBody, nil, http.StatusOK},
		{"invalid json", `{`, nil, http.StatusBadRequest},
		{"missing guest name", `{"slot_id":"2b7e6f64-9d5c-4a2b-8f3e-1c9d8a7b6e5f"}`, nil, http.StatusBadRequest},
		{"invalid argument", validBody, repository.ErrInvalidArgument, http.StatusBadRequest},
		{"slot not found", validBody, repository.ErrNotFound, http.StatusNotFound},
		{"slot full", validBody, repository.ErrSlotFull, http.StatusConflict},
		{"transaction failed", validBody, repository.ErrTxFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBookingHandler(&stubBookingService{reserveErr: tt.serviceErr}, zap.NewNop())

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tt.body))

			handler.CreateBooking(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		serviceErr error
		wantStatus int
	}{
		{"success", "/api/bookings?id=b-1", nil, http.StatusOK},
		{"missing id", "/api/bookings", nil, http.StatusBadRequest},
		{"not found", "/api/bookings?id=b-1", repository.ErrNotFound, http.StatusNotFound},
		{"transaction failed", "/api/bookings?id=b-1", repository.ErrTxFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBookingHandler(&stubBookingService{cancelErr: tt.serviceErr}, zap.NewNop())

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, tt.target, nil)

			handler.CancelBooking(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("success body reports ok", func(t *testing.T) {
		handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/bookings?id=b-1", nil)

		handler.CancelBooking(w, r)

		assert.JSONEq(t, `{"status":true,"message":"success","data":{"ok":true}}`, w.Body.String())
	})
}

func TestListBookings(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)

		handler.ListBookings(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage error", func(t *testing.T) {
		handler := NewBookingHandler(&stubBookingService{listErr: assert.AnError}, zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)

		handler.ListBookings(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
