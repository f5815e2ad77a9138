package getBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtBooker/internal/http-server/handlers/booking/getBooking/mocks"
	"courtBooker/internal/lib/logger/handlers/slogdiscard"
	"courtBooker/internal/models"
)

func TestGetBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "booking-1",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("GetBooking", "booking-1").Return(&models.Booking{
					ID:          "booking-1",
					CourtID:     "court-1",
					UserID:      "user-1",
					BookingDate: "2025-06-15",
					StartTime:   "09:00",
					EndTime:     "11:00",
					TotalAmount: 250,
					Status:      models.StatusConfirmed,
					TimeSlots: []models.TimeSlot{
						{Start: "09:00", End: "10:00", Price: 100},
						{Start: "10:00", End: "11:00", Price: 150},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":"booking-1"`)
				assert.Contains(t, body, `"total_amount":250`)
				assert.Contains(t, body, `"start":"09:00"`)
			},
		},
		{
			name:      "Booking not found",
			bookingID: "missing",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("GetBooking", "missing").Return(nil, errors.New("booking not found"))
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"booking not found"}`, body)
			},
		},
		{
			name:      "Internal server error",
			bookingID: "booking-1",
			mockSetup: func(m *mocks.BookingGetter) {
				m.On("GetBooking", "booking-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get booking"}`, body)
			},
		},
		{
			name:           "Missing booking id",
			bookingID:      "",
			mockSetup:      func(m *mocks.BookingGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"booking id is required"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBookingGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			url := "/bookings"
			if tc.bookingID != "" {
				url = "/bookings/" + tc.bookingID
			}

			req, err := http.NewRequest("GET", url, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/bookings", func(r chi.Router) {
				r.Get("/", handler)
				r.Get("/{id}", handler)
			})

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
