package updateBooking

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courtBooker/internal/http-server/handlers/booking/updateBooking/mocks"
	"courtBooker/internal/lib/logger/handlers/slogdiscard"
	"courtBooker/internal/models"
)

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	persisted := func() *models.Booking {
		return &models.Booking{
			ID:            "booking-1",
			CourtID:       "court-1",
			UserID:        "user-1",
			BookingDate:   "2025-06-15",
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentPending,
			PricePerHour:  100,
			TimeSlots: []models.TimeSlot{
				{Start: "09:00", End: "10:00", Price: 100},
				{Start: "10:00", End: "11:00", Price: 150},
			},
		}
	}

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(m *mocks.BookingUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Status change keeps slots and totals",
			bookingID:   "booking-1",
			requestBody: `{"status": "confirmed", "payment_status": "paid"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("GetBooking", "booking-1").Return(persisted(), nil)
				m.On("UpdateBooking", "booking-1", mock.MatchedBy(func(p models.BookingPayload) bool {
					return p.Status == models.StatusConfirmed &&
						p.PaymentStatus == models.PaymentPaid &&
						p.StartTime == "09:00" &&
						p.EndTime == "11:00" &&
						p.TotalAmount == 250
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","total_amount":250}`,
		},
		{
			name:      "Replacing slots rederives totals",
			bookingID: "booking-1",
			requestBody: `{
				"time_slots": [
					{"start": "14:00", "end": "15:00", "price": 300}
				]
			}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("GetBooking", "booking-1").Return(persisted(), nil)
				m.On("UpdateBooking", "booking-1", mock.MatchedBy(func(p models.BookingPayload) bool {
					return p.StartTime == "14:00" &&
						p.EndTime == "15:00" &&
						p.DurationMinutes == 60 &&
						p.TotalAmount == 300
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","total_amount":300}`,
		},
		{
			name:        "Flat legacy record hydrates to one slot",
			bookingID:   "booking-legacy",
			requestBody: `{"status": "completed"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("GetBooking", "booking-legacy").Return(&models.Booking{
					ID:           "booking-legacy",
					CourtID:      "court-1",
					UserID:       "user-1",
					BookingDate:  "2025-06-01",
					StartTime:    "18:00",
					EndTime:      "20:00",
					PricePerHour: 200,
				}, nil)
				m.On("UpdateBooking", "booking-legacy", mock.MatchedBy(func(p models.BookingPayload) bool {
					return p.StartTime == "18:00" &&
						p.EndTime == "20:00" &&
						p.DurationMinutes == 60 &&
						p.TotalAmount == 200 &&
						len(p.TimeSlots) == 1
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","total_amount":200}`,
		},
		{
			name:        "Clearing court blocks update",
			bookingID:   "booking-1",
			requestBody: `{"court_id": ""}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("GetBooking", "booking-1").Return(persisted(), nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"court is required"}`,
		},
		{
			name:           "Missing booking id",
			bookingID:      "",
			requestBody:    `{"status": "confirmed"}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"booking id is required"}`,
		},
		{
			name:           "Invalid JSON",
			bookingID:      "booking-1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Invalid status value",
			bookingID:      "booking-1",
			requestBody:    `{"status": "archived"}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Status")
			},
		},
		{
			name:        "Booking not found",
			bookingID:   "missing",
			requestBody: `{"status": "confirmed"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("GetBooking", "missing").Return(nil, errors.New("booking not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:        "Internal server error on update",
			bookingID:   "booking-1",
			requestBody: `{"status": "confirmed"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("GetBooking", "booking-1").Return(persisted(), nil)
				m.On("UpdateBooking", "booking-1", mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewBookingUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			url := "/bookings"
			if tc.bookingID != "" {
				url = "/bookings/" + tc.bookingID
			}

			req, err := http.NewRequest("PUT", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/bookings", func(r chi.Router) {
				r.Put("/", handler)
				r.Put("/{id}", handler)
			})

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockUpdater.AssertExpectations(t)
		})
	}
}
