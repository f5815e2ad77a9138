package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"courtBooker/internal/draft"
	"courtBooker/internal/lib/api/response"
	"courtBooker/internal/lib/logger/sl"
	"courtBooker/internal/models"
)

// All fields are optional: absent fields keep the persisted value.
type UpdateRequest struct {
	CourtID       *string          `json:"court_id"`
	UserID        *string          `json:"user_id"`
	BookingDate   *string          `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Status        *string          `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus *string          `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
	PricePerHour  *float64         `json:"price_per_hour"`
	TeamName      *string          `json:"team_name"`
	TimeSlots     []map[string]any `json:"time_slots"`
}

type UpdateResponse struct {
	response.Response
	TotalAmount float64 `json:"total_amount"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	GetBooking(id string) (*models.Booking, error)
	UpdateBooking(id string, p models.BookingPayload) error
}

func New(log *slog.Logger, booking BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

		var req UpdateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		existing, err := booking.GetBooking(bookingID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if err.Error() == "booking not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		d := draft.FromBooking(existing)
		applyRequest(d, &req)

		if err = d.Validate(); err != nil {
			log.Error("invalid draft", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		payload := d.Payload()

		if err = booking.UpdateBooking(bookingID, payload); err != nil {
			log.Error("failed to update booking", sl.Err(err))

			if err.Error() == "booking not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("booking updated", slog.Float64("total_amount", payload.TotalAmount))

		responseOK(w, r, payload.TotalAmount)
	}
}

// applyRequest overlays the request's present fields onto the hydrated
// draft. A time_slots array replaces the ledger wholesale; the hourly price
// then backfills unpriced entries.
func applyRequest(d *draft.Draft, req *UpdateRequest) {
	if req.CourtID != nil {
		d.CourtID = *req.CourtID
	}
	if req.UserID != nil {
		d.UserID = *req.UserID
	}
	if req.BookingDate != nil {
		d.BookingDate = *req.BookingDate
	}
	if req.Status != nil {
		d.Status = models.BookingStatus(*req.Status)
	}
	if req.PaymentStatus != nil {
		d.PaymentStatus = models.PaymentStatus(*req.PaymentStatus)
	}
	if req.PricePerHour != nil {
		d.PricePerHour = *req.PricePerHour
	}
	if req.TeamName != nil {
		d.TeamName = *req.TeamName
	}

	if len(req.TimeSlots) > 0 {
		slots := make([]models.TimeSlot, 0, len(req.TimeSlots))
		for _, raw := range req.TimeSlots {
			slots = append(slots, draft.NormalizeSlot(raw))
		}
		d.Slots = draft.NewLedgerFrom(slots)
	}

	d.Slots.ApplyDefaultPrice(d.PricePerHour)
}

func responseOK(w http.ResponseWriter, r *http.Request, total float64) {
	render.JSON(w, r, UpdateResponse{
		Response:    response.OK(),
		TotalAmount: total,
	})
}
