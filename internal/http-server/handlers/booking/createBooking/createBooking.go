package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"courtBooker/internal/draft"
	"courtBooker/internal/lib/api/response"
	"courtBooker/internal/lib/logger/sl"
	"courtBooker/internal/models"
)

type BookingRequest struct {
	CourtID       string           `json:"court_id" validate:"required"`
	UserID        string           `json:"user_id" validate:"required"`
	BookingDate   string           `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Status        string           `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus string           `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
	PricePerHour  float64          `json:"price_per_hour"`
	TeamName      string           `json:"team_name"`
	TimeSlots     []map[string]any `json:"time_slots"`
}

type BookingResponse struct {
	response.Response
	BookingID   string  `json:"booking_id"`
	TotalAmount float64 `json:"total_amount"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(p models.BookingPayload) (string, error)
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

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

		d := buildDraft(&req)

		if err = d.Validate(); err != nil {
			log.Error("invalid draft", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		payload := d.Payload()

		bookingID, err := booking.CreateBooking(payload)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch err.Error() {
			case "court not found":
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("court not found"))
				return
			case "user not found":
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
				return
			}
		}

		log.Info("booking created", slog.String("booking_id", bookingID))

		responseOK(w, r, bookingID, payload.TotalAmount)
	}
}

// buildDraft assembles a booking draft from the request. Slot records are
// normalized through the alias-tolerant adapter; the court's hourly price
// backfills any slot the operator left unpriced.
func buildDraft(req *BookingRequest) *draft.Draft {
	d := draft.New()
	d.CourtID = req.CourtID
	d.UserID = req.UserID
	d.BookingDate = req.BookingDate
	d.PricePerHour = req.PricePerHour
	d.TeamName = req.TeamName

	if req.Status != "" {
		d.Status = models.BookingStatus(req.Status)
	}
	if req.PaymentStatus != "" {
		d.PaymentStatus = models.PaymentStatus(req.PaymentStatus)
	}

	if len(req.TimeSlots) > 0 {
		slots := make([]models.TimeSlot, 0, len(req.TimeSlots))
		for _, raw := range req.TimeSlots {
			slots = append(slots, draft.NormalizeSlot(raw))
		}
		d.Slots = draft.NewLedgerFrom(slots)
	}

	d.Slots.ApplyDefaultPrice(req.PricePerHour)

	return d
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID string, total float64) {
	render.JSON(w, r, BookingResponse{
		Response:    response.OK(),
		BookingID:   bookingID,
		TotalAmount: total,
	})
}
