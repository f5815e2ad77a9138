package getAllBookings

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"courtBooker/internal/lib/api/response"
	"courtBooker/internal/lib/logger/sl"
	"courtBooker/internal/models"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	GetAllBookings() ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		all, err := bookings.GetAllBookings()
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		q := filterFromQuery(r)

		filtered := q.apply(all)
		total := len(filtered)
		page := q.paginate(filtered)

		log.Info("bookings retrieved",
			slog.Int("total", total),
			slog.Int("returned", len(page)),
		)

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: page,
			Total:    total,
			Page:     q.Page,
			PageSize: q.PageSize,
		})
	}
}

func filterFromQuery(r *http.Request) filter {
	q := r.URL.Query()

	f := filter{
		Status:        q.Get("status"),
		PaymentStatus: q.Get("payment_status"),
		Date:          q.Get("date"),
		Search:        q.Get("q"),
		SortBy:        q.Get("sort_by"),
		Order:         q.Get("order"),
		Page:          1,
		PageSize:      defaultPageSize,
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		f.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil && size > 0 && size <= maxPageSize {
		f.PageSize = size
	}

	return f
}
