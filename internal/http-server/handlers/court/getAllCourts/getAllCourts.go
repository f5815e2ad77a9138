package getAllCourts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"courtBooker/internal/lib/api/response"
	"courtBooker/internal/lib/logger/sl"
	"courtBooker/internal/models"
)

type CourtsResponse struct {
	response.Response
	Courts []models.Court `json:"courts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CourtsGetter
type CourtsGetter interface {
	GetAllCourts() ([]models.Court, error)
}

func New(log *slog.Logger, courts CourtsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.court.getAllCourts.New"

		log = log.With(slog.String("op", op))

		list, err := courts.GetAllCourts()
		if err != nil {
			log.Error("failed to get courts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get courts"))
			return
		}

		log.Info("courts retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, courts []models.Court) {
	render.JSON(w, r, CourtsResponse{
		Response: response.OK(),
		Courts:   courts,
	})
}
