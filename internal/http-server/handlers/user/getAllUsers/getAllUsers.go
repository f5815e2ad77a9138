package getAllUsers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"courtBooker/internal/lib/api/response"
	"courtBooker/internal/lib/logger/sl"
	"courtBooker/internal/models"
)

type UserItem struct {
	models.User
	DisplayName string `json:"display_name"`
}

// The items wrapper matches what the admin and mobile clients already
// consume.
type UsersResponse struct {
	response.Response
	Items []UserItem `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersGetter
type UsersGetter interface {
	GetAllUsers() ([]models.User, error)
}

func New(log *slog.Logger, users UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getAllUsers.New"

		log = log.With(slog.String("op", op))

		list, err := users.GetAllUsers()
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		items := make([]UserItem, 0, len(list))
		for _, u := range list {
			items = append(items, UserItem{User: u, DisplayName: u.DisplayName()})
		}

		log.Info("users retrieved successfully", slog.Int("count", len(items)))

		responseOK(w, r, items)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, items []UserItem) {
	render.JSON(w, r, UsersResponse{
		Response: response.OK(),
		Items:    items,
	})
}
