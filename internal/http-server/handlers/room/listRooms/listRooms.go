package listRooms

import (
	"log/slog"
	"net/http"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
)

type RoomsResponse struct {
	response.Response
	Rooms []models.Room `json:"rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomsGetter
type RoomsGetter interface {
	GetAvailableRooms() ([]models.Room, error)
}

func New(log *slog.Logger, rooms RoomsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.listRooms.New"

		log = log.With(slog.String("op", op))

		result, err := rooms.GetAvailableRooms()
		if err != nil {
			log.Error("failed to get rooms", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rooms"))
			return
		}

		log.Info("rooms retrieved successfully", slog.Int("count", len(result)))

		render.JSON(w, r, RoomsResponse{
			Response: response.OK(),
			Rooms:    result,
		})
	}
}
