package roomBookings

import (
	"log/slog"
	"net/http"
	"strconv"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomBookingsGetter
type RoomBookingsGetter interface {
	GetBookingsForRoom(roomID int) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings RoomBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.roomBookings.New"

		log = log.With(slog.String("op", op))

		roomIDStr := chi.URLParam(r, "id")
		if roomIDStr == "" {
			log.Error("room id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("room id is required"))
			return
		}

		roomID, err := strconv.Atoi(roomIDStr)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		log = log.With(slog.Int("room_id", roomID))

		result, err := bookings.GetBookingsForRoom(roomID)
		if err != nil {
			log.Error("failed to get room bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get room bookings"))
			return
		}

		log.Info("room bookings retrieved", slog.Int("count", len(result)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: result,
		})
	}
}
