package checkAvailability

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type AvailabilityResponse struct {
	response.Response
	Available bool `json:"available"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityChecker
type AvailabilityChecker interface {
	IsRoomAvailable(roomID int, from, to time.Time) (bool, error)
}

func New(log *slog.Logger, availability AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.checkAvailability.New"

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

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")
		if fromStr == "" || toStr == "" {
			log.Error("from and to dates are required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("from and to dates are required"))
			return
		}

		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			log.Error("invalid from date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid from date format"))
			return
		}

		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			log.Error("invalid to date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid to date format"))
			return
		}

		if !to.After(from) {
			log.Error("invalid date range", slog.String("from", fromStr), slog.String("to", toStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date range"))
			return
		}

		log = log.With(slog.Int("room_id", roomID))

		available, err := availability.IsRoomAvailable(roomID, from, to)
		if err != nil {
			log.Error("failed to check availability", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check availability"))
			return
		}

		log.Info("availability checked", slog.Bool("available", available))

		render.JSON(w, r, AvailabilityResponse{
			Response:  response.OK(),
			Available: available,
		})
	}
}
