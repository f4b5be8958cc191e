package cancelBooking

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(id int) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventPublisher
type EventPublisher interface {
	BookingCancelled(ctx context.Context, bookingID int) error
}

func New(log *slog.Logger, canceller BookingCanceller, events EventPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		bookingIDStr := chi.URLParam(r, "id")
		if bookingIDStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.Atoi(bookingIDStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		cancelled, err := canceller.CancelBooking(bookingID)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel booking"))
			return
		}

		if !cancelled {
			log.Error("booking not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
			return
		}

		log.Info("booking cancelled")

		if err = events.BookingCancelled(r.Context(), bookingID); err != nil {
			log.Error("failed to publish booking cancelled event", sl.Err(err))
		}

		render.JSON(w, r, response.OK())
	}
}
