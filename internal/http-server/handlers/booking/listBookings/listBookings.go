package listBookings

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	GetAllBookings() ([]models.Booking, error)
	FilterBookings(filter booking.Filter) ([]models.Booking, error)
}

func New(log *slog.Logger, lister BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		filter, ok := parseFilter(w, r, log)
		if !ok {
			return
		}

		var bookings []models.Booking
		var err error

		if filter.From == nil && filter.To == nil && filter.RoomID == nil {
			bookings, err = lister.GetAllBookings()
		} else {
			bookings, err = lister.FilterBookings(filter)
		}
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookings"))
			return
		}

		log.Info("bookings listed", slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}

func parseFilter(w http.ResponseWriter, r *http.Request, log *slog.Logger) (booking.Filter, bool) {
	var filter booking.Filter

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			log.Error("invalid from date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid from date format"))
			return filter, false
		}
		filter.From = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			log.Error("invalid to date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid to date format"))
			return filter, false
		}
		filter.To = &to
	}

	if roomIDStr := r.URL.Query().Get("room_id"); roomIDStr != "" {
		roomID, err := strconv.Atoi(roomIDStr)
		if err != nil {
			log.Error("invalid room_id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room_id format"))
			return filter, false
		}
		filter.RoomID = &roomID
	}

	return filter, true
}
