package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"
	"hotelBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type UpdateRequest struct {
	RoomID   int    `json:"room_id" validate:"required"`
	GuestID  string `json:"guest_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(updated models.Booking) error
}

func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

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

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
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

		checkIn, err := time.Parse(dateLayout, req.CheckIn)
		if err != nil {
			log.Error("invalid check_in date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid check_in date format"))
			return
		}

		checkOut, err := time.Parse(dateLayout, req.CheckOut)
		if err != nil {
			log.Error("invalid check_out date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid check_out date format"))
			return
		}

		updated := models.Booking{
			ID:       bookingID,
			RoomID:   req.RoomID,
			GuestID:  req.GuestID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
		}

		err = updater.UpdateBooking(updated)
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrInvalidDateRange):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date range"))
			case errors.Is(err, booking.ErrBookingConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking conflicts with another booking"))
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, response.OK())
	}
}
