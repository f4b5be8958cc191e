package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"hotelBooker/internal/booking"
	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	RoomID   int    `json:"room_id" validate:"required"`
	GuestID  string `json:"guest_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(roomID int, guestID string, checkIn, checkOut time.Time) (models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventPublisher
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking models.Booking) error
}

func New(log *slog.Logger, creator BookingCreator, events EventPublisher) http.HandlerFunc {
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

		created, err := creator.CreateBooking(req.RoomID, req.GuestID, checkIn, checkOut)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrInvalidDateRange):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date range"))
			case errors.Is(err, booking.ErrRoomUnavailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("room is not available for the requested dates"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created",
			slog.Int("id", created.ID),
			slog.Int("room_id", created.RoomID),
		)

		// Событие публикуется best effort: сама бронь уже сохранена
		if err = events.BookingCreated(r.Context(), created); err != nil {
			log.Error("failed to publish booking created event", sl.Err(err))
		}

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, created models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  created,
	})
}
