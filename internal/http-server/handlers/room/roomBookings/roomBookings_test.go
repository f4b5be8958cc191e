package roomBookings_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelBooker/internal/http-server/handlers/room/roomBookings"
	"hotelBooker/internal/http-server/handlers/room/roomBookings/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		bookings := []models.Booking{
			{ID: 1, RoomID: 7, GuestID: "guest-a",
				CheckIn:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		}

		getter := mocks.NewRoomBookingsGetter(t)
		getter.On("GetBookingsForRoom", 7).Return(bookings, nil)

		router := chi.NewRouter()
		router.Get("/rooms/{id}/bookings", roomBookings.New(logger, getter))

		req, err := http.NewRequest(http.MethodGet, "/rooms/7/bookings", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"OK"`)
		assert.Contains(t, rr.Body.String(), `"guest_id":"guest-a"`)
	})

	t.Run("Invalid room id", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewRoomBookingsGetter(t)

		router := chi.NewRouter()
		router.Get("/rooms/{id}/bookings", roomBookings.New(logger, getter))

		req, err := http.NewRequest(http.MethodGet, "/rooms/suite/bookings", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"invalid room id format"}`, rr.Body.String())
	})
}
